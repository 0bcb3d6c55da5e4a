// Package nupkg implements package archive access on top of archive/zip.
package nupkg

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"go.trai.ch/nupin/internal/core/domain"
	"go.trai.ch/nupin/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.PackageOpener  = (*Opener)(nil)
	_ ports.PackageArchive = (*Archive)(nil)
)

// Opener implements ports.PackageOpener for zip-based .nupkg files.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open loads the archive at path.
func (o *Opener) Open(path string) (ports.PackageArchive, error) {
	return Open(path)
}

// Archive is a package archive held in memory.
//
// The whole file is read on Open, so no handle on the file is kept while entries are
// edited and Save can replace the file even on platforms that lock open files.
type Archive struct {
	path     string
	mode     os.FileMode
	reader   *zip.Reader
	replaced map[string][]byte
	closed   bool
}

// Open reads the archive at path into memory.
func Open(path string) (*Archive, error) {
	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Join(domain.ErrPackageNotFound, err)
		}
		return nil, errors.Join(domain.ErrPackageReadFailed, zerr.With(err, "path", path))
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by the caller
	if err != nil {
		return nil, errors.Join(domain.ErrPackageReadFailed, zerr.With(err, "path", path))
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.Join(domain.ErrPackageReadFailed, zerr.With(zerr.Wrap(err, "not a zip archive"), "path", path))
	}

	return &Archive{
		path:     path,
		mode:     info.Mode().Perm(),
		reader:   reader,
		replaced: make(map[string][]byte),
	}, nil
}

// Entries returns the entry names in archive order.
func (a *Archive) Entries() []string {
	if a.closed {
		return nil
	}
	names := make([]string, 0, len(a.reader.File))
	for _, f := range a.reader.File {
		names = append(names, f.Name)
	}
	return names
}

// ReadEntry returns the contents of the named entry, including staged replacements.
func (a *Archive) ReadEntry(name string) ([]byte, error) {
	f, err := a.lookup(name)
	if err != nil {
		return nil, err
	}
	if data, ok := a.replaced[name]; ok {
		return bytes.Clone(data), nil
	}

	rc, err := f.Open()
	if err != nil {
		return nil, a.readErr(err, name)
	}
	defer rc.Close() //nolint:errcheck // Read-only entry reader

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, a.readErr(err, name)
	}
	return data, nil
}

// ReplaceEntry stages new contents for an existing entry.
func (a *Archive) ReplaceEntry(name string, data []byte) error {
	if _, err := a.lookup(name); err != nil {
		return err
	}
	a.replaced[name] = bytes.Clone(data)
	return nil
}

// Save writes the archive with all staged replacements and atomically replaces the file.
// Entries that were not replaced are copied without recompression.
func (a *Archive) Save() error {
	if a.closed {
		return domain.ErrPackageClosed
	}
	if len(a.replaced) == 0 {
		return nil
	}

	var buf bytes.Buffer
	if err := a.writeTo(&buf); err != nil {
		return errors.Join(domain.ErrPackageWriteFailed, zerr.With(err, "path", a.path))
	}

	if err := atomic.WriteFile(a.path, &buf); err != nil {
		return errors.Join(domain.ErrPackageWriteFailed, zerr.With(zerr.Wrap(err, "failed to replace package"), "path", a.path))
	}
	if err := os.Chmod(a.path, a.mode); err != nil {
		return errors.Join(domain.ErrPackageWriteFailed, zerr.With(zerr.Wrap(err, "failed to restore permissions"), "path", a.path))
	}

	a.replaced = make(map[string][]byte)
	return nil
}

// Close releases the archive. Staged replacements that were not saved are discarded.
func (a *Archive) Close() error {
	a.closed = true
	a.reader = nil
	a.replaced = nil
	return nil
}

func (a *Archive) writeTo(w io.Writer) error {
	zw := zip.NewWriter(w)
	if a.reader.Comment != "" {
		if err := zw.SetComment(a.reader.Comment); err != nil {
			return zerr.Wrap(err, "failed to copy archive comment")
		}
	}

	for _, f := range a.reader.File {
		data, ok := a.replaced[f.Name]
		if !ok {
			if err := zw.Copy(f); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to copy entry"), "entry", f.Name)
			}
			continue
		}

		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:          f.Name,
			Comment:       f.Comment,
			Method:        f.Method,
			Modified:      f.Modified,
			ExternalAttrs: f.ExternalAttrs,
		})
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create entry"), "entry", f.Name)
		}
		if _, err := fw.Write(data); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write entry"), "entry", f.Name)
		}
	}

	if err := zw.Close(); err != nil {
		return zerr.Wrap(err, "failed to finish archive")
	}
	return nil
}

func (a *Archive) lookup(name string) (*zip.File, error) {
	if a.closed {
		return nil, domain.ErrPackageClosed
	}
	for _, f := range a.reader.File {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, errors.Join(domain.ErrEntryNotFound, zerr.With(zerr.New("no such entry"), "entry", name))
}

func (a *Archive) readErr(err error, name string) error {
	err = zerr.With(zerr.Wrap(err, "failed to read entry"), "entry", name)
	return errors.Join(domain.ErrPackageReadFailed, zerr.With(err, "path", a.path))
}
