// Package pinner implements pinning of NuGet dependency versions inside package archives.
package pinner

import (
	"context"
	"errors"
	"os"
	"strings"

	"go.trai.ch/nupin/internal/core/domain"
	"go.trai.ch/nupin/internal/core/ports"
	"go.trai.ch/zerr"
)

// Pinner rewrites dependency version constraints inside .nupkg archives to exact versions.
// It holds no state between calls.
type Pinner struct {
	opener ports.PackageOpener
	editor ports.ManifestEditor
}

// New creates a new Pinner.
func New(opener ports.PackageOpener, editor ports.ManifestEditor) *Pinner {
	return &Pinner{
		opener: opener,
		editor: editor,
	}
}

// Pin rewrites every dependency with the given id in the package at path to its exact version.
// An id that matches nothing is not an error and leaves the package untouched.
func (p *Pinner) Pin(ctx context.Context, path, id string) (*domain.PinResult, error) {
	return p.PinMany(ctx, path, id)
}

// PinMany pins several dependency ids in one read-modify-save cycle of the package at path.
//
// The archive on disk is either fully rewritten or left as it was: the new manifest is
// built in memory and the archive is only saved once every match has been rewritten.
func (p *Pinner) PinMany(ctx context.Context, path string, ids ...string) (result *domain.PinResult, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validatePath(path); err != nil {
		return nil, err
	}
	ids, err = normalizeIDs(ids)
	if err != nil {
		return nil, err
	}

	archive, err := p.opener.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := archive.Close(); closeErr != nil && err == nil {
			result = nil
			err = errors.Join(domain.ErrPackageReadFailed, zerr.With(zerr.Wrap(closeErr, "failed to close package"), "path", path))
		}
	}()

	entries := archive.Entries()
	manifest, err := domain.FindManifest(entries)
	if err != nil {
		return nil, withPath(err, path)
	}

	original, err := archive.ReadEntry(manifest)
	if err != nil {
		return nil, err
	}

	updated, pinned, err := p.editor.Pin(original, ids)
	if err != nil {
		return nil, withPath(err, path)
	}

	result = &domain.PinResult{
		Package:      path,
		Manifest:     manifest,
		Dependencies: pinned,
		Signed:       domain.IsSigned(entries),
		Digest:       domain.Digest(original),
	}
	if !result.HasChanges() {
		return result, nil
	}

	if err := archive.ReplaceEntry(manifest, updated); err != nil {
		return nil, err
	}
	if err := archive.Save(); err != nil {
		return nil, err
	}

	result.Changed = true
	result.Digest = domain.Digest(updated)
	return result, nil
}

func validatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.Join(domain.ErrInvalidArgument, zerr.With(zerr.New("package path is empty"), "argument", "path"))
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errors.Join(domain.ErrPackageNotFound, err)
		}
		return errors.Join(domain.ErrPackageReadFailed, err)
	}
	if info.IsDir() {
		return errors.Join(domain.ErrInvalidArgument, zerr.With(zerr.New("package path is a directory"), "path", path))
	}
	return nil
}

// normalizeIDs rejects blank ids and drops duplicates, keeping first-seen order.
func normalizeIDs(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, errors.Join(domain.ErrInvalidArgument, zerr.With(zerr.New("no dependency id given"), "argument", "dependency"))
	}

	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for i, id := range ids {
		if strings.TrimSpace(id) == "" {
			detail := zerr.With(zerr.New("dependency id is blank"), "argument", "dependency")
			return nil, errors.Join(domain.ErrInvalidArgument, zerr.With(detail, "index", i))
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out, nil
}

func withPath(err error, path string) error {
	return errors.Join(err, zerr.With(zerr.New("package "+path), "path", path))
}
