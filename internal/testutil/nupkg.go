// Package testutil builds .nupkg fixtures for tests.
package testutil

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.trai.ch/nupin/internal/core/domain"
)

// Entry is a single file placed in a fixture archive.
type Entry struct {
	Name string
	Body string
	// Store writes the entry uncompressed instead of deflated.
	Store bool
}

// fixtureTime keeps fixture archives reproducible.
var fixtureTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// Nuspec returns a manifest in the current nuspec namespace wrapping the given <dependencies> body.
func Nuspec(dependencies string) string {
	return `<?xml version="1.0" encoding="utf-8"?>
<package xmlns="` + domain.NuspecNamespace + `">
  <metadata>
    <id>Cake.Example</id>
    <version>1.0.0</version>
    <authors>Example</authors>
    <!-- dependencies are pinned at publish time -->
    <description>Example package.</description>
    <dependencies>
` + dependencies + `
    </dependencies>
  </metadata>
</package>
`
}

// PackageEntries returns a typical package layout around the given manifest body.
func PackageEntries(nuspec string) []Entry {
	return []Entry{
		{Name: "_rels/.rels", Body: `<?xml version="1.0" encoding="utf-8"?><Relationships/>`},
		{Name: "Cake.Example.nuspec", Body: nuspec},
		{Name: "lib/net8.0/Cake.Example.dll", Body: strings.Repeat("MZ\x00binary", 64), Store: true},
		{Name: "[Content_Types].xml", Body: `<?xml version="1.0" encoding="utf-8"?><Types/>`},
	}
}

// BuildZip returns the bytes of a zip archive holding entries in order.
func BuildZip(tb testing.TB, entries []Entry) []byte {
	tb.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, e := range entries {
		method := zip.Deflate
		if e.Store {
			method = zip.Store
		}
		fw, err := w.CreateHeader(&zip.FileHeader{Name: e.Name, Method: method, Modified: fixtureTime})
		if err != nil {
			tb.Fatalf("failed to create zip entry %s: %v", e.Name, err)
		}
		if _, err := fw.Write([]byte(e.Body)); err != nil {
			tb.Fatalf("failed to write zip entry %s: %v", e.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		tb.Fatalf("failed to close zip writer: %v", err)
	}
	return buf.Bytes()
}

// WriteNupkg writes a fixture archive named name into dir and returns its path.
func WriteNupkg(tb testing.TB, dir, name string, entries []Entry) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, BuildZip(tb, entries), 0o600); err != nil {
		tb.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}

// ReadEntry returns the contents of one entry of the archive at path.
func ReadEntry(tb testing.TB, path, name string) string {
	tb.Helper()

	r, err := zip.OpenReader(path)
	if err != nil {
		tb.Fatalf("failed to open %s: %v", path, err)
	}
	defer func() { _ = r.Close() }()

	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			tb.Fatalf("failed to open entry %s: %v", name, err)
		}
		defer func() { _ = rc.Close() }()

		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			tb.Fatalf("failed to read entry %s: %v", name, err)
		}
		return buf.String()
	}

	tb.Fatalf("entry %s not found in %s", name, path)
	return ""
}
