// Package ports defines the core interfaces for the application.
package ports

// PackageOpener opens package archives for read and update.
//
//go:generate go run go.uber.org/mock/mockgen -source=archive.go -destination=mocks/mock_archive.go -package=mocks
type PackageOpener interface {
	// Open loads the archive at path. The caller owns the returned archive and must Close it.
	Open(path string) (PackageArchive, error)
}

// PackageArchive is an open package archive.
//
// Replacements are buffered; nothing reaches the file on disk until Save succeeds,
// and a failed Save leaves the original file intact.
type PackageArchive interface {
	// Entries returns the entry names in archive order.
	Entries() []string

	// ReadEntry returns the uncompressed contents of the named entry.
	ReadEntry(name string) ([]byte, error)

	// ReplaceEntry stages new contents for an existing entry.
	ReplaceEntry(name string, data []byte) error

	// Save atomically rewrites the archive file with all staged replacements.
	Save() error

	// Close releases the archive. It is safe to call more than once.
	Close() error
}
