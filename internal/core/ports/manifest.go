package ports

import "go.trai.ch/nupin/internal/core/domain"

// ManifestEditor reads and rewrites nuspec manifests.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestEditor interface {
	// Pin rewrites the version of every dependency whose id is in ids to its exact-match form.
	// It returns the serialized manifest and one record per matched element in document order.
	// When nothing matches the input is returned unchanged.
	Pin(manifest []byte, ids []string) ([]byte, []domain.PinnedDependency, error)

	// Dependencies lists every nuspec dependency element in document order.
	Dependencies(manifest []byte) ([]domain.Dependency, error)
}
