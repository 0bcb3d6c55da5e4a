package domain

// Dependency is a single <dependency> element of a nuspec manifest.
type Dependency struct {
	// ID is the package identifier (e.g., "Cake.Core").
	ID string

	// Version is the raw version constraint (e.g., "1.0.0", "[1.0.0]", "[1.0,2.0)").
	Version string

	// TargetFramework is the targetFramework of the enclosing <group>, empty for ungrouped dependencies.
	TargetFramework string
}

// PinnedDependency records the rewrite of one matched dependency element.
type PinnedDependency struct {
	ID              string
	TargetFramework string
	Previous        string
	Pinned          string
}

// Changed reports whether the rewrite altered the version attribute.
func (d PinnedDependency) Changed() bool {
	return d.Previous != d.Pinned
}

// PinRequest asks for a set of dependency ids to be pinned inside one package archive.
type PinRequest struct {
	// Package is the path to the .nupkg archive.
	Package string

	// Dependencies are the identifiers to pin, matched case-sensitively.
	Dependencies []string
}

// PinResult describes the outcome of pinning dependencies inside one package archive.
type PinResult struct {
	// Package is the archive path as given by the caller.
	Package string

	// Manifest is the name of the .nuspec entry inside the archive.
	Manifest string

	// Dependencies lists every matched element in document order, changed or not.
	Dependencies []PinnedDependency

	// Digest is the xxhash of the manifest as it is on disk after the operation.
	Digest string

	// Changed reports whether the archive was rewritten.
	Changed bool

	// Signed reports whether the archive carries a package signature.
	Signed bool
}

// HasChanges reports whether any matched dependency needs its version rewritten.
func (r *PinResult) HasChanges() bool {
	for _, d := range r.Dependencies {
		if d.Changed() {
			return true
		}
	}
	return false
}
