package domain

import (
	"errors"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// ManifestMarker identifies the manifest entry. Packaging tools may nest the manifest
	// under a variable directory, so entries are matched by substring rather than path.
	ManifestMarker = ".nuspec"

	// SignatureEntry is the entry NuGet adds to signed packages.
	SignatureEntry = ".signature.p7s"

	// NuspecNamespace is the current nuspec schema namespace.
	NuspecNamespace = "http://schemas.microsoft.com/packaging/2013/05/nuspec.xsd"
)

// nuspecNamespaces lists every published nuspec schema namespace, newest first.
var nuspecNamespaces = []string{
	NuspecNamespace,
	"http://schemas.microsoft.com/packaging/2013/01/nuspec.xsd",
	"http://schemas.microsoft.com/packaging/2012/06/nuspec.xsd",
	"http://schemas.microsoft.com/packaging/2011/08/nuspec.xsd",
	"http://schemas.microsoft.com/packaging/2010/07/nuspec.xsd",
}

// IsNuspecNamespace reports whether uri is one of the nuspec schema namespaces.
func IsNuspecNamespace(uri string) bool {
	for _, ns := range nuspecNamespaces {
		if uri == ns {
			return true
		}
	}
	return false
}

// FindManifest returns the single entry name containing ManifestMarker.
// Zero matches yield ErrManifestNotFound, several yield ErrManifestAmbiguous.
func FindManifest(entries []string) (string, error) {
	var matches []string
	for _, name := range entries {
		if strings.Contains(name, ManifestMarker) {
			matches = append(matches, name)
		}
	}

	switch len(matches) {
	case 0:
		return "", ErrManifestNotFound
	case 1:
		return matches[0], nil
	default:
		detail := zerr.With(zerr.New("matching entries"), "count", len(matches))
		detail = zerr.With(detail, "entries", strings.Join(matches, ", "))
		return "", errors.Join(ErrManifestAmbiguous, detail)
	}
}

// IsSigned reports whether the entry list contains a package signature.
func IsSigned(entries []string) bool {
	for _, name := range entries {
		if name == SignatureEntry {
			return true
		}
	}
	return false
}
