package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidArgument is returned when a caller passes a missing or blank package path or dependency id.
	ErrInvalidArgument = zerr.New("invalid argument")

	// ErrPackageNotFound is returned when the package archive does not exist on disk.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrPackageReadFailed is returned when the package archive cannot be read or is not a valid zip.
	ErrPackageReadFailed = zerr.New("failed to read package")

	// ErrPackageWriteFailed is returned when the updated package archive cannot be written.
	ErrPackageWriteFailed = zerr.New("failed to write package")

	// ErrPackageClosed is returned when an archive is used after it has been closed.
	ErrPackageClosed = zerr.New("package archive is closed")

	// ErrEntryNotFound is returned when a named entry does not exist in the package archive.
	ErrEntryNotFound = zerr.New("package entry not found")

	// ErrManifestNotFound is returned when the package contains no .nuspec entry.
	ErrManifestNotFound = zerr.New("no .nuspec manifest found in package")

	// ErrManifestAmbiguous is returned when the package contains more than one .nuspec entry.
	ErrManifestAmbiguous = zerr.New("more than one .nuspec manifest found in package")

	// ErrManifestParseFailed is returned when the manifest is not well-formed XML.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrManifestWriteFailed is returned when the manifest tree cannot be serialized.
	ErrManifestWriteFailed = zerr.New("failed to serialize manifest")

	// ErrInvalidConstraint is returned when a matched dependency has no version or a real range
	// that cannot be collapsed into a single exact version.
	ErrInvalidConstraint = zerr.New("version constraint cannot be pinned")

	// ErrPlanReadFailed is returned when the pin plan file cannot be read.
	ErrPlanReadFailed = zerr.New("failed to read pin plan")

	// ErrPlanParseFailed is returned when the pin plan file is not valid YAML.
	ErrPlanParseFailed = zerr.New("failed to parse pin plan")

	// ErrPlanInvalid is returned when the pin plan is structurally valid YAML but semantically wrong.
	ErrPlanInvalid = zerr.New("invalid pin plan")

	// ErrNoPackagesMatched is returned when a pin plan package pattern matches no files.
	ErrNoPackagesMatched = zerr.New("no packages matched pattern")
)
