package config

// DefaultFilename is the pin plan file looked up when none is given.
const DefaultFilename = "nupin.yaml"

// supportedVersion is the only pin plan schema version understood.
const supportedVersion = "1"

// Planfile represents the structure of the nupin.yaml pin plan.
type Planfile struct {
	Version string   `yaml:"version"`
	Pins    []PinDTO `yaml:"pins"`
}

// PinDTO represents one pin entry in the plan.
type PinDTO struct {
	// Package is a glob, relative to the plan file, selecting .nupkg archives.
	Package      string   `yaml:"package"`
	Dependencies []string `yaml:"dependencies"`
}
