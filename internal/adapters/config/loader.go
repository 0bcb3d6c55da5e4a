// Package config provides the pin plan loader for nupin.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/nupin/internal/core/domain"
	"go.trai.ch/nupin/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.PlanLoader = (*Loader)(nil)

// Loader implements ports.PlanLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the plan at path and expands each package pattern into pin requests.
// Patterns are resolved relative to the directory holding the plan.
func (l *Loader) Load(path string) ([]domain.PinRequest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, errors.Join(domain.ErrPlanReadFailed, zerr.With(err, "path", path))
	}

	var plan Planfile
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, errors.Join(domain.ErrPlanParseFailed, zerr.With(err, "path", path))
	}

	if err := validate(&plan); err != nil {
		return nil, err
	}

	root := filepath.Dir(path)
	var requests []domain.PinRequest
	for i, pin := range plan.Pins {
		packages, err := l.resolve(root, pin.Package)
		if err != nil {
			return nil, errors.Join(err, zerr.With(zerr.New("pin entry"), "index", i))
		}
		for _, pkg := range packages {
			requests = append(requests, domain.PinRequest{
				Package:      pkg,
				Dependencies: slices.Clone(pin.Dependencies),
			})
		}
	}
	return requests, nil
}

func validate(plan *Planfile) error {
	if plan.Version != supportedVersion {
		detail := zerr.With(zerr.New("unsupported plan version"), "version", plan.Version)
		return errors.Join(domain.ErrPlanInvalid, detail)
	}
	if len(plan.Pins) == 0 {
		return errors.Join(domain.ErrPlanInvalid, zerr.New("plan has no pins"))
	}

	for i, pin := range plan.Pins {
		if strings.TrimSpace(pin.Package) == "" {
			detail := zerr.With(zerr.New("pin entry has no package pattern"), "index", i)
			return errors.Join(domain.ErrPlanInvalid, detail)
		}
		if len(pin.Dependencies) == 0 {
			detail := zerr.With(zerr.New("pin entry has no dependencies"), "package", pin.Package)
			return errors.Join(domain.ErrPlanInvalid, detail)
		}
		for _, dep := range pin.Dependencies {
			if strings.TrimSpace(dep) == "" {
				detail := zerr.With(zerr.New("pin entry has a blank dependency"), "package", pin.Package)
				return errors.Join(domain.ErrPlanInvalid, detail)
			}
		}
	}
	return nil
}

// resolve expands pattern into the sorted list of regular files it matches.
func (l *Loader) resolve(root, pattern string) ([]string, error) {
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(root, pattern)
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errors.Join(domain.ErrPlanInvalid, zerr.Wrap(err, "glob pattern failed: "+pattern))
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			l.Logger.Warn("skipping " + m + ": not a package file")
			continue
		}
		files = append(files, m)
	}

	if len(files) == 0 {
		return nil, errors.Join(domain.ErrNoPackagesMatched, zerr.With(zerr.New("pattern "+pattern), "pattern", pattern))
	}
	slices.Sort(files)
	return files, nil
}
