package manifest

import (
	"errors"
	"fmt"

	"reflector/internal/common"
)

// Manifest is the root of a YAML generator configuration.
type Manifest struct {
	// Version of the manifest schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Packages lists the packages whose struct types get registrations.
	Packages []PackageRequest `yaml:"packages"`

	// Output controls generated file naming.
	Output OutputConfig `yaml:"output,omitempty"`
}

// PackageRequest selects types from one package.
type PackageRequest struct {
	// Path is the package pattern to load (e.g., "./shapes", "reflector/shapes").
	Path string `yaml:"path"`

	// Types lists the struct type names to register. Empty means every
	// registrable struct type in the package.
	Types StringArray `yaml:"types,omitempty"`
}

// OutputConfig controls where registrations are written.
type OutputConfig struct {
	// Filename is the per-package output file name.
	Filename string `yaml:"filename,omitempty"`
}

// Validate checks the manifest for structural problems.
func (m *Manifest) Validate() error {
	if common.IsEmpty(m.Packages) {
		return errors.New("manifest lists no packages")
	}

	for i, req := range m.Packages {
		if req.Path == "" {
			return fmt.Errorf("packages[%d]: missing path", i)
		}
	}

	return nil
}

// StringArray is a string slice that can be unmarshaled from a single string
// or a list.
type StringArray []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringArray) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*s = []string{single}
		return nil
	}

	var multi []string
	if err := unmarshal(&multi); err == nil {
		*s = multi
		return nil
	}

	return errors.New("expected string or list of strings")
}
