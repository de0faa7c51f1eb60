package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is the per-package output file when the manifest does not
// set one.
const DefaultFilename = "reflector_gen.go"

// LoadFile loads and parses a YAML manifest from the given path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Manifest, applies defaults and validates.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest

	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	applyDefaults(&m)

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(m *Manifest) {
	if m.Version == "" {
		m.Version = "1"
	}

	if m.Output.Filename == "" {
		m.Output.Filename = DefaultFilename
	}
}
