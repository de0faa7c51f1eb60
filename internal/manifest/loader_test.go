package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reflector/internal/manifest"
)

func TestParse(t *testing.T) {
	t.Parallel()

	data := []byte(`
version: "1"
packages:
  - path: ./shapes
    types: [Point, Circle]
  - path: reflector/store
output:
  filename: registrations_gen.go
`)

	m, err := manifest.Parse(data)
	require.NoError(t, err)

	require.Len(t, m.Packages, 2)
	assert.Equal(t, "./shapes", m.Packages[0].Path)
	assert.Equal(t, manifest.StringArray{"Point", "Circle"}, m.Packages[0].Types)
	assert.Empty(t, m.Packages[1].Types)
	assert.Equal(t, "registrations_gen.go", m.Output.Filename)
}

func TestParseDefaults(t *testing.T) {
	t.Parallel()

	m, err := manifest.Parse([]byte("packages:\n  - path: ./shapes\n"))
	require.NoError(t, err)

	assert.Equal(t, "1", m.Version)
	assert.Equal(t, manifest.DefaultFilename, m.Output.Filename)
}

func TestParseSingleTypeString(t *testing.T) {
	t.Parallel()

	// A scalar where a list is expected still parses.
	data := []byte(`
packages:
  - path: ./shapes
    types: Point
`)

	m, err := manifest.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, manifest.StringArray{"Point"}, m.Packages[0].Types)
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"no packages", "version: \"1\"\n"},
		{"missing path", "packages:\n  - types: [Point]\n"},
		{"malformed yaml", "packages: ["},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := manifest.Parse([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}
