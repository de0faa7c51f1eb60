package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportSetPlain(t *testing.T) {
	t.Parallel()

	s := newImportSet()

	qual := s.add("reflector/descriptor", "descriptor")
	assert.Equal(t, "descriptor", qual)

	// Re-adding yields the same qualifier and no duplicate line.
	assert.Equal(t, "descriptor", s.add("reflector/descriptor", "descriptor"))

	specs := s.sorted()
	require.Len(t, specs, 1)
	assert.Empty(t, specs[0].Alias)
}

func TestImportSetCollision(t *testing.T) {
	t.Parallel()

	s := newImportSet()

	first := s.add("example.com/a/model", "model")
	second := s.add("example.com/b/model", "model")

	assert.Equal(t, "model", first)
	assert.Equal(t, "model1", second)

	specs := s.sorted()
	require.Len(t, specs, 2)
	assert.Empty(t, specs[0].Alias)
	assert.Equal(t, "model1", specs[1].Alias)
}

func TestImportSetClaimedName(t *testing.T) {
	t.Parallel()

	s := newImportSet()
	s.claim("shapes")

	qual := s.add("example.com/geo/shapes", "shapes")
	assert.Equal(t, "shapes1", qual)
}

func TestImportSetMismatchedPackageName(t *testing.T) {
	t.Parallel()

	s := newImportSet()

	// gopkg.in style: package name differs from the path base.
	qual := s.add("gopkg.in/yaml.v3", "yaml")
	assert.Equal(t, "yaml", qual)

	specs := s.sorted()
	require.Len(t, specs, 1)
	assert.Equal(t, "yaml", specs[0].Alias)
}
