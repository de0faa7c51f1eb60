package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reflector/internal/match"
)

func TestSuggest(t *testing.T) {
	t.Parallel()

	candidates := []string{"Point", "Circle", "Cylinder", "Record"}

	// A close misspelling ranks its correction first.
	got := match.Suggest("Cricle", candidates, 3)
	assert.Equal(t, []string{"Circle"}, got)

	// Nothing resembles the query: no suggestions rather than noise.
	assert.Empty(t, match.Suggest("Quaternion", candidates, 3))
}

func TestSuggestLimitAndOrder(t *testing.T) {
	t.Parallel()

	candidates := []string{"Pointer", "Point", "Points"}

	got := match.Suggest("Point", candidates, 2)
	assert.Len(t, got, 2)
	assert.Equal(t, "Point", got[0])
}
