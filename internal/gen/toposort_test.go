package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopoSortRegistrations(t *testing.T) {
	t.Parallel()

	t.Run("no deps keeps index order", func(t *testing.T) {
		t.Parallel()

		order, err := topoSortRegistrations(3, func(int) []int { return nil })
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2}, order)
	})

	t.Run("chain", func(t *testing.T) {
		t.Parallel()

		// 0 depends on 1, 1 depends on 2.
		deps := map[int][]int{0: {1}, 1: {2}}

		order, err := topoSortRegistrations(3, func(i int) []int { return deps[i] })
		require.NoError(t, err)
		assert.Equal(t, []int{2, 1, 0}, order)
	})

	t.Run("diamond is deterministic", func(t *testing.T) {
		t.Parallel()

		deps := map[int][]int{0: {1, 2}, 1: {3}, 2: {3}}

		order, err := topoSortRegistrations(4, func(i int) []int { return deps[i] })
		require.NoError(t, err)
		assert.Equal(t, []int{3, 1, 2, 0}, order)
	})

	t.Run("cycle", func(t *testing.T) {
		t.Parallel()

		deps := map[int][]int{0: {1}, 1: {0}}

		_, err := topoSortRegistrations(2, func(i int) []int { return deps[i] })
		assert.Error(t, err)
	})

	t.Run("out of range dependency", func(t *testing.T) {
		t.Parallel()

		_, err := topoSortRegistrations(1, func(int) []int { return []int{5} })
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		order, err := topoSortRegistrations(0, nil)
		require.NoError(t, err)
		assert.Empty(t, order)
	})
}
