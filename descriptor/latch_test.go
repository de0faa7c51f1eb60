package descriptor

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSlotTypeFirstWriteWins(t *testing.T) {
	t.Parallel()

	type target struct{ A, B int }

	rtype := reflect.TypeFor[target]()

	require.NoError(t, recordSlotType(rtype, 0, reflect.TypeFor[int]()))

	// Repeating the same observation is idempotent.
	require.NoError(t, recordSlotType(rtype, 0, reflect.TypeFor[int]()))

	// A conflicting observation is ambiguous, never silently resolved.
	err := recordSlotType(rtype, 0, reflect.TypeFor[int64]())
	require.Error(t, err)

	var ambiguous *AmbiguousFieldTypeError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, 0, ambiguous.Index)
	assert.Equal(t, reflect.TypeFor[int](), ambiguous.Recorded)
	assert.Equal(t, reflect.TypeFor[int64](), ambiguous.Observed)

	// The latch still holds the first record.
	require.NoError(t, recordSlotType(rtype, 0, reflect.TypeFor[int]()))
}

func TestRecordSlotTypeConcurrentFirstWrite(t *testing.T) {
	t.Parallel()

	type target struct{ X float64 }

	rtype := reflect.TypeFor[target]()

	var wg sync.WaitGroup
	errs := make([]error, 16)

	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = recordSlotType(rtype, 0, reflect.TypeFor[float64]())
		}()
	}

	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}
