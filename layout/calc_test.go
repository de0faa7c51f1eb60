package layout_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reflector/layout"
)

func TestAlignUp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		offset, align, want uintptr
	}{
		{0, 1, 0},
		{0, 8, 0},
		{1, 1, 1},
		{1, 2, 2},
		{3, 4, 4},
		{4, 4, 4},
		{9, 8, 16},
		{17, 16, 32},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, layout.AlignUp(tc.offset, tc.align),
			"AlignUp(%d, %d)", tc.offset, tc.align)
	}
}

func TestComputeEmpty(t *testing.T) {
	t.Parallel()

	placed := layout.Compute(nil)
	assert.Empty(t, placed.Offsets)
	assert.Equal(t, uintptr(0), placed.Size)
	assert.Equal(t, uintptr(1), placed.Align)
}

func TestComputePadding(t *testing.T) {
	t.Parallel()

	// bool, int32, int64: the classic interior-padding sequence.
	placed := layout.Compute([]layout.Slot{
		{Size: 1, Align: 1},
		{Size: 4, Align: 4},
		{Size: 8, Align: 8},
	})

	assert.Equal(t, []uintptr{0, 4, 8}, placed.Offsets)
	assert.Equal(t, uintptr(16), placed.Size)
	assert.Equal(t, uintptr(8), placed.Align)
}

func TestComputeTrailingPadding(t *testing.T) {
	t.Parallel()

	// int64, bool: total size is rounded up to the max alignment.
	placed := layout.Compute([]layout.Slot{
		{Size: 8, Align: 8},
		{Size: 1, Align: 1},
	})

	assert.Equal(t, []uintptr{0, 8}, placed.Offsets)
	assert.Equal(t, uintptr(16), placed.Size)
	assert.Equal(t, uintptr(8), placed.Align)
}

// TestComputeMatchesCompiler checks the synthesized placement against the
// compiler's actual layout decisions for a handful of real struct types.
func TestComputeMatchesCompiler(t *testing.T) {
	t.Parallel()

	type mixed struct {
		A bool
		B int32
		C int64
		D string
		E [3]int16
		F *mixed
	}

	type tiny struct {
		A int8
		B int8
	}

	for _, rtype := range []reflect.Type{
		reflect.TypeFor[mixed](),
		reflect.TypeFor[tiny](),
	} {
		t.Run(rtype.Name(), func(t *testing.T) {
			t.Parallel()

			slots := make([]layout.Slot, rtype.NumField())
			for i := range rtype.NumField() {
				slots[i] = layout.SlotOf(rtype.Field(i).Type)
			}

			placed := layout.Compute(slots)
			require.Len(t, placed.Offsets, rtype.NumField())

			for i := range rtype.NumField() {
				assert.Equal(t, rtype.Field(i).Offset, placed.Offsets[i], "field %s", rtype.Field(i).Name)
			}

			assert.Equal(t, rtype.Size(), placed.Size)
			assert.Equal(t, uintptr(rtype.Align()), placed.Align)
		})
	}
}
