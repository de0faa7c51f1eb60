package descriptor_test

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reflector/descriptor"
	"reflector/shapes"
)

func TestProvideMatchesProbe(t *testing.T) {
	t.Parallel()

	manual, err := descriptor.Provide(
		descriptor.Field(func(c *shapes.Circle) *shapes.Point { return &c.Center }),
		descriptor.Field(func(c *shapes.Circle) *float64 { return &c.Radius }),
	)
	require.NoError(t, err)

	probed, err := descriptor.Probe(reflect.TypeFor[shapes.Circle]())
	require.NoError(t, err)

	// Field-for-field identical: count, per-index type and offsets.
	require.Equal(t, probed.NumField(), manual.NumField())
	assert.True(t, manual.Equal(probed))
	assert.Equal(t, probed.Types(), manual.Types())
}

func TestProvideFlattensArrays(t *testing.T) {
	t.Parallel()

	type triple struct {
		Coords [3]float64
	}

	d, err := descriptor.Provide(
		descriptor.Field(func(v *triple) *[3]float64 { return &v.Coords }),
	)
	require.NoError(t, err)

	// One slot per element, index-compatible with automatic discovery.
	require.Equal(t, 3, d.NumField())
	for i := range 3 {
		assert.Equal(t, reflect.TypeFor[float64](), d.Field(i).Type)
		assert.Equal(t, uintptr(i)*unsafe.Sizeof(float64(0)), d.Offset(i))
	}

	probed, err := descriptor.Probe(reflect.TypeFor[triple]())
	require.NoError(t, err)
	assert.True(t, d.Equal(probed))
}

func TestProvideFlattensAllDimensions(t *testing.T) {
	t.Parallel()

	type grid struct {
		Cells [2][3]int32
	}

	d, err := descriptor.Provide(
		descriptor.Field(func(v *grid) *[2][3]int32 { return &v.Cells }),
	)
	require.NoError(t, err)

	require.Equal(t, 6, d.NumField())
	assert.Equal(t, reflect.TypeFor[int32](), d.Field(5).Type)
	assert.Equal(t, uintptr(20), d.Offset(5))
}

func TestProvideRejectsIncompleteList(t *testing.T) {
	t.Parallel()

	_, err := descriptor.Provide(
		descriptor.Field(func(c *shapes.Circle) *shapes.Point { return &c.Center }),
	)
	require.Error(t, err)

	var mismatch *descriptor.LayoutMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestProvideRejectsWrongOrder(t *testing.T) {
	t.Parallel()

	type pair struct {
		A int32
		B int64
	}

	_, err := descriptor.Provide(
		descriptor.Field(func(p *pair) *int64 { return &p.B }),
		descriptor.Field(func(p *pair) *int32 { return &p.A }),
	)
	require.Error(t, err)

	var mismatch *descriptor.LayoutMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestProvideRejectsNonStruct(t *testing.T) {
	t.Parallel()

	_, err := descriptor.Provide[int]()
	require.Error(t, err)

	var unsupported *descriptor.UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, descriptor.CauseNotStruct, unsupported.Cause)
}

func TestFieldNamed(t *testing.T) {
	t.Parallel()

	center, err := descriptor.FieldNamed[shapes.Circle]("Center")
	require.NoError(t, err)

	radius, err := descriptor.FieldNamed[shapes.Circle]("Radius")
	require.NoError(t, err)

	d, err := descriptor.Provide(center, radius)
	require.NoError(t, err)
	assert.Equal(t, 2, d.NumField())
	assert.Equal(t, "Center", d.Field(0).Path)

	_, err = descriptor.FieldNamed[shapes.Circle]("Radiis")
	assert.Error(t, err)
}

func TestFieldFunc(t *testing.T) {
	t.Parallel()

	accessor, err := descriptor.FieldFunc[shapes.Circle](func(c *shapes.Circle) *float64 { return &c.Radius })
	require.NoError(t, err)

	var c shapes.Circle
	assert.Equal(t, unsafe.Offsetof(c.Radius), accessor.Offset())
	assert.Equal(t, reflect.TypeFor[float64](), accessor.Type())

	_, err = descriptor.FieldFunc[shapes.Circle](42)
	assert.ErrorIs(t, err, descriptor.ErrAccessorNotAFunction)

	_, err = descriptor.FieldFunc[shapes.Circle](func(c *shapes.Circle) float64 { return c.Radius })
	assert.ErrorIs(t, err, descriptor.ErrAccessorShape)

	_, err = descriptor.FieldFunc[shapes.Circle](func(p *shapes.Point) *float64 { return &p.Coords[0] })
	assert.ErrorIs(t, err, descriptor.ErrAccessorShape)
}
