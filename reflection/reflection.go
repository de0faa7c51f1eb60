package reflection

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"

	"reflector/descriptor"
)

// ErrNilTarget reports a projection request over a nil instance.
var ErrNilTarget = errors.New("cannot reflect over a nil instance")

// Reflection is a live projection of one struct instance: one reference per
// field slot, each aliasing the instance's own storage. A projection owns
// nothing and copies nothing; it stays valid exactly as long as the instance
// it was built from. Writes through a projection are immediately visible
// through the instance and through every other projection of it.
type Reflection[T any] struct {
	base unsafe.Pointer
	desc *descriptor.Descriptor
}

// Of projects target into per-field references. The descriptor is resolved
// through the registry (registered manual descriptor, or automatic probing);
// descriptor resolution is the only thing that can fail, and only on the
// first use of a type.
func Of[T any](target *T) (Reflection[T], error) {
	if target == nil {
		return Reflection[T]{}, ErrNilTarget
	}

	d, err := descriptor.For[T]()
	if err != nil {
		return Reflection[T]{}, err
	}

	return Reflection[T]{
		base: unsafe.Pointer(target),
		desc: d,
	}, nil
}

// MustOf is Of, panicking on descriptor failure. Once the type's descriptor
// is known good (registered at init, or probed earlier), MustOf cannot panic.
func MustOf[T any](target *T) Reflection[T] {
	r, err := Of(target)
	if err != nil {
		panic(err)
	}

	return r
}

// Len returns the number of field slots in the projection.
func (r Reflection[T]) Len() int { return r.desc.NumField() }

// Descriptor returns the structural descriptor backing the projection.
func (r Reflection[T]) Descriptor() *descriptor.Descriptor { return r.desc }

// Offset returns the byte offset of slot index inside the instance.
func (r Reflection[T]) Offset(index int) uintptr { return r.desc.Offset(index) }

// Pointer returns the address of slot index inside the aliased instance.
func (r Reflection[T]) Pointer(index int) unsafe.Pointer {
	return unsafe.Add(r.base, r.desc.Offset(index))
}

// Field returns an addressable reflect value aliasing slot index. Mutations
// through the value hit the instance directly.
func (r Reflection[T]) Field(index int) reflect.Value {
	f := r.desc.Field(index)
	return reflect.NewAt(f.Type, r.Pointer(index)).Elem()
}

// Values returns the full reference tuple: one aliasing value per field slot.
func (r Reflection[T]) Values() []reflect.Value {
	out := make([]reflect.Value, r.Len())
	for i := range out {
		out[i] = r.Field(i)
	}

	return out
}

// Member returns a typed alias of slot index. F must be exactly the slot's
// static type; a mismatch is a programmer error and panics, mirroring the
// bounds check on the index itself.
func Member[F any, T any](r Reflection[T], index int) *F {
	f := r.desc.Field(index)

	if want := reflect.TypeFor[F](); f.Type != want {
		panic(fmt.Sprintf("reflector: slot %d of %s is %s, not %s",
			index, r.desc.Target(), f.Type, want))
	}

	return (*F)(r.Pointer(index))
}

// OffsetOf returns the byte offset of slot index of T without needing an
// instance. It is a pure function of T's descriptor.
func OffsetOf[T any](index int) (uintptr, error) {
	d, err := descriptor.For[T]()
	if err != nil {
		return 0, err
	}

	return d.Offset(index), nil
}
