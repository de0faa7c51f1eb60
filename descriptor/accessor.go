package descriptor

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"
)

var (
	ErrAccessorNotAFunction = errors.New("provided accessor is not a function")
	ErrAccessorShape        = errors.New("provided function is not a recognizable field accessor")
	ErrAccessorOutOfBounds  = errors.New("accessor does not point inside the target instance")
)

// Accessor identifies one field of T for the manual descriptor builder: its
// byte offset inside an instance and its static type. Accessors are supplied
// in declaration order.
type Accessor[T any] struct {
	rtype  reflect.Type
	offset uintptr
	path   string
}

// Type returns the static type of the accessed field.
func (a Accessor[T]) Type() reflect.Type { return a.rtype }

// Offset returns the byte offset of the accessed field.
func (a Accessor[T]) Offset() uintptr { return a.offset }

// Field builds an accessor from a typed pointer-to-field function. The
// function is invoked once on a zero probe instance; the returned pointer
// measures the field's offset, and F pins its static type.
//
//	descriptor.Field(func(c *shapes.Circle) *float64 { return &c.Radius })
func Field[T, F any](access func(*T) *F) Accessor[T] {
	var probe T

	base := unsafe.Pointer(&probe)
	fptr := unsafe.Pointer(access(&probe))

	return Accessor[T]{
		rtype:  reflect.TypeFor[F](),
		offset: uintptr(fptr) - uintptr(base),
	}
}

// FieldFunc builds an accessor from an untyped accessor function, inspected
// through reflection.
//
// Supported interface:
//   - func(target *T) *FieldType
func FieldFunc[T any](fn any) (Accessor[T], error) {
	target := reflect.TypeFor[T]()

	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func {
		return Accessor[T]{}, ErrAccessorNotAFunction
	}

	fnType := fnVal.Type()
	if fnType.NumIn() != 1 || fnType.NumOut() != 1 {
		return Accessor[T]{}, ErrAccessorShape
	}

	if fnType.In(0) != reflect.PointerTo(target) || fnType.Out(0).Kind() != reflect.Pointer {
		return Accessor[T]{}, ErrAccessorShape
	}

	probe := reflect.New(target)
	out := fnVal.Call([]reflect.Value{probe})[0]

	if out.IsNil() {
		return Accessor[T]{}, ErrAccessorShape
	}

	offset := out.Pointer() - probe.Pointer()
	if offset >= target.Size() {
		return Accessor[T]{}, ErrAccessorOutOfBounds
	}

	return Accessor[T]{
		rtype:  fnType.Out(0).Elem(),
		offset: offset,
	}, nil
}

// FieldNamed builds an accessor from a direct field name of T.
func FieldNamed[T any](name string) (Accessor[T], error) {
	target := reflect.TypeFor[T]()
	if target.Kind() != reflect.Struct {
		return Accessor[T]{}, &UnsupportedTypeError{Target: target, Cause: CauseNotStruct}
	}

	for i := range target.NumField() {
		sf := target.Field(i)
		if sf.Name == name {
			return Accessor[T]{
				rtype:  sf.Type,
				offset: sf.Offset,
				path:   sf.Name,
			}, nil
		}
	}

	return Accessor[T]{}, fmt.Errorf("no field %q in %s", name, typeName(target))
}
