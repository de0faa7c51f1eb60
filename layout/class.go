package layout

import "reflect"

//go:generate go tool stringer -type=ClassEnum -output=class_string.go

type ClassEnum int

const (
	_ ClassEnum = iota // skip zero value, use it as a default (invalid) value for ClassEnum

	ClassScalar    // booleans, integers, floats and complex numbers
	ClassPointer   // pointer-shaped values: *T, unsafe.Pointer, map headers
	ClassString    // string headers (data pointer + length)
	ClassSlice     // slice headers (data pointer + length + capacity)
	ClassArray     // fixed-size arrays, flattened into element slots
	ClassStruct    // nested aggregates, kept as a single slot
	ClassInterface // tagged polymorphic payloads: layout cannot be pinned down
	ClassOpaque    // chan and func values: runtime-managed, not plain data

	// ClassTotal is a constant that represents the total number of classes defined
	ClassTotal = int(iota)
)

// IsTrivial reports whether a slot of this class is plain data whose layout is
// fully determined by size and alignment alone.
func (c ClassEnum) IsTrivial() bool {
	switch c {
	default:
		return false
	case ClassScalar, ClassPointer, ClassString, ClassSlice, ClassArray, ClassStruct:
		return true
	}
}

// Classify maps a reflect type onto its slot class.
func Classify(rtype reflect.Type) ClassEnum {
	if rtype == nil {
		return 0
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return ClassScalar
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map:
		return ClassPointer
	case reflect.String:
		return ClassString
	case reflect.Slice:
		return ClassSlice
	case reflect.Array:
		return ClassArray
	case reflect.Struct:
		return ClassStruct
	case reflect.Interface:
		return ClassInterface
	case reflect.Chan, reflect.Func:
		return ClassOpaque
	}
}
