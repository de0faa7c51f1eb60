package descriptor

import (
	"fmt"
	"reflect"
)

// UnsupportedCause identifies why a target type cannot be reflected.
type UnsupportedCause int

const (
	_ UnsupportedCause = iota // skip zero value, use it as a default (invalid) value for UnsupportedCause

	CauseNotStruct      // target is not a struct type
	CauseInterfaceField // a field carries a tagged polymorphic payload, its layout is ambiguous
	CauseOpaqueField    // a field is a chan or func value, not plain data
	CauseZeroSizedField // a field occupies no storage and would perturb trailing padding
)

// String returns a human-readable description of the cause.
func (c UnsupportedCause) String() string {
	switch c {
	case CauseNotStruct:
		return "target is not a struct"
	case CauseInterfaceField:
		return "interface field has no fixed layout"
	case CauseOpaqueField:
		return "chan and func fields are not plain data"
	case CauseZeroSizedField:
		return "zero-sized field"
	default:
		return "unknown"
	}
}

// UnsupportedTypeError reports a target type the engine refuses to reflect.
type UnsupportedTypeError struct {
	Target    reflect.Type
	FieldPath string // offending field, empty when the target itself is at fault
	Cause     UnsupportedCause
}

func (e *UnsupportedTypeError) Error() string {
	if e.FieldPath == "" {
		return fmt.Sprintf("reflector: cannot reflect %s: %s", typeName(e.Target), e.Cause)
	}

	return fmt.Sprintf("reflector: cannot reflect %s: field %s: %s", typeName(e.Target), e.FieldPath, e.Cause)
}

// LayoutMismatchError reports that the synthesized layout of a field list does
// not reproduce the target type's real layout. Index is the first divergent
// slot, or -1 when the total size or alignment disagrees.
type LayoutMismatchError struct {
	Target               reflect.Type
	Index                int
	WantOffset, GotOffset uintptr
	WantSize, GotSize     uintptr
	WantAlign, GotAlign   uintptr
}

func (e *LayoutMismatchError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf(
			"reflector: field list is not compatible with %s: slot %d placed at offset %d, instance has %d",
			typeName(e.Target), e.Index, e.GotOffset, e.WantOffset)
	}

	return fmt.Sprintf(
		"reflector: field list is not compatible with %s: synthesized size/align %d/%d, instance has %d/%d",
		typeName(e.Target), e.GotSize, e.GotAlign, e.WantSize, e.WantAlign)
}

// AmbiguousFieldTypeError reports conflicting slot types observed for the same
// (target, index) pair across repeated discovery runs.
type AmbiguousFieldTypeError struct {
	Target             reflect.Type
	Index              int
	Recorded, Observed reflect.Type
}

func (e *AmbiguousFieldTypeError) Error() string {
	return fmt.Sprintf(
		"reflector: conflicting types for field %d of %s: recorded %s, observed %s",
		e.Index, typeName(e.Target), typeName(e.Recorded), typeName(e.Observed))
}

// MissingDescriptorError reports a type that has no registered descriptor
// while automatic probing is disabled.
type MissingDescriptorError struct {
	Target reflect.Type
}

func (e *MissingDescriptorError) Error() string {
	return fmt.Sprintf(
		"reflector: manual-only mode is active and no descriptor is registered for %s",
		typeName(e.Target))
}

func typeName(rtype reflect.Type) string {
	if rtype == nil {
		return "<nil>"
	}

	return rtype.String()
}
