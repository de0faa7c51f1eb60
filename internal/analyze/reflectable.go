package analyze

import (
	"fmt"
	"go/types"
)

// CheckReflectable reports whether a struct type can carry a structural
// descriptor. Nil means every slot is a scalar, pointer-shaped value,
// string/slice/map, a nested reflectable struct, or an array thereof.
// The returned error names the offending field path.
func CheckReflectable(info *TypeInfo) error {
	for _, f := range info.Fields {
		if err := checkSlotType(f.Type, f.Name); err != nil {
			return err
		}
	}

	return nil
}

func checkSlotType(t types.Type, path string) error {
	if isZeroSized(t) {
		return fmt.Errorf("%s: zero-sized type %s", path, t)
	}

	switch u := t.Underlying().(type) {
	case *types.Basic, *types.Pointer, *types.Slice, *types.Map:
		return nil

	case *types.Interface:
		return fmt.Errorf("%s: interface-typed field %s", path, t)

	case *types.Chan:
		return fmt.Errorf("%s: chan-typed field %s", path, t)

	case *types.Signature:
		return fmt.Errorf("%s: func-typed field %s", path, t)

	case *types.Array:
		return checkSlotType(u.Elem(), path+"[]")

	case *types.Struct:
		for i := range u.NumFields() {
			f := u.Field(i)
			if err := checkSlotType(f.Type(), path+"."+f.Name()); err != nil {
				return err
			}
		}

		return nil

	default:
		return fmt.Errorf("%s: unsupported field type %s", path, t)
	}
}

// isZeroSized detects types with no storage: empty structs, zero-length
// arrays, and aggregates made only of those.
func isZeroSized(t types.Type) bool {
	switch u := t.Underlying().(type) {
	case *types.Array:
		return u.Len() == 0 || isZeroSized(u.Elem())

	case *types.Struct:
		for i := range u.NumFields() {
			if !isZeroSized(u.Field(i).Type()) {
				return false
			}
		}

		return true

	default:
		return false
	}
}
