package descriptor

import (
	"fmt"
	"reflect"

	"reflector/utils"
)

// Provide builds the structural descriptor of T from an explicitly supplied
// accessor list, without probing. The supplied order is taken as declaration
// order. Array-typed accessors are flattened into one slot per element, all
// dimensions deep, so the result is index-compatible with what automatic
// discovery exposes for an equivalent type.
//
// The accessor list must reconstruct T's layout exactly: a missing field, a
// wrong order or an accessor outside the instance fails with
// LayoutMismatchError.
func Provide[T any](accessors ...Accessor[T]) (*Descriptor, error) {
	target := reflect.TypeFor[T]()
	if target.Kind() != reflect.Struct {
		return nil, &UnsupportedTypeError{Target: target, Cause: CauseNotStruct}
	}

	groups := make([][]FieldSlot, 0, len(accessors))

	for i, accessor := range accessors {
		path := accessor.path
		if path == "" {
			path = fmt.Sprintf("#%d", i)
		}

		if err := checkFieldType(target, path, accessor.rtype); err != nil {
			return nil, err
		}

		if accessor.offset+accessor.rtype.Size() > target.Size() {
			return nil, &LayoutMismatchError{
				Target:     target,
				Index:      i,
				WantOffset: target.Size(),
				GotOffset:  accessor.offset,
			}
		}

		groups = append(groups, flattenField(path, accessor.rtype, accessor.offset))
	}

	fields := utils.Foldl(groups, nil, func(acc []FieldSlot, group []FieldSlot) []FieldSlot {
		return utils.Concat(acc, group)
	})

	return newDescriptor(target, fields)
}
