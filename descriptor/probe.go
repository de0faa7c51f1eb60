package descriptor

import (
	"reflect"

	"reflector/utils"
)

// Probe derives the structural descriptor of a struct type from its
// declaration alone, with no explicit field list. Go's reflect facility
// enumerates fields directly in declaration order, so discovery is a single
// deterministic pass rather than construction probing; every discovered slot
// type is still recorded through the process-wide write-once latch, so
// repeated or concurrent discovery of the same type can never redefine an
// already-recorded slot.
//
// Array fields are flattened into one slot per element, all dimensions deep,
// matching what the manual builder exposes for an equivalent field list.
// Probing is idempotent: the same type always yields the same slot sequence.
func Probe(target reflect.Type) (*Descriptor, error) {
	if target == nil || target.Kind() != reflect.Struct {
		return nil, &UnsupportedTypeError{Target: target, Cause: CauseNotStruct}
	}

	groups := make([][]FieldSlot, 0, target.NumField())

	for i := range target.NumField() {
		sf := target.Field(i)

		if err := checkFieldType(target, sf.Name, sf.Type); err != nil {
			return nil, err
		}

		groups = append(groups, flattenField(sf.Name, sf.Type, sf.Offset))
	}

	fields := utils.Foldl(groups, nil, func(acc []FieldSlot, group []FieldSlot) []FieldSlot {
		return utils.Concat(acc, group)
	})

	for i := range fields {
		if err := recordSlotType(target, i, fields[i].Type); err != nil {
			return nil, err
		}
	}

	return newDescriptor(target, fields)
}
