package descriptor

import (
	"fmt"
	"reflect"

	"reflector/layout"
	"reflector/utils"
)

// FieldSlot is one slot of a structural descriptor: the slot's static type and
// its byte offset inside the target instance. Array fields contribute one slot
// per element, so slot indices do not necessarily match declaration indices.
type FieldSlot struct {
	Type   reflect.Type
	Offset uintptr
	Path   string // field name, with element suffixes for flattened arrays
}

// Descriptor is the canonical structural signature of a target type: the type
// itself paired with its ordered field slot list. A descriptor only exists
// after its slot list has been verified to reproduce the target's real memory
// layout, so consumers can alias fields through it without further checks.
type Descriptor struct {
	target reflect.Type
	fields []FieldSlot
	size   uintptr
	align  uintptr
}

// newDescriptor validates the slot list against the target's real layout and
// canonicalizes it. The slots are placed through the storage modeler; every
// synthesized offset, the total size and the alignment must match the real
// instance exactly. Any disagreement means the list does not describe the
// target and no descriptor is produced.
func newDescriptor(target reflect.Type, fields []FieldSlot) (*Descriptor, error) {
	slots := make([]layout.Slot, len(fields))
	for i, f := range fields {
		slots[i] = layout.SlotOf(f.Type)
	}

	placed := layout.Compute(slots)

	if placed.Size != target.Size() || placed.Align != uintptr(target.Align()) {
		return nil, &LayoutMismatchError{
			Target:    target,
			Index:     -1,
			WantSize:  target.Size(),
			GotSize:   placed.Size,
			WantAlign: uintptr(target.Align()),
			GotAlign:  placed.Align,
		}
	}

	for i := range fields {
		if placed.Offsets[i] != fields[i].Offset {
			return nil, &LayoutMismatchError{
				Target:     target,
				Index:      i,
				WantOffset: fields[i].Offset,
				GotOffset:  placed.Offsets[i],
			}
		}
	}

	return &Descriptor{
		target: target,
		fields: fields,
		size:   placed.Size,
		align:  placed.Align,
	}, nil
}

// Target returns the described type.
func (d *Descriptor) Target() reflect.Type { return d.target }

// NumField returns the number of field slots.
func (d *Descriptor) NumField() int { return len(d.fields) }

// Size returns the byte size of the described type.
func (d *Descriptor) Size() uintptr { return d.size }

// Align returns the byte alignment of the described type.
func (d *Descriptor) Align() uintptr { return d.align }

// Field returns slot index. The index must be in range; a bad index is a
// programmer error, not a runtime condition, and panics.
func (d *Descriptor) Field(index int) FieldSlot {
	f, ok := utils.At(d.fields, index)
	if !ok {
		panic(fmt.Sprintf("reflector: slot index %d out of range for %s with %d slots",
			index, typeName(d.target), len(d.fields)))
	}

	return f
}

// Offset returns the byte offset of slot index inside an instance.
func (d *Descriptor) Offset(index int) uintptr {
	return d.Field(index).Offset
}

// Types returns the ordered slot types.
func (d *Descriptor) Types() []reflect.Type {
	out := make([]reflect.Type, len(d.fields))
	for i, f := range d.fields {
		out[i] = f.Type
	}

	return out
}

// Equal reports whether two descriptors describe the same type with the same
// slot sequence.
func (d *Descriptor) Equal(other *Descriptor) bool {
	if d == nil || other == nil {
		return d == other
	}

	if d.target != other.target || len(d.fields) != len(other.fields) {
		return false
	}

	for i := range d.fields {
		if d.fields[i].Type != other.fields[i].Type || d.fields[i].Offset != other.fields[i].Offset {
			return false
		}
	}

	return true
}

// String returns a short human-readable summary.
func (d *Descriptor) String() string {
	return fmt.Sprintf("descriptor(%s, %d slots)", typeName(d.target), len(d.fields))
}

// checkFieldType rejects field types the engine cannot reflect. The check
// recurses through arrays and nested structs: a slot is only acceptable when
// every byte under it is plain data with a pinned-down layout.
func checkFieldType(target reflect.Type, path string, rtype reflect.Type) error {
	class := layout.Classify(rtype)

	switch {
	case class == layout.ClassInterface:
		return &UnsupportedTypeError{Target: target, FieldPath: path, Cause: CauseInterfaceField}
	case class == layout.ClassOpaque:
		return &UnsupportedTypeError{Target: target, FieldPath: path, Cause: CauseOpaqueField}
	case !class.IsTrivial():
		return &UnsupportedTypeError{Target: target, FieldPath: path, Cause: CauseNotStruct}
	case rtype.Size() == 0:
		return &UnsupportedTypeError{Target: target, FieldPath: path, Cause: CauseZeroSizedField}
	}

	switch class {
	case layout.ClassArray:
		return checkFieldType(target, path+"[]", rtype.Elem())
	case layout.ClassStruct:
		for i := range rtype.NumField() {
			inner := rtype.Field(i)
			if err := checkFieldType(target, path+"."+inner.Name, inner.Type); err != nil {
				return err
			}
		}
	}

	return nil
}

// flattenField expands a field into its slot group: one slot for ordinary
// fields, one slot per element for array fields, all dimensions deep.
func flattenField(path string, rtype reflect.Type, offset uintptr) []FieldSlot {
	if rtype.Kind() != reflect.Array {
		return []FieldSlot{{Type: rtype, Offset: offset, Path: path}}
	}

	elem := rtype.Elem()

	groups := make([][]FieldSlot, 0, rtype.Len())
	for i := range rtype.Len() {
		elemPath := fmt.Sprintf("%s[%d]", path, i)
		groups = append(groups, flattenField(elemPath, elem, offset+uintptr(i)*elem.Size()))
	}

	return utils.Foldl(groups, nil, func(acc []FieldSlot, group []FieldSlot) []FieldSlot {
		return utils.Concat(acc, group)
	})
}
