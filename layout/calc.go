package layout

import "reflect"

// Slot is an aligned placeholder standing in for one field of an aggregate.
// It mirrors the field's size and alignment and never holds live data; slots
// exist only so relative offsets can be measured.
type Slot struct {
	Size  uintptr
	Align uintptr
}

// SlotOf builds the placeholder slot for a field of the given type.
func SlotOf(rtype reflect.Type) Slot {
	return Slot{
		Size:  rtype.Size(),
		Align: uintptr(rtype.Align()),
	}
}

// Placement is the synthesized layout of a slot sequence: one byte offset per
// slot, relative to the first slot, plus the total size and alignment the
// sequence occupies under Go struct layout rules.
type Placement struct {
	Offsets []uintptr
	Size    uintptr
	Align   uintptr
}

// Compute places the slots the way the compiler lays out struct fields: each
// slot starts at its alignment boundary, and the total size is rounded up to
// the largest alignment seen. Because each slot matches its field's size and
// alignment exactly, the padding decisions here are identical to the ones made
// for the real aggregate.
func Compute(slots []Slot) Placement {
	if len(slots) == 0 {
		return Placement{Size: 0, Align: 1}
	}

	offsets := make([]uintptr, len(slots))
	maxAlign := uintptr(1)
	offset := uintptr(0)

	for i, slot := range slots {
		offset = AlignUp(offset, slot.Align)
		offsets[i] = offset

		if slot.Align > maxAlign {
			maxAlign = slot.Align
		}

		offset += slot.Size
	}

	return Placement{
		Offsets: offsets,
		Size:    AlignUp(offset, maxAlign),
		Align:   maxAlign,
	}
}

// AlignUp rounds offset up to the next multiple of align. Align must be a
// power of two.
func AlignUp(offset, align uintptr) uintptr {
	if align <= 1 {
		return offset
	}

	return (offset + align - 1) &^ (align - 1)
}
