package descriptor

import (
	"reflect"
	"sync"
)

// slotKey identifies one discovered slot of one target type.
type slotKey struct {
	target reflect.Type
	index  int
}

// latch is the process-wide write-once table of discovered slot types. The
// first successful discovery of a (target, index) pair wins; later writers
// must observe the recorded type unchanged. LoadOrStore keeps the first write
// race-free, so probing the same type from multiple goroutines is safe.
var latch sync.Map // slotKey -> reflect.Type

// recordSlotType latches rtype as the type of slot index of target. A
// conflicting earlier record makes the discovery ambiguous and fails the
// operation; it is never resolved by picking a candidate.
func recordSlotType(target reflect.Type, index int, rtype reflect.Type) error {
	prev, _ := latch.LoadOrStore(slotKey{target: target, index: index}, rtype)

	if recorded := prev.(reflect.Type); recorded != rtype {
		return &AmbiguousFieldTypeError{
			Target:   target,
			Index:    index,
			Recorded: recorded,
			Observed: rtype,
		}
	}

	return nil
}
