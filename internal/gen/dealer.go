package gen

import "reflector/internal/analyze"

// dealer tracks which types still need a registration and which are already
// covered, so nested struct dependencies are visited exactly once.
type dealer struct {
	needs map[analyze.TypeID]struct{}
	done  map[analyze.TypeID]struct{}
}

func (d *dealer) next() (analyze.TypeID, bool) {
	for id := range d.needs {
		delete(d.needs, id)

		if _, exists := d.done[id]; !exists {
			d.markDone(id)

			return id, true
		}
	}

	var zero analyze.TypeID

	return zero, false
}

func (d *dealer) need(id analyze.TypeID) {
	if d.needs == nil {
		d.needs = make(map[analyze.TypeID]struct{})
	}

	if _, exists := d.done[id]; !exists {
		d.needs[id] = struct{}{}
	}
}

func (d *dealer) markDone(id analyze.TypeID) {
	if d.done == nil {
		d.done = make(map[analyze.TypeID]struct{})
	}

	delete(d.needs, id)
	d.done[id] = struct{}{}
}
