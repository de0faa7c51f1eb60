package gen

import "strconv"

// stem hands out numbered identifiers derived from a base name, skipping
// names already present in the shared namespace. Claimed names are recorded
// in the namespace.
type stem struct {
	taken map[string]struct{}
	base  string
	last  int
}

func newStem(base string, taken map[string]struct{}) *stem {
	return &stem{taken: taken, base: base}
}

func (s *stem) next() string {
	if s.taken == nil {
		s.taken = make(map[string]struct{})
	}

	for {
		s.last++
		name := s.base + strconv.Itoa(s.last)

		if _, ok := s.taken[name]; !ok {
			s.taken[name] = struct{}{}
			return name
		}
	}
}
