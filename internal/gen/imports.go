package gen

import (
	"sort"

	"reflector/internal/common"
)

// importSpec is one import line of a generated file.
type importSpec struct {
	Alias string // empty when the default package name suffices
	Path  string
}

// importSet assigns collision-free qualifiers to imported packages.
type importSet struct {
	specs map[string]importSpec // path -> spec
	names map[string]struct{}   // identifiers taken in the file scope
}

func newImportSet() *importSet {
	return &importSet{
		specs: make(map[string]importSpec),
		names: make(map[string]struct{}),
	}
}

// claim reserves an identifier so no import qualifier shadows it.
func (s *importSet) claim(name string) {
	s.names[name] = struct{}{}
}

// add registers a package and returns the qualifier to use in source text.
// Repeated adds of the same path return the same qualifier.
func (s *importSet) add(path, name string) string {
	if spec, ok := s.specs[path]; ok {
		if spec.Alias != "" {
			return spec.Alias
		}

		return name
	}

	qual := name
	if _, taken := s.names[qual]; taken {
		qual = newStem(name, s.names).next()
	} else {
		s.names[qual] = struct{}{}
	}

	spec := importSpec{Path: path}
	// An explicit alias is needed when the qualifier differs from the path
	// base, either because of a collision or a mismatched package name.
	if qual != common.PkgAlias(path) {
		spec.Alias = qual
	}

	s.specs[path] = spec

	return qual
}

// sorted returns the import lines ordered by path.
func (s *importSet) sorted() []importSpec {
	specs := make([]importSpec, 0, len(s.specs))
	for _, spec := range s.specs {
		specs = append(specs, spec)
	}

	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Path < specs[j].Path
	})

	return specs
}
