package analyze

import "go/types"

// TypeID uniquely identifies a named type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "reflector/shapes"
	Name    string // e.g., "Point"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeInfo describes one named struct type found during analysis.
type TypeInfo struct {
	ID       TypeID
	GoType   types.Type    // the named type itself
	Struct   *types.Struct // its underlying struct
	Fields   []FieldInfo   // declared fields in order
	Exported bool
}

// FieldInfo describes a declared struct field.
type FieldInfo struct {
	Name  string
	Type  types.Type
	Index int // declaration index in the struct
}

// TypeGraph holds all struct types from the loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named struct types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // import path
	Name  string   // package name
	Dir   string   // directory holding the package sources
	Types []TypeID // named struct types defined in this package
}
