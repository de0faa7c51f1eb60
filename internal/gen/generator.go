package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/types"
	"sort"
	"text/template"

	"reflector/internal/analyze"
)

const descriptorPkgPath = "reflector/descriptor"

// Config holds code generation settings.
type Config struct {
	// Filename is the name of the generated file in each package.
	Filename string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{Filename: "reflector_gen.go"}
}

// Generator emits descriptor registration files from analyzed types.
type Generator struct {
	config Config
	graph  *analyze.TypeGraph
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	if config.Filename == "" {
		config.Filename = DefaultConfig().Filename
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the package directory the file belongs in.
	Dir string
	// Filename is the name of the file inside Dir.
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate emits one registration file per package covering the given types.
// Inside a file, nested struct types register before the types embedding
// them, so init never resolves a descriptor with an unregistered dependency.
func (g *Generator) Generate(graph *analyze.TypeGraph, targets []analyze.TypeID) ([]GeneratedFile, error) {
	g.graph = graph

	byPkg := make(map[string][]analyze.TypeID)
	for _, id := range targets {
		byPkg[id.PkgPath] = append(byPkg[id.PkgPath], id)
	}

	pkgPaths := make([]string, 0, len(byPkg))
	for p := range byPkg {
		pkgPaths = append(pkgPaths, p)
	}

	sort.Strings(pkgPaths)

	var files []GeneratedFile

	for _, pkgPath := range pkgPaths {
		file, err := g.generatePackage(pkgPath, byPkg[pkgPath])
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", pkgPath, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// fileData holds all data needed for the registration template.
type fileData struct {
	PackageName    string
	DescriptorQual string
	Imports        []importSpec
	Registrations  []registrationData
}

// registrationData is one MustRegister call.
type registrationData struct {
	TypeName  string
	Accessors []string
	// Explicit marks zero-field types, where the type argument cannot be
	// inferred from the accessor list.
	Explicit bool
}

// generatePackage emits the registration file for one package.
func (g *Generator) generatePackage(pkgPath string, ids []analyze.TypeID) (*GeneratedFile, error) {
	pkg := g.graph.Packages[pkgPath]
	if pkg == nil {
		return nil, fmt.Errorf("package %s not in the type graph", pkgPath)
	}

	ordered, err := g.orderByNesting(ids)
	if err != nil {
		return nil, err
	}

	imports := newImportSet()
	imports.claim(pkg.Name)
	imports.claim("v") // the accessor parameter

	descriptorQual := imports.add(descriptorPkgPath, "descriptor")

	data := &fileData{
		PackageName:    pkg.Name,
		DescriptorQual: descriptorQual,
	}

	for _, id := range ordered {
		info := g.graph.GetType(id)
		if info == nil {
			return nil, fmt.Errorf("type %s not in the type graph", id)
		}

		data.Registrations = append(data.Registrations,
			g.buildRegistration(info, pkg, imports, descriptorQual))
	}

	data.Imports = imports.sorted()

	var buf bytes.Buffer
	if err := registrationTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Return unformatted code for debugging.
		return &GeneratedFile{
				Dir:      pkg.Dir,
				Filename: g.config.Filename,
				Content:  buf.Bytes(),
			},
			fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Dir:      pkg.Dir,
		Filename: g.config.Filename,
		Content:  formatted,
	}, nil
}

// orderByNesting topologically sorts the package's registrations so nested
// struct types come first. Struct nesting cannot cycle, so a cycle error
// only surfaces on a broken graph.
func (g *Generator) orderByNesting(ids []analyze.TypeID) ([]analyze.TypeID, error) {
	// Alphabetical before topological: ties resolve by name, making the
	// emitted file independent of target discovery order.
	sort.Slice(ids, func(i, j int) bool { return ids[i].Name < ids[j].Name })

	index := make(map[analyze.TypeID]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	order, err := topoSortRegistrations(len(ids), func(i int) []int {
		info := g.graph.GetType(ids[i])
		if info == nil {
			return nil
		}

		var deps []int

		for _, dep := range nestedStructDeps(g.graph, info) {
			if j, ok := index[dep]; ok && j != i {
				deps = append(deps, j)
			}
		}

		sort.Ints(deps)

		return deps
	})
	if err != nil {
		return nil, err
	}

	ordered := make([]analyze.TypeID, 0, len(ids))
	for _, i := range order {
		ordered = append(ordered, ids[i])
	}

	return ordered, nil
}

// buildRegistration renders one MustRegister call with a typed accessor per
// declared field. Field types from other packages pull in qualified imports.
func (g *Generator) buildRegistration(
	info *analyze.TypeInfo,
	pkg *analyze.PackageInfo,
	imports *importSet,
	descriptorQual string,
) registrationData {
	qualifier := func(p *types.Package) string {
		if p == nil || p.Path() == pkg.Path {
			return ""
		}

		return imports.add(p.Path(), p.Name())
	}

	reg := registrationData{
		TypeName: info.ID.Name,
		Explicit: len(info.Fields) == 0,
	}

	for _, f := range info.Fields {
		fieldType := types.TypeString(f.Type, qualifier)
		reg.Accessors = append(reg.Accessors, fmt.Sprintf(
			"%s.Field(func(v *%s) *%s { return &v.%s })",
			descriptorQual, info.ID.Name, fieldType, f.Name,
		))
	}

	return reg
}

var registrationTemplate = template.Must(template.New("registration").Parse(`// Code generated by reflector-gen. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})

func init() {
{{range .Registrations}}{{if .Explicit}}	{{$.DescriptorQual}}.MustRegister[{{.TypeName}}]()
{{else}}	{{$.DescriptorQual}}.MustRegister(
{{range .Accessors}}		{{.}},
{{end}}	)
{{end}}{{end}}}
`))
