package gen

import (
	"fmt"
	"go/types"
	"sort"
	"strings"

	"reflector/internal/analyze"
	"reflector/internal/common"
	"reflector/internal/diagnostic"
	"reflector/internal/manifest"
	"reflector/internal/match"
)

const maxSuggestions = 3

// ResolveTargets maps manifest package requests onto analyzed types. Unknown
// type names produce error diagnostics with near-miss suggestions; structs
// that cannot carry a descriptor are skipped with warnings. Nested struct
// field types are pulled in transitively, so the registration set is closed
// under nesting.
func ResolveTargets(
	graph *analyze.TypeGraph,
	reqs []manifest.PackageRequest,
	diags *diagnostic.Diagnostics,
) []analyze.TypeID {
	var d dealer

	for _, req := range reqs {
		pkg := findPackage(graph, req.Path)
		if pkg == nil {
			diags.AddError("PKG_NOT_LOADED",
				fmt.Sprintf("package %s was not loaded", req.Path), "")

			continue
		}

		if common.IsEmpty(req.Types) {
			seedAll(graph, pkg, &d, diags)
			continue
		}

		for _, name := range req.Types {
			seedNamed(graph, pkg, name, &d, diags)
		}
	}

	var targets []analyze.TypeID

	for id, ok := d.next(); ok; id, ok = d.next() {
		info := graph.GetType(id)
		if info == nil {
			continue
		}

		targets = append(targets, id)

		for _, dep := range nestedStructDeps(graph, info) {
			d.need(dep)
		}
	}

	return targets
}

// seedAll requests every registrable struct type of a package.
func seedAll(
	graph *analyze.TypeGraph,
	pkg *analyze.PackageInfo,
	d *dealer,
	diags *diagnostic.Diagnostics,
) {
	for _, id := range pkg.Types {
		info := graph.GetType(id)

		if err := analyze.CheckReflectable(info); err != nil {
			diags.AddWarning("TYPE_SKIPPED",
				fmt.Sprintf("cannot register: %v", err), id.String())

			continue
		}

		d.need(id)
	}
}

// seedNamed requests a single named type, with suggestions for typos.
func seedNamed(
	graph *analyze.TypeGraph,
	pkg *analyze.PackageInfo,
	name string,
	d *dealer,
	diags *diagnostic.Diagnostics,
) {
	id := analyze.TypeID{PkgPath: pkg.Path, Name: name}

	info := graph.GetType(id)
	if info == nil {
		suggestions := match.Suggest(name, typeNames(pkg), maxSuggestions)
		diags.AddErrorSuggesting("TYPE_NOT_FOUND",
			fmt.Sprintf("no struct type %s in package %s", name, pkg.Path),
			id.String(), suggestions)

		return
	}

	if err := analyze.CheckReflectable(info); err != nil {
		diags.AddWarning("TYPE_SKIPPED",
			fmt.Sprintf("cannot register: %v", err), id.String())

		return
	}

	d.need(id)
}

// nestedStructDeps returns the named struct types embedded in info's layout:
// direct struct fields and array-of-struct elements. Types reached only
// through pointers, slices or maps are not part of the layout and are not
// dependencies.
func nestedStructDeps(graph *analyze.TypeGraph, info *analyze.TypeInfo) []analyze.TypeID {
	var deps []analyze.TypeID

	for _, f := range info.Fields {
		t := f.Type

		for {
			arr, ok := t.Underlying().(*types.Array)
			if !ok {
				break
			}

			t = arr.Elem()
		}

		named, ok := t.(*types.Named)
		if !ok {
			continue
		}

		obj := named.Obj()
		if obj.Pkg() == nil {
			continue
		}

		id := analyze.TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}
		if graph.GetType(id) != nil {
			deps = append(deps, id)
		}
	}

	return deps
}

// findPackage resolves a manifest path against the loaded packages: exact
// import path first, then path suffix, then package name.
func findPackage(graph *analyze.TypeGraph, path string) *analyze.PackageInfo {
	if pkg, ok := graph.Packages[path]; ok {
		return pkg
	}

	trimmed := strings.TrimPrefix(path, "./")

	paths := make([]string, 0, len(graph.Packages))
	for p := range graph.Packages {
		paths = append(paths, p)
	}

	sort.Strings(paths)

	for _, p := range paths {
		pkg := graph.Packages[p]
		if strings.HasSuffix(pkg.Path, "/"+trimmed) || pkg.Name == trimmed {
			return pkg
		}
	}

	return nil
}

func typeNames(pkg *analyze.PackageInfo) []string {
	names := make([]string, 0, len(pkg.Types))
	for _, id := range pkg.Types {
		names = append(names, id.Name)
	}

	return names
}
