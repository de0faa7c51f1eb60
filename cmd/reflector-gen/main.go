// Package main provides the CLI entrypoint for reflector-gen.
//
// reflector-gen scans Go packages (go/packages + go/types) for struct types
// and emits per-package registration files of descriptor.MustRegister calls,
// so programs running in manual-only mode resolve every descriptor at init
// time instead of probing.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"reflector/internal/analyze"
	"reflector/internal/diagnostic"
	"reflector/internal/gen"
	"reflector/internal/manifest"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "reflector-gen:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("reflector-gen", flag.ContinueOnError)

	var (
		manifestPath = fs.String("manifest", "", "path to a YAML manifest")
		pkgList      = fs.String("pkg", "", "comma-separated package patterns (alternative to -manifest)")
		typeList     = fs.String("types", "", "comma-separated type names (with -pkg; empty means all)")
		filename     = fs.String("filename", "", "generated file name (overrides the manifest output)")
		dryRun       = fs.Bool("dry-run", false, "print generated files instead of writing them")
	)

	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := buildManifest(*manifestPath, *pkgList, *typeList)
	if err != nil {
		return err
	}

	if *filename != "" {
		m.Output.Filename = *filename
	}

	patterns := make([]string, 0, len(m.Packages))
	for _, req := range m.Packages {
		patterns = append(patterns, req.Path)
	}

	graph, err := analyze.NewAnalyzer().LoadPackages(patterns...)
	if err != nil {
		return err
	}

	var diags diagnostic.Diagnostics

	targets := gen.ResolveTargets(graph, m.Packages, &diags)

	for _, w := range diags.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w.String())
	}

	if diags.HasErrors() {
		return diags.Error()
	}

	files, err := gen.NewGenerator(gen.Config{Filename: m.Output.Filename}).Generate(graph, targets)
	if err != nil {
		return err
	}

	if *dryRun {
		for _, f := range files {
			fmt.Printf("-- %s --\n%s", f.Dir+"/"+f.Filename, f.Content)
		}

		return nil
	}

	if err := gen.WriteFiles(files); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "wrote %d file(s) covering %d type(s)\n", len(files), len(targets))

	return nil
}

// buildManifest loads the YAML manifest or synthesizes one from flags.
func buildManifest(path, pkgList, typeList string) (*manifest.Manifest, error) {
	if path != "" {
		if pkgList != "" {
			return nil, errors.New("-manifest and -pkg are mutually exclusive")
		}

		return manifest.LoadFile(path)
	}

	if pkgList == "" {
		return nil, errors.New("either -manifest or -pkg is required")
	}

	names := splitList(typeList)

	var reqs []manifest.PackageRequest
	for _, p := range splitList(pkgList) {
		reqs = append(reqs, manifest.PackageRequest{Path: p, Types: names})
	}

	return &manifest.Manifest{
		Version:  "1",
		Packages: reqs,
		Output:   manifest.OutputConfig{Filename: manifest.DefaultFilename},
	}, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
