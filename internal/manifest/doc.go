// Package manifest defines the YAML configuration consumed by reflector-gen:
// which packages to scan, which struct types to register, and where the
// generated registration files go.
package manifest
