// Package descriptor resolves structural descriptors: verified signatures
// pairing a struct type with its ordered field slot list and byte offsets.
//
// A descriptor comes from one of two mechanisms that produce identical
// results: automatic discovery (Probe, For, Describe), which enumerates the
// fields of the declaration through reflect, and the manual builder (Provide,
// Register), which takes an explicit accessor list. Both flatten array fields
// into one slot per element and both verify the slot list against the real
// layout of the type before a descriptor exists; a list that cannot reproduce
// the instance layout fails with LayoutMismatchError and never degrades to a
// partial descriptor.
//
// Descriptors are memoized per type in a process-wide registry. With
// options.OptionManualOnly configured, probing is disabled entirely and every
// reflected type must carry a registration, typically emitted by
// reflector-gen.
package descriptor
