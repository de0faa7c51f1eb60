// Package layout models the memory layout of struct field sequences.
//
// A Slot is a sized and aligned placeholder for one field; Compute places a
// slot sequence under the same rules the compiler uses for struct fields, so
// the synthesized offsets can be checked against the real ones. Classify maps
// reflect types onto the slot classes the reflection engine accepts.
package layout
