// Package reflection projects struct instances into tuples of live field
// references.
//
// Of resolves the instance type's structural descriptor and returns a
// Reflection: an ordered sequence of aliases over the instance's own fields,
// one per slot, with array fields flattened into element slots. All layout
// validation happens when the descriptor is built; a projection itself is a
// stateless (instance, descriptor) pairing and none of the descriptor error
// conditions can surface through it.
package reflection
