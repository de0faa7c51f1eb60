// Package gen emits descriptor registration files: one per package, holding
// an init function of MustRegister calls with typed field accessors, ordered
// so nested struct types register before the types embedding them.
package gen
