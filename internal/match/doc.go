// Package match scores identifier similarity so the generator can suggest
// near-miss alternatives for type names it cannot find.
package match
