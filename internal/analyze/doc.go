// Package analyze loads Go packages through go/packages and collects their
// named struct types into a type graph the generator works from. It also
// decides, on go/types level, whether a struct can carry a structural
// descriptor at all.
package analyze
