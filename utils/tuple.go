package utils

func Second[T any](_ any, t T) T { return t }

func Unpack2[Slice ~[]T, T any](s Slice) (first T, second T) {
	switch len(s) {
	default:
		return s[0], s[1]
	case 0:
		return
	case 1:
		first = s[0]
		return
	}
}

// Pair groups two values of independent types.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair builds a Pair from its two elements.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Concat returns a fresh slice holding the elements of all parts, in order.
// The input slices are never modified.
func Concat[S ~[]E, E any](parts ...S) S {
	total := 0
	for _, p := range parts {
		total += len(p)
	}

	if total == 0 {
		return nil
	}

	out := make(S, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

// Foldl folds s left to right, threading the accumulator through fn.
func Foldl[S ~[]E, E, A any](s S, acc A, fn func(A, E) A) A {
	for _, e := range s {
		acc = fn(acc, e)
	}

	return acc
}

// At returns the i-th element of s and true, or the zero value and false when
// the index is out of range.
func At[S ~[]E, E any](s S, i int) (E, bool) {
	if !IsInRange(0, i, len(s)-1) {
		var zero E
		return zero, false
	}

	return s[i], true
}
