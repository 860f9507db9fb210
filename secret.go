package confidential

import "hash/maphash"

// Secret holds exactly one value of type T and redacts it from every
// textual representation. The zero Secret wraps T's zero value.
//
// Secret is comparable when T is comparable, so it works directly as a map
// key and with ==. It adds no state beyond the wrapped value: copying,
// sharing across goroutines, and lifetime are exactly those of T.
type Secret[T any] struct {
	inner T
}

// String is the common case of a wrapped string.
type String = Secret[string]

// New wraps v. It always succeeds and performs no validation; the wrapper
// is agnostic about what T is.
func New[T any](v T) Secret[T] {
	return Secret[T]{inner: v}
}

// Reveal returns a copy of the wrapped value.
func (s Secret[T]) Reveal() T {
	return s.inner
}

// RevealPtr returns a pointer to the wrapped value. This is the only path
// to in-place mutation of the inner value.
func (s *Secret[T]) RevealPtr() *T {
	return &s.inner
}

// Ref returns a confidential handle on the wrapped value's address. The
// returned Secret is subject to the same redaction rules, so a view of the
// inner value can be passed around without widening exposure.
//
// Ref is a package function rather than a method: a method returning
// Secret[*T] would make instantiating Secret[T] require Secret[*T],
// then Secret[**T], without end.
func Ref[T any](s *Secret[T]) Secret[*T] {
	return Secret[*T]{inner: &s.inner}
}

// RevealStr returns the wrapped string.
func RevealStr(s String) string {
	return s.inner
}

// MapRevealed applies f to the wrapped value and wraps the result. The
// callback receives the raw value, so the call site of MapRevealed is
// itself an exposure point; the "Revealed" in the name marks it as such.
func MapRevealed[T, V any](s Secret[T], f func(T) V) Secret[V] {
	return Secret[V]{inner: f(s.inner)}
}

// Equal reports whether two Secrets wrap equal values.
func Equal[T comparable](a, b Secret[T]) bool {
	return a.inner == b.inner
}

// Hash returns the seeded hash of the wrapped value, identical to the hash
// of the bare value under the same seed.
func Hash[T comparable](seed maphash.Seed, s Secret[T]) uint64 {
	return maphash.Comparable(seed, s.inner)
}

// Clone returns a Secret wrapping a deep copy of the inner value. For
// types without reference fields, plain assignment already copies a Secret
// exactly as it copies T.
func Clone[T Cloner[T]](s Secret[T]) Secret[T] {
	return Secret[T]{inner: s.inner.Clone()}
}

// Marker is implemented by every Secret instantiation (and types embedding
// one). Adapters use it to recognize wrapper-typed fields via reflection
// without naming a concrete instantiation.
type Marker interface {
	confidentialValue()
}

func (Secret[T]) confidentialValue() {}
