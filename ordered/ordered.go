// Package ordered provides ordering over Secrets as an explicit opt-in.
//
// Ordering is the one pass-through capability the core does not expose by
// default: a sorted collection of secrets leaks the relative magnitude of
// its members through nothing more than iteration order, and iteration
// order gets printed ("dumping keys in order") far more casually than the
// values themselves. Importing this package is the opt-in act.
package ordered

import (
	"cmp"
	"slices"

	"github.com/zoobzio/confidential"
)

// Compare orders two Secrets by their wrapped values. It returns -1, 0,
// or +1 exactly as cmp.Compare would on the bare values.
func Compare[T cmp.Ordered](a, b confidential.Secret[T]) int {
	return cmp.Compare(a.Reveal(), b.Reveal())
}

// Less reports whether a's wrapped value orders before b's.
func Less[T cmp.Ordered](a, b confidential.Secret[T]) bool {
	return a.Reveal() < b.Reveal()
}

// Sort sorts a slice of Secrets by their wrapped values.
func Sort[T cmp.Ordered](s []confidential.Secret[T]) {
	slices.SortFunc(s, Compare[T])
}
