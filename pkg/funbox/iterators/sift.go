package iterators

import (
	"iter"
	"slices"
)

// Sieve labels a predicate used by Sift.
type Sieve[T any] struct {
	Label string
	Pred  func(T) bool
}

// Group is one labelled chunk produced by SiftStrict.
type Group[T any] struct {
	Label string
	Items []T
}

// SiftRest matches everything. Use it as the last sieve to catch the rest.
func SiftRest[T any](T) bool {
	return true
}

// Sift progressively pulls items out into labelled chunks. An item lands in
// the first sieve whose predicate it satisfies; items matching no sieve are
// dropped.
func Sift[T any](sieves []Sieve[T], items iter.Seq[T]) iter.Seq2[string, iter.Seq[T]] {
	return func(yield func(string, iter.Seq[T]) bool) {
		rest := items
		for _, s := range sieves {
			var matching iter.Seq[T]
			matching, rest = Partition(s.Pred, rest)
			if !yield(s.Label, matching) {
				return
			}
		}
	}
}

// SiftStrict is Sift with slices, walking the items once per sieve over a
// shrinking remainder.
func SiftStrict[T any](sieves []Sieve[T], items iter.Seq[T]) []Group[T] {
	groups := make([]Group[T], 0, len(sieves))
	rest := Collect(items)
	for _, s := range sieves {
		var matching []T
		matching, rest = PartitionStrict(s.Pred, Values(rest))
		groups = append(groups, Group[T]{Label: s.Label, Items: matching})
	}
	return groups
}

// Values is slices.Values, re-exported so callers need one import.
func Values[T any](s []T) iter.Seq[T] {
	return slices.Values(s)
}
