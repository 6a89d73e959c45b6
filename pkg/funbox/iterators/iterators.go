// Package iterators contains combinators over iter.Seq.
//
// Lazy functions such as Partition and Sift walk their source once per
// result they produce, so the source has to be re-iterable (slices.Values,
// maps.Keys and the like). The *Strict variants walk it once and return slices.
//
// Every two-way split returns the values passing the predicate first.
package iterators

import (
	"iter"
	"slices"
)

// Cons yields head, then everything in tail.
func Cons[T any](head T, tail iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(head) {
			return
		}
		for v := range tail {
			if !yield(v) {
				return
			}
		}
	}
}

func Filter[T any](pred func(T) bool, items iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range items {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

func Map[T, U any](f func(T) U, items iter.Seq[T]) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range items {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// MapC is the curried form of Map.
func MapC[T, U any](f func(T) U) func(iter.Seq[T]) iter.Seq[U] {
	return func(items iter.Seq[T]) iter.Seq[U] {
		return Map(f, items)
	}
}

// FilterC is the curried form of Filter.
func FilterC[T any](pred func(T) bool) func(iter.Seq[T]) iter.Seq[T] {
	return func(items iter.Seq[T]) iter.Seq[T] {
		return Filter(pred, items)
	}
}

// Partition lazily splits items into (matching pred, not matching pred).
func Partition[T any](pred func(T) bool, items iter.Seq[T]) (matches, rest iter.Seq[T]) {
	return Filter(pred, items), Filter(func(v T) bool { return !pred(v) }, items)
}

// PartitionStrict is Partition in a single pass, returning slices.
func PartitionStrict[T any](pred func(T) bool, items iter.Seq[T]) (matches, rest []T) {
	for v := range items {
		if pred(v) {
			matches = append(matches, v)
		} else {
			rest = append(rest, v)
		}
	}
	return matches, rest
}

// PartitionOrdered splits items where pred first fails: matches is the
// leading run for which pred holds, rest is everything after it. Items must
// be ordered so that once pred fails it keeps failing.
func PartitionOrdered[T any](pred func(T) bool, items iter.Seq[T]) (matches, rest iter.Seq[T]) {
	takeWhile := func(yield func(T) bool) {
		for v := range items {
			if !pred(v) || !yield(v) {
				return
			}
		}
	}
	dropWhile := func(yield func(T) bool) {
		dropping := true
		for v := range items {
			if dropping && pred(v) {
				continue
			}
			dropping = false
			if !yield(v) {
				return
			}
		}
	}
	return takeWhile, dropWhile
}

func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// ConcatMap maps f over items and flattens the results.
func ConcatMap[T, U any](f func(T) []U, items iter.Seq[T]) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range items {
			for _, u := range f(v) {
				if !yield(u) {
					return
				}
			}
		}
	}
}

// AtLeast reports whether at least n values are true, stopping as soon as
// the count is reached.
func AtLeast(n int, items iter.Seq[bool]) bool {
	if n <= 0 {
		return true
	}
	count := 0
	for ok := range items {
		if ok {
			count++
		}
		if count >= n {
			return true
		}
	}
	return false
}

// AtMost reports whether at most n values are true, stopping as soon as the
// count is exceeded.
func AtMost(n int, items iter.Seq[bool]) bool {
	count := 0
	for ok := range items {
		if ok {
			count++
		}
		if count > n {
			return false
		}
	}
	return true
}

// Test maps items through pred, for use with AtLeast and AtMost.
func Test[T any](pred func(T) bool, items iter.Seq[T]) iter.Seq[bool] {
	return Map(pred, items)
}

func Collect[T any](items iter.Seq[T]) []T {
	return slices.Collect(items)
}
