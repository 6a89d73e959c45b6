// Package pairs provides a two-element tuple and helpers for it.
package pairs

import "github.com/ib-77/funbox/pkg/funbox"

type Pair[A, B any] struct {
	First  A
	Second B
}

func Of[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

func Fst[A, B any](p Pair[A, B]) A {
	return p.First
}

func Snd[A, B any](p Pair[A, B]) B {
	return p.Second
}

// Unpack returns both elements, for multi-value assignment.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

func (p Pair[A, B]) String() string {
	return "(" + funbox.Repr(p.First) + ", " + funbox.Repr(p.Second) + ")"
}

// LiftFst lifts f onto the first element.
func LiftFst[A, B, C any](f func(A) C) func(Pair[A, B]) Pair[C, B] {
	return func(p Pair[A, B]) Pair[C, B] {
		return Of(f(p.First), p.Second)
	}
}

// LiftSnd lifts f onto the second element.
func LiftSnd[A, B, C any](f func(B) C) func(Pair[A, B]) Pair[A, C] {
	return func(p Pair[A, B]) Pair[A, C] {
		return Of(p.First, f(p.Second))
	}
}

func Swap[A, B any](p Pair[A, B]) Pair[B, A] {
	return Of(p.Second, p.First)
}

// Decorate pairs f(item) with item itself: Decorate(f)(x) == (f(x), x).
func Decorate[A, B any](f func(A) B) func(A) Pair[B, A] {
	return func(item A) Pair[B, A] {
		return Of(f(item), item)
	}
}
