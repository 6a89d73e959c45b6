// Package fn contains helpers for building and combining functions:
// composition, currying, argument flipping, constant functions, predicate
// logic and lazily evaluated values.
package fn

import (
	"log/slog"
	"sync"
)

func Identity[A any](a A) A {
	return a
}

// Compose is mathematical composition: Compose(f, g)(x) == f(g(x)).
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Pipe is left to right composition: Pipe(f, g)(x) == g(f(x)).
func Pipe[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return Compose(g, f)
}

func Curry[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

func Uncurry[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return f(a)(b)
	}
}

// Partial fixes the first argument of f.
func Partial[A, B, C any](f func(A, B) C, a A) func(B) C {
	return Curry(f)(a)
}

// Flip swaps the argument order of a curried function:
// Flip(f)(x)(y) == f(y)(x).
func Flip[A, B, C any](f func(A) func(B) C) func(B) func(A) C {
	return func(b B) func(A) C {
		return func(a A) C {
			return f(a)(b)
		}
	}
}

// Always returns a function that ignores its argument and returns v.
func Always[A, T any](v T) func(A) T {
	return func(A) T {
		return v
	}
}

// Fnot negates a predicate.
func Fnot[T any](pred func(T) bool) func(T) bool {
	return func(v T) bool {
		return !pred(v)
	}
}

// FAll reports whether pred holds for every item. It is true for no items.
func FAll[T any](pred func(T) bool, items []T) bool {
	for _, item := range items {
		if !pred(item) {
			return false
		}
	}
	return true
}

// Once defers an expensive call until its value is first requested and
// reuses the result afterwards. f is never called if the value is never
// requested. Safe for concurrent use.
func Once[T any](f func() T) func() T {
	return OnceLogged(nil, "", f)
}

// OnceLogged is Once with a debug line written the one time f runs.
func OnceLogged[T any](logger *slog.Logger, name string, f func() T) func() T {
	return sync.OnceValue(func() T {
		if logger != nil {
			logger.Debug("evaluating once value", slog.String("name", name))
		}
		return f()
	})
}
