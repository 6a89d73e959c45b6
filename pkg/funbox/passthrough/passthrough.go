// Package passthrough applies a function to some values while letting
// others through unchanged.
//
// Which values count as "null-like" is always spelled out by the caller as a
// Nulls set; zero values are not treated as absent unless listed.
package passthrough

// Nulls is an explicit set of sentinel values that bypass a function.
type Nulls[T comparable] map[T]struct{}

func NullLike[T comparable](values ...T) Nulls[T] {
	nulls := make(Nulls[T], len(values))
	for _, v := range values {
		nulls[v] = struct{}{}
	}
	return nulls
}

func (n Nulls[T]) Contains(v T) bool {
	_, ok := n[v]
	return ok
}

// PassNull returns f(v), or v itself when v is in nulls.
func PassNull[T comparable](nulls Nulls[T], f func(T) T) func(T) T {
	return func(v T) T {
		if nulls.Contains(v) {
			return v
		}
		return f(v)
	}
}

// PassNullOr returns f(v), or def when v is in nulls.
func PassNullOr[T comparable, U any](nulls Nulls[T], def U, f func(T) U) func(T) U {
	return func(v T) U {
		if nulls.Contains(v) {
			return def
		}
		return f(v)
	}
}

// PassNil maps a non-nil pointer through f and keeps nil as nil.
func PassNil[T, U any](f func(T) U) func(*T) *U {
	return func(p *T) *U {
		if p == nil {
			return nil
		}
		out := f(*p)
		return &out
	}
}

// ApplyIf returns f(v) when pred(v) holds, v otherwise.
func ApplyIf[T any](pred func(T) bool, f func(T) T) func(T) T {
	return func(v T) T {
		if pred(v) {
			return f(v)
		}
		return v
	}
}

// PassIf returns v when pred(v) holds, f(v) otherwise.
func PassIf[T any](pred func(T) bool, f func(T) T) func(T) T {
	return ApplyIf(func(v T) bool { return !pred(v) }, f)
}
