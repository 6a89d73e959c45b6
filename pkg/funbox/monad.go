package funbox

import "fmt"

// Monad is implemented by every variant family. M is the family type itself,
// so Bind keeps the caller inside the same family.
type Monad[T, M any] interface {
	// Bind applies f to the payload of a present/success value. Absent and
	// failure values are returned unchanged and f is not called.
	Bind(f func(T) M) M
	// String renders the value as Variant(payload)
	fmt.Stringer
}

// FMap applies a plain function to the payload and wraps the result with unit.
func FMap[T any, M Monad[T, M]](m M, unit func(T) M, f func(T) T) M {
	return m.Bind(func(x T) M {
		return unit(f(x))
	})
}

// LiftM lifts f to take and return a monadic value.
func LiftM[T any, M Monad[T, M]](unit func(T) M, f func(T) T) func(M) M {
	return func(m M) M {
		return FMap(m, unit, f)
	}
}

// Bindl returns m -> m.Bind(f), handy for map-style pipelines.
func Bindl[T any, M Monad[T, M]](f func(T) M) func(M) M {
	return func(m M) M {
		return m.Bind(f)
	}
}

// Blind binds a constant monadic value instead of a function.
func Blind[T any, M Monad[T, M]](m M, other M) M {
	return m.Bind(func(T) M {
		return other
	})
}
