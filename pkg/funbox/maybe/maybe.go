package maybe

import "github.com/ib-77/funbox/pkg/funbox"

type Maybe[T any] struct {
	value  T
	isJust bool
}

func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, isJust: true}
}

func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Unit wraps v in the present shape.
func Unit[T any](v T) Maybe[T] {
	return Just(v)
}

// FromPtr returns Nothing for a nil pointer, Just(*p) otherwise.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

// FromOk converts a comma-ok lookup into a Maybe.
func FromOk[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Just(v)
}

func (m Maybe[T]) IsJust() bool {
	return m.isJust
}

func (m Maybe[T]) IsNothing() bool {
	return !m.isJust
}

// Bind returns f(v) for Just(v). Nothing is returned as is and f is not called.
func (m Maybe[T]) Bind(f func(T) Maybe[T]) Maybe[T] {
	if !m.isJust {
		return m
	}
	return f(m.value)
}

func (m Maybe[T]) FMap(f func(T) T) Maybe[T] {
	return funbox.FMap(m, Unit[T], f)
}

func (m Maybe[T]) Blind(other Maybe[T]) Maybe[T] {
	return funbox.Blind(m, other)
}

func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.isJust
}

func (m Maybe[T]) OrElse(def T) T {
	if !m.isJust {
		return def
	}
	return m.value
}

// Value unwraps a Just. Calling it on Nothing is a contract violation.
func (m Maybe[T]) Value() T {
	if !m.isJust {
		funbox.Fail("Value called on Nothing()")
	}
	return m.value
}

func (m Maybe[T]) String() string {
	if !m.isJust {
		return "Nothing()"
	}
	return funbox.Show("Just", m.value)
}

// Bind is the type-changing form of Maybe.Bind.
func Bind[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if !m.isJust {
		return Nothing[U]()
	}
	return f(m.value)
}

func FMap[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	return Bind(m, func(x T) Maybe[U] {
		return Just(f(x))
	})
}

// Join flattens one level of nesting.
func Join[T any](mm Maybe[Maybe[T]]) Maybe[T] {
	return Bind(mm, func(m Maybe[T]) Maybe[T] {
		return m
	})
}

// LiftM lifts f to operate on Maybe values.
func LiftM[T, U any](f func(T) U) func(Maybe[T]) Maybe[U] {
	return func(m Maybe[T]) Maybe[U] {
		return FMap(m, f)
	}
}
