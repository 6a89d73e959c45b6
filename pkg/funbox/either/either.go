package either

import (
	"github.com/ib-77/funbox/pkg/funbox"
	"github.com/ib-77/funbox/pkg/funbox/maybe"
)

type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left builds a failure value. R comes first so callers can write
// Left[float64]("div by zero") and let L be inferred.
func Left[R, L any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right builds a success value. L comes first, mirroring Left.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

// Unit wraps r in the success shape.
func Unit[L, R any](r R) Either[L, R] {
	return Right[L](r)
}

// FromResult maps a (value, error) pair onto Right(value) or Left(err).
func FromResult[R any](r R, err error) Either[error, R] {
	if err != nil {
		return Left[R](err)
	}
	return Right[error](r)
}

// FromMaybe turns Nothing into Left(l).
func FromMaybe[L, R any](m maybe.Maybe[R], l L) Either[L, R] {
	if v, ok := m.Get(); ok {
		return Right[L](v)
	}
	return Left[R](l)
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// Bind returns f(v) for Right(v). A Left is returned unchanged and f is not called.
func (e Either[L, R]) Bind(f func(R) Either[L, R]) Either[L, R] {
	if !e.isRight {
		return e
	}
	return f(e.right)
}

func (e Either[L, R]) FMap(f func(R) R) Either[L, R] {
	return funbox.FMap(e, Unit[L, R], f)
}

func (e Either[L, R]) Blind(other Either[L, R]) Either[L, R] {
	return funbox.Blind(e, other)
}

func (e Either[L, R]) Get() (R, bool) {
	return e.right, e.isRight
}

func (e Either[L, R]) GetLeft() (L, bool) {
	return e.left, !e.isRight
}

func (e Either[L, R]) OrElse(def R) R {
	if !e.isRight {
		return def
	}
	return e.right
}

// Value unwraps a Right. Calling it on a Left is a contract violation.
func (e Either[L, R]) Value() R {
	if !e.isRight {
		funbox.Failf("Value called on %s", e)
	}
	return e.right
}

// Message unwraps a Left. Calling it on a Right is a contract violation.
func (e Either[L, R]) Message() L {
	if e.isRight {
		funbox.Failf("Message called on %s", e)
	}
	return e.left
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return funbox.Show("Right", e.right)
	}
	return funbox.Show("Left", e.left)
}

// ToMaybe drops the failure payload.
func (e Either[L, R]) ToMaybe() maybe.Maybe[R] {
	return maybe.FromOk(e.right, e.isRight)
}
