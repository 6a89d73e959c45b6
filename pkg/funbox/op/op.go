package op

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/ib-77/funbox/pkg/funbox/either"
	"github.com/ib-77/funbox/pkg/funbox/pairs"
)

var ErrDivisionByZero = errors.New("division by zero")

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Float interface {
	~float32 | ~float64
}

type Number interface {
	Integer | Float
}

func Lt[T cmp.Ordered](y T) func(T) bool { return func(x T) bool { return x < y } }

func Le[T cmp.Ordered](y T) func(T) bool { return func(x T) bool { return x <= y } }

func Gt[T cmp.Ordered](y T) func(T) bool { return func(x T) bool { return x > y } }

func Ge[T cmp.Ordered](y T) func(T) bool { return func(x T) bool { return x >= y } }

func Eq[T comparable](y T) func(T) bool { return func(x T) bool { return x == y } }

func Ne[T comparable](y T) func(T) bool { return func(x T) bool { return x != y } }

// Add works for numbers and strings alike.
func Add[T cmp.Ordered](y T) func(T) T {
	return func(x T) T { return x + y }
}

func Mul[T Number](y T) func(T) T {
	return func(x T) T { return x * y }
}

func TakeAway[T Number](y T) func(T) T {
	return func(x T) T { return x - y }
}

func TakeAwayFrom[T Number](y T) func(T) T {
	return func(x T) T { return y - x }
}

// DivideBy is true division: DivideBy(2)(5) == 2.5. Dividing by zero
// follows float rules (±Inf, NaN).
func DivideBy[T Number](y T) func(T) float64 {
	return func(x T) float64 { return float64(x) / float64(y) }
}

// SafeDivideBy is DivideBy with a Left for a zero divisor.
func SafeDivideBy[T Number](y T) func(T) either.Either[error, float64] {
	return func(x T) either.Either[error, float64] {
		if y == 0 {
			return either.Left[float64](fmt.Errorf("%w: %v / %v", ErrDivisionByZero, x, y))
		}
		return either.Right[error](float64(x) / float64(y))
	}
}

// IntDivBy is floor division. A zero divisor panics like any Go integer division.
func IntDivBy[T Integer](y T) func(T) T {
	return func(x T) T { return floorDiv(x, y) }
}

// Modulo takes the sign of the divisor.
func Modulo[T Integer](y T) func(T) T {
	return func(x T) T { return floorMod(x, y) }
}

// DivmodBy returns (IntDivBy(y)(x), Modulo(y)(x)).
func DivmodBy[T Integer](y T) func(T) pairs.Pair[T, T] {
	return func(x T) pairs.Pair[T, T] {
		return pairs.Of(floorDiv(x, y), floorMod(x, y))
	}
}

func floorDiv[T Integer](x, y T) T {
	q := x / y
	if x%y != 0 && (x < 0) != (y < 0) {
		q--
	}
	return q
}

func floorMod[T Integer](x, y T) T {
	r := x % y
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r
}

// Fmt formats obj with a format supplied later: Fmt(10)("0x%x") == "0xa".
func Fmt(obj any) func(format string) string {
	return func(format string) string { return fmt.Sprintf(format, obj) }
}

// FormatAs formats objects supplied later: FormatAs("0x%x")(10) == "0xa".
func FormatAs(format string) func(obj any) string {
	return func(obj any) string { return fmt.Sprintf(format, obj) }
}
