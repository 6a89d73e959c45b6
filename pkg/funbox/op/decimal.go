package op

import (
	"fmt"

	"github.com/ib-77/funbox/pkg/funbox/either"
	"github.com/shopspring/decimal"
)

// Decimal counterparts of the arithmetic operators, for exact results
// where float rounding is not acceptable.

func AddDecimal(y decimal.Decimal) func(decimal.Decimal) decimal.Decimal {
	return func(x decimal.Decimal) decimal.Decimal { return x.Add(y) }
}

func MulDecimal(y decimal.Decimal) func(decimal.Decimal) decimal.Decimal {
	return func(x decimal.Decimal) decimal.Decimal { return x.Mul(y) }
}

func TakeAwayDecimal(y decimal.Decimal) func(decimal.Decimal) decimal.Decimal {
	return func(x decimal.Decimal) decimal.Decimal { return x.Sub(y) }
}

func TakeAwayFromDecimal(y decimal.Decimal) func(decimal.Decimal) decimal.Decimal {
	return func(x decimal.Decimal) decimal.Decimal { return y.Sub(x) }
}

// DivideByDecimal divides with decimal.DivisionPrecision digits and
// returns a Left for a zero divisor instead of panicking.
func DivideByDecimal(y decimal.Decimal) func(decimal.Decimal) either.Either[error, decimal.Decimal] {
	return func(x decimal.Decimal) either.Either[error, decimal.Decimal] {
		if y.IsZero() {
			return either.Left[decimal.Decimal](fmt.Errorf("%w: %s / %s", ErrDivisionByZero, x, y))
		}
		return either.Right[error](x.Div(y))
	}
}
