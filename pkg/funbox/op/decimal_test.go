package op

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalOperators(t *testing.T) {
	t.Parallel()

	tenth := decimal.RequireFromString("0.1")
	sum := AddDecimal(tenth)(decimal.RequireFromString("0.2"))
	assert.True(t, sum.Equal(decimal.RequireFromString("0.3")), "got %s", sum)

	assert.Equal(t, "0.6", MulDecimal(decimal.NewFromInt(2))(decimal.RequireFromString("0.3")).String())
	assert.Equal(t, "0.9", TakeAwayDecimal(tenth)(decimal.NewFromInt(1)).String())
	assert.Equal(t, "-0.9", TakeAwayFromDecimal(tenth)(decimal.NewFromInt(1)).String())
}

func TestDivideByDecimal(t *testing.T) {
	t.Parallel()

	out := DivideByDecimal(decimal.NewFromInt(4))(decimal.NewFromInt(2))
	require.True(t, out.IsRight())
	assert.Equal(t, "0.5", out.Value().String())

	zero := DivideByDecimal(decimal.Zero)(decimal.NewFromInt(2))
	require.True(t, zero.IsLeft())
	assert.ErrorIs(t, zero.Message(), ErrDivisionByZero)
}
