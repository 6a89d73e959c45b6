package op

import (
	"math"
	"testing"
	"time"

	"github.com/ib-77/funbox/pkg/funbox/iterators"
	"github.com/ib-77/funbox/pkg/funbox/pairs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filter(pred func(int) bool) []int {
	return iterators.Collect(iterators.Filter(pred, iterators.Values([]int{1, 2, 3, 4, 5})))
}

func TestComparisons(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 2}, filter(Lt(3)))
	assert.Equal(t, []int{1, 2, 3}, filter(Le(3)))
	assert.Equal(t, []int{4, 5}, filter(Gt(3)))
	assert.Equal(t, []int{3, 4, 5}, filter(Ge(3)))
	assert.Equal(t, []int{3}, filter(Eq(3)))
	assert.Equal(t, []int{1, 2, 4, 5}, filter(Ne(3)))
}

func TestArithmetic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, Add(2)(3))
	assert.Equal(t, "ab", Add("b")("a"))
	assert.Equal(t, 6, Mul(2)(3))
	assert.Equal(t, []int{-1, 0, 1, 2, 3}, iterators.Collect(iterators.Map(TakeAway(2), iterators.Values([]int{1, 2, 3, 4, 5}))))
	assert.Equal(t, []int{1, 0, -1, -2, -3}, iterators.Collect(iterators.Map(TakeAwayFrom(2), iterators.Values([]int{1, 2, 3, 4, 5}))))
}

func TestDivision(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2.0, DivideBy(2)(4))
	assert.Equal(t, 2.5, DivideBy(2)(5))
	assert.True(t, math.IsInf(DivideBy(0.0)(1), 1))

	assert.Equal(t, 2, IntDivBy(2)(4))
	assert.Equal(t, 2, IntDivBy(2)(5))
	assert.Equal(t, -3, IntDivBy(2)(-5))
	assert.Equal(t, -3, IntDivBy(-2)(5))

	assert.Equal(t, 0, Modulo(2)(4))
	assert.Equal(t, 1, Modulo(2)(5))
	assert.Equal(t, 1, Modulo(2)(-5))
	assert.Equal(t, -1, Modulo(-2)(5))
	assert.Equal(t, uint(1), Modulo(uint(2))(uint(5)))

	assert.Equal(t, pairs.Of(2, 1), DivmodBy(2)(5))
	assert.Equal(t, pairs.Of(-3, 1), DivmodBy(2)(-5))
}

func TestSafeDivideBy(t *testing.T) {
	t.Parallel()

	out := SafeDivideBy(4)(2)
	require.True(t, out.IsRight())
	assert.Equal(t, 0.5, out.Value())

	zero := SafeDivideBy(0)(2)
	require.True(t, zero.IsLeft())
	assert.ErrorIs(t, zero.Message(), ErrDivisionByZero)
}

func TestFormatting(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0xa", Fmt(10)("0x%x"))
	assert.Equal(t, "10", Fmt(10)("%d"))

	got := iterators.Collect(iterators.Map(FormatAs("0x%x"), iterators.Values([]any{0, 1, 10, 11, 15})))
	assert.Equal(t, []string{"0x0", "0x1", "0xa", "0xb", "0xf"}, got)
}

func TestPartitionByAge(t *testing.T) {
	t.Parallel()

	today := time.Date(2014, 7, 13, 0, 0, 0, 0, time.UTC)
	daysOld := func(d time.Time) int { return int(today.Sub(d).Hours() / 24) }
	others := []time.Time{time.Date(2014, 7, 12, 0, 0, 0, 0, time.UTC), time.Date(2014, 7, 1, 0, 0, 0, 0, time.UTC)}

	atLeastWeek := Ge(7)
	older, newer := iterators.PartitionStrict(func(d time.Time) bool { return atLeastWeek(daysOld(d)) }, iterators.Values(others))
	assert.Equal(t, []time.Time{others[1]}, older)
	assert.Equal(t, []time.Time{others[0]}, newer)
}
