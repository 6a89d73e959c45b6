package stream

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/ib-77/funbox/pkg/funbox/either"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inverse(ctx context.Context, x float64) either.Either[error, float64] {
	if x == 0 {
		return either.Left[float64](errors.New("div by zero"))
	}
	return either.Right[error](1.0 / x)
}

func TestBind_SingleLine(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out := FromChanMany(ctx, Bind(ctx, ToChanManyRights(ctx, []float64{2, 4, 0, 8}), inverse, 1))

	require.Len(t, out, 4)
	rights, lefts := either.Partition(out)
	assert.ElementsMatch(t, []float64{0.5, 0.25, 0.125}, rights)
	require.Len(t, lefts, 1)
	assert.EqualError(t, lefts[0], "div by zero")
}

func TestBind_MultipleLines(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	input := make([]int, 100)
	expected := make([]int, 100)
	for i := range input {
		input[i] = i + 1
		expected[i] = (i + 1) * 2
	}

	double := func(ctx context.Context, v int) either.Either[error, int] {
		time.Sleep(time.Millisecond)
		return either.Right[error](v * 2)
	}

	out := FromChanMany(ctx, Bind(ctx, ToChanManyRights(ctx, input), double, 8))

	rights, lefts := either.Partition(out)
	assert.Empty(t, lefts)
	slices.Sort(rights)
	assert.Equal(t, expected, rights)
}

func TestBind_LeftIsNotProcessed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	boom := errors.New("boom")
	in := ToChanMany(ctx, []either.Either[error, int]{either.Left[int](boom)})

	calls := 0
	out := FromChanMany(ctx, Bind(ctx, in, func(ctx context.Context, v int) either.Either[error, string] {
		calls++
		return either.Right[error]("x")
	}, 1))

	require.Len(t, out, 1)
	assert.Zero(t, calls)
	assert.ErrorIs(t, out[0].Message(), boom)
}

func TestPipeline_TryFMapFold(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	inputs := []string{"1", "2", "bad", "5"}

	out := FromChanMany(ctx,
		Fold(ctx,
			FMap(ctx,
				Try(ctx, ToChanManyRights(ctx, inputs),
					func(_ context.Context, s string) (int, error) { return strconv.Atoi(s) }, 2),
				func(_ context.Context, v int) int { return v * 10 }, 2),
			func(_ context.Context, v int) string { return "val:" + strconv.Itoa(v) },
			func(_ context.Context, err error) string { return "err" }))

	assert.ElementsMatch(t, []string{"val:10", "val:20", "err", "val:50"}, out)
}

func TestRun_WorkerOptionsFromContext(t *testing.T) {
	t.Parallel()

	ctx := WithWorkerOptions(context.Background(), 3)
	assert.Equal(t, 3, GetWorkerMaxCount(ctx, 5))
	assert.Equal(t, 5, GetWorkerMaxCount(context.Background(), 5))
	assert.Equal(t, 3, lines(ctx, 0))
	assert.Equal(t, 7, lines(ctx, 7))

	var mu sync.Mutex
	active, peak := 0, 0
	engine := func(ctx context.Context, in either.Either[error, int]) either.Either[error, int] {
		mu.Lock()
		active++
		peak = max(peak, active)
		mu.Unlock()

		time.Sleep(5 * time.Millisecond)

		mu.Lock()
		active--
		mu.Unlock()
		return in
	}

	out := FromChanMany(ctx, Run(ctx, ToChanManyRights(ctx, make([]int, 30)), engine, 0))
	assert.Len(t, out, 30)
	assert.LessOrEqual(t, peak, 3)
}

func TestRun_CancelProcessesRemaining(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bad := errors.New("bad input")
	in := make(chan either.Either[error, int], 4)
	in <- either.Right[error](1)
	in <- either.Right[error](2)
	in <- either.Left[int](bad)
	in <- either.Right[error](3)
	close(in)

	engine := func(ctx context.Context, in either.Either[error, int]) either.Either[error, int] {
		if v, ok := in.Get(); ok && v == 1 {
			cancel()
		}
		return either.FMap(in, func(v int) int { return v * 2 })
	}

	out := FromChanMany(context.Background(), Run(ctx, in, engine, 1))
	require.Len(t, out, 4, "every input should yield one output")

	cancelled, badCount := 0, 0
	for _, o := range out {
		err, isLeft := o.GetLeft()
		if !isLeft {
			continue
		}
		if errors.Is(err, ErrCancelled) {
			assert.ErrorIs(t, err, context.Canceled)
			cancelled++
		}
		if errors.Is(err, bad) {
			badCount++
		}
	}
	assert.Equal(t, 1, badCount, "an existing Left keeps its payload")
	assert.GreaterOrEqual(t, cancelled, 2)
}

func TestRun_CancelDropsRemaining(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = WithProcessOptions(ctx, false)
	assert.False(t, IsProcessRemainingEnabled(ctx, true))

	in := make(chan either.Either[error, int], 3)
	for i := range 3 {
		in <- either.Right[error](i)
	}
	close(in)

	engine := func(ctx context.Context, in either.Either[error, int]) either.Either[error, int] {
		cancel()
		return in
	}

	out := FromChanMany(context.Background(), Run(ctx, in, engine, 1))
	assert.LessOrEqual(t, len(out), 1)
}

func TestSplit(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	in := ToChanMany(ctx, []either.Either[error, int]{
		either.Right[error](1), either.Left[int](errors.New("a")), either.Right[error](2),
	})
	rights, lefts := Split(ctx, in)

	var gotLefts []error
	done := make(chan struct{})
	go func() {
		defer close(done)
		gotLefts = FromChanMany(ctx, lefts)
	}()
	gotRights := FromChanMany(ctx, rights)
	<-done

	assert.Equal(t, []int{1, 2}, gotRights)
	require.Len(t, gotLefts, 1)
	assert.EqualError(t, gotLefts[0], "a")
}

func TestPartition(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	isOdd := func(x int) bool { return x%2 == 1 }
	odds, evens := Partition(ctx, ToChanMany(ctx, []int{1, 2, 3, 4, 5, 6}), isOdd)

	var gotEvens []int
	done := make(chan struct{})
	go func() {
		defer close(done)
		gotEvens = FromChanMany(ctx, evens)
	}()
	gotOdds := FromChanMany(ctx, odds)
	<-done

	assert.Equal(t, []int{1, 3, 5}, gotOdds)
	assert.Equal(t, []int{2, 4, 6}, gotEvens)
}

func TestFromChanFirstOrDefault(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, 4, FromChanFirstOrDefault(ctx, ToChan(ctx, 4), -1))

	closed := make(chan int)
	close(closed)
	assert.Equal(t, -1, FromChanFirstOrDefault(ctx, closed, -1))

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	assert.Equal(t, -1, FromChanFirstOrDefault(cctx, make(chan int), -1))
}

func TestToChanFromArgs_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := FromChanMany(context.Background(), ToChanFromArgs(ctx, 1, 2, 3))
	assert.Empty(t, out)
}
