package stream

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ib-77/funbox/pkg/funbox/either"
)

var ErrCancelled = errors.New("operation cancelled")

// cancelled keeps an existing Left and replaces a Right with ErrCancelled.
func cancelled[In, Out any](ctx context.Context, in either.Either[error, In]) either.Either[error, Out] {
	if err, ok := in.GetLeft(); ok {
		return either.Left[Out](err)
	}
	return either.Left[Out](fmt.Errorf("%w: %w", ErrCancelled, context.Cause(ctx)))
}

func cancelRemainingResult[In, Out any](ctx context.Context, in either.Either[error, In],
	outCh chan<- either.Either[error, Out]) {

	if IsProcessRemainingEnabled(ctx, true) {
		outCh <- cancelled[In, Out](ctx, in)
	}
}

func cancelRemainingResults[In, Out any](ctx context.Context, inputCh <-chan either.Either[error, In],
	outCh chan<- either.Either[error, Out]) {

	if IsProcessRemainingEnabled(ctx, true) {
		for in := range inputCh {
			outCh <- cancelled[In, Out](ctx, in)
		}
	}
}

// locomotive is one worker line: it pulls inputs, runs the engine and pushes
// outputs until the input closes or the context is done.
func locomotive[In, Out any](ctx context.Context, inputCh <-chan either.Either[error, In],
	outCh chan<- either.Either[error, Out],
	engine func(ctx context.Context, input either.Either[error, In]) either.Either[error, Out],
	wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			cancelRemainingResults(ctx, inputCh, outCh)
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			if ctx.Err() != nil {
				cancelRemainingResult(ctx, in, outCh)
				cancelRemainingResults(ctx, inputCh, outCh)
				return
			}

			select {
			case outCh <- engine(ctx, in):
			case <-ctx.Done():
				cancelRemainingResult(ctx, in, outCh)
				cancelRemainingResults(ctx, inputCh, outCh)
				return
			}
		}
	}
}

// Run drives engine over inputCh with the given number of worker lines.
// A non-positive count falls back to the context option, then GOMAXPROCS.
func Run[In, Out any](ctx context.Context, inputCh <-chan either.Either[error, In],
	engine func(ctx context.Context, input either.Either[error, In]) either.Either[error, Out],
	count int) <-chan either.Either[error, Out] {

	out := make(chan either.Either[error, Out])
	wg := &sync.WaitGroup{}

	for range lines(ctx, count) {
		wg.Add(1)
		go locomotive(ctx, inputCh, out, engine, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
