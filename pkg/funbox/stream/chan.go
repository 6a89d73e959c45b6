package stream

import (
	"context"

	"github.com/ib-77/funbox/pkg/funbox/either"
)

// ToChanFromArgs emits values in order and closes the channel when done or
// when the context is.
func ToChanFromArgs[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func ToChan[T any](ctx context.Context, value T) <-chan T {
	return ToChanFromArgs(ctx, value)
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	return ToChanFromArgs(ctx, values...)
}

// ToChanManyRights wraps every value in Right.
func ToChanManyRights[T any](ctx context.Context, values []T) <-chan either.Either[error, T] {
	wrapped := make([]either.Either[error, T], len(values))
	for i, v := range values {
		wrapped[i] = either.Right[error](v)
	}
	return ToChanFromArgs(ctx, wrapped...)
}

// FromChanMany collects values until the channel closes. Once the context is
// done it keeps reading, so the Lefts emitted for cancelled values are
// collected and the stages feeding out can exit. out must be closed by its
// producer; every stage in this package closes its output after cancellation.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			for v := range out {
				res = append(res, v)
			}
			return res
		}
	}
}

func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}
