package stream

import (
	"context"

	"github.com/ib-77/funbox/pkg/funbox/either"
)

// Bind runs onRight for every Right. Lefts pass through untouched.
func Bind[In, Out any](ctx context.Context, inputCh <-chan either.Either[error, In],
	onRight func(ctx context.Context, r In) either.Either[error, Out], count int) <-chan either.Either[error, Out] {

	return Run(ctx, inputCh, func(ctx context.Context, in either.Either[error, In]) either.Either[error, Out] {
		return either.Bind(in, func(r In) either.Either[error, Out] {
			return onRight(ctx, r)
		})
	}, count)
}

func FMap[In, Out any](ctx context.Context, inputCh <-chan either.Either[error, In],
	onRight func(ctx context.Context, r In) Out, count int) <-chan either.Either[error, Out] {

	return Run(ctx, inputCh, func(ctx context.Context, in either.Either[error, In]) either.Either[error, Out] {
		return either.FMap(in, func(r In) Out {
			return onRight(ctx, r)
		})
	}, count)
}

func Try[In, Out any](ctx context.Context, inputCh <-chan either.Either[error, In],
	onTryExecute func(ctx context.Context, r In) (Out, error), count int) <-chan either.Either[error, Out] {

	return Run(ctx, inputCh, func(ctx context.Context, in either.Either[error, In]) either.Either[error, Out] {
		return either.Try(in, func(r In) (Out, error) {
			return onTryExecute(ctx, r)
		})
	}, count)
}

// Validate turns a Right into a Left carrying errMsg when validate rejects it.
func Validate[T any](ctx context.Context, inputCh <-chan either.Either[error, T],
	validate func(ctx context.Context, r T) (valid bool, errMsg string), count int) <-chan either.Either[error, T] {

	return Run(ctx, inputCh, func(ctx context.Context, in either.Either[error, T]) either.Either[error, T] {
		return either.Validate(in, func(r T) (bool, string) {
			return validate(ctx, r)
		})
	}, count)
}

// Tee calls onRight for every Right and onLeft, when non-nil, for every Left.
// Values are forwarded unchanged.
func Tee[T any](ctx context.Context, inputCh <-chan either.Either[error, T],
	onRight func(ctx context.Context, r T), onLeft func(ctx context.Context, err error), count int) <-chan either.Either[error, T] {

	return Run(ctx, inputCh, func(ctx context.Context, in either.Either[error, T]) either.Either[error, T] {
		return either.DoubleTee(in,
			func(r T) { onRight(ctx, r) },
			func(err error) {
				if onLeft != nil {
					onLeft(ctx, err)
				}
			})
	}, count)
}

// Fold collapses every value with the handler matching its variant. Values
// still queued after cancellation go to onLeft when ProcessRemaining is on.
func Fold[In, Out any](ctx context.Context, inputCh <-chan either.Either[error, In],
	onRight func(ctx context.Context, r In) Out,
	onLeft func(ctx context.Context, err error) Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		fold := func(in either.Either[error, In]) Out {
			return either.Fold(in,
				func(r In) Out { return onRight(ctx, r) },
				func(err error) Out { return onLeft(ctx, err) })
		}

		// pending, when non-nil, was received but not yet emitted.
		cancelRemaining := func(pending *either.Either[error, In]) {
			if !IsProcessRemainingEnabled(ctx, true) {
				return
			}
			if pending != nil {
				out <- fold(cancelled[In, In](ctx, *pending))
			}
			for rest := range inputCh {
				out <- fold(cancelled[In, In](ctx, rest))
			}
		}

		for {
			select {
			case <-ctx.Done():
				cancelRemaining(nil)
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}
				if ctx.Err() != nil {
					cancelRemaining(&in)
					return
				}
				select {
				case out <- fold(in):
				case <-ctx.Done():
					cancelRemaining(&in)
					return
				}
			}
		}
	}()

	return out
}

// Split sends Right payloads to rights and Left payloads to lefts. Both
// channels have to be drained concurrently.
func Split[T any](ctx context.Context, inputCh <-chan either.Either[error, T]) (<-chan T, <-chan error) {
	rights := make(chan T)
	lefts := make(chan error)

	go func() {
		defer close(rights)
		defer close(lefts)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}
				if v, isRight := in.Get(); isRight {
					select {
					case rights <- v:
					case <-ctx.Done():
						return
					}
				} else {
					select {
					case lefts <- in.Message():
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()

	return rights, lefts
}

// Partition sends values passing pred to matches and the rest to rest.
// Both channels have to be drained concurrently.
func Partition[T any](ctx context.Context, inputCh <-chan T, pred func(T) bool) (<-chan T, <-chan T) {
	matches := make(chan T)
	rest := make(chan T)

	go func() {
		defer close(matches)
		defer close(rest)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}
				target := rest
				if pred(in) {
					target = matches
				}
				select {
				case target <- in:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return matches, rest
}
