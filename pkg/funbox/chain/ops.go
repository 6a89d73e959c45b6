package chain

import (
	"context"
	"errors"

	"github.com/ib-77/funbox/pkg/funbox"
	"github.com/ib-77/funbox/pkg/funbox/either"
)

// Then chains a function that returns either.Either[error, U]
func Then[T, U any](c Chain[T], onRight func(context.Context, T) either.Either[error, U]) Chain[U] {
	if h, stop := c.halted(); stop {
		return Chain[U]{ctx: h.ctx, id: h.id, res: either.Left[U](h.Err())}
	}
	return Chain[U]{ctx: c.ctx, id: c.id, res: onRight(c.ctx, c.res.Value())}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c Chain[T], try func(context.Context, T) (U, error)) Chain[U] {
	return Then(c, func(ctx context.Context, t T) either.Either[error, U] {
		u, err := try(ctx, t)
		return either.FromResult(u, err)
	})
}

// Map chains a pure transformation function
func Map[T, U any](c Chain[T], onRight func(context.Context, T) U) Chain[U] {
	return Then(c, func(ctx context.Context, t T) either.Either[error, U] {
		return either.Right[error](onRight(ctx, t))
	})
}

// Finally collapses the chain into a final value
func Finally[T, U any](c Chain[T], onRight func(context.Context, T) U, onLeft func(context.Context, error) U) U {
	return either.Fold(c.res,
		func(t T) U { return onRight(c.ctx, t) },
		func(err error) U { return onLeft(c.ctx, err) })
}

// ValidateAll runs validators against the chain's value. With breakOnError
// the first failure stops the run; otherwise every failure is collected
// with errors.Join.
func ValidateAll[T any](c Chain[T], breakOnError bool,
	validators ...func(ctx context.Context, in T) error) Chain[T] {

	if h, stop := c.halted(); stop {
		return h
	}

	var err error
	for _, validate := range validators {
		if ctxErr := c.ctx.Err(); ctxErr != nil {
			return c.with(either.Left[T](ctxErr))
		}

		if vErr := validate(c.ctx, c.res.Value()); vErr != nil {
			e := funbox.GetErrors(err)
			e = append(e, vErr)
			err = errors.Join(e...)

			if breakOnError {
				break
			}
		}
	}

	if err != nil {
		return c.with(either.Left[T](err))
	}
	return c
}
