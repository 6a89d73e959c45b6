package chain

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/ib-77/funbox/pkg/funbox/either"
)

type Chain[T any] struct {
	ctx context.Context
	id  uuid.UUID
	res either.Either[error, T]
}

func Start[T any](ctx context.Context, r either.Either[error, T]) Chain[T] {
	return Chain[T]{ctx: ctx, id: uuid.New(), res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, either.Right[error](v))
}

func FromResult[T any](ctx context.Context, v T, err error) Chain[T] {
	return Start(ctx, either.FromResult(v, err))
}

func (c Chain[T]) Result() either.Either[error, T] {
	return c.res
}

// ID returns the correlation id shared by every step of the chain.
func (c Chain[T]) ID() uuid.UUID {
	return c.id
}

func (c Chain[T]) Context() context.Context {
	return c.ctx
}

// Err returns the Left payload, or nil for a Right.
func (c Chain[T]) Err() error {
	if err, ok := c.res.GetLeft(); ok {
		return err
	}
	return nil
}

func (c Chain[T]) with(r either.Either[error, T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, id: c.id, res: r}
}

// halted reports whether no further step may run, turning a done context into a Left.
func (c Chain[T]) halted() (Chain[T], bool) {
	if c.res.IsLeft() {
		return c, true
	}
	if err := c.ctx.Err(); err != nil {
		return c.with(either.Left[T](err)), true
	}
	return c, false
}

// Then composes functions that already return an Either
func (c Chain[T]) Then(onRight func(ctx context.Context, t T) either.Either[error, T]) Chain[T] {
	if h, stop := c.halted(); stop {
		return h
	}
	return c.with(onRight(c.ctx, c.res.Value()))
}

// ThenTry composes functions that return (T, error), like repository calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if h, stop := c.halted(); stop {
		return h
	}
	v, err := try(c.ctx, c.res.Value())
	return c.with(either.FromResult(v, err))
}

// Map transforms the Right value
func (c Chain[T]) Map(onRight func(ctx context.Context, t T) T) Chain[T] {
	if h, stop := c.halted(); stop {
		return h
	}
	return c.with(either.Right[error](onRight(c.ctx, c.res.Value())))
}

// Ensure triggers side effects without changing the result
func (c Chain[T]) Ensure(onRight func(context.Context, T), onLeft func(context.Context, error)) Chain[T] {
	if v, ok := c.res.Get(); ok {
		if onRight != nil {
			onRight(c.ctx, v)
		}
		return c
	}
	if onLeft != nil {
		onLeft(c.ctx, c.Err())
	}
	return c
}

// Log writes the current state of the chain at debug level.
func (c Chain[T]) Log(logger *slog.Logger, msg string) Chain[T] {
	if logger == nil {
		return c
	}
	attrs := []any{slog.String("chain_id", c.id.String())}
	if v, ok := c.res.Get(); ok {
		attrs = append(attrs, slog.String("state", "right"), slog.Any("value", v))
	} else {
		attrs = append(attrs, slog.String("state", "left"), slog.Any("error", c.Err()))
	}
	logger.DebugContext(c.ctx, msg, attrs...)
	return c
}

// Or returns the first Right among c and the alternatives, else c's Left.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.res.IsRight() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsRight() {
			return alt
		}
	}
	return c
}

// And returns the first Left among c and the required chains, else the last one.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.res.IsLeft() {
			return ch
		}
		last = ch
	}
	return last
}

// RepeatUntil runs onRight at least once and keeps going while until holds.
func (c Chain[T]) RepeatUntil(onRight func(ctx context.Context, t T) either.Either[error, T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if h, stop := c.halted(); stop {
		return h
	}

	for {
		c = c.Then(onRight)

		if c.res.IsLeft() || !until(c.ctx, c.res.Value()) {
			return c
		}
	}
}

// While runs onRight for as long as the chain is Right and while holds.
func (c Chain[T]) While(onRight func(ctx context.Context, t T) either.Either[error, T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for c.res.IsRight() && while(c.ctx, c.res.Value()) {
		c = c.Then(onRight)
	}
	return c
}

// Finally collapses the chain to a final value
func (c Chain[T]) Finally(onRight func(context.Context, T) T, onLeft func(context.Context, error) T) T {
	return Finally(c, onRight, onLeft)
}
