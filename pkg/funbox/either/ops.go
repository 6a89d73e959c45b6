package either

import "errors"

func Bind[L, In, Out any](input Either[L, In], onRight func(r In) Either[L, Out]) Either[L, Out] {
	if input.isRight {
		return onRight(input.right)
	}
	return Left[Out](input.left)
}

func FMap[L, In, Out any](input Either[L, In], onRight func(r In) Out) Either[L, Out] {
	return Bind(input, func(r In) Either[L, Out] {
		return Right[L](onRight(r))
	})
}

// MapLeft transforms the failure payload; a Right passes through.
func MapLeft[L, M, R any](input Either[L, R], onLeft func(l L) M) Either[M, R] {
	if input.isRight {
		return Right[M](input.right)
	}
	return Left[R](onLeft(input.left))
}

func Join[L, R any](input Either[L, Either[L, R]]) Either[L, R] {
	return Bind(input, func(inner Either[L, R]) Either[L, R] {
		return inner
	})
}

// LiftM lifts f to operate on Either values.
func LiftM[L, In, Out any](f func(In) Out) func(Either[L, In]) Either[L, Out] {
	return func(e Either[L, In]) Either[L, Out] {
		return FMap(e, f)
	}
}

// Try calls onTryExecute for a Right and converts a non-nil error to Left.
func Try[In, Out any](input Either[error, In],
	onTryExecute func(r In) (Out, error)) Either[error, Out] {

	if !input.isRight {
		return Left[Out](input.left)
	}

	out, err := onTryExecute(input.right)
	if err != nil {
		return Left[Out](err)
	}
	return Right[error](out)
}

func FailOnError[R any](input Either[error, R], maybeErr func(in R) error) Either[error, R] {
	if input.isRight {
		if err := maybeErr(input.right); err != nil {
			return Left[R](err)
		}
	}
	return input
}

// Validate fails a Right with errMsg when validate reports it invalid.
func Validate[R any](input Either[error, R],
	validate func(in R) (valid bool, errMsg string)) Either[error, R] {

	if input.isRight {
		if valid, errMsg := validate(input.right); !valid {
			return Left[R](errors.New(errMsg))
		}
	}
	return input
}

func Tee[L, R any](input Either[L, R], onRight func(r R)) Either[L, R] {
	if input.isRight {
		onRight(input.right)
	}
	return input
}

func DoubleTee[L, R any](input Either[L, R], onRight func(r R), onLeft func(l L)) Either[L, R] {
	if input.isRight {
		if onRight != nil {
			onRight(input.right)
		}
	} else if onLeft != nil {
		onLeft(input.left)
	}
	return input
}

// Fold collapses the value with the handler matching its variant.
func Fold[L, R, Out any](input Either[L, R], onRight func(r R) Out, onLeft func(l L) Out) Out {
	if input.isRight {
		return onRight(input.right)
	}
	return onLeft(input.left)
}

// Partition splits a slice of Either values into the Right and Left payloads.
func Partition[L, R any](items []Either[L, R]) (rights []R, lefts []L) {
	for _, item := range items {
		if item.isRight {
			rights = append(rights, item.right)
		} else {
			lefts = append(lefts, item.left)
		}
	}
	return rights, lefts
}

// Sequence returns Right of all payloads, or the first Left.
func Sequence[L, R any](items []Either[L, R]) Either[L, []R] {
	out := make([]R, 0, len(items))
	for _, item := range items {
		if !item.isRight {
			return Left[[]R](item.left)
		}
		out = append(out, item.right)
	}
	return Right[L](out)
}
