package funbox

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// MonadError reports a violation of a monad's contract, e.g. unwrapping a
// Nothing without checking it first.
type MonadError struct {
	Msg string
}

func (e *MonadError) Error() string {
	return "monad: " + e.Msg
}

// Fail raises a MonadError. It never returns.
func Fail(msg string) {
	panic(&MonadError{Msg: msg})
}

func Failf(format string, args ...any) {
	Fail(fmt.Sprintf(format, args...))
}

// AsMonadError reports whether a recovered panic value is a MonadError.
func AsMonadError(recovered any) (*MonadError, bool) {
	err, ok := recovered.(error)
	if !ok {
		return nil, false
	}
	var me *MonadError
	if errors.As(err, &me) {
		return me, true
	}
	return nil, false
}

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// GetErrors unpacks an error produced by errors.Join.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
