package ordersvc

import (
	"errors"
	"fmt"
)

// ErrOrderNotFound is returned when the requested order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// ValidationError marks failures the caller can fix: a bad request or a
// reference to a user or product the upstream services do not know.
// The HTTP layer maps it to a 400 response.
type ValidationError struct {
	msg string
	err error
}

func (e *ValidationError) Error() string {
	return e.msg
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

func newValidationError(err error, format string, args ...any) *ValidationError {
	return &ValidationError{
		msg: fmt.Sprintf(format, args...),
		err: err,
	}
}
