package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

// The geometry functions are total over finite input and return plain values.
// Non-finite input is a precondition violation, so rather than threading an
// error through every predicate we panic, and the public API recovers and
// converts the panic to an error.

var ErrNonFinite = errors.New("coordinate is not finite")

// InvalidInputError reports which point (by argument position) was rejected.
type InvalidInputError struct {
	Index int
	Point Point
	cause error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("point %d (%v, %v): %v", e.Index+1, e.Point.X, e.Point.Y, e.cause)
}

func (e *InvalidInputError) Cause() error {
	return e.cause
}

func (e *InvalidInputError) Unwrap() error {
	return e.cause
}

func throwInvalidInput(index int, p Point) {
	panic(&InvalidInputError{Index: index, Point: p, cause: ErrNonFinite})
}

// Convert a recovered value to an error. Anything that isn't one of our own
// errors is a real panic, and is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r == nil {
		return nil
	}
	if invalid, ok := r.(*InvalidInputError); ok {
		return invalid
	}
	panic(r)
}
