package integer

import "github.com/zeebo/errs"

// Error is the class of general errors returned by this package.
var Error = errs.Class("integer")

var (
	// ErrInvalidArgument is returned for malformed integer literals.
	ErrInvalidArgument = errs.Class("invalid argument")

	// ErrDivisionByZero is returned when dividing by zero.
	ErrDivisionByZero = errs.Class("division by zero")

	// ErrOutOfRange is returned for digit indexes outside of the value.
	ErrOutOfRange = errs.Class("out of range")

	// ErrOverflow is returned when a value does not fit a native integer.
	ErrOverflow = errs.Class("overflow")
)
