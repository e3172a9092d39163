package integer

import (
	"strconv"

	"github.com/calebcase/decint/magnitude"
)

// Int is a signed integer of arbitrary size. The zero value is 0.
type Int struct {
	// abs is the magnitude, or empty for zero so that Int{} is the only
	// representation of zero.
	abs string
	neg bool
}

var (
	zero = Int{}
	one  = Int{abs: magnitude.One}
)

// newInt returns an Int for the normalized magnitude abs, dropping the sign
// of zero.
func newInt(abs string, neg bool) Int {
	if abs == "" || magnitude.IsZero(abs) {
		return zero
	}

	return Int{abs: abs, neg: neg}
}

// mag returns the magnitude of x.
func (x Int) mag() string {
	if x.abs == "" {
		return magnitude.Zero
	}

	return x.abs
}

// New returns an Int with the value of i.
func New(i int64) Int {
	s := strconv.FormatInt(i, 10)
	if i < 0 {
		return newInt(s[1:], true)
	}

	return newInt(s, false)
}

// NewFromUint64 returns an Int with the value of u.
func NewFromUint64(u uint64) Int {
	return newInt(strconv.FormatUint(u, 10), false)
}

// Parse converts a decimal literal to an Int. The literal is an optional '+'
// or '-' followed by one or more digits:
//
//	sign    ::= '+' | '-'
//	digits  ::= ( '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' )+
//	literal ::= [sign] digits
//
// Leading zeros are allowed and "-0" parses as 0. Anything else returns
// ErrInvalidArgument.
func Parse(s string) (Int, error) {
	body, neg := s, false
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		neg = body[0] == '-'
		body = body[1:]
	}

	if !magnitude.Valid(body) {
		return Int{}, ErrInvalidArgument.New("expected an integer, got %q", s)
	}

	return newInt(magnitude.Strip(body), neg), nil
}

// Operand is the set of types accepted by Of.
type Operand interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		string | Int
}

// Of converts v to an Int. Strings are parsed with Parse.
//
// It allows mixing native values into arithmetic:
//
//	x, err := integer.Of("123456789012345678901234567890")
//	y := x.Mul(integer.MustOf(42))
func Of[T Operand](v T) (Int, error) {
	switch v := any(v).(type) {
	case Int:
		return v, nil
	case string:
		return Parse(v)
	case int:
		return New(int64(v)), nil
	case int8:
		return New(int64(v)), nil
	case int16:
		return New(int64(v)), nil
	case int32:
		return New(int64(v)), nil
	case int64:
		return New(v), nil
	case uint:
		return NewFromUint64(uint64(v)), nil
	case uint8:
		return NewFromUint64(uint64(v)), nil
	case uint16:
		return NewFromUint64(uint64(v)), nil
	case uint32:
		return NewFromUint64(uint64(v)), nil
	case uint64:
		return NewFromUint64(v), nil
	}

	return Int{}, Error.New("unsupported operand %T", v)
}

// Set sets z to x and returns z.
func (z *Int) Set(x Int) *Int {
	*z = x
	return z
}

// Sign returns -1, 0 or +1 depending on whether x is negative, zero or
// positive.
func (x Int) Sign() int {
	switch {
	case x.abs == "":
		return 0
	case x.neg:
		return -1
	}

	return 1
}

// IsZero reports whether x is 0.
func (x Int) IsZero() bool {
	return x.abs == ""
}

// IsNeg reports whether x is less than 0.
func (x Int) IsNeg() bool {
	return x.neg
}

// IsPos reports whether x is greater than 0.
func (x Int) IsPos() bool {
	return !x.neg && x.abs != ""
}

// Len returns the number of decimal digits in the magnitude of x. Zero has one
// digit.
func (x Int) Len() int {
	return len(x.mag())
}

// Digits returns the magnitude of x as a string of decimal digits.
func (x Int) Digits() string {
	return x.mag()
}

// Digit returns the digit at index i of the magnitude of x, counting from the
// most significant digit at index 0.
func (x Int) Digit(i int) (Int, error) {
	abs := x.mag()
	if i < 0 || i >= len(abs) {
		return Int{}, ErrOutOfRange.New("digit %d of %d digit value", i, len(abs))
	}

	return newInt(abs[i:i+1], false), nil
}
