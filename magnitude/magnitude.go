package magnitude

import (
	"strings"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("magnitude")

var (
	// ErrInvalidOperand is returned by Sub when the subtrahend is larger
	// than the minuend.
	ErrInvalidOperand = errs.Class("invalid operand")

	// ErrDivisionByZero is returned by the division operations when the
	// divisor is "0".
	ErrDivisionByZero = errs.Class("division by zero")
)

// Zero and One are the magnitudes 0 and 1.
const (
	Zero = "0"
	One  = "1"
)

// Strip removes leading zeros from digits. A string made only of zeros (or
// the empty string) collapses to "0".
func Strip(digits string) string {
	i := 0
	for i < len(digits) && digits[i] == '0' {
		i++
	}

	if i == len(digits) {
		return Zero
	}

	return digits[i:]
}

// Valid reports whether s is a non-empty string of decimal digits. Leading
// zeros are allowed.
func Valid(s string) bool {
	if len(s) == 0 {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to
// or greater than b.
func Compare(a, b string) int {
	switch {
	case len(a) > len(b):
		return 1
	case len(a) < len(b):
		return -1
	}

	// Equal length normalized digit strings order the same way as the
	// numbers they represent.
	return strings.Compare(a, b)
}

// IsZero reports whether a is the magnitude "0".
func IsZero(a string) bool {
	return a == Zero
}

// Shift multiplies a by 10^n by appending n zeros. Zero stays "0".
func Shift(a string, n int) string {
	if n <= 0 || IsZero(a) {
		return a
	}

	return a + strings.Repeat("0", n)
}
