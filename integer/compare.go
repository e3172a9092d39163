package integer

import "github.com/calebcase/decint/magnitude"

// Cmp returns -1, 0 or +1 depending on whether x is less than, equal to or
// greater than y.
func (x Int) Cmp(y Int) int {
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	}

	c := magnitude.Compare(x.mag(), y.mag())
	if x.neg {
		return -c
	}

	return c
}

// Equal reports whether x == y.
func (x Int) Equal(y Int) bool {
	return x == y
}

// Less reports whether x < y.
func (x Int) Less(y Int) bool {
	return x.Cmp(y) < 0
}

// LessOrEqual reports whether x <= y.
func (x Int) LessOrEqual(y Int) bool {
	return x.Cmp(y) <= 0
}

// Greater reports whether x > y.
func (x Int) Greater(y Int) bool {
	return x.Cmp(y) > 0
}

// GreaterOrEqual reports whether x >= y.
func (x Int) GreaterOrEqual(y Int) bool {
	return x.Cmp(y) >= 0
}

// Min returns the smaller of x and y.
func (x Int) Min(y Int) Int {
	if y.Less(x) {
		return y
	}

	return x
}

// Max returns the larger of x and y.
func (x Int) Max(y Int) Int {
	if y.Greater(x) {
		return y
	}

	return x
}
