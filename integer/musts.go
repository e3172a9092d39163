package integer

import "fmt"

// MustParse is like Parse but panics if the literal is malformed.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}

	return x
}

// MustOf is like Of but panics on error.
func MustOf[T Operand](v T) Int {
	x, err := Of(v)
	if err != nil {
		panic(fmt.Sprintf("MustOf(%v) failed: %v", v, err))
	}

	return x
}

// MustQuo is like Quo but panics on division by zero.
func (x Int) MustQuo(y Int) Int {
	q, err := x.Quo(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", y, err))
	}

	return q
}

// MustRem is like Rem but panics on division by zero.
func (x Int) MustRem(y Int) Int {
	r, err := x.Rem(y)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", y, err))
	}

	return r
}
