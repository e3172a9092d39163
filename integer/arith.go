package integer

import (
	"github.com/calebcase/decint/magnitude"
)

// Add returns x + y.
func (x Int) Add(y Int) Int {
	return add(x.mag(), x.neg, y.mag(), y.neg)
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return add(x.mag(), x.neg, y.mag(), !y.neg)
}

// add returns the sum of two signed magnitudes.
func add(a string, aneg bool, b string, bneg bool) Int {
	if aneg == bneg {
		return newInt(magnitude.Add(a, b), aneg)
	}

	// Differing signs: the larger magnitude decides the sign.
	switch magnitude.Compare(a, b) {
	case 1:
		return newInt(mustSub(a, b), aneg)
	case -1:
		return newInt(mustSub(b, a), bneg)
	}

	return zero
}

// mustSub subtracts magnitudes that have already been ordered.
func mustSub(a, b string) string {
	d, err := magnitude.Sub(a, b)
	if err != nil {
		panic(err)
	}

	return d
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	return newInt(magnitude.Mul(x.mag(), y.mag()), x.neg != y.neg)
}

// QuoRem returns the quotient x / y truncated toward zero and the remainder
// x - q*y, which has the sign of x. It returns ErrDivisionByZero if y is 0.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, ErrDivisionByZero.New("%s / 0", x)
	}

	qa, ra, err := magnitude.QuoRem(x.mag(), y.mag())
	if err != nil {
		return Int{}, Int{}, Error.Wrap(err)
	}

	return newInt(qa, x.neg != y.neg), newInt(ra, x.neg), nil
}

// Quo returns the quotient x / y truncated toward zero. It returns
// ErrDivisionByZero if y is 0.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder of x / y with the sign of x. It returns
// ErrDivisionByZero if y is 0.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// Neg returns -x.
func (x Int) Neg() Int {
	return newInt(x.abs, !x.neg)
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return newInt(x.abs, false)
}

// AddAssign sets z to z + y and returns z.
func (z *Int) AddAssign(y Int) *Int {
	*z = z.Add(y)
	return z
}

// SubAssign sets z to z - y and returns z.
func (z *Int) SubAssign(y Int) *Int {
	*z = z.Sub(y)
	return z
}

// MulAssign sets z to z * y and returns z.
func (z *Int) MulAssign(y Int) *Int {
	*z = z.Mul(y)
	return z
}

// QuoAssign sets z to z / y and returns z. On error z is unchanged.
func (z *Int) QuoAssign(y Int) (*Int, error) {
	q, err := z.Quo(y)
	if err != nil {
		return z, err
	}

	*z = q

	return z, nil
}

// RemAssign sets z to z % y and returns z. On error z is unchanged.
func (z *Int) RemAssign(y Int) (*Int, error) {
	r, err := z.Rem(y)
	if err != nil {
		return z, err
	}

	*z = r

	return z, nil
}

// Inc sets z to z + 1 and returns z.
func (z *Int) Inc() *Int {
	return z.AddAssign(one)
}

// Dec sets z to z - 1 and returns z.
func (z *Int) Dec() *Int {
	return z.SubAssign(one)
}
