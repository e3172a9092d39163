package magnitude

// Add returns a + b.
func Add(a, b string) string {
	if len(a) < len(b) {
		a, b = b, a
	}

	// One extra position for the final carry.
	z := make([]byte, len(a)+1)

	var carry byte
	i, j := len(a)-1, len(b)-1
	for k := len(z) - 1; k > 0; k-- {
		sum := carry + (a[i] - '0')
		if j >= 0 {
			sum += b[j] - '0'
			j--
		}
		i--

		z[k] = sum%10 + '0'
		carry = sum / 10
	}

	if carry == 0 {
		return string(z[1:])
	}

	z[0] = carry + '0'

	return string(z)
}

// Sub returns a - b. It fails with ErrInvalidOperand when a < b.
func Sub(a, b string) (_ string, err error) {
	switch Compare(a, b) {
	case -1:
		return "", ErrInvalidOperand.New("%s - %s is negative", a, b)
	case 0:
		return Zero, nil
	}

	return sub(a, b), nil
}

// sub returns a - b for a >= b.
func sub(a, b string) string {
	z := make([]byte, len(a))

	var borrow byte
	j := len(b) - 1
	for i := len(a) - 1; i >= 0; i-- {
		n := a[i] - '0'

		m := borrow
		if j >= 0 {
			m += b[j] - '0'
			j--
		}

		if n < m {
			n += 10
			borrow = 1
		} else {
			borrow = 0
		}

		z[i] = n - m + '0'
	}

	return Strip(string(z))
}

// Mul returns a * b.
//
// Each non-zero digit of a, from the least significant, multiplies all of b.
// The partial product is shifted by the digit's position and accumulated with
// Add.
func Mul(a, b string) string {
	if IsZero(a) || IsZero(b) {
		return Zero
	}

	acc := Zero
	shift := 0
	for i := len(a) - 1; i >= 0; i-- {
		d := a[i] - '0'
		if d == 0 {
			shift++
			continue
		}

		acc = Add(acc, Shift(mulDigit(b, d), shift))
		shift++
	}

	return acc
}

// mulDigit returns b * d for a single digit d in 1..9.
func mulDigit(b string, d byte) string {
	z := make([]byte, len(b)+1)

	var carry byte
	for i := len(b) - 1; i >= 0; i-- {
		p := (b[i]-'0')*d + carry
		z[i+1] = p%10 + '0'
		carry = p / 10
	}

	if carry == 0 {
		return string(z[1:])
	}

	z[0] = carry + '0'

	return string(z)
}

// Quo returns the quotient a / b truncated toward zero.
func Quo(a, b string) (q string, err error) {
	q, _, err = QuoRem(a, b)
	return q, err
}

// Rem returns the remainder of a / b.
func Rem(a, b string) (r string, err error) {
	_, r, err = QuoRem(a, b)
	return r, err
}

// QuoRem returns the quotient and remainder of a / b. It fails with
// ErrDivisionByZero when b is "0".
//
// The digits of a are appended one at a time to a running prefix. After each
// digit, b is subtracted from the prefix for as long as the prefix is not
// less than b. The number of subtractions is the next quotient digit and the
// prefix left after the last digit is the remainder.
func QuoRem(a, b string) (q, r string, err error) {
	if IsZero(b) {
		return "", "", ErrDivisionByZero.New("%s / 0", a)
	}

	if IsZero(a) {
		return Zero, Zero, nil
	}

	switch Compare(a, b) {
	case -1:
		return Zero, a, nil
	case 0:
		return One, Zero, nil
	}

	digits := make([]byte, len(a))

	prefix := ""
	for i := 0; i < len(a); i++ {
		prefix = Strip(prefix + a[i:i+1])

		d := byte('0')
		for Compare(prefix, b) >= 0 {
			prefix = sub(prefix, b)
			d++
		}

		digits[i] = d
	}

	return Strip(string(digits)), prefix, nil
}
