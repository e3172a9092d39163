package integer

import (
	"fmt"
	"strconv"
)

// String returns x in decimal with a leading '-' when negative.
func (x Int) String() string {
	if x.neg {
		return "-" + x.abs
	}

	return x.mag()
}

// Int64 returns x as an int64. It returns ErrOverflow if x does not fit.
func (x Int) Int64() (int64, error) {
	return x.parseInt(64)
}

// Int32 returns x as an int32. It returns ErrOverflow if x does not fit.
func (x Int) Int32() (int32, error) {
	i, err := x.parseInt(32)
	return int32(i), err
}

// Int returns x as an int. It returns ErrOverflow if x does not fit.
func (x Int) Int() (int, error) {
	i, err := x.parseInt(strconv.IntSize)
	return int(i), err
}

func (x Int) parseInt(bitSize int) (int64, error) {
	i, err := strconv.ParseInt(x.String(), 10, bitSize)
	if err != nil {
		return 0, ErrOverflow.New("%s does not fit in %d bits", x, bitSize)
	}

	return i, nil
}

// Format implements fmt.Formatter. The following verbs are available:
//
//	%d, %s, %v: -123
//	%q:        "-123"
//
// The flags '+' and ' ' print a sign for non-negative values, '-' pads on the
// right and '0' pads with zeros between the sign and the digits.
func (x Int) Format(state fmt.State, verb rune) {
	abs := x.mag()

	// Arithmetic sign
	var sign byte
	switch {
	case x.neg:
		sign = '-'
	case state.Flag('+'):
		sign = '+'
	case state.Flag(' '):
		sign = ' '
	}

	rsign := 0
	if sign != 0 {
		rsign = 1
	}

	// Quotes
	quotes := 0
	if verb == 'q' {
		quotes = 1
	}

	// Padding
	width := quotes + rsign + len(abs) + quotes
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && verb != 'q':
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if quotes > 0 {
		buf = append(buf, '"')
	}
	if rsign > 0 {
		buf = append(buf, sign)
	}
	for i := 0; i < lzeroes; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, abs...)
	if quotes > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	switch verb {
	case 'd', 's', 'v', 'q':
		state.Write(buf)
	default:
		fmt.Fprintf(state, "%%!%c(integer.Int=%s)", verb, x.String())
	}
}
