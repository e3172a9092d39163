/*
Package integer implements arbitrary precision signed integers stored as
decimal digit strings.

# Representation

[Int] is a value type with two fields: a magnitude, which is a string of
decimal digits without leading zeros (see package magnitude), and a sign. The
zero value of [Int] is 0 and is ready to use. Zero is never negative, so "-0"
is neither stored nor printed.

Values are immutable. Arithmetic methods such as [Int.Add] and [Int.Mul]
return a new [Int] and leave their operands untouched. The compound methods
on *Int, such as [Int.AddAssign], compute a new value and then replace the
receiver with it; on error the receiver is left unchanged. Because Go strings
are immutable, copies of an [Int] never alias mutable state and distinct
values may be read from several goroutines at once. Mutating the same *Int
from several goroutines must be serialized by the caller.

# Operations

Every signed operation resolves the sign with a small decision table and
delegates the digits to one or two magnitude operations:

  - [Int.Add], [Int.Sub]: magnitude addition for equal signs, otherwise
    subtraction of the smaller magnitude from the larger.
  - [Int.Mul]: magnitude multiplication, the sign is the XOR of the signs.
  - [Int.Quo], [Int.Rem], [Int.QuoRem]: truncated division. The quotient sign
    is the XOR of the signs and the remainder takes the sign of the dividend,
    so that Quo(a, b)*b + Rem(a, b) == a.

Division by zero is reported as [ErrDivisionByZero] rather than panicking.

Multiplication is schoolbook long multiplication and division is long
division by repeated subtraction. Both are O(n*m) in the number of digits,
which is fine for values with hundreds of digits and slow for much more.

# Conversions

  - from/to string: [Parse], [MustParse], [Int.String], [Int.Format].
  - from/to int64: [New], [Int.Int64], [Int.Int32], [Int.Int].
  - from any native integer or string: [Of].
  - text streams: [Int.Scan] (fmt.Scanner), [Int.WriteTo], [TokenReader].
  - encodings: text, JSON and binary marshaling, and the BSV stream
    [Encoder] and [Decoder].

# Errors

Errors are [github.com/zeebo/errs] classes. Test for a condition with its
class:

	if integer.ErrDivisionByZero.Has(err) {
		...
	}
*/
package integer
