package integer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode"

	"github.com/calebcase/oops"
)

// MaxTokenSize is the longest token, in bytes, read by a TokenReader.
const MaxTokenSize = 64 * 1024 * 1024

// Scan implements fmt.Scanner for the verbs %d, %s and %v. It reads one
// whitespace delimited token and parses it with Parse. A missing token sets
// z to 0 and reports io.EOF.
func (z *Int) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'd', 's', 'v':
	default:
		return Error.New("bad verb '%%%c' for integer.Int", verb)
	}

	tok, err := state.Token(true, func(r rune) bool {
		return !unicode.IsSpace(r)
	})
	if err != nil {
		return oops.Trace(err)
	}

	if len(tok) == 0 {
		*z = Int{}

		return io.EOF
	}

	x, err := Parse(string(tok))
	if err != nil {
		return err
	}

	*z = x

	return nil
}

// WriteTo implements io.WriterTo. It writes x as an optional '-' followed by
// its digits.
func (x Int) WriteTo(w io.Writer) (n int64, err error) {
	m, err := io.WriteString(w, x.String())
	if err != nil {
		return int64(m), oops.Trace(err)
	}

	return int64(m), nil
}

// TokenReader reads whitespace delimited integers from a stream.
type TokenReader struct {
	s *bufio.Scanner
}

// NewTokenReader returns a TokenReader reading from r.
func NewTokenReader(r io.Reader) *TokenReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), MaxTokenSize)
	s.Split(bufio.ScanWords)

	return &TokenReader{
		s: s,
	}
}

// Next parses the next token into z. When no token remains z is set to 0 and
// io.EOF is returned. Malformed tokens return ErrInvalidArgument and leave z
// unchanged.
func (tr *TokenReader) Next(z *Int) (err error) {
	if !tr.s.Scan() {
		err = tr.s.Err()
		if err != nil {
			return oops.Trace(err)
		}

		*z = Int{}

		return io.EOF
	}

	x, err := Parse(tr.s.Text())
	if err != nil {
		return err
	}

	*z = x

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Int) UnmarshalText(text []byte) error {
	x, err := Parse(string(text))
	if err != nil {
		return err
	}

	*z = x

	return nil
}

// MarshalJSON implements json.Marshaler. The value is written as a JSON
// number.
func (x Int) MarshalJSON() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler. Both JSON numbers and JSON
// strings holding an integer literal are accepted. A JSON null leaves z
// unchanged.
func (z *Int) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if string(data) == "null" {
		return nil
	}

	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}

	return z.UnmarshalText(data)
}
