package integer

import (
	"io"
	"math/big"

	"github.com/calebcase/decint/control"
)

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The magnitude is written big-endian and shifted left by one bit; the low
// bit holds the sign (1 for negative). For example -1 is 0b0000_0011 and
// +127 is 0b1111_1110.
func (x Int) MarshalBinary() (data []byte, err error) {
	i, ok := new(big.Int).SetString(x.mag(), 10)
	if !ok {
		return nil, Error.New("invalid magnitude %q", x.mag())
	}

	i.Lsh(i, 1)
	if x.neg {
		i.SetBit(i, 0, 1)
	}

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. A negative zero is
// read as 0.
func (z *Int) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("empty binary integer")
	}

	i := new(big.Int).SetBytes(data)

	neg := i.Bit(0) == 1
	i.Rsh(i, 1)

	*z = newInt(i.String(), neg)

	return nil
}

// Schema configures a stream Encoder or Decoder.
type Schema struct {
	// MaxDigits limits the number of decimal digits of each value. Zero
	// means no limit.
	MaxDigits uint64

	// Nullable allows nil values, written as null blocks.
	Nullable bool
}

// maxBytes returns the largest binary form of a value within MaxDigits, or
// zero if there is no limit. A d digit value needs at most d*log2(10) bits
// plus one for the sign.
func (s Schema) maxBytes() uint64 {
	if s.MaxDigits == 0 {
		return 0
	}

	return s.MaxDigits*3322/8000 + 2
}

func (s Schema) check(x *Int) error {
	if x == nil {
		if !s.Nullable {
			return Error.New("null value in non-nullable schema")
		}

		return nil
	}

	if s.MaxDigits > 0 && uint64(x.Len()) > s.MaxDigits {
		return Error.New("%d digits exceeds schema limit of %d", x.Len(), s.MaxDigits)
	}

	return nil
}

// Encoder writes integers as BSV control blocks.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode writes x as a single data block, or a null block if x is nil.
func (e *Encoder) Encode(x *Int) (err error) {
	err = e.schema.check(x)
	if err != nil {
		return err
	}

	if x == nil {
		return Error.Wrap(e.ce.Null())
	}

	data, err := x.MarshalBinary()
	if err != nil {
		return err
	}

	return Error.Wrap(e.ce.Data(data))
}

// Decoder reads integers written by an Encoder.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode reads the next integer. A null block decodes as nil. At the end of
// the stream it returns io.EOF.
func (d *Decoder) Decode() (x *Int, err error) {
	data, null, ok, err := d.next()
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, io.EOF
	}

	if !null {
		x = new(Int)

		err = x.UnmarshalBinary(data)
		if err != nil {
			return nil, err
		}
	}

	err = d.schema.check(x)
	if err != nil {
		return nil, err
	}

	return x, nil
}

func (d *Decoder) next() (data []byte, null, ok bool, err error) {
	defer Error.WrapP(&err)

	if !d.cd.Next() {
		return nil, false, false, d.cd.Err()
	}

	switch t := d.cd.Type(); {
	case t == control.Null:
		return nil, true, true, nil
	case t.IsData():
		var size uint64

		size, err = d.cd.Size()
		if err != nil {
			return nil, false, false, err
		}

		if limit := d.schema.maxBytes(); limit > 0 && size > limit {
			return nil, false, false, Error.New("%d byte value exceeds schema limit of %d digits", size, d.schema.MaxDigits)
		}

		data, err = d.cd.Data()
		if err != nil {
			return nil, false, false, err
		}

		return data, false, true, nil
	default:
		return nil, false, false, Error.New("unexpected block %s", t)
	}
}
