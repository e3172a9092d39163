package control

import (
	"encoding/binary"
	"io"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("control")

// ErrInvalidOperation is returned when a decoder method is called on a block
// that does not support it.
var ErrInvalidOperation = Error.New("invalid operation")

// Encoder writes control blocks.
type Encoder interface {
	Data(data []byte) (err error)
	Null() (err error)
	Produced() uint64
}

type encoder struct {
	w io.Writer

	produced uint64
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	return &encoder{
		w: w,
	}
}

func (e *encoder) write(bs []byte) (err error) {
	n, err := e.w.Write(bs)
	e.produced += uint64(n)
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}

// Data writes data using the smallest block type able to hold it.
func (e *encoder) Data(data []byte) (err error) {
	size := len(data)

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && data[0]&Data.Mask == data[0]:
		return e.write([]byte{
			Data.Prefix | data[0],
		})
	case size == 2 && data[0]&Data1.Mask == data[0]:
		return e.write([]byte{
			Data1.Prefix | data[0],
			data[1],
		})
	case size == 3 && data[0]&Data2.Mask == data[0]:
		return e.write([]byte{
			Data2.Prefix | data[0],
			data[1],
			data[2],
		})
	case size <= 64:
		return e.write(append(
			[]byte{DataSize.Prefix | byte(size-1)},
			data...,
		))
	}

	// Big-endian size-1 without leading zero bytes.
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(size-1))

	sb := buf[:]
	for len(sb) > 1 && sb[0] == 0 {
		sb = sb[1:]
	}

	err = e.write(append(
		[]byte{DataSizeSize.Prefix | byte(len(sb)-1)},
		sb...,
	))
	if err != nil {
		return err
	}

	return e.write(data)
}

// Null writes a null block.
func (e *encoder) Null() (err error) {
	return e.write([]byte{Null.Prefix})
}

// Produced returns the number of bytes written so far.
func (e *encoder) Produced() uint64 {
	return e.produced
}
