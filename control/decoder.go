package control

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/calebcase/oops"
)

// Decoder reads control blocks.
//
// Next advances to the following block and reports false at the end of the
// input or on error (see Err). Data returns the bytes of the current block.
// Unread data is skipped by the next call to Next.
type Decoder interface {
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Consumed() uint64

	Size() (_ uint64, err error)
	Data() (data []byte, err error)
}

type decoder struct {
	r io.Reader

	consumed uint64

	value    [1]byte
	t        Type
	finished bool

	size uint64
	data []byte

	err error
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) Decoder {
	return &decoder{
		r:        r,
		finished: true,
	}
}

func (d *decoder) read(bs []byte) (err error) {
	n, err := io.ReadFull(d.r, bs)
	d.consumed += uint64(n)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return oops.Trace(err)
	}

	return nil
}

func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Ensure current block was fully read before moving on...
	if !d.finished {
		_, d.err = d.Data()
		if d.err != nil {
			return false
		}
	}

	// Reset state for next block.
	d.value[0] = 0
	d.t = Unknown
	d.size = 0
	d.data = nil
	d.finished = false

	n, err := io.ReadFull(d.r, d.value[:])
	d.consumed += uint64(n)
	if err != nil {
		if errors.Is(err, io.EOF) {
			d.finished = true
			return false
		}

		d.err = oops.Trace(err)

		return false
	}

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	switch t {
	case Data:
		d.data = []byte{d.value[0] & t.Mask}
		d.size = 1
		d.finished = true
	case Null:
		d.finished = true
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Size returns the number of data bytes in the current block.
func (d *decoder) Size() (_ uint64, err error) {
	defer func() {
		if err != nil {
			d.size = 0
			d.err = err
		}
	}()

	if d.size != 0 {
		return d.size, nil
	}

	switch d.t {
	case Data:
		d.size = 1
	case DataSize:
		d.size = uint64(d.value[0]&d.t.Mask) + 1
	case Data1:
		d.size = 2
	case Data2:
		d.size = 3
	case DataSizeSize:
		sizeSize := int(d.value[0]&d.t.Mask) + 1

		var buf [8]byte
		err = d.read(buf[8-sizeSize:])
		if err != nil {
			return 0, err
		}

		size := binary.BigEndian.Uint64(buf[:])
		if size >= math.MaxInt32 {
			return 0, Error.New("unimplemented: size >= 2^31")
		}

		d.size = size + 1
	default:
		return 0, oops.Trace(ErrInvalidOperation)
	}

	return d.size, nil
}

// Data reads the data bytes of the current block. If the block does not
// contain data it returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = nil
			d.err = err
		}
	}()

	if !d.t.IsData() {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	if d.finished {
		return d.data, nil
	}

	_, err = d.Size()
	if err != nil {
		return nil, err
	}

	switch d.t {
	case DataSize, DataSizeSize:
		d.data, err = d.readN(d.size)
	case Data1, Data2:
		d.data = make([]byte, d.size)
		d.data[0] = d.value[0] & d.t.Mask
		err = d.read(d.data[1:])
	}
	if err != nil {
		return nil, err
	}

	d.finished = true

	return d.data, nil
}

// readN reads n bytes, growing the buffer as data arrives so that a size
// header larger than the input does not allocate the whole size up front.
func (d *decoder) readN(n uint64) (data []byte, err error) {
	buf := &bytes.Buffer{}

	m, err := io.CopyN(buf, d.r, int64(n))
	d.consumed += uint64(m)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return nil, oops.Trace(err)
	}

	return buf.Bytes(), nil
}
