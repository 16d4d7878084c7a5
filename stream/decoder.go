package stream

import (
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/calebcase/multidouble/oct"
	"github.com/calebcase/multidouble/quad"
)

// ErrTooManyTerms is returned when a value does not fit the requested type.
var ErrTooManyTerms = Error.New("too many terms")

// Decoder reads values from a stream.
//
//	d := stream.NewDecoder(r)
//	for d.Next() {
//		v := d.Oct()
//		...
//	}
//	if err := d.Err(); err != nil {
//		...
//	}
type Decoder struct {
	r io.Reader

	consumed uint64

	value [1]byte
	t     Type
	data  [8 * maxTerms]byte

	terms [maxTerms]float64
	n     int

	err error
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r: r,
	}
}

// Next reads the next value. It returns false at the end of the stream or
// on error.
func (d *Decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	d.t = Unknown
	d.terms = [maxTerms]float64{}
	d.n = 0

	_, d.err = io.ReadFull(d.r, d.value[:])
	if d.err != nil {
		if errors.Is(d.err, io.EOF) {
			d.err = nil

			return false
		}

		d.err = Error.Wrap(d.err)

		return false
	}

	d.consumed++

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	d.t = t
	param := d.value[0] & t.Mask

	switch t {
	case Small:
		d.set(float64(unzigzag(uint64(param))))
	case Integer:
		data, err := d.read(int(param) + 1)
		if err != nil {
			d.err = err

			return false
		}

		d.set(float64(unzigzag(parseUint(data))))
	case Terms:
		n := int(param) + 1

		data, err := d.read(8 * n)
		if err != nil {
			d.err = err

			return false
		}

		for i := 0; i < n; i++ {
			d.terms[i] = math.Float64frombits(binary.BigEndian.Uint64(data[8*i:]))
		}

		d.n = n
	case Special:
		switch param {
		case specialNaN:
			d.set(math.NaN())
		case specialPosInf:
			d.set(math.Inf(1))
		case specialNegInf:
			d.set(math.Inf(-1))
		case specialNegZero:
			d.set(math.Copysign(0, -1))
		}
	}

	return true
}

func (d *Decoder) set(v float64) {
	d.terms[0] = v
	d.n = 1
}

func (d *Decoder) read(size int) (data []byte, err error) {
	data = d.data[:size]

	n, err := io.ReadFull(d.r, data)
	d.consumed += uint64(n)

	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return nil, Error.Wrap(err)
	}

	return data, nil
}

// Err returns the first error encountered.
func (d *Decoder) Err() (err error) {
	return d.err
}

// Type returns the block type of the current value.
func (d *Decoder) Type() Type {
	return d.t
}

// Consumed returns the number of bytes read so far.
func (d *Decoder) Consumed() uint64 {
	return d.consumed
}

// Terms returns the stored terms of the current value. Trailing zero terms
// are not included.
func (d *Decoder) Terms() []float64 {
	return d.terms[:d.n]
}

// Quad returns the current value as a quad. It fails if the value has more
// than two terms.
func (d *Decoder) Quad() (q quad.Quad, err error) {
	if d.n > 2 {
		return q, ErrTooManyTerms
	}

	return quad.New(d.terms[0], d.terms[1]), nil
}

// Oct returns the current value as an oct.
func (d *Decoder) Oct() oct.Oct {
	return oct.FromTerms(d.terms)
}
