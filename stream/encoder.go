package stream

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/calebcase/multidouble/oct"
	"github.com/calebcase/multidouble/quad"
)

// Encoder writes values to a stream.
type Encoder struct {
	w   io.Writer
	buf []byte
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w:   w,
		buf: make([]byte, 0, 1+8*maxTerms),
	}
}

// Encode writes the value with the given terms, ordered by decreasing
// magnitude. Trailing zero terms are dropped.
func (e *Encoder) Encode(terms ...float64) (err error) {
	for len(terms) > 0 && terms[len(terms)-1] == 0 && !math.Signbit(terms[len(terms)-1]) {
		terms = terms[:len(terms)-1]
	}

	if len(terms) > maxTerms {
		return Error.New("invalid: %d terms", len(terms))
	}

	e.buf = appendBlock(e.buf[:0], terms)

	_, err = e.w.Write(e.buf)
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

// EncodeQuad writes q.
func (e *Encoder) EncodeQuad(q quad.Quad) (err error) {
	return e.Encode(q.High(), q.Low())
}

// EncodeOct writes o.
func (e *Encoder) EncodeOct(o oct.Oct) (err error) {
	terms := o.Terms()

	return e.Encode(terms[:]...)
}

func appendBlock(dst []byte, terms []float64) []byte {
	if len(terms) == 0 {
		return append(dst, Small.Prefix)
	}

	if len(terms) == 1 {
		v := terms[0]

		switch {
		case math.IsNaN(v):
			return append(dst, Special.Prefix|specialNaN)
		case math.IsInf(v, 1):
			return append(dst, Special.Prefix|specialPosInf)
		case math.IsInf(v, -1):
			return append(dst, Special.Prefix|specialNegInf)
		case v == 0:
			// Positive zero has no terms left, so this is -0.
			return append(dst, Special.Prefix|specialNegZero)
		case v == math.Trunc(v) && math.Abs(v) <= smallLimit:
			return append(dst, Small.Prefix|byte(zigzag(int64(v))))
		case v == math.Trunc(v) && math.Abs(v) <= maxInteger:
			start := len(dst)
			dst = appendUint(append(dst, 0), zigzag(int64(v)))
			dst[start] = Integer.Prefix | byte(len(dst)-start-2)

			return dst
		}
	}

	dst = append(dst, Terms.Prefix|byte(len(terms)-1))
	for _, t := range terms {
		dst = binary.BigEndian.AppendUint64(dst, math.Float64bits(t))
	}

	return dst
}
