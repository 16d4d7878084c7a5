package oct

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/multidouble/eft"
)

// Error is the error class for this package.
var Error = errs.Class("oct")

// BinarySize is the length of the binary encoding of an oct.
const BinarySize = 32

// Parse reads one to four comma separated float64 literals, decimal or hex,
// as the leading terms of an oct. The terms are renormalized, so any
// overlapping float64 values are accepted.
func Parse(s string) (o Oct, err error) {
	fields := strings.Split(strings.TrimSpace(s), ",")
	if len(fields) > len(o.terms) {
		return o, Error.New("too many terms in %q", s)
	}

	var c [5]float64
	for i, f := range fields {
		c[i], err = strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return o, Error.Wrap(err)
		}
	}

	return Oct{terms: eft.Renormalize(sortTerms(c))}, nil
}

// sortTerms orders the terms by decreasing magnitude as Renormalize
// requires.
func sortTerms(c [5]float64) [5]float64 {
	for i := 1; i < len(c); i++ {
		for j := i; j > 0 && math.Abs(c[j]) > math.Abs(c[j-1]); j-- {
			c[j], c[j-1] = c[j-1], c[j]
		}
	}

	return c
}

// AppendHex appends the terms of o as exact hex floats separated by commas.
func AppendHex(dst []byte, o Oct) []byte {
	for i, t := range o.terms {
		if i > 0 {
			dst = append(dst, ',')
		}

		dst = strconv.AppendFloat(dst, t, 'x', -1, 64)
	}

	return dst
}

// String returns the exact terms of o as hex floats.
func (o Oct) String() string {
	return string(AppendHex(nil, o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Oct) MarshalText() (text []byte, err error) {
	return AppendHex(nil, o), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Oct) UnmarshalText(text []byte) (err error) {
	*o, err = Parse(string(text))

	return err
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is the
// IEEE 754 bits of each term in order, big endian.
func (o Oct) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 0, BinarySize)
	for _, t := range o.terms {
		data = binary.BigEndian.AppendUint64(data, math.Float64bits(t))
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (o *Oct) UnmarshalBinary(data []byte) (err error) {
	if len(data) != BinarySize {
		return Error.New("invalid binary length: %d", len(data))
	}

	for i := range o.terms {
		o.terms[i] = math.Float64frombits(binary.BigEndian.Uint64(data[i*8:]))
	}

	return nil
}
