package quad

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/multidouble/eft"
)

// Error is the error class for this package.
var Error = errs.Class("quad")

const (
	// parseScaleStep is the largest power of ten applied at once when
	// scaling a parsed decimal.
	parseScaleStep = 280

	// parseMaxDigits is the number of significant digits accumulated. Later
	// digits lie below quad precision.
	parseMaxDigits = 40

	// parseExpLimit clamps the written exponent so the exponent arithmetic
	// cannot overflow.
	parseExpLimit = 1 << 20

	// Decimal magnitudes outside of these bounds overflow to infinity or
	// underflow to zero without scaling.
	parseMaxMagnitude = 309
	parseMinMagnitude = -325
)

// Parse converts a string to a quad. Accepted forms are:
//
//  hi,lo     two float64 literals (decimal or hex), as written by MarshalText
//  0x1.8p+1  a single float64 hex literal, inf or nan
//  3.14159…  a decimal literal of any length with an optional exponent
//
// Decimal digits are accumulated in quad arithmetic so literals with more
// digits than a float64 holds keep their precision.
func Parse(s string) (q Quad, err error) {
	s = strings.TrimSpace(s)

	if hi, lo, ok := strings.Cut(s, ","); ok {
		h, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
		if err != nil {
			return q, Error.Wrap(err)
		}

		l, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
		if err != nil {
			return q, Error.Wrap(err)
		}

		if !finite(h) {
			return Quad{hi: h}, nil
		}

		h, l = eft.TwoSum(h, l)

		return Quad{hi: h, lo: l}, nil
	}

	if isSpecial(s) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return q, Error.Wrap(err)
		}

		return Quad{hi: v}, nil
	}

	return parseDecimal(s)
}

// isSpecial reports whether s is a hex float, an infinity or a NaN, which
// float64 parsing handles exactly.
func isSpecial(s string) bool {
	t := strings.ToLower(strings.TrimLeft(s, "+-"))

	return strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "inf") || t == "nan"
}

func parseDecimal(s string) (q Quad, err error) {
	i := 0

	negative := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		negative = s[i] == '-'
		i++
	}

	var (
		digits      int
		significant int
		fraction    int
		extra       int
		dot         bool
	)

scan:
	for ; i < len(s); i++ {
		c := s[i]

		switch {
		case c >= '0' && c <= '9':
			digits++

			switch {
			case significant < parseMaxDigits:
				if c != '0' || significant > 0 {
					significant++
				}

				q = q.MulFloat(10).AddFloat(float64(c - '0'))
				if dot {
					fraction++
				}
			case !dot:
				extra++
			}
		case c == '.' && !dot:
			dot = true
		case c == '_' && digits > 0:
		default:
			break scan
		}
	}

	if digits == 0 {
		return Zero, Error.New("invalid syntax %q", s)
	}

	exp := 0
	if i < len(s) {
		if s[i] != 'e' && s[i] != 'E' {
			return Zero, Error.New("invalid syntax %q", s)
		}

		exp, err = strconv.Atoi(s[i+1:])
		if err != nil {
			return Zero, Error.New("invalid exponent in %q", s)
		}
	}

	switch {
	case exp > parseExpLimit:
		exp = parseExpLimit
	case exp < -parseExpLimit:
		exp = -parseExpLimit
	}

	exp += extra - fraction

	switch {
	case q.IsZero():
	case exp+decimalExponent(q.hi) > parseMaxMagnitude:
		q = inf(1)
	case exp+decimalExponent(q.hi) < parseMinMagnitude:
		q = Zero
	default:
		q = scaleDecimal(q, exp)
	}

	if negative {
		q = q.Neg()
	}

	return q, nil
}

// scaleDecimal returns q * 10^exp. It scales in steps so the power of ten
// stays finite when the digits carry part of the magnitude.
func scaleDecimal(q Quad, exp int) Quad {
	for exp < -parseScaleStep {
		q = q.Div(PowInt(ten, parseScaleStep))
		exp += parseScaleStep
	}

	for exp > parseScaleStep {
		q = q.Mul(PowInt(ten, parseScaleStep))
		exp -= parseScaleStep
	}

	if exp < 0 {
		return q.Div(PowInt(ten, -exp))
	}

	return q.Mul(PowInt(ten, exp))
}

// appendHex appends the terms as exact hex floats separated by commas.
func appendHex(dst []byte, terms ...float64) []byte {
	for i, t := range terms {
		if i > 0 {
			dst = append(dst, ',')
		}

		dst = strconv.AppendFloat(dst, t, 'x', -1, 64)
	}

	return dst
}

// MarshalText implements encoding.TextMarshaler. The text is the exact pair
// of hex floats.
func (q Quad) MarshalText() (text []byte, err error) {
	return appendHex(nil, q.hi, q.lo), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts any form
// Parse does.
func (q *Quad) UnmarshalText(text []byte) (err error) {
	*q, err = Parse(string(text))

	return err
}

// BinarySize is the length of the binary encoding of a quad.
const BinarySize = 16

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is the
// IEEE 754 bits of the high then the low part, big endian.
func (q Quad) MarshalBinary() (data []byte, err error) {
	data = make([]byte, BinarySize)
	binary.BigEndian.PutUint64(data[0:8], math.Float64bits(q.hi))
	binary.BigEndian.PutUint64(data[8:16], math.Float64bits(q.lo))

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (q *Quad) UnmarshalBinary(data []byte) (err error) {
	if len(data) != BinarySize {
		return Error.New("invalid binary length: %d", len(data))
	}

	q.hi = math.Float64frombits(binary.BigEndian.Uint64(data[0:8]))
	q.lo = math.Float64frombits(binary.BigEndian.Uint64(data[8:16]))

	return nil
}
