package quad

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultPrecision is the number of fractional digits String prints.
	DefaultPrecision = 30

	// MaxPrecision is the largest number of fractional digits printed. Digits
	// beyond it carry no information.
	MaxPrecision = 35

	// floatPrecision is the largest precision delegated to float64
	// formatting.
	floatPrecision = 14

	// digitSlots is the size of the digit buffer: two leading slots absorb
	// carries and the remainder hold the extracted digits.
	digitSlots = MaxPrecision + 5

	// scaleLimit is the decimal exponent below which the value is scaled up
	// before dividing by the power of ten, which would otherwise overflow.
	scaleLimit = -290
)

var ten = From(10)

// AppendScientific appends v in scientific notation with the given number of
// fractional digits to dst and returns the extended buffer.
//
// Precisions up to 14 and non-finite values are formatted from the high part
// alone. Larger precisions are clamped to MaxPrecision and the digits are
// extracted from the full value by repeated multiplication by ten. The last
// digit is truncated, not rounded.
func AppendScientific(dst []byte, v Quad, precision int) []byte {
	if precision < 0 {
		precision = 0
	}

	if precision <= floatPrecision || !v.IsFinite() {
		return appendFloat(dst, v.hi, precision)
	}

	if precision > MaxPrecision {
		precision = MaxPrecision
	}

	if v.hi == 0 {
		dst = append(dst, "0."...)
		for i := 0; i < precision; i++ {
			dst = append(dst, '0')
		}

		return append(dst, "e+00"...)
	}

	if v.hi < 0 {
		dst = append(dst, '-')
		v = v.Neg()
	}

	exponent := decimalExponent(v.hi)

	remaining := v
	scaled := exponent
	if scaled < scaleLimit {
		remaining = remaining.Mul(PowInt(ten, -scaleLimit))
		scaled -= scaleLimit
	}
	remaining = remaining.Div(PowInt(ten, scaled))

	// The estimated exponent may be off by one, so extract more digits than
	// printed and let the carry pass settle them.
	var digits [digitSlots]int8

	last := precision + 4
	for i := 2; i <= last; i++ {
		d := math.Floor(remaining.hi)
		digits[i] = int8(d)
		remaining = remaining.SubFloat(d).MulFloat(10)
	}

	for i := last; i > 0; i-- {
		d := int(digits[i])
		if d >= 0 && d <= 9 {
			continue
		}

		carry, next := d/10, d%10
		if next < 0 {
			next += 10
			carry--
		}

		digits[i] = int8(next)
		digits[i-1] += int8(carry)
	}

	first := 0
	for first < len(digits) && digits[first] == 0 {
		first++
	}

	if first+1+precision > len(digits) {
		panic(fmt.Sprintf("quad: digit buffer overrun formatting %x", v))
	}

	exponent -= first - 2

	dst = append(dst, byte('0'+digits[first]))
	if precision > 0 {
		dst = append(dst, '.')
		for _, d := range digits[first+1 : first+1+precision] {
			dst = append(dst, byte('0'+d))
		}
	}

	return appendExponent(dst, exponent)
}

// decimalExponent estimates floor(log10(v)) for a positive finite v. The
// binary exponent is taken apart first since math.Log10 is inaccurate for
// subnormals.
func decimalExponent(v float64) int {
	frac, exp := math.Frexp(v)

	return int(math.Floor(math.Log10(frac) + float64(exp)*math.Log10(2)))
}

func appendFloat(dst []byte, v float64, precision int) []byte {
	switch {
	case math.IsNaN(v):
		return append(dst, "nan"...)
	case math.IsInf(v, 1):
		return append(dst, "inf"...)
	case math.IsInf(v, -1):
		return append(dst, "-inf"...)
	}

	return strconv.AppendFloat(dst, v, 'e', precision, 64)
}

// appendExponent appends the exponent as e followed by a sign and at least
// two digits.
func appendExponent(dst []byte, exponent int) []byte {
	dst = append(dst, 'e')

	if exponent < 0 {
		dst = append(dst, '-')
		exponent = -exponent
	} else {
		dst = append(dst, '+')
	}

	if exponent < 10 {
		dst = append(dst, '0')
	}

	return strconv.AppendInt(dst, int64(exponent), 10)
}

// Text returns v in scientific notation with precision fractional digits.
func (q Quad) Text(precision int) string {
	return string(AppendScientific(nil, q, precision))
}

// String returns q with DefaultPrecision fractional digits.
func (q Quad) String() string {
	return q.Text(DefaultPrecision)
}

// Format implements fmt.Formatter.
//
//  %v %s %e  scientific notation, DefaultPrecision unless a precision is given
//  %x        the exact high and low parts as hex floats separated by a comma
//
// Width pads with spaces on the left, or on the right with the '-' flag.
func (q Quad) Format(s fmt.State, verb rune) {
	var out []byte

	switch verb {
	case 'v', 's', 'e':
		precision, ok := s.Precision()
		if !ok {
			precision = DefaultPrecision
		}

		out = AppendScientific(nil, q, precision)
	case 'x':
		out = appendHex(nil, q.hi, q.lo)
	default:
		fmt.Fprintf(s, "%%!%c(quad.Quad=%s)", verb, q.String())

		return
	}

	width, _ := s.Width()
	pad := width - len(out)

	if pad > 0 && !s.Flag('-') {
		_, _ = s.Write([]byte(strings.Repeat(" ", pad)))
	}

	_, _ = s.Write(out)

	if pad > 0 && s.Flag('-') {
		_, _ = s.Write([]byte(strings.Repeat(" ", pad)))
	}
}

// Spec is a parsed format specification of the form [width][.precision][e].
type Spec struct {
	Width     int
	Precision int
}

// ParseSpec parses a format specification. Width defaults to 0 and
// precision to DefaultPrecision. The optional trailing 'e' selects
// scientific notation, the only notation supported.
func ParseSpec(spec string) (s Spec, err error) {
	s.Precision = DefaultPrecision

	i := 0
	s.Width, i = parseDigits(spec, i)

	if i < len(spec) && spec[i] == '.' {
		i++

		start := i
		s.Precision, i = parseDigits(spec, i)
		if i == start {
			return s, Error.New("expected precision in format specification %q", spec)
		}
	}

	if i < len(spec) && spec[i] == 'e' {
		i++
	}

	if i != len(spec) {
		return s, Error.New("invalid format specification %q", spec)
	}

	return s, nil
}

// parseDigits reads a decimal number starting at i. It returns the number
// and the index of the first byte after it.
func parseDigits(spec string, i int) (n, end int) {
	for i < len(spec) && spec[i] >= '0' && spec[i] <= '9' {
		n = n*10 + int(spec[i]-'0')
		i++
	}

	return n, i
}

// Append appends v formatted according to s to dst. Output shorter than the
// width is right aligned with spaces.
func (s Spec) Append(dst []byte, v Quad) []byte {
	start := len(dst)
	dst = AppendScientific(dst, v, s.Precision)

	pad := s.Width - (len(dst) - start)
	if pad <= 0 {
		return dst
	}

	dst = append(dst, make([]byte, pad)...)
	copy(dst[start+pad:], dst[start:len(dst)-pad])
	for i := start; i < start+pad; i++ {
		dst[i] = ' '
	}

	return dst
}

// Sprint returns v formatted according to s.
func (s Spec) Sprint(v Quad) string {
	return string(s.Append(nil, v))
}
