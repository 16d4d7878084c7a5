package quad

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/calebcase/multidouble/eft"
)

// Quad is a double-double number: the unevaluated sum of two float64 values.
//
// The low part is at most half an ulp of the high part. Every operation
// returns a value satisfying this invariant. The zero value is 0.
type Quad struct {
	hi float64
	lo float64
}

// Scalar is any native number convertible to a Quad.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// New returns the quad hi + lo. The caller must ensure |lo| <= ulp(hi)/2.
func New(hi, lo float64) Quad {
	return Quad{hi: hi, lo: lo}
}

// From converts a native number. The low part is zero.
func From[T Scalar](v T) Quad {
	return Quad{hi: float64(v)}
}

// High returns the leading term.
func (q Quad) High() float64 {
	return q.hi
}

// Low returns the trailing term.
func (q Quad) Low() float64 {
	return q.lo
}

// Float64 returns q rounded to a float64.
func (q Quad) Float64() float64 {
	return q.hi + q.lo
}

// Neg returns -q.
func (q Quad) Neg() Quad {
	return Quad{hi: -q.hi, lo: -q.lo}
}

// Add returns q + r.
func (q Quad) Add(r Quad) Quad {
	s, e := eft.TwoSum(q.hi, r.hi)
	if !finite(s) {
		return Quad{hi: s}
	}

	e += q.lo + r.lo

	hi, lo := eft.QuickTwoSum(s, e)

	return Quad{hi: hi, lo: lo}
}

// AddFloat returns q + r.
func (q Quad) AddFloat(r float64) Quad {
	s, e := eft.TwoSum(q.hi, r)
	if !finite(s) {
		return Quad{hi: s}
	}

	e += q.lo

	hi, lo := eft.QuickTwoSum(s, e)

	return Quad{hi: hi, lo: lo}
}

// Sub returns q - r.
func (q Quad) Sub(r Quad) Quad {
	return q.Add(r.Neg())
}

// SubFloat returns q - r.
func (q Quad) SubFloat(r float64) Quad {
	return q.AddFloat(-r)
}

// Mul returns q * r.
//
// The product of the low parts is below the precision of the result and is
// not computed.
func (q Quad) Mul(r Quad) Quad {
	p, e := eft.TwoProd(q.hi, r.hi)
	if !finite(p) {
		return Quad{hi: p}
	}

	// Summing the cross terms before adding them to the error keeps the
	// result accurate when they nearly cancel.
	e += q.hi*r.lo + q.lo*r.hi

	hi, lo := eft.QuickTwoSum(p, e)

	return Quad{hi: hi, lo: lo}
}

// MulFloat returns q * r.
func (q Quad) MulFloat(r float64) Quad {
	p, e := eft.TwoProd(q.hi, r)
	if !finite(p) {
		return Quad{hi: p}
	}

	e += q.lo * r

	hi, lo := eft.QuickTwoSum(p, e)

	return Quad{hi: hi, lo: lo}
}

// Div returns q / r.
//
// A float64 quotient of the high parts is corrected once using the exact
// residual of the high parts and the first order terms of the low parts.
func (q Quad) Div(r Quad) Quad {
	if q.hi == 0 {
		return Quad{hi: q.hi / r.hi}
	}

	inv := 1.0 / r.hi
	xh := q.hi * inv
	if xh == 0 || !finite(xh) {
		return Quad{hi: xh}
	}

	rate := r.lo * inv
	r1, r2 := eft.TwoProd(xh, r.hi)
	xl := ((q.hi - r1) - r2) * inv
	xl += xh * ((q.lo / q.hi) - rate)

	hi, lo := eft.QuickTwoSum(xh, xl)

	return Quad{hi: hi, lo: lo}
}

// DivFloat returns q / r.
func (q Quad) DivFloat(r float64) Quad {
	if q.hi == 0 {
		return Quad{hi: q.hi / r}
	}

	inv := 1.0 / r
	xh := q.hi * inv
	if xh == 0 || !finite(xh) {
		return Quad{hi: xh}
	}

	r1, r2 := eft.TwoProd(xh, r)
	xl := ((q.hi - r1) - r2) * inv
	xl += xh * (q.lo / q.hi)

	hi, lo := eft.QuickTwoSum(xh, xl)

	return Quad{hi: hi, lo: lo}
}

// Cmp compares q and r by high part, then low part, and returns -1, 0 or +1.
// If either is NaN the result is 0.
func (q Quad) Cmp(r Quad) int {
	c, _ := q.Compare(r)

	return c
}

// Compare is Cmp with ok set to false when q and r are unordered.
func (q Quad) Compare(r Quad) (c int, ok bool) {
	switch {
	case q.IsNaN() || r.IsNaN():
		return 0, false
	case q.Less(r):
		return -1, true
	case r.Less(q):
		return 1, true
	}

	return 0, true
}

// Equal reports whether both parts are equal.
func (q Quad) Equal(r Quad) bool {
	return q.hi == r.hi && q.lo == r.lo
}

// Less reports whether q < r.
func (q Quad) Less(r Quad) bool {
	return q.hi < r.hi || (q.hi == r.hi && q.lo < r.lo)
}

// LessEqual reports whether q <= r.
func (q Quad) LessEqual(r Quad) bool {
	return q.hi < r.hi || (q.hi == r.hi && q.lo <= r.lo)
}

// Greater reports whether q > r.
func (q Quad) Greater(r Quad) bool {
	return r.Less(q)
}

// GreaterEqual reports whether q >= r.
func (q Quad) GreaterEqual(r Quad) bool {
	return r.LessEqual(q)
}

// Sign returns -1, 0 or +1 according to the sign of q. NaN returns 0.
func (q Quad) Sign() int {
	switch {
	case q.hi < 0:
		return -1
	case q.hi > 0:
		return 1
	}

	return 0
}

// IsZero reports whether q is (signed) zero.
func (q Quad) IsZero() bool {
	return q.hi == 0
}

// IsNaN reports whether q is not a number.
func (q Quad) IsNaN() bool {
	return math.IsNaN(q.hi)
}

// IsInf reports whether q is an infinity, according to sign as math.IsInf.
func (q Quad) IsInf(sign int) bool {
	return math.IsInf(q.hi, sign)
}

// IsFinite reports whether q is neither infinite nor NaN.
func (q Quad) IsFinite() bool {
	return finite(q.hi)
}

// ldexp returns q * 2^exp. Both parts are scaled exactly unless they leave
// the normal range.
func (q Quad) ldexp(exp int) Quad {
	return Quad{hi: math.Ldexp(q.hi, exp), lo: math.Ldexp(q.lo, exp)}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func nan() Quad {
	return Quad{hi: math.NaN()}
}

func inf(sign int) Quad {
	return Quad{hi: math.Inf(sign)}
}
