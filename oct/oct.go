package oct

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/calebcase/multidouble/eft"
	"github.com/calebcase/multidouble/quad"
)

// Oct is a quad-double number: the unevaluated sum of four float64 terms
// ordered by decreasing magnitude.
//
// Each term is at most half an ulp of the previous one. The zero value is 0.
type Oct struct {
	terms [4]float64
}

// Scalar is any native number convertible to an Oct.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// New returns the oct t0 + t1 + t2 + t3. The caller must ensure the terms do
// not overlap.
func New(t0, t1, t2, t3 float64) Oct {
	return Oct{terms: [4]float64{t0, t1, t2, t3}}
}

// FromTerms returns the oct with the given terms. The caller must ensure the
// terms do not overlap.
func FromTerms(terms [4]float64) Oct {
	return Oct{terms: terms}
}

// From converts a native number. The lower terms are zero.
func From[T Scalar](v T) Oct {
	return Oct{terms: [4]float64{float64(v)}}
}

// FromQuad extends q with two zero terms.
func FromQuad(q quad.Quad) Oct {
	return Oct{terms: [4]float64{q.High(), q.Low()}}
}

// Term returns the i-th term. It panics if i is not in [0, 4).
func (o Oct) Term(i int) float64 {
	return o.terms[i]
}

// Terms returns a copy of the terms.
func (o Oct) Terms() [4]float64 {
	return o.terms
}

// Quad rounds o to its leading two terms.
func (o Oct) Quad() quad.Quad {
	t := o.terms
	if !finite(t[0]) {
		return quad.From(t[0])
	}

	hi, lo := eft.QuickTwoSum(t[0], t[1]+(t[2]+t[3]))

	return quad.New(hi, lo)
}

// Float64 returns o rounded to a float64.
func (o Oct) Float64() float64 {
	return o.Quad().Float64()
}

// Neg returns -o.
func (o Oct) Neg() Oct {
	t := o.terms

	return New(-t[0], -t[1], -t[2], -t[3])
}

// Add returns o + r.
//
// Terms of equal order are summed pairwise and their errors are folded into
// the next order with the summation network. Errors beyond the fourth order
// are dropped.
func (o Oct) Add(r Oct) Oct {
	a, b := o.terms, r.terms

	s0, e1 := eft.TwoSum(a[0], b[0])
	s1, e2 := eft.TwoSum(a[1], b[1])
	s2, e3 := eft.TwoSum(a[2], b[2])
	s3, e4 := eft.TwoSum(a[3], b[3])

	u1, v2 := eft.TwoSum(e1, s1)
	u2, v3, v4 := eft.ThreeToThreeSum(e2, s2, v2)
	u3, w4 := eft.ThreeToTwoSum(e3, s3, v3)
	u4 := e4 + v4 + w4

	return Oct{terms: eft.Renormalize([5]float64{s0, u1, u2, u3, u4})}
}

// Sub returns o - r.
func (o Oct) Sub(r Oct) Oct {
	return o.Add(r.Neg())
}

// Mul returns o * r.
//
// Partial products are computed exactly up to the third order. Fourth order
// products are rounded and higher orders are not computed.
func (o Oct) Mul(r Oct) Oct {
	a, b := o.terms, r.terms

	p00, q00 := eft.TwoProd(a[0], b[0])
	p01, q01 := eft.TwoProd(a[0], b[1])
	p02, q02 := eft.TwoProd(a[0], b[2])
	p03, q03 := eft.TwoProd(a[0], b[3])
	p10, q10 := eft.TwoProd(a[1], b[0])
	p11, q11 := eft.TwoProd(a[1], b[1])
	p12, q12 := eft.TwoProd(a[1], b[2])
	p13 := a[1] * b[3]
	p20, q20 := eft.TwoProd(a[2], b[0])
	p21, q21 := eft.TwoProd(a[2], b[1])
	p22 := a[2] * b[2]
	p30, q30 := eft.TwoProd(a[3], b[0])
	p31 := a[3] * b[1]

	// The index of each variable is the order of its magnitude: pij is of
	// order i+j and its error qij of order i+j+1.
	u1, v2, v3 := eft.ThreeToThreeSum(q00, p01, p10)
	u2, w3, w4 := eft.SixToThreeSum(q01, p02, q10, p11, p20, v2)
	u3, x4 := eft.NineToTwoSum(q02, p03, q11, p12, q20, p21, p30, v3, w3)
	u4 := q03 + q12 + p13 + q21 + p22 + q30 + p31 + w4 + x4

	return Oct{terms: eft.Renormalize([5]float64{p00, u1, u2, u3, u4})}
}

// Cmp compares o and r term by term and returns -1, 0 or +1. If either is
// NaN the result is 0.
func (o Oct) Cmp(r Oct) int {
	if o.IsNaN() || r.IsNaN() {
		return 0
	}

	for i := range o.terms {
		switch {
		case o.terms[i] < r.terms[i]:
			return -1
		case o.terms[i] > r.terms[i]:
			return 1
		}
	}

	return 0
}

// Equal reports whether all terms are equal.
func (o Oct) Equal(r Oct) bool {
	return o.terms == r.terms
}

// IsNaN reports whether o is not a number.
func (o Oct) IsNaN() bool {
	return math.IsNaN(o.terms[0])
}

// IsInf reports whether o is an infinity, according to sign as math.IsInf.
func (o Oct) IsInf(sign int) bool {
	return math.IsInf(o.terms[0], sign)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
