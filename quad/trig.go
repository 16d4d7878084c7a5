package quad

import (
	"fmt"
	"math"
	"math/big"
)

const (
	// sinTerms is the number of Maclaurin terms of sin(x) evaluated, the
	// last being x^27/27!.
	sinTerms = 14

	// cosTerms is the number of Maclaurin terms of cos(x) evaluated, the
	// last being x^28/28!.
	cosTerms = 15

	// reduceDirectLimit bounds |x| for which the nearest multiple of the
	// quad 2π is subtracted directly. Larger arguments are reduced with the
	// wide 1/(2π) below.
	reduceDirectLimit = 0x1.0p+10

	// reducePrec holds any finite quad exactly together with the fraction
	// bits of x/(2π) that survive into the remainder.
	reducePrec = 2600

	// remainderPrec is the precision of the reduced argument before it is
	// rounded to a quad.
	remainderPrec = 256

	// asinDirectLimit bounds |x| for which the float64 arcsine is refined
	// directly. Closer to 1 the derivative of sin vanishes and the half
	// angle identity is used instead.
	asinDirectLimit = 0.5
)

var (
	// invTwoPiWide is 1/(2π) to 1400 bits.
	invTwoPiWide = parseWide("0x1.45f306dc9c882a53f84eafa3ea69bb81b6c52b3278872083fca2c757bd778ac36e48dc74849ba5c00c925dd413a32439fc3bd63962534e7dd1046bea5d768909d338e04d68befc827323ac7306a673e93908bf177bf250763ff12fffbc0b301fde5e2316b414da3eda6cfd9e4f96136e9e8c7ecd3cbfd45aea4f758fd7cbe2f67a0e73ef14a525d4d7f6bf623f1aba10ac06608df8f6d757e19f784135e86c3b53c722c2bdcc3610cb330abe2940d0p-3")

	// twoPiWide is 2π to 252 bits.
	twoPiWide = parseWide("0x1.921fb54442d18469898cc51701b839a252049c1114cf98e804177d4c7627364p+2")

	halfTurn = big.NewFloat(0.5)
)

func parseWide(s string) *big.Float {
	f, _, err := big.ParseFloat(s, 0, reducePrec, big.ToNearestEven)
	if err != nil {
		panic(fmt.Sprintf("quad: invalid constant %q: %v", s, err))
	}

	return f
}

// sinMaclaurin returns sin(x) for |x| <= trigMaclaurinLimit. The truncation
// error is below 2^-112 relative to the result.
func sinMaclaurin(x Quad) Quad {
	x2 := x.Mul(x)

	// x(1 - x^2/(2*3)(1 - x^2/(4*5)(1 - ...)))
	r := One
	for k := sinTerms - 1; k >= 1; k-- {
		r = One.Sub(x2.Mul(r).DivFloat(float64((2 * k) * (2*k + 1))))
	}

	return x.Mul(r)
}

// cosMaclaurin returns cos(x) for |x| <= trigMaclaurinLimit. The truncation
// error is below 2^-117 relative to the result.
func cosMaclaurin(x Quad) Quad {
	x2 := x.Mul(x)

	// 1 - x^2/(1*2)(1 - x^2/(3*4)(1 - ...))
	r := One
	for k := cosTerms - 1; k >= 1; k-- {
		r = One.Sub(x2.Mul(r).DivFloat(float64((2*k - 1) * (2 * k))))
	}

	return r
}

// reduce returns r = x - 2πn in [-π, π] and the octant of r, the integer k
// in [-4, 3] with kπ/4 <= r < (k+1)π/4.
func reduce(x Quad) (r Quad, octant int) {
	if math.Abs(x.hi) > reduceDirectLimit {
		r = reduceWide(x)
	} else {
		n := math.Round(x.hi / TwoPi.hi)
		r = x.Sub(TwoPi.MulFloat(n))
	}

	octant = int(math.Floor(r.hi / PiOver4.hi))
	switch {
	case octant < -4:
		octant = -4
	case octant > 3:
		octant = 3
	}

	return r, octant
}

// reduceWide reduces a finite x of any magnitude. The fraction of x/(2π) is
// formed exactly enough that the remainder keeps full quad precision.
func reduceWide(x Quad) Quad {
	t := new(big.Float).SetPrec(reducePrec).SetFloat64(x.hi)
	t.Add(t, new(big.Float).SetFloat64(x.lo))
	t.Mul(t, invTwoPiWide)

	// Drop the whole turns and move the fraction into [-1/2, 1/2].
	n, _ := t.Int(nil)
	t.Sub(t, new(big.Float).SetInt(n))

	switch {
	case t.Cmp(halfTurn) > 0:
		t.Sub(t, big.NewFloat(1))
	case t.Cmp(new(big.Float).Neg(halfTurn)) < 0:
		t.Add(t, big.NewFloat(1))
	}

	r := new(big.Float).SetPrec(remainderPrec).Mul(t, twoPiWide)

	hi, _ := r.Float64()
	lo, _ := r.Sub(r, new(big.Float).SetFloat64(hi)).Float64()

	return Quad{hi: hi, lo: lo}
}

// Sin returns the sine of x.
//
// The argument is reduced to [-π, π] and shifted by a multiple of π/2 into
// [-π/4, π/4] where the sine or cosine series applies.
func Sin(x Quad) Quad {
	if !x.IsFinite() {
		return nan()
	}

	r, octant := reduce(x)

	switch octant {
	case -4:
		return sinMaclaurin(r.Add(Pi)).Neg()
	case -3, -2:
		return cosMaclaurin(r.Add(PiOver2)).Neg()
	case -1, 0:
		return sinMaclaurin(r)
	case 1, 2:
		return cosMaclaurin(r.Sub(PiOver2))
	case 3:
		return sinMaclaurin(r.Sub(Pi)).Neg()
	}

	panic(fmt.Sprintf("quad: octant %d out of range", octant))
}

// Cos returns the cosine of x.
func Cos(x Quad) Quad {
	if !x.IsFinite() {
		return nan()
	}

	r, octant := reduce(x)

	switch octant {
	case -4:
		return cosMaclaurin(r.Add(Pi)).Neg()
	case -3, -2:
		return sinMaclaurin(r.Add(PiOver2))
	case -1, 0:
		return cosMaclaurin(r)
	case 1, 2:
		return sinMaclaurin(r.Sub(PiOver2)).Neg()
	case 3:
		return cosMaclaurin(r.Sub(Pi)).Neg()
	}

	panic(fmt.Sprintf("quad: octant %d out of range", octant))
}

// Tan returns the tangent of x.
func Tan(x Quad) Quad {
	return Sin(x).Div(Cos(x))
}

// asinNewton refines the float64 arcsine of x with one Newton step on
// sin(y) = x. It requires |x| <= asinDirectLimit.
func asinNewton(x Quad) Quad {
	y := Quad{hi: math.Asin(x.hi)}

	return y.Sub(Sin(y).Sub(x).Div(Cos(y)))
}

// acosHalfAngle returns acos(a) = 2 asin(sqrt((1-a)/2)) for a in [0, 1].
func acosHalfAngle(a Quad) Quad {
	return asinNewton(Sqrt(One.Sub(a).MulFloat(0.5))).MulFloat(2)
}

// Asin returns the arcsine of x in [-π/2, π/2].
//
// For |x| <= 1/2 the float64 arcsine is refined with one Newton step on
// sin(y) = x. Beyond it asin(|x|) = π/2 - acos(|x|) with acos taken from the
// half angle identity, which stays well conditioned up to |x| = 1.
func Asin(x Quad) Quad {
	switch {
	case x.IsNaN():
		return x
	case x.Greater(One) || x.Less(One.Neg()):
		return nan()
	case x.Equal(One):
		return PiOver2
	case x.Equal(One.Neg()):
		return PiOver2.Neg()
	case x.IsZero():
		return x
	}

	if math.Abs(x.hi) <= asinDirectLimit {
		return asinNewton(x)
	}

	r := PiOver2.Sub(acosHalfAngle(Abs(x)))
	if x.hi < 0 {
		return r.Neg()
	}

	return r
}

// Acos returns the arccosine of x in [0, π].
//
// For |x| <= 1/2 the result is π/2 - asin(x). Beyond it the half angle
// identity keeps results near x = ±1 accurate.
func Acos(x Quad) Quad {
	switch {
	case x.IsNaN():
		return x
	case x.Greater(One) || x.Less(One.Neg()):
		return nan()
	case x.Equal(One):
		return Zero
	case x.Equal(One.Neg()):
		return Pi
	}

	if math.Abs(x.hi) <= asinDirectLimit {
		return PiOver2.Sub(asinNewton(x))
	}

	r := acosHalfAngle(Abs(x))
	if x.hi < 0 {
		return Pi.Sub(r)
	}

	return r
}

// Atan returns the arctangent of x in [-π/2, π/2].
//
// The float64 arctangent is refined with one Newton step on
// sin(y) - x cos(y) = 0, which stays well conditioned for large x.
func Atan(x Quad) Quad {
	switch {
	case x.IsNaN():
		return x
	case x.IsInf(1):
		return PiOver2
	case x.IsInf(-1):
		return PiOver2.Neg()
	case x.IsZero():
		return x
	}

	y := Quad{hi: math.Atan(x.hi)}
	s, c := Sin(y), Cos(y)

	return y.Sub(s.Sub(x.Mul(c)).Div(c.Add(x.Mul(s))))
}

// Atan2 returns the arctangent of y/x in [-π, π], using the signs of both to
// determine the quadrant.
//
// Unlike math.Atan2, Atan2(0, 0) and non-finite inputs return NaN.
func Atan2(y, x Quad) Quad {
	if !x.IsFinite() || !y.IsFinite() || (x.IsZero() && y.IsZero()) {
		return nan()
	}

	ax, ay := Abs(x), Abs(y)

	switch {
	case x.GreaterEqual(ay):
		return Atan(y.Div(x))
	case y.Greater(ax):
		return PiOver2.Sub(Atan(x.Div(y)))
	case y.Neg().Greater(ax):
		return PiOver2.Neg().Sub(Atan(x.Div(y)))
	case !math.Signbit(y.hi):
		return Pi.Add(Atan(y.Div(x)))
	}

	return Pi.Neg().Add(Atan(y.Div(x)))
}
