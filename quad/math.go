package quad

import (
	"math"

	"github.com/calebcase/multidouble/eft"
)

// Abs returns |x|.
func Abs(x Quad) Quad {
	if x.hi < 0 {
		return x.Neg()
	}

	return x
}

// Sqrt returns the square root of x.
//
// The float64 root is refined by one Newton step using the exact residual
// of its square. Negative inputs return NaN.
func Sqrt(x Quad) Quad {
	if x.hi == 0 {
		return x
	}

	approx := math.Sqrt(x.hi)
	if !finite(approx) {
		return Quad{hi: approx}
	}

	sh, sl := eft.TwoProd(approx, approx)
	rem := ((x.hi - sh) - sl) + x.lo
	corr := 0.5 * rem / approx

	hi, lo := eft.QuickTwoSum(approx, corr)

	return Quad{hi: hi, lo: lo}
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x Quad) Quad {
	if !x.IsFinite() {
		return x
	}

	hiInt, hiFrac := math.Modf(x.hi)
	loInt, loFrac := math.Modf(x.lo)

	// The fractional parts sum to a value in (-2, 2). Flooring the rounded
	// sum is wrong only when it landed on an integer from below.
	s, e := eft.TwoSum(hiFrac, loFrac)
	f := math.Floor(s)
	if f == s && e < 0 {
		f--
	}

	hi, lo := eft.TwoSum(hiInt, loInt)

	return Quad{hi: hi, lo: lo}.AddFloat(f)
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x Quad) Quad {
	return Floor(x.Neg()).Neg()
}

// Trunc returns the integer value of x rounded toward zero.
func Trunc(x Quad) Quad {
	if x.hi < 0 {
		return Ceil(x)
	}

	return Floor(x)
}

// Round returns the nearest integer, rounding half away from zero.
func Round(x Quad) Quad {
	if x.hi < 0 {
		return Floor(x.Neg().AddFloat(0.5)).Neg()
	}

	return Floor(x.AddFloat(0.5))
}
