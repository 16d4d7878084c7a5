package quad

import "math"

const (
	// expm1Terms is the number of Maclaurin terms of exp(x)-1 evaluated.
	expm1Terms = 9

	// expHalvings is the number of times the reduced argument is halved
	// before the series and the result squared after it.
	expHalvings = 8

	// expUpperLimit is ln(MaxFloat64). Larger inputs overflow.
	expUpperLimit = 709.782712893384

	// expMinExponent is the smallest power of two the reduced result is
	// scaled by. Below it the trailing term is subnormal and the result is
	// flushed to zero.
	expMinExponent = -1021

	// expm1SeriesLimit is ln(2)/2. Within it Expm1 avoids the cancellation of
	// Exp(x) - 1.
	expm1SeriesLimit = math.Ln2 / 2
)

// expm1Maclaurin returns exp(x)-1 for |x| <= expMaclaurinLimit.
func expm1Maclaurin(x Quad) Quad {
	// x(1 + x/2(1 + x/3(1 + ... (1 + x/9))))
	r := One
	for k := expm1Terms; k >= 2; k-- {
		r = r.Mul(x).DivFloat(float64(k)).AddFloat(1)
	}

	return r.Mul(x)
}

// expMaclaurin returns exp(x) for |x| <= expMaclaurinLimit.
func expMaclaurin(x Quad) Quad {
	return expm1Maclaurin(x).AddFloat(1)
}

// Exp returns e^x.
//
// The argument is reduced to r = x - n ln(2), divided by 2^8 and passed to
// the series. The result is squared 8 times and scaled by 2^n.
func Exp(x Quad) Quad {
	switch {
	case x.IsNaN():
		return x
	case x.hi > expUpperLimit:
		return inf(1)
	}

	n := math.Round(x.hi * Ln2Inv.hi)
	if n <= expMinExponent {
		return Zero
	}

	r := x.Sub(Ln2.MulFloat(n)).ldexp(-expHalvings)

	y := expMaclaurin(r)
	for i := 0; i < expHalvings; i++ {
		y = y.Mul(y)
	}

	return y.ldexp(int(n))
}

// Expm1 returns e^x - 1, accurate also when x is near zero.
func Expm1(x Quad) Quad {
	if x.IsNaN() {
		return x
	}

	if math.Abs(x.hi) > expm1SeriesLimit {
		return Exp(x).SubFloat(1)
	}

	// exp(2r)-1 = (exp(r)-1)(exp(r)-1+2)
	y := expm1Maclaurin(x.ldexp(-expHalvings))
	for i := 0; i < expHalvings; i++ {
		y = y.Mul(y.AddFloat(2))
	}

	return y
}
