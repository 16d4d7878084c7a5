package quad

import "math"

const (
	// logNearOneLimit bounds |x-1| for which Log refines through Expm1 to
	// keep the relative accuracy of results near zero.
	logNearOneLimit = 0.25

	// logScaleLimit bounds the exponent of inputs Log handles directly.
	// Outside of it the input is scaled by a power of two first so that Exp
	// of the estimate stays in range.
	logScaleLimit = 512

	// log1pDirectLimit bounds |x| for which Log1p refines through Expm1.
	// Beyond it 1+x is formed exactly enough to defer to Log.
	log1pDirectLimit = 0.25
)

// Log returns the natural logarithm of x.
//
// The float64 logarithm is refined with one Newton step on exp(y) = x.
func Log(x Quad) Quad {
	switch {
	case x.IsNaN():
		return x
	case x.hi < 0:
		return nan()
	case x.hi == 0:
		return inf(-1)
	case x.IsInf(1):
		return x
	}

	if math.Abs(x.hi-1) < logNearOneLimit {
		y := Quad{hi: math.Log(x.hi)}
		m := Expm1(y)

		return y.Add(x.SubFloat(1).Sub(m).Div(m.AddFloat(1)))
	}

	_, exp := math.Frexp(x.hi)
	if exp > logScaleLimit || exp < -logScaleLimit {
		return Log(x.ldexp(-exp)).Add(Ln2.MulFloat(float64(exp)))
	}

	y := Quad{hi: math.Log(x.hi)}
	e := Exp(y)

	return y.Add(x.Sub(e).Div(e))
}

// Log1p returns the natural logarithm of 1+x, accurate also when x is near
// zero.
func Log1p(x Quad) Quad {
	switch {
	case x.IsNaN():
		return x
	case x.Less(One.Neg()):
		return nan()
	case x.Equal(One.Neg()):
		return inf(-1)
	case x.IsInf(1):
		return x
	}

	if math.Abs(x.hi) > log1pDirectLimit {
		return Log(x.AddFloat(1))
	}

	y := Quad{hi: math.Log1p(x.hi)}
	m := Expm1(y)

	return y.Add(x.Sub(m).Div(m.AddFloat(1)))
}

// Log10 returns the decimal logarithm of x.
func Log10(x Quad) Quad {
	return Log(x).Mul(Ln10Inv)
}
