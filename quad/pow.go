package quad

import "math"

// powIntLimit is the largest integer exponent evaluated by repeated squaring.
// Larger exponents go through Exp and Log.
const powIntLimit = 1024

// Pow returns base^exponent.
//
// Integer exponents up to powIntLimit in magnitude are evaluated by binary
// exponentiation, so negative bases are allowed for them. Otherwise the
// result is Exp(Log(base) * exponent).
func Pow(base, exponent Quad) Quad {
	if exponent.lo == 0 {
		return PowFloat(base, exponent.hi)
	}

	return powReal(base, exponent)
}

// PowFloat returns base^exponent.
func PowFloat(base Quad, exponent float64) Quad {
	if exponent == math.Trunc(exponent) && math.Abs(exponent) <= powIntLimit {
		return PowInt(base, int(exponent))
	}

	return powReal(base, From(exponent))
}

// PowInt returns base^exponent.
func PowInt(base Quad, exponent int) Quad {
	switch {
	case exponent >= 0 && exponent <= powIntLimit:
		return powUint(base, uint(exponent))
	case exponent < 0 && exponent >= -powIntLimit:
		return One.Div(powUint(base, uint(-exponent)))
	}

	return powReal(base, From(exponent))
}

// PowUint returns base^exponent.
func PowUint(base Quad, exponent uint) Quad {
	if exponent <= powIntLimit {
		return powUint(base, exponent)
	}

	return powReal(base, From(exponent))
}

func powUint(base Quad, exponent uint) Quad {
	result := One
	for exponent > 0 {
		if exponent&1 == 1 {
			result = result.Mul(base)
		}

		exponent >>= 1
		if exponent > 0 {
			base = base.Mul(base)
		}
	}

	return result
}

func powReal(base, exponent Quad) Quad {
	return Exp(Log(base).Mul(exponent))
}
