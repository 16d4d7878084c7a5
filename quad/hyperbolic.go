package quad

import "math"

const (
	// hyperbolicSeriesLimit bounds |x| for which the hyperbolic functions are
	// computed from Expm1 instead of Exp.
	hyperbolicSeriesLimit = 1.0

	// tanhSaturation is the magnitude beyond which tanh rounds to ±1.
	tanhSaturation = 40.0

	// inverseLargeLimit is the magnitude beyond which asinh and acosh are
	// computed as log(2x) to avoid overflowing x^2.
	inverseLargeLimit = 0x1.0p+500
)

// Sinh returns the hyperbolic sine of x.
func Sinh(x Quad) Quad {
	if x.IsNaN() || x.IsZero() {
		return x
	}

	if math.Abs(x.hi) < hyperbolicSeriesLimit {
		// sinh(x) = m(m+2) / 2(m+1) with m = exp(x)-1
		m := Expm1(x)

		return m.Mul(m.AddFloat(2)).Div(m.AddFloat(1).MulFloat(2))
	}

	e := Exp(x)

	switch {
	case e.IsZero():
		return inf(-1)
	case e.IsInf(1):
		return e
	}

	return e.Sub(One.Div(e)).MulFloat(0.5)
}

// Cosh returns the hyperbolic cosine of x.
func Cosh(x Quad) Quad {
	if x.IsNaN() {
		return x
	}

	if math.Abs(x.hi) < hyperbolicSeriesLimit {
		// cosh(x) = 1 + m^2 / 2(m+1) with m = exp(x)-1
		m := Expm1(x)

		return One.Add(m.Mul(m).Div(m.AddFloat(1).MulFloat(2)))
	}

	e := Exp(x)
	if e.IsZero() || e.IsInf(1) {
		return inf(1)
	}

	return e.Add(One.Div(e)).MulFloat(0.5)
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(x Quad) Quad {
	switch {
	case x.IsNaN() || x.IsZero():
		return x
	case x.hi > tanhSaturation:
		return One
	case x.hi < -tanhSaturation:
		return One.Neg()
	}

	if math.Abs(x.hi) < hyperbolicSeriesLimit {
		// tanh(x) = m / (m+2) with m = exp(2x)-1
		m := Expm1(x.MulFloat(2))

		return m.Div(m.AddFloat(2))
	}

	// tanh(|x|) = 1 - 2 / (exp(2|x|)+1)
	e := Exp(Abs(x).MulFloat(2))
	t := One.Sub(From(2).Div(e.AddFloat(1)))

	if x.hi < 0 {
		return t.Neg()
	}

	return t
}

// Asinh returns the inverse hyperbolic sine of x.
func Asinh(x Quad) Quad {
	if !x.IsFinite() || x.IsZero() {
		return x
	}

	a := Abs(x)

	var r Quad
	if a.hi > inverseLargeLimit {
		r = Log(a).Add(Ln2)
	} else {
		// log(a + sqrt(a^2+1)) = log1p(a + a^2 / (1 + sqrt(a^2+1)))
		t := a.Mul(a)
		r = Log1p(a.Add(t.Div(One.Add(Sqrt(t.AddFloat(1))))))
	}

	if x.hi < 0 {
		return r.Neg()
	}

	return r
}

// Acosh returns the inverse hyperbolic cosine of x. Inputs less than 1
// return NaN.
func Acosh(x Quad) Quad {
	switch {
	case x.IsNaN():
		return x
	case x.Less(One):
		return nan()
	case x.IsInf(1):
		return x
	case x.hi > inverseLargeLimit:
		return Log(x).Add(Ln2)
	}

	// log(x + sqrt(x^2-1)) = log1p(t + sqrt(t(t+2))) with t = x-1
	t := x.SubFloat(1)

	return Log1p(t.Add(Sqrt(t.Mul(t.AddFloat(2)))))
}

// Atanh returns the inverse hyperbolic tangent of x. Inputs with |x| >= 1
// return NaN.
func Atanh(x Quad) Quad {
	if x.IsNaN() || x.IsZero() {
		return x
	}

	a := Abs(x)
	if a.GreaterEqual(One) {
		return nan()
	}

	// atanh(a) = log1p(2a / (1-a)) / 2
	r := Log1p(a.MulFloat(2).Div(One.Sub(a))).MulFloat(0.5)

	if x.hi < 0 {
		return r.Neg()
	}

	return r
}
