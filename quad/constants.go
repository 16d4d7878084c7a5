package quad

// Constants rounded to the nearest quad.
var (
	Zero = Quad{}
	One  = Quad{hi: 1}

	Ln2     = Quad{hi: 0x1.62e42fefa39efp-1, lo: 0x1.abc9e3b39803fp-56}
	Ln2Inv  = Quad{hi: 0x1.71547652b82fep+0, lo: 0x1.777d0ffda0d24p-56}
	Ln10    = Quad{hi: 0x1.26bb1bbb55516p+1, lo: -0x1.f48ad494ea3e9p-53}
	Ln10Inv = Quad{hi: 0x1.bcb7b1526e50ep-2, lo: 0x1.95355baaafad3p-57}

	Pi         = Quad{hi: 0x1.921fb54442d18p+1, lo: 0x1.1a62633145c07p-53}
	TwoPi      = Quad{hi: 0x1.921fb54442d18p+2, lo: 0x1.1a62633145c07p-52}
	PiOver2    = Quad{hi: 0x1.921fb54442d18p+0, lo: 0x1.1a62633145c07p-54}
	PiOver4    = Quad{hi: 0x1.921fb54442d18p-1, lo: 0x1.1a62633145c07p-55}
	PiOver4Inv = Quad{hi: 0x1.45f306dc9c883p+0, lo: -0x1.6b01ec5417056p-54}

	Sqrt2 = Quad{hi: 0x1.6a09e667f3bcdp+0, lo: -0x1.bdd3413b26456p-54}
)

// Validity limits of the Maclaurin series. Inputs are reduced into these
// ranges before the series are evaluated.
const (
	// expMaclaurinLimit bounds |x| for expm1Maclaurin: ln(2)/2 scaled by
	// 2^-expHalvings, rounded up.
	expMaclaurinLimit = 1.36e-3

	// trigMaclaurinLimit bounds |x| for sinMaclaurin and cosMaclaurin.
	trigMaclaurinLimit = 0x1.921fb54442d19p-1
)
