package quad

var (
	ExpMaclaurin   = expMaclaurin
	Expm1Maclaurin = expm1Maclaurin
	SinMaclaurin   = sinMaclaurin
	CosMaclaurin   = cosMaclaurin
	Reduce         = reduce
)

const (
	ExpMaclaurinLimit  = expMaclaurinLimit
	TrigMaclaurinLimit = trigMaclaurinLimit
)
