package eft

// splitter is 2^27+1. Multiplying by it splits a float64 mantissa into two
// halves of at most 26 bits.
const splitter = 0x1.0p+27 + 1.0

// QuickTwoSum returns s = fl(a+b) and the rounding error e.
//
// The caller must ensure |a| >= |b| (or a == 0). Otherwise e is wrong.
func QuickTwoSum(a, b float64) (s, e float64) {
	s = a + b
	e = b - (s - a)

	return s, e
}

// TwoSum returns s = fl(a+b) and the rounding error e for any a and b.
func TwoSum(a, b float64) (s, e float64) {
	s = a + b
	v := s - a
	e = (a - (s - v)) + (b - v)

	return s, e
}

// Split returns hi and lo such that hi + lo == a, each with at most 26
// significant bits.
func Split(a float64) (hi, lo float64) {
	// The conversion forces rounding. Without it the compiler may fuse the
	// product into the following subtraction.
	t := float64(splitter * a)
	hi = t - (t - a)
	lo = a - hi

	return hi, lo
}

// TwoProdDekker returns p = fl(a*b) and the rounding error e without a fused
// multiply-add.
func TwoProdDekker(a, b float64) (p, e float64) {
	// Rounded explicitly so it is not fused into ah*bh - p.
	p = float64(a * b)

	ah, al := Split(a)
	bh, bl := Split(b)

	e = ((ah*bh - p) + ah*bl + al*bh) + al*bl

	return p, e
}
