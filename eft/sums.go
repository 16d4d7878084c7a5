package eft

// ThreeToThreeSum returns the exact sum of x, y and z as three
// non-overlapping terms ordered by decreasing magnitude.
func ThreeToThreeSum(x, y, z float64) (r0, r1, r2 float64) {
	s, e1 := TwoSum(x, y)
	r0, e2 := TwoSum(s, z)
	r1, r2 = TwoSum(e1, e2)

	return r0, r1, r2
}

// ThreeToTwoSum returns the sum of x, y and z as two terms. The third order
// error is dropped.
func ThreeToTwoSum(x, y, z float64) (r0, r1 float64) {
	s, e1 := TwoSum(x, y)
	r0, e2 := TwoSum(s, z)
	r1 = e1 + e2

	return r0, r1
}

// SixToThreeSum returns the sum of six terms of the same order as three
// terms. Errors below the third term are accumulated without compensation.
func SixToThreeSum(a, b, c, d, e, f float64) (r0, r1, r2 float64) {
	a0, a1, a2 := ThreeToThreeSum(a, b, c)
	b0, b1, b2 := ThreeToThreeSum(d, e, f)

	r0, t0 := TwoSum(a0, b0)
	s1, t1 := TwoSum(a1, b1)
	r1, t0 = TwoSum(s1, t0)
	r2 = a2 + b2 + (t0 + t1)

	return r0, r1, r2
}

// NineToTwoSum returns the sum of nine terms of the same order as two terms.
//
// The first eight inputs are paired into double-double values which are
// added pairwise, then the ninth input is folded in.
func NineToTwoSum(a, b, c, d, e, f, g, h, i float64) (r0, r1 float64) {
	ph, pl := TwoSum(a, b)
	qh, ql := TwoSum(c, d)
	sh, sl := TwoSum(e, f)
	th, tl := TwoSum(g, h)

	ph, pl = add(ph, pl, qh, ql)
	sh, sl = add(sh, sl, th, tl)
	ph, pl = add(ph, pl, sh, sl)

	r0, r1 = TwoSum(ph, i)
	r1 += pl

	return r0, r1
}

// add is double-double addition of (ah, al) and (bh, bl).
func add(ah, al, bh, bl float64) (h, l float64) {
	s, e := TwoSum(ah, bh)
	e += al + bl

	return QuickTwoSum(s, e)
}
