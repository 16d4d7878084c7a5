package eft

import "math"

// Renormalize converts five terms, roughly ordered by decreasing magnitude
// and possibly overlapping, into a non-overlapping four term expansion.
//
// Terms after a non-finite leading term are discarded.
func Renormalize(c [5]float64) (r [4]float64) {
	if math.IsInf(c[0], 0) || math.IsNaN(c[0]) {
		return [4]float64{c[0], 0, 0, 0}
	}

	// Propagate carries from the smallest term upward.
	s0, c4 := QuickTwoSum(c[3], c[4])
	s0, c3 := QuickTwoSum(c[2], s0)
	s0, c2 := QuickTwoSum(c[1], s0)
	c0, c1 := QuickTwoSum(c[0], s0)

	// Collect the terms downward, skipping zeros so every output term carries
	// information.
	var s1, s2, s3 float64

	s0, s1 = QuickTwoSum(c0, c1)
	if s1 != 0.0 {
		s1, s2 = QuickTwoSum(s1, c2)
		if s2 != 0.0 {
			s2, s3 = QuickTwoSum(s2, c3)
			if s3 != 0.0 {
				s3 += c4
			} else {
				s2, s3 = QuickTwoSum(s2, c4)
			}
		} else {
			s1, s2 = QuickTwoSum(s1, c3)
			if s2 != 0.0 {
				s2, s3 = QuickTwoSum(s2, c4)
			} else {
				s1, s2 = QuickTwoSum(s1, c4)
			}
		}
	} else {
		s0, s1 = QuickTwoSum(s0, c2)
		if s1 != 0.0 {
			s1, s2 = QuickTwoSum(s1, c3)
			if s2 != 0.0 {
				s2, s3 = QuickTwoSum(s2, c4)
			} else {
				s1, s2 = QuickTwoSum(s1, c4)
			}
		} else {
			s0, s1 = QuickTwoSum(s0, c3)
			if s1 != 0.0 {
				s1, s2 = QuickTwoSum(s1, c4)
			} else {
				s0, s1 = QuickTwoSum(s0, c4)
			}
		}
	}

	return [4]float64{s0, s1, s2, s3}
}
