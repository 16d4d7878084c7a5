// Package eft provides error-free transformations of float64 arithmetic.
//
// An error-free transformation computes the rounded result of a floating
// point operation together with the exact rounding error, using nothing but
// floating point arithmetic:
//
//  s, e := TwoSum(a, b)  // s + e == a + b exactly
//  p, e := TwoProd(a, b) // p + e == a * b exactly
//
// These are the building blocks of multi-term floating point expansions. An
// expansion is a tuple of float64 values, ordered by decreasing magnitude,
// where each term is at most half an ulp of the previous one. The sum of the
// terms is the represented number.
//
// Summation Network
//
// Multiplying or adding expansions produces several partial results of the
// same order of magnitude. They are folded together with a small fixed
// network of sums:
//
//  | Function        | Inputs | Outputs | Dropped             |
//  |-----------------|--------|---------|---------------------|
//  | ThreeToThreeSum | 3      | 3       | nothing             |
//  | ThreeToTwoSum   | 3      | 2       | third order error   |
//  | SixToThreeSum   | 6      | 3       | fourth order error  |
//  | NineToTwoSum    | 9      | 2       | third order error   |
//  |-----------------|--------|---------|---------------------|
//
// Renormalization
//
// Renormalize converts 5 overlapping terms into a canonical 4 term expansion.
// It is the Hida, Li and Bailey algorithm: a bottom-up pass of QuickTwoSum
// propagating carries to the leading term followed by a top-down pass
// collecting non-zero terms.
//
// Product Dispatch
//
// TwoProd uses a fused multiply-add when the processor provides one and
// Dekker's algorithm otherwise. Both produce identical results for finite
// inputs whose product does not overflow.
//
// The package must not be compiled with flags that allow reassociation of
// floating point expressions. Products whose rounding matters are converted
// with float64(...) so the compiler does not fuse them into a neighboring
// addition.
package eft
