// Package oct implements quad-double arithmetic.
//
// An Oct is the unevaluated sum of four float64 terms, giving about 212 bits
// of significand. Only addition, subtraction and multiplication are
// provided. Results are renormalized so the terms never overlap.
package oct
