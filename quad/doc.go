// Package quad implements double-double arithmetic.
//
// A Quad is the unevaluated sum of two float64 values, giving about 106 bits
// of significand (roughly 32 decimal digits) with the exponent range of a
// float64. Values are immutable and operations return new values:
//
//  x := quad.From(2)
//  y := quad.Sqrt(x).Mul(quad.Pi)
//  fmt.Println(y) // 4.442882938158366247015880990060e+00
//
// Non-Finite Values
//
// When the leading result of an operation overflows or is NaN the low part
// is dropped, so infinities and NaN propagate like float64 values.
//
// Functions
//
// The elementary functions take a float64 approximation or a range reduced
// argument and correct it in quad arithmetic. Relative errors are below
// 2^-96 across the finite range, see the tests for the per function bounds.
//
// Formatting
//
// Quad implements fmt.Formatter and prints decimal scientific notation with
// up to MaxPrecision fractional digits. The %x verb prints the exact parts.
// Parse reads decimal literals of any length and the exact hex form.
package quad
