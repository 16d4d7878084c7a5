// Package stream provides a compact binary encoding for sequences of
// multi-term floating point values.
//
// Each value starts with a control byte. The leading bits of the control
// byte select the block type and the remaining bits carry the block's
// parameters, or the value itself when it is small enough.
//
// Control Block
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type    |                                         |
//  |---------------|---------------||---------|-----------------------------------------|
//  | 1 |                           || Small   | integer in [-63, 63] stored in the byte |
//  | 0 . 1 . 0 . 0 . 0 |           || Integer | integer in the next 1 to 8 bytes        |
//  | 0 . 0 . 1 . 0 . 0 . 0 |       || Terms   | 1 to 4 float64 terms, 8 bytes each      |
//  | 0 . 0 . 0 . 1 . 0 . 0 |       || Special | NaN, +Inf, -Inf or -0                   |
//  |---------------|---------------||---------|-----------------------------------------|
//
// Trailing zero terms are never stored, so a quad holding a float64 costs 9
// bytes and an integral float64 of magnitude up to 2^53 at most 8 bytes.
//
// Integers are stored big-endian as the magnitude followed by a trailing
// sign bit.
//
// Terms are the IEEE 754 bits of each float64, big-endian, ordered by
// decreasing magnitude.
package stream

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("stream")
