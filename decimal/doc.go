// Package decimal provides the base 10 helpers used for significant figure
// bookkeeping on float64 values.
//
// The equation for a number in normalized scientific notation is:
//
//  number = d.ddd * 10 ^ exponent
//
// Where d.ddd is the mantissa (1 <= |d.ddd| < 10) and exponent is the base 10
// exponent. For example:
//
//  578   = 5.78 * 10^2
//  0.015 = 1.5  * 10^-2
//
// Exponent
//
// A float64 is a binary fraction, so most decimal literals are stored as a
// nearby value rather than the literal itself. Exponent works on the exact
// value of the double (through math/big) instead of math.Log10, which can be
// off by one near powers of ten:
//
//  | Input  | Exact double                   | Exponent |
//  |--------|--------------------------------|----------|
//  | 1e-3   | 0.001000000000000000020816...  | -3       |
//  | 0.015  | 0.014999999999999999444888...  | -2       |
//  | 1e23   | 99999999999999991611392        | 22       |
//  |--------|--------------------------------|----------|
//
// ParseExponent does the same for a numeric string at its textual value.
//
// Rounding
//
// Round rounds to a number of decimal places the way a correctly rounded
// decimal conversion does: the exact binary value is rounded and exact ties go
// to even. A literal such as 10.5 is an exact tie, but the value a
// computation produces "near" 10.5 may be a few units in the last place either
// side of it. Round detects that situation by rounding x·(1+Epsilon) and
// x·(1−Epsilon) as well:
//
//  Round(10.5, 0)    -> 10, warning (10.499999999999998 -> 10, 10.500000000000002 -> 11)
//  Round(10.234, 2)  -> 10.23
//  Round(10.234, -1) -> 10
//  Round(10.234, -2) -> 0
//
// The warning is returned next to the result and never replaces it.
package decimal
