// Package sigfig provides a float64 that tracks its significant figures.
//
// A SigFig is the triple (Value, Sigfigs, Exponent) where Value has been
// rounded to Sigfigs significant digits and Exponent is the power of ten of
// its normalized form:
//
//  New(3.14, 2)       = {Value: 3.1,     Sigfigs: 2, Exponent: 0}
//  New(-12.34e-2, 5)  = {Value: -0.1234, Sigfigs: 5, Exponent: -1}
//
// The place of the least significant figure governs rounding and comparison:
//
//  Place = Exponent - (Sigfigs - 1)
//
//  | Value | Sigfigs | Place |
//  |-------|---------|-------|
//  | 210.1 | 4       | -1    |
//  | 210   | 3       | 0     |
//  | 2e2   | 1       | 2     |
//  |-------|---------|-------|
//
// Equality and Ordering
//
// Equal is a tolerance test: the sigfig counts and exponents must match and
// the values must agree to within half a unit in the place below the
// receiver's least significant figure. Compare (and Less, LessEqual, Greater,
// GreaterEqual) orders by Value alone. Two values may be Equal while Compare
// reports them as different.
//
// Arithmetic
//
// Every operation comes in two forms: one taking a SigFig and one taking an
// exact float64 (Add/AddFloat, Sub/SubFloat, Mul/MulFloat, Div/DivFloat).
//
// Addition and subtraction keep the decimal place of the less precise
// operand:
//
//  1001.5 (5) + 10.49 (4) = 1011.99 -> 1012.0 (5)
//  99.9   (3) + 1.0   (2) = 100.9   -> 100.9  (4)
//
// Multiplication and division keep the smaller sigfig count:
//
//  10 (2) * 10 (3) = 100 (2)
//
// Precision Warnings
//
// Rounding a value that sits within an Epsilon of a rounding boundary (10.5
// to two figures) cannot be decided reliably from the double. The result is
// still produced and Warning reports the condition; see decimal.Round.
package sigfig
