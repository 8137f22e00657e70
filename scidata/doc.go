// Package scidata pairs a significant-figure value with its standard
// uncertainty.
//
// A SciData is either exact, in which case it carries only a value, or
// inexact, in which case it carries the value, the standard uncertainty and
// the relative standard uncertainty (uncertainty / |value|), each as a
// sigfig.SigFig.
//
// Literals
//
// Parse reads the concise notation used by metrology tables, where the digits
// in parentheses are the uncertainty in the last figures of the value:
//
//  | Literal                          | Value                   | Uncertainty  |
//  |----------------------------------|-------------------------|--------------|
//  | 123                              | 123 (3)                 | exact        |
//  | +00.0013(3)                      | 0.0013 (2)              | 0.0003 (1)   |
//  | 1.5(2)e3                         | 1.5e3 (2)               | 200 (1)      |
//  | 12.345(67)x10^-23                | 1.2345e-22 (5)          | 6.7e-25 (2)  |
//  | 4.359 744 722 2060(48) x 10-18   | 4.3597447222060e-18 (14)| 4.8e-30 (2)  |
//  | 9.1093837139(28)×10−31           | 9.1093837139e-31 (11)   | 2.8e-40 (2)  |
//  |----------------------------------|-------------------------|--------------|
//
// String writes the same shape back out in a normalized form:
//
//  4.3597447222060 (48) E-18
//  2.99792458 (exact) E8
package scidata
