package sigfig

import "math"

// Equal reports whether s and o carry the same significant figures and
// exponent and their values agree to within half a unit in the place below
// s's least significant figure.
//
// Equal is not transitive: 1.00 and 1.04 are equal at two figures, as are
// 1.04 and 1.08, but 1.00 and 1.08 are not.
func (s SigFig) Equal(o SigFig) bool {
	return s.Sigfigs == o.Sigfigs &&
		s.Exponent == o.Exponent &&
		math.Abs(s.Value-o.Value) < s.tolerance()
}

// EqualFloat reports whether f agrees with s to within half a unit in the
// place below s's least significant figure.
func (s SigFig) EqualFloat(f float64) bool {
	return math.Abs(s.Value-f) < s.tolerance()
}

// Compare returns -1, 0 or +1 as s.Value is less than, equal to or greater
// than o.Value. Significant figures play no part: Compare(o) == 0 and
// Equal(o) answer different questions.
func (s SigFig) Compare(o SigFig) int {
	return compare(s.Value, o.Value)
}

// CompareFloat is Compare against a raw number.
func (s SigFig) CompareFloat(f float64) int {
	return compare(s.Value, f)
}

func (s SigFig) Less(o SigFig) bool         { return s.Compare(o) < 0 }
func (s SigFig) LessEqual(o SigFig) bool    { return s.Compare(o) <= 0 }
func (s SigFig) Greater(o SigFig) bool      { return s.Compare(o) > 0 }
func (s SigFig) GreaterEqual(o SigFig) bool { return s.Compare(o) >= 0 }

func compare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	}

	return 0
}
