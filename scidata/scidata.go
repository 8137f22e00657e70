package scidata

import (
	"fmt"
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/scinot/decimal"
	"github.com/calebcase/scinot/sigfig"
)

// SciData is a value with its standard uncertainty and relative standard
// uncertainty, or an exact value with neither.
type SciData struct {
	Value  sigfig.SigFig
	Unc    *sigfig.SigFig
	RelUnc *sigfig.SigFig
	Exact  bool
}

// New assembles a SciData from its parts.
//
// Exact data drops any uncertainty given. Inexact data requires unc; relUnc
// is stored as given without checking it against unc/|value| (the two can
// disagree in the last figure because of rounding), and is computed as
// unc/|value| when nil.
func New(value sigfig.SigFig, unc, relUnc *sigfig.SigFig, exact bool) (d SciData, err error) {
	defer sigfig.ErrInvalidArgument.WrapP(&err)

	if value.Sigfigs < 1 {
		return SciData{}, errs.New("value has no significant figures")
	}

	if exact {
		return SciData{
			Value: value,
			Exact: true,
		}, nil
	}

	if unc == nil || unc.Sigfigs < 1 {
		return SciData{}, errs.New("inexact value %s has no uncertainty", value)
	}

	u := *unc

	var r sigfig.SigFig
	switch {
	case relUnc == nil:
		r, err = u.Div(value.Abs())
		if err != nil {
			return SciData{}, err
		}
	case relUnc.Sigfigs < 1:
		return SciData{}, errs.New("relative uncertainty has no significant figures")
	default:
		r = *relUnc
	}

	return SciData{
		Value:  value,
		Unc:    &u,
		RelUnc: &r,
	}, nil
}

// Equal compares two inexact values figure by figure (value, uncertainty and
// relative uncertainty with SigFig.Equal). When either side is exact only
// the values are compared, to within decimal.Epsilon relative to the larger
// magnitude.
func (d SciData) Equal(o SciData) bool {
	if !d.Exact && !o.Exact {
		return d.Value.Equal(o.Value) &&
			equal(d.Unc, o.Unc) &&
			equal(d.RelUnc, o.RelUnc)
	}

	return decimal.EqualFloats(d.Float64(), o.Float64())
}

func equal(a, b *sigfig.SigFig) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Equal(*b)
}

// Compare orders by value alone.
func (d SciData) Compare(o SciData) int {
	return d.Value.Compare(o.Value)
}

// Less reports whether d's value is less than o's.
func (d SciData) Less(o SciData) bool {
	return d.Compare(o) < 0
}

// Float64 returns the value as if it were exact.
func (d SciData) Float64() float64 {
	return d.Value.Float64()
}

// Warnings returns the precision warnings raised while building the value,
// uncertainty and relative uncertainty.
func (d SciData) Warnings() (warnings []*decimal.PrecisionWarning) {
	for _, s := range []*sigfig.SigFig{&d.Value, d.Unc, d.RelUnc} {
		if s == nil || s.Warning() == nil {
			continue
		}

		warnings = append(warnings, s.Warning())
	}

	return warnings
}

// String renders d as "<mantissa> (exact) E<exponent>" or, with an
// uncertainty, "<mantissa> (<uncertainty digits>) E<exponent>":
//
//  2.99792458 (exact) E8
//  4.3597447222060 (48) E-18
func (d SciData) String() string {
	mantissa := scale(d.Value.Value, -d.Value.Exponent).Text('f', d.Value.Sigfigs-1)

	if d.Exact || d.Unc == nil {
		return fmt.Sprintf("%s (exact) E%d", mantissa, d.Value.Exponent)
	}

	digits := scale(d.Unc.Value, d.Unc.Sigfigs-1-d.Unc.Exponent).Text('f', 0)

	return fmt.Sprintf("%s (%s) E%d", mantissa, digits, d.Value.Exponent)
}

// scale returns f·10^n. Multiplying by a power of ten is exact; dividing is
// carried at a precision well past float64.
func scale(f float64, n int) *big.Float {
	const prec = 256

	x := new(big.Float).SetPrec(prec).SetFloat64(f)

	abs := n
	if abs < 0 {
		abs = -abs
	}

	p := new(big.Float).SetPrec(prec).SetInt(
		new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs)), nil),
	)

	if n < 0 {
		return x.Quo(x, p)
	}

	return x.Mul(x, p)
}
