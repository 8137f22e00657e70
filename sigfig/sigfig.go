package sigfig

import (
	"math"
	"strconv"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/scinot/decimal"
)

// ErrInvalidArgument is the class of errors for values that cannot be
// constructed: a sigfig count below one, or a value that is not a finite
// number.
var ErrInvalidArgument = errs.Class("invalid argument")

// SigFig is a float64 carried together with its number of significant
// figures and its base 10 exponent.
//
// Values built with New hold Value already rounded to Sigfigs significant
// digits. A composite literal is accepted everywhere but is not rounded.
type SigFig struct {
	Value    float64
	Sigfigs  int
	Exponent int

	warning *decimal.PrecisionWarning
}

// New returns value rounded to sigfigs significant figures.
//
// Exponent is taken from value before rounding. When rounding carries into
// the next power of ten (99.96 at 3 figures becomes 100.0) the stored
// Exponent stays at the pre-rounding exponent.
func New(value float64, sigfigs int) (s SigFig, err error) {
	defer ErrInvalidArgument.WrapP(&err)

	if sigfigs < 1 {
		return SigFig{}, errs.New("sigfigs must be at least 1: %d", sigfigs)
	}

	exponent, err := decimal.Exponent(value)
	if err != nil {
		return SigFig{}, err
	}

	rounded, warning := decimal.Round(value, (sigfigs-1)-exponent)
	if math.IsInf(rounded, 0) {
		return SigFig{}, errs.New("%v rounds out of range at %d figures", value, sigfigs)
	}

	return SigFig{
		Value:    rounded,
		Sigfigs:  sigfigs,
		Exponent: exponent,
		warning:  warning,
	}, nil
}

// NewFromString is New for a numeric string.
func NewFromString(value string, sigfigs int) (s SigFig, err error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return SigFig{}, ErrInvalidArgument.Wrap(err)
	}

	return New(f, sigfigs)
}

// MustNew is New that panics on error.
func MustNew(value float64, sigfigs int) SigFig {
	s, err := New(value, sigfigs)
	if err != nil {
		panic(err)
	}

	return s
}

// Place returns the decimal place of the least significant figure:
// 10^Place() is the value of one unit in that place.
func (s SigFig) Place() int {
	return s.Exponent - (s.Sigfigs - 1)
}

// Float64 returns the value as if it were exact.
func (s SigFig) Float64() float64 {
	return s.Value
}

// Warning returns the precision warning raised by the rounding that produced
// s, or nil.
func (s SigFig) Warning() *decimal.PrecisionWarning {
	return s.warning
}

// tolerance is half a unit in the place below the least significant figure.
func (s SigFig) tolerance() float64 {
	return 5 * math.Pow10(s.Place()-1)
}

// String renders s as d.ddde±XX with Sigfigs-1 fraction digits.
func (s SigFig) String() string {
	return strconv.FormatFloat(s.Value, 'e', s.Sigfigs-1, 64)
}

func finite(f float64) (err error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ErrInvalidArgument.New("operand not finite: %v", f)
	}

	return nil
}
