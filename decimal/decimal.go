package decimal

import (
	"math"
	"math/big"
	"strings"

	"github.com/zeebo/errs"
)

// ErrInvalidNumber is the class of errors for inputs that are not finite
// decimal numbers.
var ErrInvalidNumber = errs.Class("invalid number")

// Epsilon is the machine epsilon for float64 (the gap between 1 and the next
// representable value).
const Epsilon = 0x1p-52

// Exponent returns the power of ten e such that x written in normalized
// scientific notation is d.ddd × 10^e.
//
// The exponent is derived from the exact value of the double rather than
// from math.Log10, so values sitting just below a power of ten report the
// lower exponent (the double nearest 1e23 is 9.99…e22 and has exponent 22).
// The exponent of zero is zero.
func Exponent(x float64) (e int, err error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, ErrInvalidNumber.New("not finite: %v", x)
	}

	return exponent(new(big.Rat).SetFloat64(x)), nil
}

// ParseExponent is Exponent for a numeric string. The string is taken at its
// exact textual value, so "1e23" has exponent 23.
func ParseExponent(s string) (e int, err error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return 0, ErrInvalidNumber.New("%q", s)
	}

	return exponent(r), nil
}

func exponent(r *big.Rat) (e int) {
	if r.Sign() == 0 {
		return 0
	}

	a := new(big.Rat).Abs(r)

	// The digit counts of numerator and denominator put the estimate
	// within one of the answer.
	e = len(a.Num().String()) - len(a.Denom().String())

	for a.Cmp(pow10(e)) < 0 {
		e--
	}

	for a.Cmp(pow10(e+1)) >= 0 {
		e++
	}

	return e
}

// pow10 returns 10^n exactly.
func pow10(n int) *big.Rat {
	abs := n
	if abs < 0 {
		abs = -abs
	}

	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs)), nil)
	if n < 0 {
		return new(big.Rat).SetFrac(big.NewInt(1), p)
	}

	return new(big.Rat).SetInt(p)
}

// EqualFloats reports whether x and y agree to within Epsilon relative to the
// larger magnitude.
//
// The tolerance collapses to zero at zero, so EqualFloats(0, 0) is false.
func EqualFloats(x, y float64) bool {
	return math.Abs(x-y) < math.Max(math.Abs(x), math.Abs(y))*Epsilon
}
