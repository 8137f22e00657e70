package decimal

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// maxDigits is the number of significant decimal digits that always
// identifies a float64 uniquely.
const maxDigits = 17

// PrecisionWarning reports that rounding Value to Places decimal places is
// sensitive to floating point representation error: nudging Value by one
// Epsilon either way lands on different sides of the rounding boundary.
type PrecisionWarning struct {
	Value  float64
	Places int

	// Low and High are the roundings of Value·(1−Epsilon) and
	// Value·(1+Epsilon).
	Low  float64
	High float64
}

// Error implements error so a warning can be escalated by the caller.
func (w *PrecisionWarning) Error() string {
	return fmt.Sprintf(
		"precision: rounding %v to %d places is sensitive to floating point error: %v or %v",
		w.Value,
		w.Places,
		w.Low,
		w.High,
	)
}

// Round rounds x to places decimal places (negative places round to tens,
// hundreds and so on). Ties are broken to even on the exact binary value of
// x.
//
// When rounding x·(1+Epsilon) and x·(1−Epsilon) disagree by at least
// 5×10^(−places−1), x sits on a rounding boundary that the double cannot
// resolve and a warning is returned along with the rounded value. The
// rounded value is always the rounding of x itself.
func Round(x float64, places int) (rounded float64, warning *PrecisionWarning) {
	rounded = round(x, places)

	low := round(x*(1-Epsilon), places)
	high := round(x*(1+Epsilon), places)

	if math.Abs(high-low) >= 5*math.Pow10(-places-1) {
		warning = &PrecisionWarning{
			Value:  x,
			Places: places,
			Low:    low,
			High:   high,
		}
	}

	return rounded, warning
}

func round(x float64, places int) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	e := exponent(new(big.Rat).SetFloat64(x))

	// Number of significant digits left of the rounding place.
	digits := e + places + 1

	switch {
	case digits >= maxDigits:
		return x
	case digits > 0:
		// FormatFloat rounds the exact value of x, half to even. Rounding
		// up past math.MaxFloat64 parses as ±Inf with a range error.
		r, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'e', digits-1, 64), 64)

		return r
	case digits == 0:
		// |x| is in [10^e, 10^(e+1)) and the rounding unit is 10^(e+1).
		half := new(big.Rat).Mul(big.NewRat(5, 1), pow10(e))
		if new(big.Rat).Abs(new(big.Rat).SetFloat64(x)).Cmp(half) > 0 {
			return math.Copysign(math.Pow10(e+1), x)
		}
	}

	return math.Copysign(0, x)
}
