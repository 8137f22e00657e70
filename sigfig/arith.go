package sigfig

import (
	"math"

	"github.com/calebcase/scinot/decimal"
)

// Add returns s + o rounded to the less precise of the two decimal places.
func (s SigFig) Add(o SigFig) (SigFig, error) {
	return s.place(s.Value+o.Value, max(s.Place(), o.Place()))
}

// AddFloat returns s + f where f is exact.
func (s SigFig) AddFloat(f float64) (SigFig, error) {
	if err := finite(f); err != nil {
		return SigFig{}, err
	}

	return s.place(s.Value+f, s.Place())
}

// Sub returns s - o rounded to the less precise of the two decimal places.
func (s SigFig) Sub(o SigFig) (SigFig, error) {
	return s.place(s.Value-o.Value, max(s.Place(), o.Place()))
}

// SubFloat returns s - f where f is exact.
func (s SigFig) SubFloat(f float64) (SigFig, error) {
	if err := finite(f); err != nil {
		return SigFig{}, err
	}

	return s.place(s.Value-f, s.Place())
}

// Mul returns s * o with the smaller of the two sigfig counts.
func (s SigFig) Mul(o SigFig) (SigFig, error) {
	return New(s.Value*o.Value, min(s.Sigfigs, o.Sigfigs))
}

// MulFloat returns s * f where f is exact.
func (s SigFig) MulFloat(f float64) (SigFig, error) {
	if err := finite(f); err != nil {
		return SigFig{}, err
	}

	return New(s.Value*f, s.Sigfigs)
}

// Div returns s / o with the smaller of the two sigfig counts. Division by
// zero is an error.
func (s SigFig) Div(o SigFig) (SigFig, error) {
	return New(s.Value/o.Value, min(s.Sigfigs, o.Sigfigs))
}

// DivFloat returns s / f where f is exact.
func (s SigFig) DivFloat(f float64) (SigFig, error) {
	if err := finite(f); err != nil {
		return SigFig{}, err
	}

	return New(s.Value/f, s.Sigfigs)
}

// Abs returns |s| with the same significant figures and exponent.
func (s SigFig) Abs() SigFig {
	s.Value = math.Abs(s.Value)

	return s
}

// place rounds raw to the decimal place limiting and sizes the result so its
// least significant figure sits in that place.
//
// The rounding's precision warning wins over the one raised by New, which
// rounds an already rounded value.
func (s SigFig) place(raw float64, limiting int) (r SigFig, err error) {
	defer ErrInvalidArgument.WrapP(&err)

	rounded, warning := decimal.Round(raw, -limiting)

	exponent, err := decimal.Exponent(rounded)
	if err != nil {
		return SigFig{}, err
	}

	r, err = New(rounded, exponent-limiting+1)
	if err != nil {
		return SigFig{}, err
	}

	if warning != nil {
		r.warning = warning
	}

	return r, nil
}
