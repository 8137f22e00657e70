package scidata

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/scinot/sigfig"
)

// ErrParse is the class of every error returned by Parse.
var ErrParse = errs.Class("parse")

var (
	// Longer markers come before the markers they contain.
	exponentMarkers = []string{
		"x10**", "x10^", "x10",
		"×10**", "×10^", "×10",
		"E", "e",
	}

	mantissaPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)

	leadingSign     = regexp.MustCompile(`^[+\-]?0*`)
	leadingFraction = regexp.MustCompile(`^\.0+`)
)

// Parse reads a value in scientific notation with an optional parenthesized
// uncertainty:
//
//  123                       exact, 3 figures
//  +00.0013(3)               0.0013 (2) ± 0.0003 (1)
//  4.359 744 722 2060(48) x 10-18
//  9.1093837139(28)×10−31
//
// Whitespace anywhere is ignored and a Unicode minus sign is read as '-'.
// The exponent may be introduced by x10**, x10^, x10 (or the same with ×),
// E or e. The significant figures of the value are the digits of the
// mantissa after leading signs and zeros. The uncertainty digits apply to the
// last figures of the value; they must be a plain run of digits without a
// leading zero.
func Parse(s string) (d SciData, err error) {
	defer ErrParse.WrapP(&err)

	in := s
	s = strings.Join(strings.Fields(s), "")
	s = strings.ReplaceAll(s, "−", "-")

	power := 0
	for _, marker := range exponentMarkers {
		mantissa, digits, found := strings.Cut(s, marker)
		if !found {
			continue
		}

		power, err = strconv.Atoi(digits)
		if err != nil {
			return SciData{}, errs.New("exponent of %q: %q", in, digits)
		}

		s = mantissa

		break
	}

	mantissa, rest, exact := s, "", true
	if m, r, found := strings.Cut(s, "("); found {
		var tail string

		rest, tail, found = strings.Cut(r, ")")
		if !found {
			return SciData{}, errs.New("unclosed uncertainty in %q", in)
		}

		if tail != "" {
			return SciData{}, errs.New("trailing %q in %q", tail, in)
		}

		mantissa, exact = m, false
	}

	if !mantissaPattern.MatchString(mantissa) {
		return SciData{}, errs.New("value of %q: %q", in, mantissa)
	}

	raw, err := strconv.ParseFloat(mantissa+"e"+strconv.Itoa(power), 64)
	if err != nil {
		return SciData{}, err
	}

	figures := leadingSign.ReplaceAllString(mantissa, "")
	figures = leadingFraction.ReplaceAllString(figures, "")

	sigfigs := 0
	for _, c := range figures {
		if c >= '0' && c <= '9' {
			sigfigs++
		}
	}

	value, err := sigfig.New(raw, sigfigs)
	if err != nil {
		return SciData{}, err
	}

	if exact {
		return New(value, nil, nil, true)
	}

	if rest == "" || strings.Trim(rest, "0123456789") != "" {
		return SciData{}, errs.New("uncertainty of %q: %q", in, rest)
	}

	if rest[0] == '0' {
		return SciData{}, errs.New("uncertainty of %q has a leading zero: %q", in, rest)
	}

	u, err := strconv.ParseFloat(rest+"e"+strconv.Itoa(value.Exponent-sigfigs+1), 64)
	if err != nil {
		return SciData{}, err
	}

	if !(u > 0) {
		return SciData{}, errs.New("uncertainty of %q is not positive", in)
	}

	unc, err := sigfig.New(u, len(rest))
	if err != nil {
		return SciData{}, err
	}

	return New(value, &unc, nil, false)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) SciData {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return d
}
