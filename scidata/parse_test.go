package scidata_test

import (
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/scinot/scidata"
	"github.com/calebcase/scinot/sigfig"
)

func TestParse(t *testing.T) {
	type TC struct {
		in    string
		value sigfig.SigFig
		unc   *sigfig.SigFig
		exact bool
		Mark  error
	}

	tcs := []TC{
		{in: "123", value: mn(123, 3), exact: true, Mark: oops.New("unexpected")},
		{in: "299792458", value: mn(299792458, 9), exact: true, Mark: oops.New("unexpected")},
		{in: "1.20", value: mn(1.2, 3), exact: true, Mark: oops.New("unexpected")},
		{in: ".5", value: mn(0.5, 1), exact: true, Mark: oops.New("unexpected")},
		{in: "-0.050", value: mn(-0.05, 2), exact: true, Mark: oops.New("unexpected")},
		{in: "+00.0013(3)", value: mn(0.0013, 2), unc: ptr(mn(0.0003, 1)), Mark: oops.New("unexpected")},
		{in: "+.0013(3)", value: mn(0.0013, 2), unc: ptr(mn(0.0003, 1)), Mark: oops.New("unexpected")},
		{in: "-.05(2)", value: mn(-0.05, 1), unc: ptr(mn(0.02, 1)), Mark: oops.New("unexpected")},
		{in: "+.5", value: mn(0.5, 1), exact: true, Mark: oops.New("unexpected")},
		{in: "-.0500", value: mn(-0.05, 3), exact: true, Mark: oops.New("unexpected")},
		{in: "1.23(4)", value: mn(1.23, 3), unc: ptr(mn(0.04, 1)), Mark: oops.New("unexpected")},
		{in: "1.5(2)e3", value: mn(1500, 2), unc: ptr(mn(200, 1)), Mark: oops.New("unexpected")},
		{in: "1.5(2)E3", value: mn(1500, 2), unc: ptr(mn(200, 1)), Mark: oops.New("unexpected")},
		{in: "1.5(2)x10**3", value: mn(1500, 2), unc: ptr(mn(200, 1)), Mark: oops.New("unexpected")},
		{in: "1.5(2)x10^3", value: mn(1500, 2), unc: ptr(mn(200, 1)), Mark: oops.New("unexpected")},
		{in: "1.5(2)x103", value: mn(1500, 2), unc: ptr(mn(200, 1)), Mark: oops.New("unexpected")},
		{in: "1.5(2)×10^3", value: mn(1500, 2), unc: ptr(mn(200, 1)), Mark: oops.New("unexpected")},
		{in: "12.345(67)x10^-23", value: mn(1.2345e-22, 5), unc: ptr(mn(6.7e-25, 2)), Mark: oops.New("unexpected")},
		{
			in:    "4.359 744 722 2060(48) x 10-18",
			value: mn(4.3597447222060e-18, 14),
			unc:   ptr(mn(4.8e-30, 2)),
			Mark:  oops.New("unexpected"),
		},
		{
			in:    "9.1093837139(28)×10−31",
			value: mn(9.1093837139e-31, 11),
			unc:   ptr(mn(2.8e-40, 2)),
			Mark:  oops.New("unexpected"),
		},
		{in: " 6.626 070 15 \t x 10^-34 ", value: mn(6.62607015e-34, 9), exact: true, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.in), func(t *testing.T) {
			d, err := scidata.Parse(tc.in)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.exact, d.Exact, tc.Mark)
			require.True(t, d.Value.Equal(tc.value), "%s\n%+v", spew.Sdump(d), tc.Mark)

			if tc.exact {
				require.Nil(t, d.Unc, tc.Mark)
				require.Nil(t, d.RelUnc, tc.Mark)

				return
			}

			require.NotNil(t, d.Unc, tc.Mark)
			require.True(t, d.Unc.Equal(*tc.unc), "%s\n%+v", spew.Sdump(d), tc.Mark)

			rel, err := tc.unc.Div(tc.value.Abs())
			require.NoError(t, err, tc.Mark)
			require.True(t, d.RelUnc.Equal(rel), "%s\n%+v", spew.Sdump(d), tc.Mark)
		})
	}

	t.Run("exact", func(t *testing.T) {
		d, err := scidata.Parse("123")
		require.NoError(t, err)

		want, err := scidata.New(mn(123, 3), nil, nil, true)
		require.NoError(t, err)
		require.True(t, d.Equal(want))
	})

	t.Run("relative", func(t *testing.T) {
		d := scidata.MustParse("4.359 744 722 2060(48) x 10-18")
		require.True(t, d.RelUnc.Equal(mn(1.1e-12, 2)), spew.Sdump(d.RelUnc))
	})
}

func TestParseInvalid(t *testing.T) {
	type TC struct {
		in   string
		Mark error
	}

	tcs := []TC{
		{in: "", Mark: oops.New("unexpected")},
		{in: "   ", Mark: oops.New("unexpected")},
		{in: "abc", Mark: oops.New("unexpected")},
		{in: "0", Mark: oops.New("unexpected")},
		{in: "1.2e", Mark: oops.New("unexpected")},
		{in: "1.2x10^a", Mark: oops.New("unexpected")},
		{in: "1.2e3e4", Mark: oops.New("unexpected")},
		{in: "1.2e400", Mark: oops.New("unexpected")},
		{in: "1.2.3", Mark: oops.New("unexpected")},
		{in: "0x1p-2", Mark: oops.New("unexpected")},
		{in: "Inf", Mark: oops.New("unexpected")},
		{in: "NaN", Mark: oops.New("unexpected")},
		{in: "1.23(4", Mark: oops.New("unexpected")},
		{in: "1.234)", Mark: oops.New("unexpected")},
		{in: "1.23()", Mark: oops.New("unexpected")},
		{in: "1.23(04)", Mark: oops.New("unexpected")},
		{in: "1.23(0.04)", Mark: oops.New("unexpected")},
		{in: "1.23(-4)", Mark: oops.New("unexpected")},
		{in: "1.23(4)5", Mark: oops.New("unexpected")},
		{in: "1.23(4)(5)", Mark: oops.New("unexpected")},
		{in: "(4)", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.in), func(t *testing.T) {
			_, err := scidata.Parse(tc.in)
			require.Error(t, err, tc.Mark)
			require.True(t, scidata.ErrParse.Has(err), "%+v\n%+v", err, tc.Mark)
		})
	}

	t.Run("must", func(t *testing.T) {
		require.Panics(t, func() {
			scidata.MustParse("abc")
		})
	})
}
