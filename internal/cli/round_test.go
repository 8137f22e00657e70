package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/errs"

	"github.com/calebcase/scinot/decimal"
)

func TestRoundCmd_Use(t *testing.T) {
	assert.Equal(t, "round VALUE PLACES", roundCmd.Use)
}

func TestRoundCmd_Executes(t *testing.T) {
	tcs := []struct {
		args []string
		want string
	}{
		{args: []string{"10.234", "2"}, want: "10.23\n"},
		{args: []string{"10.234", "0"}, want: "10\n"},
		{args: []string{"1011.5", "-1"}, want: "1010\n"},
		{args: []string{"1101.5", "-2"}, want: "1100\n"},
		{args: []string{"99.96", "1"}, want: "100.0\n"},
	}

	for _, tc := range tcs {
		t.Run(tc.want, func(t *testing.T) {
			stdout, stderr, err := execute(t, append([]string{"round"}, tc.args...)...)

			require.NoError(t, err)
			assert.Equal(t, tc.want, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestRoundCmd_Warning(t *testing.T) {
	stdout, stderr, err := execute(t, "round", "2.675", "2")

	require.NoError(t, err)
	assert.Equal(t, "2.67\n", stdout)
	assert.Contains(t, stderr, "[WARN] precision")
}

func TestRoundCmd_Invalid(t *testing.T) {
	for _, args := range [][]string{
		{"round", "ten", "2"},
		{"round", "10.5", "1.5"},
	} {
		_, _, err := execute(t, args...)

		require.Error(t, err, args)
		assert.True(t, errs.IsFunc(err, decimal.ErrInvalidNumber.Has), "%v: %+v", args, err)
	}
}
