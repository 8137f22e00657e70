package cli

import (
	"fmt"
	"strconv"

	"github.com/calebcase/oops"
	"github.com/spf13/cobra"

	"github.com/calebcase/scinot/decimal"
	"github.com/calebcase/scinot/internal/config"
	"github.com/calebcase/scinot/internal/logger"
)

var roundCmd = &cobra.Command{
	Use:   "round VALUE PLACES",
	Short: "Round a value to a number of decimal places",
	Long: `Rounds VALUE half to even at PLACES digits after the decimal point. A
negative PLACES rounds to the left of the point:

  scinot round 10.234 2    # 10.23
  scinot round 1011.5 -1   # 1010

Put -- before a negative VALUE.`,
	Args: cobra.ExactArgs(2),
	RunE: runRound,
}

func init() {
	roundCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(roundCmd)
}

type roundView struct {
	Input   float64 `json:"input"`
	Places  int     `json:"places"`
	Rounded float64 `json:"rounded"`
}

func runRound(cmd *cobra.Command, args []string) error {
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return oops.Trace(decimal.ErrInvalidNumber.Wrap(err))
	}

	places, err := strconv.Atoi(args[1])
	if err != nil {
		return oops.Trace(decimal.ErrInvalidNumber.Wrap(err))
	}

	rounded, warning := decimal.Round(x, places)

	logger.Debug("round(%v, %d) = %v", x, places, rounded)

	if err := report(warning); err != nil {
		return err
	}

	if cfg.Output == config.OutputJSON {
		return printJSON(cmd.OutOrStdout(), roundView{
			Input:   x,
			Places:  places,
			Rounded: rounded,
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(rounded, 'f', max(places, 0), 64))

	return nil
}
