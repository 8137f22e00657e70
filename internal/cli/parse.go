package cli

import (
	"fmt"

	"github.com/calebcase/oops"
	"github.com/spf13/cobra"

	"github.com/calebcase/scinot/internal/config"
	"github.com/calebcase/scinot/internal/logger"
	"github.com/calebcase/scinot/scidata"
	"github.com/calebcase/scinot/sigfig"
)

var parseDetail bool

var parseCmd = &cobra.Command{
	Use:   "parse LITERAL...",
	Short: "Parse values written in scientific notation",
	Long: `Parses each literal and prints it in normalized form. A literal may carry
an uncertainty in parentheses and an exponent, as in metrology tables:

  scinot parse 299792458 "4.359 744 722 2060(48) x 10-18"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVarP(&parseDetail, "detail", "d", false, "print value, uncertainty and relative uncertainty")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	for _, arg := range args {
		d, err := scidata.Parse(arg)
		if err != nil {
			return oops.Trace(err)
		}

		logger.Debug("parsed %q as %s", arg, d)

		if err := report(d.Warnings()...); err != nil {
			return err
		}

		if cfg.Output == config.OutputJSON {
			if err := printJSON(out, newSciDataView(arg, d)); err != nil {
				return err
			}

			continue
		}

		fmt.Fprintln(out, d)

		if !parseDetail {
			continue
		}

		fmt.Fprintf(out, "  value:    %s\n", detail(&d.Value))
		if d.Exact {
			fmt.Fprintln(out, "  exact")
			continue
		}

		fmt.Fprintf(out, "  unc:      %s\n", detail(d.Unc))
		fmt.Fprintf(out, "  rel unc:  %s\n", detail(d.RelUnc))
	}

	return nil
}

func detail(s *sigfig.SigFig) string {
	return fmt.Sprintf("%s (%d)", s, s.Sigfigs)
}
