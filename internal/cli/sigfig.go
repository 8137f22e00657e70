package cli

import (
	"fmt"
	"strconv"

	"github.com/calebcase/oops"
	"github.com/spf13/cobra"

	"github.com/calebcase/scinot/internal/config"
	"github.com/calebcase/scinot/internal/logger"
	"github.com/calebcase/scinot/sigfig"
)

var sigfigCmd = &cobra.Command{
	Use:   "sigfig VALUE SIGFIGS",
	Short: "Round a value to a number of significant figures",
	Long: `Rounds VALUE to SIGFIGS significant figures and prints it in exponent form.
Put -- before a negative VALUE.`,
	Args: cobra.ExactArgs(2),
	RunE: runSigfig,
}

func init() {
	sigfigCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(sigfigCmd)
}

func runSigfig(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return oops.Trace(sigfig.ErrInvalidArgument.Wrap(err))
	}

	s, err := sigfig.NewFromString(args[0], n)
	if err != nil {
		return oops.Trace(err)
	}

	logger.Debug("%s: value=%v sigfigs=%d exponent=%d place=%d", args[0], s.Value, s.Sigfigs, s.Exponent, s.Place())

	if err := report(s.Warning()); err != nil {
		return err
	}

	if cfg.Output == config.OutputJSON {
		return printJSON(cmd.OutOrStdout(), newSigfigView(s))
	}

	fmt.Fprintln(cmd.OutOrStdout(), s)

	return nil
}
