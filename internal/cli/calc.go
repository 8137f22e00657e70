package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/calebcase/oops"
	"github.com/spf13/cobra"

	"github.com/calebcase/scinot/internal/config"
	"github.com/calebcase/scinot/internal/logger"
	"github.com/calebcase/scinot/scidata"
	"github.com/calebcase/scinot/sigfig"
)

type operation func(a, b sigfig.SigFig) (sigfig.SigFig, error)

var operations = map[string]operation{
	"+":   sigfig.SigFig.Add,
	"add": sigfig.SigFig.Add,
	"-":   sigfig.SigFig.Sub,
	"sub": sigfig.SigFig.Sub,
	"*":   sigfig.SigFig.Mul,
	"x":   sigfig.SigFig.Mul,
	"mul": sigfig.SigFig.Mul,
	"/":   sigfig.SigFig.Div,
	"div": sigfig.SigFig.Div,
}

var calcCmd = &cobra.Command{
	Use:   "calc A OP B",
	Short: "Combine two values while keeping significant figures",
	Long: `Applies OP (+, -, *, /, or add, sub, mul, div) to A and B. Each operand is
read like a parse literal and its significant figures come from the digits
written; any uncertainty is ignored.

  scinot calc 1001.5 + 10.49   # 1.0120e+03
  scinot calc 10 mul 30.0      # 3.0e+02

Put -- before a negative A.`,
	Args: cobra.ExactArgs(3),
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(calcCmd)
}

type calcView struct {
	A      *sigfigView `json:"a"`
	Op     string      `json:"op"`
	B      *sigfigView `json:"b"`
	Result *sigfigView `json:"result"`
}

func runCalc(cmd *cobra.Command, args []string) error {
	op, ok := operations[strings.ToLower(args[1])]
	if !ok {
		names := make([]string, 0, len(operations))
		for name := range operations {
			names = append(names, name)
		}
		sort.Strings(names)

		return oops.Trace(sigfig.ErrInvalidArgument.New("unknown operation %q (want one of %s)", args[1], strings.Join(names, " ")))
	}

	a, err := operand(args[0])
	if err != nil {
		return err
	}

	b, err := operand(args[2])
	if err != nil {
		return err
	}

	result, err := op(a, b)
	if err != nil {
		return oops.Trace(err)
	}

	logger.Debug("%s %s %s = %v (sigfigs=%d exponent=%d)", a, args[1], b, result.Value, result.Sigfigs, result.Exponent)

	if err := report(result.Warning()); err != nil {
		return err
	}

	if cfg.Output == config.OutputJSON {
		return printJSON(cmd.OutOrStdout(), calcView{
			A:      newSigfigView(a),
			Op:     args[1],
			B:      newSigfigView(b),
			Result: newSigfigView(result),
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), result)

	return nil
}

func operand(literal string) (sigfig.SigFig, error) {
	d, err := scidata.Parse(literal)
	if err != nil {
		return sigfig.SigFig{}, oops.Trace(err)
	}

	if !d.Exact {
		logger.Info("%q: uncertainty %s ignored", literal, d.Unc)
	}

	if err := report(d.Value.Warning()); err != nil {
		return sigfig.SigFig{}, err
	}

	return d.Value, nil
}
