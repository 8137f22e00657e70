// Package cli implements the scinot command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/calebcase/scinot/internal/config"
	"github.com/calebcase/scinot/internal/logger"
)

var version = "dev"

var (
	configPath string
	verbose    bool
	jsonOutput bool

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "scinot",
	Short: "Significant figures and uncertainties in scientific notation",
	Long: `Parses, rounds and combines values while tracking their significant figures.

Values that cannot be rounded reliably from their float64 form produce a
precision warning. The "warnings" setting of the configuration file decides
whether these are printed (warn), fail the command (error) or are dropped
(ignore).`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output results as JSON")
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetVerbose(verbose)

	c, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if jsonOutput {
		c.Output = config.OutputJSON
	}

	cfg = c

	logger.Debug("config %q: warnings=%s output=%s", configPath, cfg.Warnings, cfg.Output)

	return nil
}

// Execute runs the command line.
func Execute() error {
	return rootCmd.Execute()
}
