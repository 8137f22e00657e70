package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/scinot/internal/config"
	"github.com/calebcase/scinot/internal/logger"
)

// execute runs the root command with args and restores the package state
// afterwards.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)

		configPath = ""
		verbose = false
		jsonOutput = false
		parseDetail = false
		cfg = config.Default()

		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	}()

	err = rootCmd.Execute()

	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scinot.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	return path
}
