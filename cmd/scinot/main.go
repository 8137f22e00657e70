// Command scinot parses, rounds and combines values in scientific notation
// while tracking significant figures.
package main

import (
	"os"

	"github.com/calebcase/scinot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
