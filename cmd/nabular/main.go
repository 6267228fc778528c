// SPDX-License-Identifier: MIT

// Command nabular profiles missingness in tabular data and re-encodes
// tables in nabular (data + shadow) form. See `nabular --help`.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/nabular/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// Commands report their own failures; only cobra's flag and
		// argument errors still need printing here.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
