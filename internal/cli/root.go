// SPDX-License-Identifier: MIT

// Package cli - root command and global options.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ValidFormats lists the accepted values of the global --format flag.
var ValidFormats = []string{"text", "json"}

// RootOptions carries the global flags shared by every subcommand. A single
// instance is bound to the persistent flag set and handed to each constructor.
type RootOptions struct {
	Verbose bool
	Format  string
}

// NewRootCommand builds the nabular command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "nabular",
		Short: "nabular - missing-data profiling for tabular files",
		Long: `nabular profiles missingness in tabular data.

It reads CSV, Parquet or SQLite sources into a table whose cells are either
present or absent, summarises where the gaps are, and can re-encode the table
in nabular form: every data column paired with a shadow column that records
the original missingness ("NA" / "!NA") even after values are filled in.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Plain error on purpose: no formatter exists yet, so the
			// binary prints it like any other invocation mistake.
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q (valid: %v)", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false,
		"print progress diagnostics to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text",
		"output format: text or json")

	cmd.AddCommand(NewSummaryCommand(opts))
	cmd.AddCommand(NewShadowCommand(opts))
	cmd.AddCommand(NewClusterCommand(opts))

	return cmd
}

// isValidFormat reports whether f is a member of ValidFormats. Matching is
// exact: formats are lowercase by contract.
func isValidFormat(f string) bool {
	for _, v := range ValidFormats {
		if f == v {
			return true
		}
	}
	return false
}

// newFormatter builds the OutputFormatter for one command invocation, wired
// to the cobra command's streams so tests can capture output.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
