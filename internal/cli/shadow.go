// SPDX-License-Identifier: MIT

// Package cli - the shadow command.
//
// Purpose:
//   - Load one source, bind its nabular form and write the combined table
//     (data columns first, then one _NA shadow column per data column) as
//     csv: absent base cells render as "NA", shadow cells as "NA"/"!NA".
//
// AI-Hints:
//   - Without --out the csv itself is the stdout payload, so --format json
//     demands --out: the envelope and the csv cannot share one stream.

package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nabular/frame"
	"github.com/katalvlaran/nabular/shadow"
)

// ShadowReport confirms a csv written to --out.
type ShadowReport struct {
	Rows int    `json:"rows"`
	Cols int    `json:"cols"`
	Out  string `json:"out"`
}

// NewShadowCommand creates the shadow command.
func NewShadowCommand(rootOpts *RootOptions) *cobra.Command {
	src := &sourceOptions{}
	var out string

	cmd := &cobra.Command{
		Use:   "shadow [data]",
		Short: "Write the nabular form of a data source as csv",
		Long: `Bind a data source to its shadow and write the combined table as csv.

The output carries every data column followed by one <column>_NA shadow
column per data column; shadow cells read "NA" where the source cell was
absent and "!NA" where it was present. Absent data cells render as "NA".
Without --out the csv goes to stdout (text format only); with --out a
short confirmation is printed instead.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShadow(rootOpts, cmd, args, src, out)
		},
	}

	addSourceFlags(cmd, src)
	cmd.Flags().StringVar(&out, "out", "",
		"write the csv to this file instead of stdout")

	return cmd
}

func runShadow(rootOpts *RootOptions, cmd *cobra.Command, args []string, src *sourceOptions, out string) error {
	formatter := newFormatter(rootOpts, cmd)

	if out == "" && rootOpts.Format == "json" {
		return usageError(formatter, "--format json requires --out (stdout carries the csv)")
	}

	tab, err := loadTable(formatter, args, src)
	if err != nil {
		return err
	}

	nb, err := shadow.Bind(tab)
	if err != nil {
		return fail(formatter, ErrCodeShadow,
			WrapExitError(ExitFailure, "binding shadow", err))
	}
	combined := nb.Table()

	if out == "" {
		if err := writeTableCSV(formatter.Writer, combined); err != nil {
			return fail(formatter, ErrCodeWrite,
				WrapExitError(ExitFailure, "writing csv", err))
		}
		return nil
	}

	if err := writeFileCSV(out, combined); err != nil {
		return fail(formatter, ErrCodeWrite,
			WrapExitError(ExitFailure, fmt.Sprintf("writing %s", out), err))
	}
	formatter.VerboseLog("wrote %s", out)

	report := &ShadowReport{Rows: combined.Rows(), Cols: combined.Cols(), Out: out}
	if err := formatter.Success(report); err != nil {
		return WrapExitError(ExitFailure, "writing output", err)
	}
	return nil
}

// renderText confirms the write as kv lines.
func (r *ShadowReport) renderText(w io.Writer) error {
	kv := []struct{ label, value string }{
		{"rows", itoaText(r.Rows)},
		{"cols", itoaText(r.Cols)},
		{"out", r.Out},
	}
	for _, line := range kv {
		if err := kvLine(w, line.label, line.value); err != nil {
			return err
		}
	}
	return nil
}

// writeFileCSV creates path and streams the table into it.
func writeFileCSV(path string, t *frame.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeTableCSV(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeTableCSV writes the header row and every data row in canonical cell
// rendering (absent cells as frame.AbsentLabel, numbers in 'g' form, times
// as RFC3339).
func writeTableCSV(w io.Writer, t *frame.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.ColumnNames()); err != nil {
		return err
	}

	cols := t.Columns()
	record := make([]string, len(cols))
	for r := 0; r < t.Rows(); r++ {
		for j, col := range cols {
			cell, err := col.Cell(r)
			if err != nil {
				return err
			}
			record[j] = cell.String()
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
