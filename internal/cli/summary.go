// SPDX-License-Identifier: MIT

// Package cli - the summary command.
//
// Purpose:
//   - Load one source and print its missingness profile: overall counts,
//     the per-variable summary, and on request the per-case summary
//     (--cases), the case/variable histograms (--tables) and per-group
//     breakdowns (--group).
//
// AI-Hints:
//   - The json payload reuses the profile record types verbatim, so the
//     wire field names (n_miss, pct_miss, ...) are defined in one place.

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nabular/frame"
	"github.com/katalvlaran/nabular/profile"
)

// summaryOptions carries the summary-specific flags.
type summaryOptions struct {
	src    sourceOptions
	cases  bool
	tables bool
	group  string
}

// SummaryReport is the summary payload for one whole table.
type SummaryReport struct {
	Rows        int                   `json:"rows"`
	Cols        int                   `json:"cols"`
	NMiss       int                   `json:"n_miss"`
	NComplete   int                   `json:"n_complete"`
	PctMiss     float64               `json:"pct_miss"`
	PctMissCase float64               `json:"pct_miss_case"`
	PctMissVar  float64               `json:"pct_miss_var"`
	Vars        []profile.VarSummary  `json:"vars"`
	Cases       []profile.CaseSummary `json:"cases,omitempty"`
	CaseCounts  []profile.CaseCount   `json:"case_table,omitempty"`
	VarCounts   []profile.VarCount    `json:"var_table,omitempty"`
}

// GroupedSummaryReport is the summary payload when --group splits the rows
// by one column's values.
type GroupedSummaryReport struct {
	Rows       int                      `json:"rows"`
	Cols       int                      `json:"cols"`
	Group      string                   `json:"group"`
	Vars       []profile.VarGroup       `json:"vars"`
	Cases      []profile.CaseGroup      `json:"cases,omitempty"`
	CaseCounts []profile.CaseCountGroup `json:"case_table,omitempty"`
	VarCounts  []profile.VarCountGroup  `json:"var_table,omitempty"`
}

// NewSummaryCommand creates the summary command.
func NewSummaryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &summaryOptions{}

	cmd := &cobra.Command{
		Use:   "summary [data]",
		Short: "Profile missingness in a data source",
		Long: `Profile missingness in a csv file, parquet file or sqlite query.

Prints the overall absent/present counts and the per-variable summary.
--cases adds the per-row summary, --tables the case and variable
histograms, --group <column> computes every section per group.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(rootOpts, cmd, args, opts)
		},
	}

	addSourceFlags(cmd, &opts.src)
	cmd.Flags().BoolVar(&opts.cases, "cases", false,
		"include the per-row summary")
	cmd.Flags().BoolVar(&opts.tables, "tables", false,
		"include the case and variable histograms")
	cmd.Flags().StringVar(&opts.group, "group", "",
		"group every section by this column's values")

	return cmd
}

func runSummary(rootOpts *RootOptions, cmd *cobra.Command, args []string, opts *summaryOptions) error {
	formatter := newFormatter(rootOpts, cmd)

	tab, err := loadTable(formatter, args, &opts.src)
	if err != nil {
		return err
	}

	var report any
	if opts.group != "" {
		report, err = buildGroupedReport(tab, opts)
		if err != nil {
			return fail(formatter, ErrCodeUsage,
				WrapExitError(ExitUsage, fmt.Sprintf("grouping by %q", opts.group), err))
		}
	} else {
		report = buildSummaryReport(tab, opts)
	}

	if err := formatter.Success(report); err != nil {
		return WrapExitError(ExitFailure, "writing output", err)
	}
	return nil
}

// buildSummaryReport profiles the whole table. Infallible once the table is
// loaded: every profile operation below is total.
func buildSummaryReport(t *frame.Table, opts *summaryOptions) *SummaryReport {
	rep := &SummaryReport{
		Rows:        t.Rows(),
		Cols:        t.Cols(),
		NMiss:       profile.NMiss(t),
		NComplete:   profile.NComplete(t),
		PctMiss:     profile.PctMiss(t),
		PctMissCase: profile.PctMissCase(t),
		PctMissVar:  profile.PctMissVar(t),
		Vars:        profile.Vars(t),
	}
	if opts.cases {
		rep.Cases = profile.Cases(t)
	}
	if opts.tables {
		rep.CaseCounts = profile.CaseTable(t)
		rep.VarCounts = profile.VarTable(t)
	}
	return rep
}

// buildGroupedReport profiles the table per group. Fails only when the
// grouping column does not exist.
func buildGroupedReport(t *frame.Table, opts *summaryOptions) (*GroupedSummaryReport, error) {
	vars, err := profile.VarsBy(t, opts.group)
	if err != nil {
		return nil, err
	}

	rep := &GroupedSummaryReport{
		Rows:  t.Rows(),
		Cols:  t.Cols(),
		Group: opts.group,
		Vars:  vars,
	}
	if opts.cases {
		if rep.Cases, err = profile.CasesBy(t, opts.group); err != nil {
			return nil, err
		}
	}
	if opts.tables {
		if rep.CaseCounts, err = profile.CaseTableBy(t, opts.group); err != nil {
			return nil, err
		}
		if rep.VarCounts, err = profile.VarTableBy(t, opts.group); err != nil {
			return nil, err
		}
	}
	return rep, nil
}

// renderText draws the kv block, then one fixed-width table per requested
// section, separated by blank lines.
func (r *SummaryReport) renderText(w io.Writer) error {
	kv := []struct{ label, value string }{
		{"rows", itoaText(r.Rows)},
		{"cols", itoaText(r.Cols)},
		{"n_miss", itoaText(r.NMiss)},
		{"n_complete", itoaText(r.NComplete)},
		{"pct_miss", pctText(r.PctMiss)},
		{"pct_miss_case", pctText(r.PctMissCase)},
		{"pct_miss_var", pctText(r.PctMissVar)},
	}
	for _, line := range kv {
		if err := kvLine(w, line.label, line.value); err != nil {
			return err
		}
	}

	if err := writeSection(w, "variables", varsTable(r.Vars)); err != nil {
		return err
	}
	if r.Cases != nil {
		if err := writeSection(w, "cases", casesTable(r.Cases)); err != nil {
			return err
		}
	}
	if r.CaseCounts != nil {
		if err := writeSection(w, "case table", caseCountsTable(r.CaseCounts)); err != nil {
			return err
		}
	}
	if r.VarCounts != nil {
		if err := writeSection(w, "variable table", varCountsTable(r.VarCounts)); err != nil {
			return err
		}
	}
	return nil
}

// renderText draws the kv block, then each section once per group. Sections
// are section-major: all variable tables, then all case tables, and so on,
// groups in key order.
func (r *GroupedSummaryReport) renderText(w io.Writer) error {
	kv := []struct{ label, value string }{
		{"rows", itoaText(r.Rows)},
		{"cols", itoaText(r.Cols)},
		{"group", r.Group},
	}
	for _, line := range kv {
		if err := kvLine(w, line.label, line.value); err != nil {
			return err
		}
	}

	for _, g := range r.Vars {
		title := fmt.Sprintf("variables (group=%s)", g.Group)
		if err := writeSection(w, title, varsTable(g.Vars)); err != nil {
			return err
		}
	}
	for _, g := range r.Cases {
		title := fmt.Sprintf("cases (group=%s)", g.Group)
		if err := writeSection(w, title, casesTable(g.Cases)); err != nil {
			return err
		}
	}
	for _, g := range r.CaseCounts {
		title := fmt.Sprintf("case table (group=%s)", g.Group)
		if err := writeSection(w, title, caseCountsTable(g.Counts)); err != nil {
			return err
		}
	}
	for _, g := range r.VarCounts {
		title := fmt.Sprintf("variable table (group=%s)", g.Group)
		if err := writeSection(w, title, varCountsTable(g.Counts)); err != nil {
			return err
		}
	}
	return nil
}

// writeSection emits a blank separator, the section title and the table.
func writeSection(w io.Writer, title string, t *textTable) error {
	if _, err := fmt.Fprintf(w, "\n%s:\n", title); err != nil {
		return err
	}
	return t.writeTo(w)
}

func varsTable(vars []profile.VarSummary) *textTable {
	t := newTextTable("variable", "n_miss", "pct_miss")
	for _, v := range vars {
		t.addRow(v.Variable, itoaText(v.NMiss), pctText(v.PctMiss))
	}
	return t
}

func casesTable(cases []profile.CaseSummary) *textTable {
	t := newTextTable("row", "n_miss", "pct_miss")
	for _, c := range cases {
		t.addRow(itoaText(c.Row), itoaText(c.NMiss), pctText(c.PctMiss))
	}
	return t
}

func caseCountsTable(counts []profile.CaseCount) *textTable {
	t := newTextTable("n_miss_in_case", "n_cases", "pct_cases")
	for _, c := range counts {
		t.addRow(itoaText(c.NMiss), itoaText(c.NCases), pctText(c.PctCases))
	}
	return t
}

func varCountsTable(counts []profile.VarCount) *textTable {
	t := newTextTable("n_miss_in_var", "n_vars", "pct_vars")
	for _, c := range counts {
		t.addRow(itoaText(c.NMiss), itoaText(c.NVars), pctText(c.PctVars))
	}
	return t
}
