// SPDX-License-Identifier: MIT

// Package profile - grouped summaries.
//
// Grouping splits the table's rows by the canonical rendering of one named
// column (absent cells group under "NA") and computes the ungrouped
// operation per group over the REMAINING columns: the grouping column
// itself never counts toward missingness, mirroring grouped data-frame
// semantics. Results are slices ordered by group key ascending — a
// deterministic representation of the group→summary mapping.

package profile

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/nabular/frame"
)

// CasesBy returns per-row summaries computed within each group. Row indices
// refer to positions in the full table; percentages are over the non-group
// column count.
//
// Errors: frame.ErrNilTable, frame.ErrUnknownColumn.
func CasesBy(t *frame.Table, group string) ([]CaseGroup, error) {
	keys, rowsByKey, err := groupRows(t, group)
	if err != nil {
		return nil, fmt.Errorf("profile.CasesBy(%q): %w", group, err)
	}

	var (
		counts []int
		den    int
	)
	counts = rowAbsentCountsExcluding(t, group)
	den = t.Cols() - 1 // columns counted per row, grouping column excluded

	out := make([]CaseGroup, 0, len(keys))
	for _, key := range keys {
		idx := rowsByKey[key]
		cases := make([]CaseSummary, len(idx))
		for j, row := range idx {
			cases[j] = CaseSummary{Row: row, NMiss: counts[row], PctMiss: pct(counts[row], den)}
		}
		sort.SliceStable(cases, func(a, b int) bool { return cases[a].NMiss > cases[b].NMiss })
		out = append(out, CaseGroup{Group: key, Cases: cases})
	}
	return out, nil
}

// VarsBy returns per-column summaries computed within each group: for every
// non-group column, its absent count among the group's rows, with
// percentages over the group size. Column order and tie-breaking follow the
// ungrouped Vars contract.
//
// Errors: frame.ErrNilTable, frame.ErrUnknownColumn.
func VarsBy(t *frame.Table, group string) ([]VarGroup, error) {
	keys, rowsByKey, err := groupRows(t, group)
	if err != nil {
		return nil, fmt.Errorf("profile.VarsBy(%q): %w", group, err)
	}
	masks := absentMasksExcluding(t, group)

	out := make([]VarGroup, 0, len(keys))
	for _, key := range keys {
		idx := rowsByKey[key]
		vars := make([]VarSummary, len(masks))
		for m, nm := range masks {
			var n int
			for _, row := range idx {
				if nm.mask[row] {
					n++
				}
			}
			vars[m] = VarSummary{Variable: nm.name, NMiss: n, PctMiss: pct(n, len(idx))}
		}
		sort.SliceStable(vars, func(a, b int) bool { return vars[a].NMiss > vars[b].NMiss })
		out = append(out, VarGroup{Group: key, Vars: vars})
	}
	return out, nil
}

// CaseTableBy returns the per-group histogram of per-row absent counts,
// buckets ascending, shares over the group size.
//
// Errors: frame.ErrNilTable, frame.ErrUnknownColumn.
func CaseTableBy(t *frame.Table, group string) ([]CaseCountGroup, error) {
	keys, rowsByKey, err := groupRows(t, group)
	if err != nil {
		return nil, fmt.Errorf("profile.CaseTableBy(%q): %w", group, err)
	}
	counts := rowAbsentCountsExcluding(t, group)

	out := make([]CaseCountGroup, 0, len(keys))
	for _, key := range keys {
		idx := rowsByKey[key]
		sub := make([]int, len(idx))
		for j, row := range idx {
			sub[j] = counts[row]
		}

		buckets := bucketCounts(sub)
		ccs := make([]CaseCount, 0, len(buckets))
		for _, b := range buckets {
			ccs = append(ccs, CaseCount{NMiss: b.value, NCases: b.n, PctCases: pct(b.n, len(idx))})
		}
		out = append(out, CaseCountGroup{Group: key, Counts: ccs})
	}
	return out, nil
}

// VarTableBy returns the per-group histogram of per-column absent counts
// over the non-group columns, buckets ascending, shares over the non-group
// column count.
//
// Errors: frame.ErrNilTable, frame.ErrUnknownColumn.
func VarTableBy(t *frame.Table, group string) ([]VarCountGroup, error) {
	keys, rowsByKey, err := groupRows(t, group)
	if err != nil {
		return nil, fmt.Errorf("profile.VarTableBy(%q): %w", group, err)
	}
	masks := absentMasksExcluding(t, group)

	out := make([]VarCountGroup, 0, len(keys))
	for _, key := range keys {
		idx := rowsByKey[key]
		perCol := make([]int, len(masks))
		for m, nm := range masks {
			var n int
			for _, row := range idx {
				if nm.mask[row] {
					n++
				}
			}
			perCol[m] = n
		}

		buckets := bucketCounts(perCol)
		vcs := make([]VarCount, 0, len(buckets))
		for _, b := range buckets {
			vcs = append(vcs, VarCount{NMiss: b.value, NVars: b.n, PctVars: pct(b.n, len(masks))})
		}
		out = append(out, VarCountGroup{Group: key, Counts: vcs})
	}
	return out, nil
}

// groupRows resolves the grouping column and splits row indices by canonical
// cell rendering. Keys come back sorted ascending; each index list ascends.
func groupRows(t *frame.Table, group string) ([]string, map[string][]int, error) {
	col, err := t.Column(group)
	if err != nil {
		return nil, nil, err
	}

	rowsByKey := make(map[string][]int)
	n := col.Len()
	for i := 0; i < n; i++ {
		cell, cerr := col.Cell(i)
		if cerr != nil {
			return nil, nil, cerr
		}
		key := cell.String()
		rowsByKey[key] = append(rowsByKey[key], i)
	}

	keys := make([]string, 0, len(rowsByKey))
	for k := range rowsByKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, rowsByKey, nil
}

// namedMask pairs a column name with its absence mask, materialized once so
// group loops stay allocation-free.
type namedMask struct {
	name string
	mask []bool
}

// absentMasksExcluding snapshots the absence masks of every column except
// the named one, in declaration order.
func absentMasksExcluding(t *frame.Table, skip string) []namedMask {
	cols := t.Columns()
	masks := make([]namedMask, 0, len(cols))
	for _, col := range cols {
		if col.Name() == skip {
			continue
		}
		masks = append(masks, namedMask{name: col.Name(), mask: col.AbsentMask()})
	}
	return masks
}

// rowAbsentCountsExcluding is rowAbsentCounts with one column left out of
// the tally.
func rowAbsentCountsExcluding(t *frame.Table, skip string) []int {
	counts := make([]int, t.Rows())
	for _, col := range t.Columns() {
		if col.Name() == skip {
			continue
		}
		for i, absent := range col.AbsentMask() {
			if absent {
				counts[i]++
			}
		}
	}
	return counts
}
