// SPDX-License-Identifier: MIT

// Package profile - streaks and windows down a single column.
//
// Ordered data often goes missing in stretches (a sensor outage, a skipped
// survey season). VarRuns exposes those stretches as run-length encoding;
// VarSpans tallies absence inside fixed-width row windows so drift over the
// course of a recording shows up as a sequence of window counts.

package profile

import (
	"fmt"

	"github.com/katalvlaran/nabular/frame"
)

// VarRuns returns the run-length encoding of one column's absence: maximal
// streaks of all-absent or all-present cells, in row order, covering the
// column end to end. An empty column yields an empty slice.
//
// Errors: frame.ErrNilTable, frame.ErrUnknownColumn.
//
// Complexity: O(r).
func VarRuns(t *frame.Table, name string) ([]Run, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, fmt.Errorf("profile.VarRuns(%q): %w", name, err)
	}

	mask := col.AbsentMask()
	out := make([]Run, 0)

	var i, j int
	for i = 0; i < len(mask); i = j {
		for j = i; j < len(mask) && mask[j] == mask[i]; j++ {
		}
		out = append(out, Run{Absent: mask[i], Length: j - i})
	}
	return out, nil
}

// VarSpans splits one column into consecutive windows of span rows and
// reports the absent count per window. The final window may be shorter;
// its PctMiss is taken over its actual width. Span indices start at 0.
//
// Errors: ErrInvalidSpan (span < 1, checked first), frame.ErrNilTable,
// frame.ErrUnknownColumn.
//
// Complexity: O(r).
func VarSpans(t *frame.Table, name string, span int) ([]SpanCount, error) {
	if span < 1 {
		return nil, fmt.Errorf("profile.VarSpans(%q,%d): %w", name, span, ErrInvalidSpan)
	}
	col, err := t.Column(name)
	if err != nil {
		return nil, fmt.Errorf("profile.VarSpans(%q,%d): %w", name, span, err)
	}

	mask := col.AbsentMask()
	out := make([]SpanCount, 0, (len(mask)+span-1)/span)

	var start, idx int
	for start = 0; start < len(mask); start += span {
		end := start + span
		if end > len(mask) {
			end = len(mask)
		}

		var n int
		for i := start; i < end; i++ {
			if mask[i] {
				n++
			}
		}
		out = append(out, SpanCount{Span: idx, NMiss: n, PctMiss: pct(n, end-start)})
		idx++
	}
	return out, nil
}
