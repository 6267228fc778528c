// SPDX-License-Identifier: MIT

// Package cli - fixed-width text rendering.
//
// Purpose:
//   - One small table writer shared by every text report: columns padded to
//     the widest cell, two-space gutters, no trailing padding on the last
//     column. Output is byte-deterministic so renderings can be pinned by
//     golden files.

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// kvLabelWidth pads the "label:" part of key/value lines so values align.
// Wide enough for the longest summary label plus one space.
const kvLabelWidth = 15

// gutter separates table columns.
const gutter = "  "

// textTable accumulates rows of pre-rendered cells and writes them with each
// column padded to its widest member.
type textTable struct {
	headers []string
	rows    [][]string
}

func newTextTable(headers ...string) *textTable {
	return &textTable{headers: headers}
}

// addRow appends one row. Callers pass exactly one cell per header.
func (t *textTable) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// writeTo renders the header line and every row. Widths count runes, not
// bytes, so multi-byte column names stay aligned.
func (t *textTable) writeTo(w io.Writer) error {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	if err := writeLine(w, t.headers, widths); err != nil {
		return err
	}
	for _, row := range t.rows {
		if err := writeLine(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

// writeLine pads every cell but the last to its column width.
func writeLine(w io.Writer, cells []string, widths []int) error {
	var b strings.Builder
	last := len(cells) - 1
	for i, cell := range cells {
		b.WriteString(cell)
		if i == last {
			break
		}
		b.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)))
		b.WriteString(gutter)
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

// kvLine writes one "label:  value" line with the label padded to
// kvLabelWidth.
func kvLine(w io.Writer, label, value string) error {
	_, err := fmt.Fprintf(w, "%-*s%s\n", kvLabelWidth, label+":", value)
	return err
}

// pctText renders a percentage with two decimals; itoaText an integer.
// Shared by every table so the same quantity always reads the same way.
func pctText(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func itoaText(n int) string { return strconv.Itoa(n) }
