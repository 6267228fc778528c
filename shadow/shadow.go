// SPDX-License-Identifier: MIT

// Package shadow - shadow tables and nabular binding.
//
// Purpose:
//   - Re-encode a table's missingness as explicit data: one String shadow
//     column per source column, cells Missing ("NA") where the source cell
//     is ABSENT and NotMissing ("!NA") where it is present.
//   - Bind source and shadow side by side (the nabular form) so that base
//     values can be rewritten — imputation — while the original missingness
//     pattern stays readable next to them.
//
// AI-Hints:
//   - A shadow column is emitted for EVERY source column, fully-present ones
//     included, so differently-missing samples of one logical dataset keep a
//     common schema.
//   - Shadow columns never hold absent cells: the labels are values.
//   - Nabular shares the source columns by reference and owns its shadow
//     columns; WithColumn returns a NEW Nabular, the receiver is untouched.
//
// Complexity quicksheet:
//   - Of/Bind: O(r*c) label build; accessors O(1); WithColumn: O(r + c)
//     rebuild around one fresh column.

package shadow

import (
	"fmt"

	"github.com/katalvlaran/nabular/frame"
)

// Shadow label vocabulary. The labels are string VALUES, so a shadow column
// is an ordinary frame.String column with every cell present; Missing matches
// frame.AbsentLabel on purpose, letting rendered base cells and shadow cells
// agree in text output.
const (
	// Missing labels positions whose source cell is ABSENT.
	Missing = "NA"

	// NotMissing labels positions whose source cell is PRESENT.
	NotMissing = "!NA"

	// Suffix is appended to a source column name to form its shadow column
	// name ("total_length" → "total_length_NA").
	Suffix = "_NA"
)

// Of returns the shadow table of t: one String column per source column, in
// source order, named name+Suffix, with Missing exactly where the source cell
// is absent. A zero-column table yields a zero-column shadow.
//
// Errors: frame.ErrNilTable.
func Of(t *frame.Table) (*frame.Table, error) {
	if t == nil {
		return nil, fmt.Errorf("shadow.Of: %w", frame.ErrNilTable)
	}

	out, err := frame.New(shadowColumns(t)...)
	if err != nil {
		return nil, fmt.Errorf("shadow.Of: %w", err)
	}
	return out, nil
}

// Nabular is a source table bound to its shadow: the combined table holds the
// source columns first (shared by reference), then one shadow column per
// source column in the same relative order. Shadow columns are fixed at Bind
// time; only base columns can be replaced, and only via WithColumn.
type Nabular struct {
	base     *frame.Table
	shadow   *frame.Table
	combined *frame.Table
}

// Bind builds the nabular form of t.
// Implementation:
//   - Stage 1: reject names that would collide (a source column named
//     x+Suffix next to a source column x).
//   - Stage 2: build the shadow columns and assemble shadow and combined
//     tables around the shared source columns.
//
// Errors: frame.ErrNilTable, ErrNameCollision.
func Bind(t *frame.Table) (*Nabular, error) {
	if t == nil {
		return nil, fmt.Errorf("shadow.Bind: %w", frame.ErrNilTable)
	}

	// Stage 1: collision scan. Suffix-appending is injective, so the only
	// ambiguity possible is a source column already wearing a shadow name.
	var name string
	for _, name = range t.ColumnNames() {
		if t.HasColumn(name + Suffix) {
			return nil, fmt.Errorf("shadow.Bind: %q vs %q: %w", name, name+Suffix, ErrNameCollision)
		}
	}

	// Stage 2: assemble. frame.New re-validates structure; with unique names
	// and equal lengths guaranteed above, failures here are programmer errors
	// surfaced as wrapped sentinels rather than silent corruption.
	shadows := shadowColumns(t)
	shadowTable, err := frame.New(shadows...)
	if err != nil {
		return nil, fmt.Errorf("shadow.Bind: %w", err)
	}
	combined, err := frame.New(append(t.Columns(), shadows...)...)
	if err != nil {
		return nil, fmt.Errorf("shadow.Bind: %w", err)
	}

	return &Nabular{base: t, shadow: shadowTable, combined: combined}, nil
}

// Table returns the combined table: source columns first, then their shadow
// columns. Nil-safe; returns nil for a nil receiver.
func (n *Nabular) Table() *frame.Table {
	if n == nil {
		return nil
	}
	return n.combined
}

// Base returns the source side of the binding.
func (n *Nabular) Base() *frame.Table {
	if n == nil {
		return nil
	}
	return n.base
}

// Shadow returns the shadow side of the binding.
func (n *Nabular) Shadow() *frame.Table {
	if n == nil {
		return nil
	}
	return n.shadow
}

// Split returns (base, shadow) in one call, the inverse of Bind.
func (n *Nabular) Split() (*frame.Table, *frame.Table) {
	if n == nil {
		return nil, nil
	}
	return n.base, n.shadow
}

// WithColumn returns a new Nabular whose named BASE column is replaced by the
// given cells, keeping the column's kind and every shadow column unchanged.
// This is the imputation seam: fill policies compute the cells elsewhere and
// commit them here, and the shadow keeps recording where values originally
// were missing.
//
// Errors: frame.ErrNilTable, ErrShadowImmutable, frame.ErrUnknownColumn,
// frame.ErrRowsMismatch, frame.ErrKindMismatch.
func (n *Nabular) WithColumn(name string, cells []frame.Cell) (*Nabular, error) {
	if n == nil {
		return nil, fmt.Errorf("Nabular.WithColumn(%q): %w", name, frame.ErrNilTable)
	}
	// Base and shadow names are disjoint (Bind guarantees it), so membership
	// in the shadow table is an exact immutability test.
	if n.shadow.HasColumn(name) {
		return nil, fmt.Errorf("Nabular.WithColumn(%q): %w", name, ErrShadowImmutable)
	}

	old, err := n.base.Column(name)
	if err != nil {
		return nil, fmt.Errorf("Nabular.WithColumn(%q): %w", name, err)
	}
	if len(cells) != n.base.Rows() {
		return nil, fmt.Errorf("Nabular.WithColumn(%q): got %d cells, want %d: %w",
			name, len(cells), n.base.Rows(), frame.ErrRowsMismatch)
	}

	repl, err := frame.NewColumn(name, old.Kind(), cells)
	if err != nil {
		return nil, fmt.Errorf("Nabular.WithColumn(%q): %w", name, err)
	}

	// Rebuild the base column list with the replacement in place.
	var (
		cols = n.base.Columns()
		i    int
		col  *frame.Column
	)
	for i, col = range cols {
		if col.Name() == name {
			cols[i] = repl
		}
	}

	base, err := frame.New(cols...)
	if err != nil {
		return nil, fmt.Errorf("Nabular.WithColumn(%q): %w", name, err)
	}
	combined, err := frame.New(append(cols, n.shadow.Columns()...)...)
	if err != nil {
		return nil, fmt.Errorf("Nabular.WithColumn(%q): %w", name, err)
	}

	return &Nabular{base: base, shadow: n.shadow, combined: combined}, nil
}

// shadowColumn builds the shadow of one source column.
func shadowColumn(c *frame.Column) *frame.Column {
	var (
		mask   = c.AbsentMask()
		labels = make([]string, len(mask))
		i      int
	)
	for i = range mask {
		if mask[i] {
			labels[i] = Missing
		} else {
			labels[i] = NotMissing
		}
	}
	return frame.Strings(c.Name()+Suffix, labels...)
}

// shadowColumns builds the shadow of every column of t, in source order.
func shadowColumns(t *frame.Table) []*frame.Column {
	var (
		cols = t.Columns()
		out  = make([]*frame.Column, len(cols))
		i    int
	)
	for i = range cols {
		out[i] = shadowColumn(cols[i])
	}
	return out
}
