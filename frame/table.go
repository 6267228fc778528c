// SPDX-License-Identifier: MIT

// Package frame - Table assembly and safe accessors.
//
// Purpose:
//   - Bind an ordered set of uniquely-named, equal-length columns into one
//     immutable table; every later stage (profiling, shadow encoding,
//     clustering) is a pure function over this type.
//   - Guarantee safety at the public surface: lookups return sentinel
//     errors, never panic, never partial results.
//
// AI-Hints:
//   - New stores the given *Column pointers without copying; columns are
//     immutable, so sharing is safe and cheap. Use Clone for an independent
//     deep copy.
//   - Name lookups go through an index map but every enumeration surface
//     (ColumnNames, ColumnAt) follows declaration order: no map-iteration
//     order leaks into results.
//   - A zero-column table is legal and has zero rows; aggregate callers
//     must stay well-defined on it.
//
// Complexity quicksheet:
//   - New: O(c) validation; Column/Cell: O(1); ColumnNames: O(c) copy;
//     Clone: O(r*c).

package frame

import "fmt"

// Table is an immutable ordered collection of equal-length, uniquely named
// columns. The zero value is unusable; build tables with New.
type Table struct {
	cols  []*Column
	index map[string]int // name → position in cols
	rows  int
}

// New binds columns into a table. The column pointers are stored as given
// (columns are immutable; no defensive copy is taken). Order is preserved.
//
// Errors: ErrNilColumn, ErrEmptyName, ErrDuplicateColumn, ErrRowsMismatch.
func New(cols ...*Column) (*Table, error) {
	t := &Table{
		cols:  make([]*Column, 0, len(cols)),
		index: make(map[string]int, len(cols)),
	}

	var (
		i   int
		col *Column
	)
	for i, col = range cols {
		if col == nil {
			return nil, fmt.Errorf("frame.New: column %d: %w", i, ErrNilColumn)
		}
		if col.name == "" {
			return nil, fmt.Errorf("frame.New: column %d: %w", i, ErrEmptyName)
		}
		if _, dup := t.index[col.name]; dup {
			return nil, fmt.Errorf("frame.New: column %q: %w", col.name, ErrDuplicateColumn)
		}
		if i == 0 {
			t.rows = col.Len()
		} else if col.Len() != t.rows {
			return nil, fmt.Errorf("frame.New: column %q has %d rows, want %d: %w",
				col.name, col.Len(), t.rows, ErrRowsMismatch)
		}
		t.index[col.name] = i
		t.cols = append(t.cols, col)
	}
	return t, nil
}

// Rows returns the row count (0 for nil or column-less tables).
func (t *Table) Rows() int {
	if t == nil {
		return 0
	}
	return t.rows
}

// Cols returns the column count (0 for nil tables).
func (t *Table) Cols() int {
	if t == nil {
		return 0
	}
	return len(t.cols)
}

// ColumnNames returns the column names in declaration order. The slice is a
// fresh copy.
func (t *Table) ColumnNames() []string {
	if t == nil {
		return nil
	}
	names := make([]string, len(t.cols))
	for i, col := range t.cols {
		names[i] = col.name
	}
	return names
}

// Columns returns the columns in declaration order. The slice is a fresh
// copy; the *Column pointers are shared (columns are immutable).
func (t *Table) Columns() []*Column {
	if t == nil {
		return nil
	}
	out := make([]*Column, len(t.cols))
	copy(out, t.cols)
	return out
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.index[name]
	return ok
}

// Column returns the named column.
//
// Errors: ErrNilTable, ErrUnknownColumn.
func (t *Table) Column(name string) (*Column, error) {
	if t == nil {
		return nil, fmt.Errorf("Table.Column(%q): %w", name, ErrNilTable)
	}
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("Table.Column(%q): %w", name, ErrUnknownColumn)
	}
	return t.cols[i], nil
}

// ColumnAt returns the column at position i (declaration order).
//
// Errors: ErrNilTable, ErrOutOfRange.
func (t *Table) ColumnAt(i int) (*Column, error) {
	if t == nil {
		return nil, fmt.Errorf("Table.ColumnAt(%d): %w", i, ErrNilTable)
	}
	if i < 0 || i >= len(t.cols) {
		return nil, fmt.Errorf("Table.ColumnAt(%d): %w", i, ErrOutOfRange)
	}
	return t.cols[i], nil
}

// Cell returns the cell at (row, named column). The name is resolved first:
// an unknown name reports ErrUnknownColumn even when row is also invalid.
//
// Errors: ErrNilTable, ErrUnknownColumn, ErrOutOfRange.
func (t *Table) Cell(row int, name string) (Cell, error) {
	if t == nil {
		return Cell{}, fmt.Errorf("Table.Cell(%d,%q): %w", row, name, ErrNilTable)
	}
	i, ok := t.index[name]
	if !ok {
		return Cell{}, fmt.Errorf("Table.Cell(%d,%q): %w", row, name, ErrUnknownColumn)
	}
	if row < 0 || row >= t.rows {
		return Cell{}, fmt.Errorf("Table.Cell(%d,%q): %w", row, name, ErrOutOfRange)
	}
	cell, err := t.cols[i].Cell(row)
	if err != nil {
		return Cell{}, fmt.Errorf("Table.Cell(%d,%q): %w", row, name, err)
	}
	return cell, nil
}

// CellAt returns the cell at (row, column position).
//
// Errors: ErrNilTable, ErrOutOfRange.
func (t *Table) CellAt(row, col int) (Cell, error) {
	if t == nil {
		return Cell{}, fmt.Errorf("Table.CellAt(%d,%d): %w", row, col, ErrNilTable)
	}
	if col < 0 || col >= len(t.cols) {
		return Cell{}, fmt.Errorf("Table.CellAt(%d,%d): %w", row, col, ErrOutOfRange)
	}
	if row < 0 || row >= t.rows {
		return Cell{}, fmt.Errorf("Table.CellAt(%d,%d): %w", row, col, ErrOutOfRange)
	}
	cell, err := t.cols[col].Cell(row)
	if err != nil {
		return Cell{}, fmt.Errorf("Table.CellAt(%d,%d): %w", row, col, err)
	}
	return cell, nil
}

// Clone returns an independent deep copy (columns cloned, index rebuilt).
// Clone of nil is nil.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	out := &Table{
		cols:  make([]*Column, len(t.cols)),
		index: make(map[string]int, len(t.cols)),
		rows:  t.rows,
	}
	for i, col := range t.cols {
		out.cols[i] = col.Clone()
		out.index[col.name] = i
	}
	return out
}
