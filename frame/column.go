// SPDX-License-Identifier: MIT

// Package frame - Column storage and safe accessors.
//
// Purpose:
//   - Store one named, typed, fixed-length sequence of cells compactly:
//     a per-kind dense value slice plus a validity slice (valid[i]==false
//     is ABSENT), the columnar layout used by Arrow-style stores.
//   - Guarantee safety at the public surface: indexers return errors
//     instead of panicking.
//   - Keep columns immutable after construction so tables can share them
//     by reference without copies.
//
// Complexity quicksheet:
//   - NewColumn/Numbers/Strings/Times: O(n) copy; Cell/IsAbsent: O(1);
//     NumAbsent: O(n); AbsentMask/Clone: O(n) copy.

package frame

import (
	"fmt"
	"math"
	"time"
)

// Column is an immutable named sequence of same-kind cells. Constructors
// deep-copy their inputs; no method mutates the receiver.
type Column struct {
	name  string
	kind  Kind
	valid []bool // valid[i]==false ⇔ cell i is absent
	nums  []float64
	strs  []string
	times []time.Time
}

// NewColumn builds a column of the given kind from explicit cells.
// Absent cells are accepted regardless of kind; every present cell must match
// kind or the construction fails with ErrKindMismatch.
//
// Errors: ErrEmptyName, ErrUnknownKind, ErrKindMismatch.
func NewColumn(name string, kind Kind, cells []Cell) (*Column, error) {
	if name == "" {
		return nil, fmt.Errorf("NewColumn: %w", ErrEmptyName)
	}
	if !kind.valid() {
		return nil, fmt.Errorf("NewColumn(%q): kind %d: %w", name, kind, ErrUnknownKind)
	}

	var c *Column
	c = newEmpty(name, kind, len(cells))

	var (
		i    int
		cell Cell
	)
	for i, cell = range cells {
		if cell.IsAbsent() {
			continue // valid[i] stays false
		}
		if cell.kind != kind {
			return nil, fmt.Errorf("NewColumn(%q): cell %d is %s, want %s: %w",
				name, i, cell.kind, kind, ErrKindMismatch)
		}
		c.store(i, cell)
	}
	return c, nil
}

// Numbers builds a numeric column; NaN inputs become absent cells.
// Panics on an empty name (programmer error); use NewColumn for a checked
// construction path.
func Numbers(name string, vals ...float64) *Column {
	mustName("Numbers", name)
	c := newEmpty(name, Number, len(vals))
	for i, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		c.nums[i] = v
		c.valid[i] = true
	}
	return c
}

// Strings builds a string column with every cell present (the empty string is
// a value, not a gap). Panics on an empty name.
func Strings(name string, vals ...string) *Column {
	mustName("Strings", name)
	c := newEmpty(name, String, len(vals))
	for i, v := range vals {
		c.strs[i] = v
		c.valid[i] = true
	}
	return c
}

// Times builds a time column; zero-time inputs become absent cells.
// Panics on an empty name.
func Times(name string, vals ...time.Time) *Column {
	mustName("Times", name)
	c := newEmpty(name, Time, len(vals))
	for i, v := range vals {
		if v.IsZero() {
			continue
		}
		c.times[i] = v
		c.valid[i] = true
	}
	return c
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Kind returns the declared kind of the column.
func (c *Column) Kind() Kind { return c.kind }

// Len returns the number of cells.
func (c *Column) Len() int { return len(c.valid) }

// Cell returns cell i. Absent positions yield the absent cell.
//
// Errors: ErrNilColumn, ErrOutOfRange.
func (c *Column) Cell(i int) (Cell, error) {
	if c == nil {
		return Cell{}, fmt.Errorf("Column.Cell(%d): %w", i, ErrNilColumn)
	}
	if i < 0 || i >= len(c.valid) {
		return Cell{}, fmt.Errorf("Column.Cell(%q,%d): %w", c.name, i, ErrOutOfRange)
	}
	if !c.valid[i] {
		return Cell{}, nil
	}
	switch c.kind {
	case Number:
		return Cell{kind: Number, present: true, num: c.nums[i]}, nil
	case String:
		return Cell{kind: String, present: true, str: c.strs[i]}, nil
	default: // Time; constructors admit no other kind
		return Cell{kind: Time, present: true, ts: c.times[i]}, nil
	}
}

// IsAbsent reports whether cell i is absent.
//
// Errors: ErrNilColumn, ErrOutOfRange.
func (c *Column) IsAbsent(i int) (bool, error) {
	if c == nil {
		return false, fmt.Errorf("Column.IsAbsent(%d): %w", i, ErrNilColumn)
	}
	if i < 0 || i >= len(c.valid) {
		return false, fmt.Errorf("Column.IsAbsent(%q,%d): %w", c.name, i, ErrOutOfRange)
	}
	return !c.valid[i], nil
}

// NumAbsent counts absent cells. O(n); callers doing repeated aggregation
// should take AbsentMask once instead.
func (c *Column) NumAbsent() int {
	if c == nil {
		return 0
	}
	var n int
	for _, ok := range c.valid {
		if !ok {
			n++
		}
	}
	return n
}

// AbsentMask returns a fresh slice with true at every absent position.
// The result is the caller's to keep; mutating it cannot touch the column.
func (c *Column) AbsentMask() []bool {
	if c == nil {
		return nil
	}
	m := make([]bool, len(c.valid))
	for i, ok := range c.valid {
		m[i] = !ok
	}
	return m
}

// Clone returns an independent deep copy. Clone of nil is nil.
func (c *Column) Clone() *Column {
	if c == nil {
		return nil
	}
	out := &Column{name: c.name, kind: c.kind}
	out.valid = append([]bool(nil), c.valid...)
	out.nums = append([]float64(nil), c.nums...)
	out.strs = append([]string(nil), c.strs...)
	out.times = append([]time.Time(nil), c.times...)
	return out
}

// newEmpty allocates an all-absent column of the given kind and length.
func newEmpty(name string, kind Kind, n int) *Column {
	c := &Column{name: name, kind: kind, valid: make([]bool, n)}
	switch kind {
	case Number:
		c.nums = make([]float64, n)
	case String:
		c.strs = make([]string, n)
	case Time:
		c.times = make([]time.Time, n)
	}
	return c
}

// store writes a present cell (already kind-checked) at position i.
func (c *Column) store(i int, cell Cell) {
	switch c.kind {
	case Number:
		c.nums[i] = cell.num
	case String:
		c.strs[i] = cell.str
	case Time:
		c.times[i] = cell.ts
	}
	c.valid[i] = true
}

// mustName panics with a uniform message when a convenience constructor gets
// an empty name.
func mustName(ctor, name string) {
	if name == "" {
		panic("frame: " + ctor + ": empty column name")
	}
}
