// SPDX-License-Identifier: MIT

// Package frame - Kind enum and the Cell value type.
//
// Purpose:
//   - Make presence explicit: a Cell is PRESENT (a typed value) or ABSENT,
//     and nothing in the data domain (no magic number, no empty string) is
//     overloaded to mean "missing".
//   - Keep Cell a small immutable value type; columns store values compactly
//     and materialize Cells on demand.
//
// Policy:
//   - The zero Cell is ABSENT. Absent cells are kind-free.
//   - NumberCell(NaN) and TimeCell(zero time) normalize to ABSENT at the
//     door, matching the NaN-as-missing convention of numeric Go stacks.
//     ±Inf is an ordinary (if suspicious) present value.
//   - StringCell never normalizes: the empty string is a legal value.
//     Marker-to-absent translation ("", "NA", ...) belongs to ingestion.

package frame

import (
	"math"
	"strconv"
	"time"
)

// Kind enumerates the value domains a Column can hold.
type Kind uint8

const (
	// Number is a float64-valued measurement.
	Number Kind = iota
	// String is categorical or free text.
	String
	// Time is a calendar timestamp.
	Time
)

// kindNames is indexed by Kind; keep in sync with the enum above.
var kindNames = [...]string{"number", "string", "time"}

// String returns the lowercase name of the kind ("number", "string", "time").
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// valid reports whether k is a declared enum member.
func (k Kind) valid() bool { return int(k) < len(kindNames) }

// AbsentLabel is the canonical textual rendering of an absent cell, used by
// Cell.String and by every text surface of the module (group keys, CSV export,
// CLI tables).
const AbsentLabel = "NA"

// timeLayout is the canonical textual rendering of time cells.
const timeLayout = time.RFC3339

// Cell is one table cell: either a present value of some Kind, or absent.
// The zero Cell is absent. Cells are immutable values; copy freely.
type Cell struct {
	kind    Kind
	present bool
	num     float64
	str     string
	ts      time.Time
}

// Absent returns the absent cell. Identical to the zero Cell; provided for
// call-site readability.
func Absent() Cell { return Cell{} }

// NumberCell returns a present numeric cell, or the absent cell when v is NaN.
func NumberCell(v float64) Cell {
	if math.IsNaN(v) {
		return Cell{}
	}
	return Cell{kind: Number, present: true, num: v}
}

// StringCell returns a present string cell. The empty string is present.
func StringCell(s string) Cell {
	return Cell{kind: String, present: true, str: s}
}

// TimeCell returns a present time cell, or the absent cell when t is the zero
// time.
func TimeCell(t time.Time) Cell {
	if t.IsZero() {
		return Cell{}
	}
	return Cell{kind: Time, present: true, ts: t}
}

// IsAbsent reports whether the cell is absent.
func (c Cell) IsAbsent() bool { return !c.present }

// Kind returns the kind of a present cell. For absent cells the result is
// unspecified (absent cells are kind-free; ask the owning Column instead).
func (c Cell) Kind() Kind { return c.kind }

// Float returns the numeric value and true iff the cell is a present Number.
func (c Cell) Float() (float64, bool) {
	if !c.present || c.kind != Number {
		return 0, false
	}
	return c.num, true
}

// Str returns the string value and true iff the cell is a present String.
func (c Cell) Str() (string, bool) {
	if !c.present || c.kind != String {
		return "", false
	}
	return c.str, true
}

// Time returns the timestamp and true iff the cell is a present Time.
func (c Cell) Time() (time.Time, bool) {
	if !c.present || c.kind != Time {
		return time.Time{}, false
	}
	return c.ts, true
}

// String renders the canonical textual form of the cell: AbsentLabel when
// absent, strconv 'g' formatting for numbers, the string verbatim, RFC3339
// for times. This rendering is the group key used by grouped profiling, so it
// is stable by contract.
func (c Cell) String() string {
	if !c.present {
		return AbsentLabel
	}
	switch c.kind {
	case Number:
		return strconv.FormatFloat(c.num, 'g', -1, 64)
	case String:
		return c.str
	case Time:
		return c.ts.Format(timeLayout)
	default:
		return AbsentLabel // unreachable: constructors only mint declared kinds
	}
}
