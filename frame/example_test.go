// File: frame/example_test.go
package frame_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/nabular/frame"
)

////////////////////////////////////////////////////////////////////////////////
// Example: New
////////////////////////////////////////////////////////////////////////////////

// ExampleNew builds a small survey table and inspects its shape.
// Scenario:
//
//   - Two measurement columns with gaps (NaN normalizes to ABSENT)
//   - One categorical column, fully observed
//   - Shape and names come back in declaration order
//
// Complexity: O(r·c) construction, O(1) shape queries.
func ExampleNew() {
	tab, _ := frame.New(
		frame.Numbers("weight", 36, math.NaN(), 40.5),
		frame.Numbers("tail_length", math.NaN(), math.NaN(), 36.1),
		frame.Strings("species", "argurus", "argurus", "delicatulus"),
	)

	fmt.Println("rows:", tab.Rows())
	fmt.Println("cols:", tab.Cols())
	fmt.Println("names:", tab.ColumnNames())

	// Output:
	// rows: 3
	// cols: 3
	// names: [weight tail_length species]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Table.Cell
////////////////////////////////////////////////////////////////////////////////

// ExampleTable_Cell reads one present and one absent cell by column name.
// Scenario:
//
//   - Cell renderings use the canonical forms ("NA" for absence)
//   - Unknown names surface ErrUnknownColumn, never a panic
func ExampleTable_Cell() {
	tab, _ := frame.New(frame.Numbers("weight", 36, math.NaN()))

	present, _ := tab.Cell(0, "weight")
	absent, _ := tab.Cell(1, "weight")
	fmt.Println("row 0:", present)
	fmt.Println("row 1:", absent)

	_, err := tab.Cell(0, "wight")
	fmt.Println("typo lookup:", errors.Is(err, frame.ErrUnknownColumn))

	// Output:
	// row 0: 36
	// row 1: NA
	// typo lookup: true
}
