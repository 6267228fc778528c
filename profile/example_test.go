// File: profile/example_test.go
package profile_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nabular/frame"
	"github.com/katalvlaran/nabular/profile"
)

////////////////////////////////////////////////////////////////////////////////
// Example: counts and proportions
////////////////////////////////////////////////////////////////////////////////

// ExampleNMiss profiles the canonical 3×2 grid.
// Scenario:
//
//	x: 1, NA, 3
//	y: NA, NA, 4
//
//   - 3 of 6 cells absent, 2 of 3 rows touched
//   - NComplete + NMiss always equals rows×cols
//
// Complexity: O(r·c) per call.
func ExampleNMiss() {
	tab, _ := frame.New(
		frame.Numbers("x", 1, math.NaN(), 3),
		frame.Numbers("y", math.NaN(), math.NaN(), 4),
	)

	fmt.Println("n_miss:", profile.NMiss(tab))
	fmt.Println("n_complete:", profile.NComplete(tab))
	fmt.Printf("prop_miss_case: %.4f\n", profile.PropMissCase(tab))

	// Output:
	// n_miss: 3
	// n_complete: 3
	// prop_miss_case: 0.6667
}

////////////////////////////////////////////////////////////////////////////////
// Example: Vars
////////////////////////////////////////////////////////////////////////////////

// ExampleVars ranks columns by how much of each is missing.
// Scenario:
//
//   - Most-missing column first; ties keep declaration order
//   - Percentages are over the row count
func ExampleVars() {
	tab, _ := frame.New(
		frame.Numbers("x", 1, math.NaN(), 3),
		frame.Numbers("y", math.NaN(), math.NaN(), 4),
	)

	for _, v := range profile.Vars(tab) {
		fmt.Printf("%s n_miss=%d pct=%.1f\n", v.Variable, v.NMiss, v.PctMiss)
	}

	// Output:
	// y n_miss=2 pct=66.7
	// x n_miss=1 pct=33.3
}

////////////////////////////////////////////////////////////////////////////////
// Example: CaseTable
////////////////////////////////////////////////////////////////////////////////

// ExampleCaseTable histograms rows by their absent-cell count.
// Scenario:
//
//   - Four rows carrying 0, 1, 2, 2 gaps
//   - Buckets ascend; shares are over the row count
func ExampleCaseTable() {
	tab, _ := frame.New(
		frame.Numbers("x", 1, math.NaN(), math.NaN(), math.NaN()),
		frame.Numbers("y", 1, 2, math.NaN(), math.NaN()),
	)

	for _, c := range profile.CaseTable(tab) {
		fmt.Printf("n_miss=%d cases=%d pct=%.0f\n", c.NMiss, c.NCases, c.PctCases)
	}

	// Output:
	// n_miss=0 cases=1 pct=25
	// n_miss=1 cases=1 pct=25
	// n_miss=2 cases=2 pct=50
}
