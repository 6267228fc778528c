// Package profile_test contains unit tests for the whole-table missingness
// counts, proportions, summaries and histograms.
package profile_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nabular/frame"
	"github.com/katalvlaran/nabular/profile"
	"github.com/stretchr/testify/require"
)

// grid32 builds the canonical 3×2 fixture:
//
//	x: 1, NA, 3
//	y: NA, NA, 4
//
// so NMiss=3, NComplete=3, two of three rows carry a gap.
func grid32(t *testing.T) *frame.Table {
	t.Helper()
	tab, err := frame.New(
		frame.Numbers("x", 1, math.NaN(), 3),
		frame.Numbers("y", math.NaN(), math.NaN(), 4),
	)
	require.NoError(t, err)
	return tab
}

// TestCounts pins NMiss/NComplete and their conservation identity.
func TestCounts(t *testing.T) {
	tab := grid32(t)

	require.Equal(t, 3, profile.NMiss(tab))     // three absent cells
	require.Equal(t, 3, profile.NComplete(tab)) // three present cells
	require.Equal(t, tab.Rows()*tab.Cols(), profile.NMiss(tab)+profile.NComplete(tab))
}

// TestNMissVar covers the per-column count and its error contract.
func TestNMissVar(t *testing.T) {
	tab := grid32(t)

	n, err := profile.NMissVar(tab, "x")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	n, err = profile.NMissVar(tab, "y")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	_, err = profile.NMissVar(tab, "z") // unknown column
	require.ErrorIs(t, err, frame.ErrUnknownColumn)

	_, err = profile.NMissVar(nil, "x") // nil table
	require.ErrorIs(t, err, frame.ErrNilTable)
}

// TestProportions pins every proportion against hand counts.
func TestProportions(t *testing.T) {
	tab := grid32(t)

	require.InDelta(t, 0.5, profile.PropMiss(tab), 1e-12) // 3 of 6 cells
	require.InDelta(t, 50.0, profile.PctMiss(tab), 1e-12)

	require.InDelta(t, 2.0/3.0, profile.PropMissCase(tab), 1e-12) // rows 0 and 1 carry gaps
	require.InDelta(t, 100*2.0/3.0, profile.PctMissCase(tab), 1e-12)

	require.InDelta(t, 1.0, profile.PropMissVar(tab), 1e-12) // both columns carry gaps
	require.InDelta(t, 100.0, profile.PctMissVar(tab), 1e-12)
}

// TestPropMissCaseIsExistencePredicate separates the row predicate from the
// cell fraction: one gap or five gaps in a row, the row counts once.
func TestPropMissCaseIsExistencePredicate(t *testing.T) {
	tab, err := frame.New(
		frame.Numbers("a", math.NaN(), 1, 1),
		frame.Numbers("b", math.NaN(), 1, 1),
		frame.Numbers("c", math.NaN(), 1, 1),
	)
	require.NoError(t, err)

	require.InDelta(t, 1.0/3.0, profile.PropMissCase(tab), 1e-12) // one row of three
	require.InDelta(t, 3.0/9.0, profile.PropMiss(tab), 1e-12)     // equal here by accident
}

// TestCases verifies ranking, percentages and stable ties.
func TestCases(t *testing.T) {
	tab := grid32(t)

	got := profile.Cases(tab)
	want := []profile.CaseSummary{
		{Row: 1, NMiss: 2, PctMiss: 100},
		{Row: 0, NMiss: 1, PctMiss: 50},
		{Row: 2, NMiss: 0, PctMiss: 0},
	}
	require.Equal(t, want, got)
}

// TestCasesStableTies pins the tie order: equal counts keep row order.
func TestCasesStableTies(t *testing.T) {
	tab, err := frame.New(frame.Numbers("x", math.NaN(), 1, math.NaN()))
	require.NoError(t, err)

	got := profile.Cases(tab)
	require.Equal(t, 0, got[0].Row) // first tied row first
	require.Equal(t, 2, got[1].Row) // second tied row second
	require.Equal(t, 1, got[2].Row) // complete row last
}

// TestCaseTable reproduces the histogram over counts [0,1,2,2].
func TestCaseTable(t *testing.T) {
	// Four rows with absent counts 0, 1, 2, 2.
	tab, err := frame.New(
		frame.Numbers("x", 1, math.NaN(), math.NaN(), math.NaN()),
		frame.Numbers("y", 1, 2, math.NaN(), math.NaN()),
	)
	require.NoError(t, err)

	got := profile.CaseTable(tab)
	want := []profile.CaseCount{
		{NMiss: 0, NCases: 1, PctCases: 25},
		{NMiss: 1, NCases: 1, PctCases: 25},
		{NMiss: 2, NCases: 2, PctCases: 50},
	}
	require.Equal(t, want, got)
}

// TestVars verifies values, descending order and inclusion of clean columns.
func TestVars(t *testing.T) {
	tab, err := frame.New(
		frame.Numbers("x", 1, math.NaN(), 3),
		frame.Numbers("y", math.NaN(), math.NaN(), 4),
		frame.Strings("species", "a", "b", "c"), // fully observed
	)
	require.NoError(t, err)

	got := profile.Vars(tab)
	require.Len(t, got, 3) // clean columns are not filtered out

	require.Equal(t, "y", got[0].Variable) // most missing first
	require.Equal(t, 2, got[0].NMiss)
	require.InDelta(t, 100*2.0/3.0, got[0].PctMiss, 1e-9)

	require.Equal(t, "x", got[1].Variable)
	require.Equal(t, 1, got[1].NMiss)
	require.InDelta(t, 100*1.0/3.0, got[1].PctMiss, 1e-9)

	require.Equal(t, "species", got[2].Variable)
	require.Equal(t, 0, got[2].NMiss)
	require.Equal(t, 0.0, got[2].PctMiss)

	// Conservation: per-column counts sum to the table total.
	var sum int
	for _, v := range got {
		sum += v.NMiss
	}
	require.Equal(t, profile.NMiss(tab), sum)
}

// TestVarsStableTies pins declaration order among equally missing columns.
func TestVarsStableTies(t *testing.T) {
	tab, err := frame.New(
		frame.Numbers("b_first", math.NaN(), 1),
		frame.Numbers("a_second", math.NaN(), 2),
	)
	require.NoError(t, err)

	got := profile.Vars(tab)
	require.Equal(t, "b_first", got[0].Variable) // declaration order, not name order
	require.Equal(t, "a_second", got[1].Variable)
}

// TestVarTable checks the column histogram.
func TestVarTable(t *testing.T) {
	tab, err := frame.New(
		frame.Numbers("x", 1, math.NaN(), 3),
		frame.Numbers("y", math.NaN(), math.NaN(), 4),
		frame.Numbers("z", 5, math.NaN(), 6),
	)
	require.NoError(t, err)

	got := profile.VarTable(tab)
	want := []profile.VarCount{
		{NMiss: 1, NVars: 2, PctVars: 100 * 2.0 / 3.0},
		{NMiss: 2, NVars: 1, PctVars: 100 * 1.0 / 3.0},
	}
	require.InDelta(t, want[0].PctVars, got[0].PctVars, 1e-9)
	require.Equal(t, want[0].NMiss, got[0].NMiss)
	require.Equal(t, want[0].NVars, got[0].NVars)
	require.Equal(t, want[1].NMiss, got[1].NMiss)
	require.Equal(t, want[1].NVars, got[1].NVars)
}

// TestZeroRowTable pins the degenerate-shape policy: zeros, never NaN.
func TestZeroRowTable(t *testing.T) {
	tab, err := frame.New(frame.Numbers("x"), frame.Numbers("y"))
	require.NoError(t, err)

	require.Equal(t, 0, profile.NMiss(tab))
	require.Equal(t, 0, profile.NComplete(tab))
	require.Equal(t, 0.0, profile.PropMiss(tab))     // defined as 0, not NaN
	require.Equal(t, 0.0, profile.PropMissCase(tab)) // defined as 0, not NaN
	require.Equal(t, 0.0, profile.PropMissVar(tab))  // columns exist but no rows
	require.Empty(t, profile.Cases(tab))
	require.Empty(t, profile.CaseTable(tab))

	vars := profile.Vars(tab)
	require.Len(t, vars, 2)
	require.Equal(t, 0.0, vars[0].PctMiss) // zero denominator → 0
}

// TestNilTable verifies non-error entry points tolerate nil.
func TestNilTable(t *testing.T) {
	require.Equal(t, 0, profile.NMiss(nil))
	require.Equal(t, 0, profile.NComplete(nil))
	require.Equal(t, 0.0, profile.PropMiss(nil))
	require.Equal(t, 0.0, profile.PctMissCase(nil))
	require.Empty(t, profile.Cases(nil))
	require.Empty(t, profile.Vars(nil))
	require.Empty(t, profile.CaseTable(nil))
	require.Empty(t, profile.VarTable(nil))
}

// TestIdempotence runs a summary twice on one table and demands identity.
func TestIdempotence(t *testing.T) {
	tab := grid32(t)
	require.Equal(t, profile.Vars(tab), profile.Vars(tab))
	require.Equal(t, profile.Cases(tab), profile.Cases(tab))
	require.Equal(t, profile.CaseTable(tab), profile.CaseTable(tab))
}
