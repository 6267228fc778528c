// Package profile_test contains unit tests for run and span views.
package profile_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nabular/frame"
	"github.com/katalvlaran/nabular/profile"
	"github.com/stretchr/testify/require"
)

// TestVarRuns checks the run-length encoding of a gappy column.
func TestVarRuns(t *testing.T) {
	tab, err := frame.New(
		frame.Numbers("x", 1, math.NaN(), math.NaN(), 4, 5, math.NaN()),
	)
	require.NoError(t, err)

	got, err := profile.VarRuns(tab, "x")
	require.NoError(t, err)
	require.Equal(t, []profile.Run{
		{Absent: false, Length: 1},
		{Absent: true, Length: 2},
		{Absent: false, Length: 2},
		{Absent: true, Length: 1},
	}, got)

	// Run lengths cover the column end to end.
	var total int
	for _, r := range got {
		total += r.Length
	}
	require.Equal(t, tab.Rows(), total)
}

// TestVarRunsDegenerate covers empty and single-state columns.
func TestVarRunsDegenerate(t *testing.T) {
	tab, err := frame.New(frame.Numbers("x"))
	require.NoError(t, err)

	got, err := profile.VarRuns(tab, "x")
	require.NoError(t, err)
	require.Empty(t, got) // no rows, no runs

	solid, err := frame.New(frame.Numbers("x", 1, 2, 3))
	require.NoError(t, err)
	got, err = profile.VarRuns(solid, "x")
	require.NoError(t, err)
	require.Equal(t, []profile.Run{{Absent: false, Length: 3}}, got)
}

// TestVarSpans checks window counts, the short final window, and errors.
func TestVarSpans(t *testing.T) {
	tab, err := frame.New(
		frame.Numbers("x", math.NaN(), 2, math.NaN(), math.NaN(), 5),
	)
	require.NoError(t, err)

	got, err := profile.VarSpans(tab, "x", 2)
	require.NoError(t, err)
	require.Equal(t, []profile.SpanCount{
		{Span: 0, NMiss: 1, PctMiss: 50},  // rows 0,1
		{Span: 1, NMiss: 2, PctMiss: 100}, // rows 2,3
		{Span: 2, NMiss: 0, PctMiss: 0},   // row 4 alone: pct over width 1
	}, got)

	_, err = profile.VarSpans(tab, "x", 0) // span below 1
	require.ErrorIs(t, err, profile.ErrInvalidSpan)

	_, err = profile.VarSpans(tab, "ghost", 2) // unknown column
	require.ErrorIs(t, err, frame.ErrUnknownColumn)
}

// TestRunsErrors pins the shared lookup error contract.
func TestRunsErrors(t *testing.T) {
	_, err := profile.VarRuns(nil, "x")
	require.ErrorIs(t, err, frame.ErrNilTable)

	tab, err2 := frame.New(frame.Numbers("x", 1))
	require.NoError(t, err2)
	_, err = profile.VarRuns(tab, "ghost")
	require.ErrorIs(t, err, frame.ErrUnknownColumn)
}
