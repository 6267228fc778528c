// Package frame_test contains unit tests for the Cell value type and the
// Kind enum of the frame package.
package frame_test

import (
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/nabular/frame"
	"github.com/stretchr/testify/require"
)

// TestZeroCellIsAbsent ensures the zero Cell and Absent() agree.
func TestZeroCellIsAbsent(t *testing.T) {
	var zero frame.Cell                    // zero value straight from the type
	require.True(t, zero.IsAbsent())       // zero Cell must be absent
	require.Equal(t, zero, frame.Absent()) // Absent() is the zero Cell
}

// TestNumberCell verifies present/absent behavior of numeric cells.
func TestNumberCell(t *testing.T) {
	c := frame.NumberCell(40.1)    // a present measurement
	require.False(t, c.IsAbsent()) // must be present
	require.Equal(t, frame.Number, c.Kind())
	v, ok := c.Float()        // typed accessor
	require.True(t, ok)       // accessor matches the kind
	require.Equal(t, 40.1, v) // value survives round trip
	_, ok = c.Str()           // wrong-kind accessor
	require.False(t, ok)      // must report no value

	nan := frame.NumberCell(math.NaN()) // NaN normalizes at the door
	require.True(t, nan.IsAbsent())     // NaN is ABSENT, never a value

	inf := frame.NumberCell(math.Inf(1)) // +Inf is suspicious but present
	require.False(t, inf.IsAbsent())     // Inf is NOT treated as missing
}

// TestStringCell verifies that the empty string stays a present value.
func TestStringCell(t *testing.T) {
	c := frame.StringCell("")      // empty string input
	require.False(t, c.IsAbsent()) // present: "" is a value, not a gap
	s, ok := c.Str()
	require.True(t, ok)
	require.Equal(t, "", s)
}

// TestTimeCell verifies zero-time normalization.
func TestTimeCell(t *testing.T) {
	ts := time.Date(2019, 3, 14, 0, 0, 0, 0, time.UTC)
	c := frame.TimeCell(ts)
	require.False(t, c.IsAbsent())
	got, ok := c.Time()
	require.True(t, ok)
	require.True(t, got.Equal(ts))

	zero := frame.TimeCell(time.Time{}) // zero time input
	require.True(t, zero.IsAbsent())    // normalizes to ABSENT
}

// TestCellString checks the canonical renderings used as group keys.
func TestCellString(t *testing.T) {
	require.Equal(t, "NA", frame.Absent().String())             // absent label
	require.Equal(t, "2.5", frame.NumberCell(2.5).String())     // 'g' format
	require.Equal(t, "42", frame.NumberCell(42).String())       // no trailing zeros
	require.Equal(t, "male", frame.StringCell("male").String()) // verbatim
	ts := time.Date(2019, 3, 14, 12, 30, 0, 0, time.UTC)
	require.Equal(t, "2019-03-14T12:30:00Z", frame.TimeCell(ts).String())
}

// TestKindString covers the enum names and the out-of-range fallback.
func TestKindString(t *testing.T) {
	require.Equal(t, "number", frame.Number.String())
	require.Equal(t, "string", frame.String.String())
	require.Equal(t, "time", frame.Time.String())
	require.Equal(t, "kind(9)", frame.Kind(9).String())
}
