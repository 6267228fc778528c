// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextTable(t *testing.T) {
	buf := &bytes.Buffer{}
	tbl := newTextTable("variable", "n")
	tbl.addRow("x", "10")
	tbl.addRow("longname", "2")
	require.NoError(t, tbl.writeTo(buf))

	want := "variable  n\n" +
		"x         10\n" +
		"longname  2\n"
	require.Equal(t, want, buf.String())
}

func TestTextTableRuneWidths(t *testing.T) {
	// Multi-byte column names count runes, not bytes.
	buf := &bytes.Buffer{}
	tbl := newTextTable("café", "n")
	tbl.addRow("x", "10")
	tbl.addRow("longer", "2")
	require.NoError(t, tbl.writeTo(buf))

	want := "café    n\n" +
		"x       10\n" +
		"longer  2\n"
	require.Equal(t, want, buf.String())
}

func TestTextTableHeaderOnly(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, newTextTable("row", "cluster").writeTo(buf))
	require.Equal(t, "row  cluster\n", buf.String())
}

func TestKVLine(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, kvLine(buf, "rows", "3"))
	require.Equal(t, "rows:          3\n", buf.String())

	// The longest summary label still keeps one space before the value.
	buf.Reset()
	require.NoError(t, kvLine(buf, "pct_miss_case", "66.67"))
	require.Equal(t, "pct_miss_case: 66.67\n", buf.String())
}

func TestPctText(t *testing.T) {
	require.Equal(t, "66.67", pctText(200.0/3.0))
	require.Equal(t, "33.33", pctText(100.0/3.0))
	require.Equal(t, "0.00", pctText(0))
	require.Equal(t, "100.00", pctText(100))
}
