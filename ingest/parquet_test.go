// Package ingest_test contains unit tests for the Parquet reader.
package ingest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/katalvlaran/nabular/frame"
	"github.com/katalvlaran/nabular/ingest"
	"github.com/katalvlaran/nabular/profile"
	"github.com/stretchr/testify/require"
)

// writeParquet renders a record into a Parquet file under dir.
func writeParquet(t *testing.T, dir string, rec arrow.Record) string {
	t.Helper()
	table := array.NewTableFromRecords(rec.Schema(), []arrow.Record{rec})
	defer table.Release()

	path := filepath.Join(dir, "pets.parquet")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	arrProps := pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema())
	w, err := pqarrow.NewFileWriter(rec.Schema(), f, props, arrProps)
	require.NoError(t, err)
	require.NoError(t, w.WriteTable(table, table.NumRows()))
	require.NoError(t, w.Close())

	return path
}

// TestReadParquet round-trips a record through a Parquet file on disk.
func TestReadParquet(t *testing.T) {
	rec := petsRecord(t)
	path := writeParquet(t, t.TempDir(), rec)

	tab, err := ingest.ReadParquet(path)
	require.NoError(t, err)
	require.Equal(t, 3, tab.Rows())
	require.Equal(t, []string{"weight", "species", "visits", "tagged"}, tab.ColumnNames())

	// One null per column except tagged, which carries two.
	require.Equal(t, 5, profile.NMiss(tab))

	weight, err := tab.Column("weight")
	require.NoError(t, err)
	require.Equal(t, frame.Number, weight.Kind())
	require.Equal(t, []bool{false, true, false}, weight.AbsentMask())

	tagged, err := tab.Column("tagged")
	require.NoError(t, err)
	require.Equal(t, frame.Time, tagged.Kind())

	cell, err := tab.Cell(2, "weight")
	require.NoError(t, err)
	v, ok := cell.Float()
	require.True(t, ok)
	require.Equal(t, 40.5, v)
}

// TestReadParquetMissingFile surfaces the os error with path context.
func TestReadParquetMissingFile(t *testing.T) {
	_, err := ingest.ReadParquet(filepath.Join(t.TempDir(), "nope.parquet"))
	require.Error(t, err)
}
