// SPDX-License-Identifier: MIT

// Package ingest - Parquet reader.
//
// Purpose:
//   - Read one Parquet file end to end through the Arrow bridge: parquet
//     reader → Arrow table → records → FromRecord, so all type mapping
//     lives in one place.

package ingest

import (
	"context"
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/katalvlaran/nabular/frame"
)

// ReadParquet loads a Parquet file into a table. The whole file is
// materialized as one Arrow table first; sources large enough to need
// streaming should arrive through FromRecord instead.
//
// Errors: file/parquet failures wrapped verbatim, ErrArrowType for columns
// outside the supported set.
func ReadParquet(path string) (*frame.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest.ReadParquet(%q): %w", path, err)
	}
	defer f.Close()

	mem := memory.NewGoAllocator()
	pf, err := file.NewParquetReader(f, file.WithReadProps(parquet.NewReaderProperties(mem)))
	if err != nil {
		return nil, fmt.Errorf("ingest.ReadParquet(%q): %w", path, err)
	}
	defer pf.Close()

	ar, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, mem)
	if err != nil {
		return nil, fmt.Errorf("ingest.ReadParquet(%q): %w", path, err)
	}

	table, err := ar.ReadTable(context.Background())
	if err != nil {
		return nil, fmt.Errorf("ingest.ReadParquet(%q): %w", path, err)
	}
	defer table.Release()

	out, err := fromArrowTable(table)
	if err != nil {
		return nil, fmt.Errorf("ingest.ReadParquet(%q): %w", path, err)
	}
	return out, nil
}

// fromArrowTable flattens an Arrow table into one record and lifts it. A
// zero-row table still yields its columns, length 0.
func fromArrowTable(table arrow.Table) (*frame.Table, error) {
	if table.NumRows() == 0 {
		return emptyFromSchema(table.Schema())
	}

	tr := array.NewTableReader(table, table.NumRows())
	defer tr.Release()
	if !tr.Next() {
		return emptyFromSchema(table.Schema())
	}
	return FromRecord(tr.Record())
}

// emptyFromSchema maps a schema onto zero-length columns so degenerate files
// keep their shape.
func emptyFromSchema(schema *arrow.Schema) (*frame.Table, error) {
	var (
		fields = schema.Fields()
		cols   = make([]*frame.Column, len(fields))
	)
	for i, field := range fields {
		kind, ok := kindOfArrowType(field.Type.ID())
		if !ok {
			return nil, fmt.Errorf("column %q: type %s: %w", field.Name, field.Type, ErrArrowType)
		}

		col, err := frame.NewColumn(field.Name, kind, nil)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	return frame.New(cols...)
}

// kindOfArrowType mirrors the FromRecord mapping at the schema level.
func kindOfArrowType(id arrow.Type) (frame.Kind, bool) {
	switch id {
	case arrow.FLOAT64, arrow.FLOAT32,
		arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
		return frame.Number, true
	case arrow.STRING:
		return frame.String, true
	case arrow.TIMESTAMP, arrow.DATE32, arrow.DATE64:
		return frame.Time, true
	default:
		return 0, false
	}
}
