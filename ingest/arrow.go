// SPDX-License-Identifier: MIT

// Package ingest - Arrow interop.
//
// Purpose:
//   - Cross between arrow.Record and frame.Table in both directions with
//     one fixed mapping: Arrow nulls ⇔ ABSENT, numeric families → Number
//     (as float64), STRING → String, TIMESTAMP/DATE32/DATE64 → Time.
//   - Keep the supported type set closed: anything else is ErrArrowType,
//     never a silent coercion.
//
// AI-Hints:
//   - Export always widens: every Number column leaves as FLOAT64, every
//     Time column as microsecond TIMESTAMP (UTC), so a round trip preserves
//     values and absence but not the original physical Arrow type.
//   - ToRecord releases its builders; the returned record is the caller's
//     to Release.

package ingest

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/katalvlaran/nabular/frame"
)

// FromRecord lifts one Arrow record into a table, column order preserved.
//
// Errors: ErrNilRecord, ErrArrowType, frame sentinels from table assembly.
func FromRecord(rec arrow.Record) (*frame.Table, error) {
	if rec == nil {
		return nil, fmt.Errorf("ingest.FromRecord: %w", ErrNilRecord)
	}

	var (
		schema = rec.Schema()
		ncols  = int(rec.NumCols())
		cols   = make([]*frame.Column, ncols)
		c      int
	)
	for c = 0; c < ncols; c++ {
		field := schema.Field(c)
		cells, kind, err := cellsFromArrow(rec.Column(c))
		if err != nil {
			return nil, fmt.Errorf("ingest.FromRecord: column %q: %w", field.Name, err)
		}

		col, colErr := frame.NewColumn(field.Name, kind, cells)
		if colErr != nil {
			return nil, fmt.Errorf("ingest.FromRecord: %w", colErr)
		}
		cols[c] = col
	}

	out, err := frame.New(cols...)
	if err != nil {
		return nil, fmt.Errorf("ingest.FromRecord: %w", err)
	}
	return out, nil
}

// ToRecord renders a table as one Arrow record under mem (a Go allocator
// when nil). The caller owns the returned record and must Release it.
//
// Errors: frame.ErrNilTable.
func ToRecord(mem memory.Allocator, t *frame.Table) (arrow.Record, error) {
	if t == nil {
		return nil, fmt.Errorf("ingest.ToRecord: %w", frame.ErrNilTable)
	}
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	var (
		cols   = t.Columns()
		fields = make([]arrow.Field, len(cols))
		arrs   = make([]arrow.Array, len(cols))
		c      int
		col    *frame.Column
	)
	for c, col = range cols {
		fields[c], arrs[c] = arrowColumn(mem, col)
	}

	rec := array.NewRecord(arrow.NewSchema(fields, nil), arrs, int64(t.Rows()))
	releaseAll(arrs) // the record retains its own references
	return rec, nil
}

// cellsFromArrow converts one Arrow array into frame cells plus the frame
// kind it lands in. The cells slice starts all-absent (the Cell zero value);
// only non-null positions are written.
func cellsFromArrow(col arrow.Array) ([]frame.Cell, frame.Kind, error) {
	var (
		n     = col.Len()
		cells = make([]frame.Cell, n)
		i     int
	)

	switch col.DataType().ID() {
	case arrow.FLOAT64:
		a := col.(*array.Float64)
		for i = 0; i < n; i++ {
			if !a.IsNull(i) {
				cells[i] = frame.NumberCell(a.Value(i))
			}
		}
		return cells, frame.Number, nil
	case arrow.FLOAT32:
		a := col.(*array.Float32)
		for i = 0; i < n; i++ {
			if !a.IsNull(i) {
				cells[i] = frame.NumberCell(float64(a.Value(i)))
			}
		}
		return cells, frame.Number, nil
	case arrow.INT8:
		a := col.(*array.Int8)
		for i = 0; i < n; i++ {
			if !a.IsNull(i) {
				cells[i] = frame.NumberCell(float64(a.Value(i)))
			}
		}
		return cells, frame.Number, nil
	case arrow.INT16:
		a := col.(*array.Int16)
		for i = 0; i < n; i++ {
			if !a.IsNull(i) {
				cells[i] = frame.NumberCell(float64(a.Value(i)))
			}
		}
		return cells, frame.Number, nil
	case arrow.INT32:
		a := col.(*array.Int32)
		for i = 0; i < n; i++ {
			if !a.IsNull(i) {
				cells[i] = frame.NumberCell(float64(a.Value(i)))
			}
		}
		return cells, frame.Number, nil
	case arrow.INT64:
		a := col.(*array.Int64)
		for i = 0; i < n; i++ {
			if !a.IsNull(i) {
				cells[i] = frame.NumberCell(float64(a.Value(i)))
			}
		}
		return cells, frame.Number, nil
	case arrow.UINT8:
		a := col.(*array.Uint8)
		for i = 0; i < n; i++ {
			if !a.IsNull(i) {
				cells[i] = frame.NumberCell(float64(a.Value(i)))
			}
		}
		return cells, frame.Number, nil
	case arrow.UINT16:
		a := col.(*array.Uint16)
		for i = 0; i < n; i++ {
			if !a.IsNull(i) {
				cells[i] = frame.NumberCell(float64(a.Value(i)))
			}
		}
		return cells, frame.Number, nil
	case arrow.UINT32:
		a := col.(*array.Uint32)
		for i = 0; i < n; i++ {
			if !a.IsNull(i) {
				cells[i] = frame.NumberCell(float64(a.Value(i)))
			}
		}
		return cells, frame.Number, nil
	case arrow.UINT64:
		a := col.(*array.Uint64)
		for i = 0; i < n; i++ {
			if !a.IsNull(i) {
				cells[i] = frame.NumberCell(float64(a.Value(i)))
			}
		}
		return cells, frame.Number, nil
	case arrow.STRING:
		a := col.(*array.String)
		for i = 0; i < n; i++ {
			if !a.IsNull(i) {
				cells[i] = frame.StringCell(a.Value(i))
			}
		}
		return cells, frame.String, nil
	case arrow.TIMESTAMP:
		a := col.(*array.Timestamp)
		dt := col.DataType().(*arrow.TimestampType)
		for i = 0; i < n; i++ {
			if !a.IsNull(i) {
				cells[i] = frame.TimeCell(a.Value(i).ToTime(dt.Unit))
			}
		}
		return cells, frame.Time, nil
	case arrow.DATE32:
		a := col.(*array.Date32)
		for i = 0; i < n; i++ {
			if !a.IsNull(i) {
				cells[i] = frame.TimeCell(a.Value(i).ToTime())
			}
		}
		return cells, frame.Time, nil
	case arrow.DATE64:
		a := col.(*array.Date64)
		for i = 0; i < n; i++ {
			if !a.IsNull(i) {
				cells[i] = frame.TimeCell(a.Value(i).ToTime())
			}
		}
		return cells, frame.Time, nil
	default:
		return nil, 0, fmt.Errorf("type %s: %w", col.DataType(), ErrArrowType)
	}
}

// arrowColumn renders one frame column as an Arrow field plus array.
// Present cells match the column kind (NewColumn enforced it), so the typed
// accessors below cannot miss.
func arrowColumn(mem memory.Allocator, col *frame.Column) (arrow.Field, arrow.Array) {
	mask := col.AbsentMask()

	switch col.Kind() {
	case frame.Number:
		b := array.NewFloat64Builder(mem)
		defer b.Release()
		for i := range mask {
			if mask[i] {
				b.AppendNull()
				continue
			}
			cell, _ := col.Cell(i)
			v, _ := cell.Float()
			b.Append(v)
		}
		return arrow.Field{Name: col.Name(), Type: arrow.PrimitiveTypes.Float64, Nullable: true}, b.NewArray()
	case frame.String:
		b := array.NewStringBuilder(mem)
		defer b.Release()
		for i := range mask {
			if mask[i] {
				b.AppendNull()
				continue
			}
			cell, _ := col.Cell(i)
			v, _ := cell.Str()
			b.Append(v)
		}
		return arrow.Field{Name: col.Name(), Type: arrow.BinaryTypes.String, Nullable: true}, b.NewArray()
	default: // frame.Time; table construction admits no other kind
		dt := &arrow.TimestampType{Unit: arrow.Microsecond, TimeZone: "UTC"}
		b := array.NewTimestampBuilder(mem, dt)
		defer b.Release()
		for i := range mask {
			if mask[i] {
				b.AppendNull()
				continue
			}
			cell, _ := col.Cell(i)
			v, _ := cell.Time()
			b.Append(arrow.Timestamp(v.UnixMicro()))
		}
		return arrow.Field{Name: col.Name(), Type: dt, Nullable: true}, b.NewArray()
	}
}

// releaseAll drops our references on the given arrays.
func releaseAll(arrs []arrow.Array) {
	for _, a := range arrs {
		if a != nil {
			a.Release()
		}
	}
}
