// SPDX-License-Identifier: MIT

// Package ingest - database/sql reader.
//
// Purpose:
//   - Run one query and lift its result set into a frame.Table: SQL NULL ⇔
//     ABSENT, declared column types steer the frame kind.
//   - Kind resolution follows SQLite type affinity: DATE/TIME → Time,
//     BOOL → Number (0/1), INT/REAL/FLOA/DOUB/NUM/DEC → Number, anything
//     else — including type-less expression columns — reads as String.
//
// AI-Hints:
//   - Duplicate result names (SELECT a, a ...) fail table assembly with
//     frame.ErrDuplicateColumn; alias them in the query.
//   - The sqlite3 driver stays out of this file: callers blank-import
//     github.com/mattn/go-sqlite3 (the CLI and the package tests do).

package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/katalvlaran/nabular/frame"
)

// sqlSlot selects the scan vehicle and frame kind for one result column.
type sqlSlot uint8

const (
	slotText sqlSlot = iota
	slotFloat
	slotBool
	slotTime
)

// ReadSQL executes query on db and assembles the full result set into a
// table, columns in result order. Blocking work honors ctx through
// QueryContext.
//
// Errors: ErrNilDB, query/scan failures wrapped verbatim, frame sentinels
// from table assembly.
func ReadSQL(ctx context.Context, db *sql.DB, query string) (*frame.Table, error) {
	if db == nil {
		return nil, fmt.Errorf("ingest.ReadSQL: %w", ErrNilDB)
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ingest.ReadSQL: query: %w", err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("ingest.ReadSQL: columns: %w", err)
	}
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("ingest.ReadSQL: column types: %w", err)
	}

	var (
		slots = make([]sqlSlot, len(names))
		dest  = make([]any, len(names))
		cells = make([][]frame.Cell, len(names))
		i     int
	)
	for i = range names {
		slots[i] = slotOfSQLType(types[i].DatabaseTypeName())
		dest[i] = slots[i].target()
	}

	for rows.Next() {
		if err = rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("ingest.ReadSQL: scan: %w", err)
		}
		for i = range dest {
			cells[i] = append(cells[i], slots[i].cell(dest[i]))
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ingest.ReadSQL: iterate: %w", err)
	}

	cols := make([]*frame.Column, len(names))
	for i = range names {
		col, colErr := frame.NewColumn(names[i], slots[i].kind(), cells[i])
		if colErr != nil {
			return nil, fmt.Errorf("ingest.ReadSQL: %w", colErr)
		}
		cols[i] = col
	}

	out, err := frame.New(cols...)
	if err != nil {
		return nil, fmt.Errorf("ingest.ReadSQL: %w", err)
	}
	return out, nil
}

// slotOfSQLType classifies a declared SQL type. Matching is substring-based
// over the upper-cased name, the same spirit as SQLite's own affinity rules;
// the DATE/TIME probe runs first so DATETIME and TIMESTAMP never fall into
// the numeric bucket.
func slotOfSQLType(dbType string) sqlSlot {
	t := strings.ToUpper(dbType)
	switch {
	case strings.Contains(t, "DATE"), strings.Contains(t, "TIME"):
		return slotTime
	case strings.Contains(t, "BOOL"):
		return slotBool
	case strings.Contains(t, "INT"),
		strings.Contains(t, "REAL"),
		strings.Contains(t, "FLOA"),
		strings.Contains(t, "DOUB"),
		strings.Contains(t, "NUM"),
		strings.Contains(t, "DEC"):
		return slotFloat
	default:
		return slotText
	}
}

// kind maps the slot onto the frame kind it produces.
func (s sqlSlot) kind() frame.Kind {
	switch s {
	case slotFloat, slotBool:
		return frame.Number
	case slotTime:
		return frame.Time
	default:
		return frame.String
	}
}

// target allocates the nullable scan vehicle for the slot.
func (s sqlSlot) target() any {
	switch s {
	case slotFloat:
		return new(sql.NullFloat64)
	case slotBool:
		return new(sql.NullBool)
	case slotTime:
		return new(sql.NullTime)
	default:
		return new(sql.NullString)
	}
}

// cell converts the scanned vehicle into a frame cell; NULL ⇔ ABSENT.
func (s sqlSlot) cell(target any) frame.Cell {
	switch s {
	case slotFloat:
		v := target.(*sql.NullFloat64)
		if !v.Valid {
			return frame.Absent()
		}
		return frame.NumberCell(v.Float64)
	case slotBool:
		v := target.(*sql.NullBool)
		if !v.Valid {
			return frame.Absent()
		}
		if v.Bool {
			return frame.NumberCell(1)
		}
		return frame.NumberCell(0)
	case slotTime:
		v := target.(*sql.NullTime)
		if !v.Valid {
			return frame.Absent()
		}
		return frame.TimeCell(v.Time)
	default:
		v := target.(*sql.NullString)
		if !v.Valid {
			return frame.Absent()
		}
		return frame.StringCell(v.String)
	}
}
