// SPDX-License-Identifier: MIT

// Package ingest - CSV reader.
//
// Purpose:
//   - Turn header-first CSV text into a frame.Table under a Schema: marker
//     cells become ABSENT, everything else must parse into the declared
//     kind or the whole load fails.
//   - Compare header labels and markers only after NFC normalization, so
//     visually identical spellings cannot split into distinct names.
//
// AI-Hints:
//   - The schema picks and orders the columns; header columns it does not
//     name are skipped. A nil schema reads every header column as String
//     under the default markers, which is enough for pure missingness
//     profiling.
//   - Row numbers in errors count data rows from 1; the header has no number.

package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/nabular/frame"
)

// ReadCSV parses header-first CSV into a table. Every schema column must
// appear in the header; the first occurrence wins when labels repeat.
//
// Errors: ErrNilReader, ErrHeaderMissing, ErrSchemaKind, ErrCellParse, plus
// csv.Reader failures (ragged records, bad quoting) wrapped verbatim.
func ReadCSV(r io.Reader, s *Schema) (*frame.Table, error) {
	if r == nil {
		return nil, fmt.Errorf("ingest.ReadCSV: %w", ErrNilReader)
	}

	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ingest.ReadCSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("ingest.ReadCSV: empty input: %w", ErrHeaderMissing)
	}

	// Normalize the header once; all lookups run on the normalized labels.
	var (
		header = records[0]
		labels = make([]string, len(header))
		at     = make(map[string]int, len(header))
		i      int
	)
	for i = range header {
		labels[i] = canon(header[i])
		if _, taken := at[labels[i]]; !taken {
			at[labels[i]] = i
		}
	}

	if s == nil {
		var gen *Schema
		gen, err = headerSchema(labels)
		if err != nil {
			return nil, fmt.Errorf("ingest.ReadCSV: %w", err)
		}
		s = gen
	}

	var (
		data = records[1:]
		cols = make([]*frame.Column, 0, len(s.Columns))
		spec ColumnSpec
	)
	for _, spec = range s.Columns {
		name := canon(spec.Name)
		idx, ok := at[name]
		if !ok {
			return nil, fmt.Errorf("ingest.ReadCSV: column %q: %w", spec.Name, ErrHeaderMissing)
		}

		col, colErr := textColumn(spec, name, data, idx)
		if colErr != nil {
			return nil, fmt.Errorf("ingest.ReadCSV: %w", colErr)
		}
		cols = append(cols, col)
	}

	out, err := frame.New(cols...)
	if err != nil {
		return nil, fmt.Errorf("ingest.ReadCSV: %w", err)
	}
	return out, nil
}

// textColumn parses one schema column out of the data records.
func textColumn(spec ColumnSpec, name string, data [][]string, idx int) (*frame.Column, error) {
	kind, err := spec.frameKind()
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", name, err)
	}

	absent := markerSet(spec)
	cells := make([]frame.Cell, len(data))

	var (
		row int
		rec []string
	)
	for row, rec = range data {
		v := canon(rec[idx])
		if _, hit := absent[v]; hit {
			cells[row] = frame.Absent()
			continue
		}

		cell, cellErr := parseCell(kind, spec.layout(), v)
		if cellErr != nil {
			return nil, fmt.Errorf("row %d column %q: %q: %w", row+1, name, v, cellErr)
		}
		cells[row] = cell
	}

	col, err := frame.NewColumn(name, kind, cells)
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", name, err)
	}
	return col, nil
}

// parseCell converts one non-marker text value into a present cell. A parsed
// NaN or zero time still lands ABSENT, the frame-wide normalization.
func parseCell(kind frame.Kind, layout, v string) (frame.Cell, error) {
	switch kind {
	case frame.Number:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return frame.Cell{}, ErrCellParse
		}
		return frame.NumberCell(f), nil
	case frame.String:
		return frame.StringCell(v), nil
	default: // frame.Time; frameKind admits no other kind
		ts, err := time.Parse(layout, v)
		if err != nil {
			return frame.Cell{}, ErrCellParse
		}
		return frame.TimeCell(ts), nil
	}
}

// markerSet resolves the effective ABSENT markers of a column, normalized.
func markerSet(spec ColumnSpec) map[string]struct{} {
	defaults := DefaultMissingMarkers()
	set := make(map[string]struct{}, len(defaults)+len(spec.Missing))
	for _, m := range defaults {
		set[canon(m)] = struct{}{}
	}
	for _, m := range spec.Missing {
		set[canon(m)] = struct{}{}
	}
	return set
}

// headerSchema derives the nil-schema fallback: every header column read as
// String under the default markers.
func headerSchema(labels []string) (*Schema, error) {
	s := &Schema{Columns: make([]ColumnSpec, len(labels))}
	for i, label := range labels {
		if label == "" {
			return nil, fmt.Errorf("column %d: empty header label: %w", i, ErrHeaderMissing)
		}
		s.Columns[i] = ColumnSpec{Name: label, Kind: KindString}
	}
	return s, nil
}

// canon normalizes text at the ingest boundary; comparisons and stored
// strings both use the NFC form.
func canon(s string) string { return norm.NFC.String(s) }
