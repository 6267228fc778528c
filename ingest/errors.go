// SPDX-License-Identifier: MIT
// Package ingest: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors for the loading
// collaborators. Structural failures inside assembled tables (duplicate
// names, length drift) surface as frame sentinels; everything a SOURCE can
// get wrong maps to exactly one sentinel below.

package ingest

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "ingest: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNilReader indicates a nil io.Reader was passed to a reader entry.
	ErrNilReader = errors.New("ingest: nil reader")

	// ErrNilDB indicates a nil *sql.DB was passed to ReadSQL.
	ErrNilDB = errors.New("ingest: nil database handle")

	// ErrNilRecord indicates a nil Arrow record was passed to FromRecord.
	ErrNilRecord = errors.New("ingest: nil arrow record")

	// ErrSchemaEmpty indicates a schema document with no columns.
	ErrSchemaEmpty = errors.New("ingest: schema has no columns")

	// ErrSchemaName indicates a schema column with an empty name.
	ErrSchemaName = errors.New("ingest: schema column name must not be empty")

	// ErrSchemaKind indicates a schema kind outside "number" | "string" |
	// "time".
	ErrSchemaKind = errors.New("ingest: unknown schema kind")

	// ErrSchemaDuplicate indicates two schema columns sharing one name.
	ErrSchemaDuplicate = errors.New("ingest: duplicate schema column name")

	// ErrHeaderMissing indicates a CSV input without a header record, or a
	// header that lacks a schema-declared column.
	ErrHeaderMissing = errors.New("ingest: header does not carry the schema columns")

	// ErrCellParse indicates a present cell whose text cannot be parsed into
	// the declared kind. Readers fail the whole load; they never skip rows.
	ErrCellParse = errors.New("ingest: cell cannot be parsed as its declared kind")

	// ErrArrowType indicates an Arrow column type outside the supported
	// numeric / string / timestamp / date set.
	ErrArrowType = errors.New("ingest: unsupported arrow column type")
)
