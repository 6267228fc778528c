// SPDX-License-Identifier: MIT

// Package ingest loads tables from the outside world: CSV text under a YAML
// schema sidecar, SQL result sets, Arrow records, and Parquet files. Every
// reader produces an immutable frame.Table and maps the source's own notion
// of "no value" onto ABSENT.
//
// 🚀 One door per source:
//
//	ReadCSV     — header-first text; marker cells ("", "NA", extras) → ABSENT
//	ReadSQL     — one query; SQL NULL → ABSENT; kinds from declared types
//	FromRecord  — Arrow record; nulls → ABSENT; closed type mapping
//	ReadParquet — Parquet file through the Arrow bridge
//	ToRecord    — the reverse bridge, ABSENT → Arrow null
//
// ✨ Guarantees:
//   - Nothing is skipped silently — a malformed cell, a ragged record, or an
//     unsupported column type fails the whole load with a sentinel.
//   - Text comparison happens after NFC normalization, headers and markers
//     alike.
//   - Loads are deterministic: column order follows the schema (CSV), the
//     result set (SQL), or the source schema (Arrow/Parquet).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/nabular/ingest"
//
//	s, err := ingest.LoadSchema("pets.yaml")
//	if err != nil { ... }
//	f, _ := os.Open("pets.csv")
//	t, err := ingest.ReadCSV(f, s)      // *frame.Table, gaps already ABSENT
//
// The SQLite driver is not imported here; link it where a database is
// actually opened (the CLI does, and so do this package's tests).
package ingest
