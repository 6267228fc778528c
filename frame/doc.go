// SPDX-License-Identifier: MIT

// Package frame provides the immutable table abstraction the rest of the
// module is built on: ordered, uniquely named, equal-length columns whose
// cells are either PRESENT (a typed value) or ABSENT.
//
// 🚀 What is a frame?
//
//	A rectangular dataset where missingness is first-class:
//	  • Cell — a present value (number, string, time) or the absent cell
//	  • Column — an immutable typed sequence with a validity mask
//	  • Table — an ordered bundle of columns sharing one row count
//
//	Nothing in the value domain is overloaded to mean "missing": absence is
//	carried out-of-band in the validity mask, the way columnar stores do it.
//
// ✨ Guarantees:
//   - Immutability — constructors deep-copy, accessors copy out; a Table
//     never changes after frame.New returns.
//   - Safety — indexers return sentinel errors (ErrOutOfRange,
//     ErrUnknownColumn, ...) instead of panicking.
//   - Determinism — enumeration follows declaration order; no map
//     iteration order leaks into results.
//   - Defined degenerate cases — zero-row and zero-column tables are legal
//     and every accessor stays well-behaved on them.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/nabular/frame"
//
//	length := frame.Numbers("total_length", 40.1, math.NaN(), 37.4)
//	species := frame.Strings("species", "argurus", "hermannsburgensis", "argurus")
//	t, err := frame.New(length, species)
//	if err != nil { ... }
//	t.Rows()                  // 3
//	cell, _ := t.Cell(1, "total_length")
//	cell.IsAbsent()           // true: NaN normalized to ABSENT at the door
//
// Downstream packages consume frames pure-functionally: profile counts and
// summarizes absence, shadow re-encodes it as explicit companion columns,
// ingest builds frames from CSV, SQL, Arrow and Parquet sources.
package frame
