// SPDX-License-Identifier: MIT
// Package frame: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the frame
// package and by the packages building on it (profile, shadow, ingest). All
// operations MUST return these sentinels and tests MUST check them via
// errors.Is. No operation panics on user-triggered error conditions; panics
// are reserved for programmer errors in convenience constructors.

package frame

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "frame: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNilTable indicates that a nil *Table (receiver or argument) was used.
	ErrNilTable = errors.New("frame: nil table")

	// ErrNilColumn indicates that a nil *Column (receiver or argument) was used.
	ErrNilColumn = errors.New("frame: nil column")

	// ErrEmptyName indicates a column was constructed with an empty name.
	// Column names are identifiers; every lookup surface is name-keyed.
	ErrEmptyName = errors.New("frame: column name must not be empty")

	// ErrUnknownKind indicates a Kind value outside the declared enum.
	ErrUnknownKind = errors.New("frame: unknown kind")

	// ErrKindMismatch indicates a present cell whose kind differs from the
	// declared kind of its column. Absent cells are kind-free and never
	// trigger this.
	ErrKindMismatch = errors.New("frame: cell kind does not match column kind")

	// ErrDuplicateColumn indicates two columns with the same name were bound
	// into one table.
	ErrDuplicateColumn = errors.New("frame: duplicate column name")

	// ErrRowsMismatch indicates columns of differing lengths were bound into
	// one table, or a replacement column does not match the table length.
	ErrRowsMismatch = errors.New("frame: column lengths differ")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("frame: index out of range")

	// ErrUnknownColumn indicates that a referenced column name is not present
	// in the table.
	ErrUnknownColumn = errors.New("frame: unknown column name")
)
