// SPDX-License-Identifier: MIT

// Package shadow turns missingness into data: it derives companion "shadow"
// columns that record, per cell, whether the source value was there, and
// binds them next to the source columns (the nabular form).
//
// 🚀 Why shadow columns?
//
//	Once a gap is overwritten by an estimate, the value domain no longer
//	remembers it was a gap. A shadow column keeps that memory as an ordinary
//	String column: "NA" where the source cell was ABSENT, "!NA" where it was
//	present. Plots, models and audits can then condition on missingness the
//	same way they condition on any other variable.
//
// ✨ Guarantees:
//   - Always emitted — every source column gets a shadow, fully-present ones
//     included, so samples with different gaps share one schema.
//   - Round trip — shadow cell == Missing ⇔ source cell absent, position by
//     position.
//   - Immutability after Bind — shadow columns cannot be replaced; base
//     columns only move through WithColumn, which returns a new Nabular.
//   - Deterministic clustering — Clusters(t, k, WithSeed(s)) yields a
//     bit-identical assignment for identical inputs.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/nabular/shadow"
//
//	nb, err := shadow.Bind(t)            // base columns + "_NA" columns
//	if err != nil { ... }
//	nb.Table().Cols()                    // 2 × t.Cols()
//	ids, err := shadow.Clusters(t, 2)    // rows grouped by absence pattern
//
// The package owns no fill policy: imputation computes replacement cells
// elsewhere and commits them through Nabular.WithColumn, with the shadow
// still recording where the original gaps were.
package shadow
