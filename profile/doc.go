// SPDX-License-Identifier: MIT

// Package profile answers "how much is missing, and where" over frame
// tables: counts, proportions, row and column summaries, histograms,
// grouped variants, and streak/window views — all as pure deterministic
// functions.
//
// 🚀 What does profiling give you?
//
//	Before imputing or modelling, you need the shape of the gaps:
//	  • NMiss / NComplete — absolute cell counts
//	  • PropMissCase — the share of ROWS touched by any gap (an existence
//	    predicate per row, not a cell fraction — easy to misread, pinned
//	    here and in the tests)
//	  • Vars / Cases — ranked per-column and per-row breakdowns
//	  • VarTable / CaseTable — "how many rows have exactly k gaps"
//	  • CasesBy / VarsBy / ... — all of the above split by a grouping column
//	  • VarRuns / VarSpans — streaks and fixed-width windows down a column
//
// ✨ Guarantees:
//   - Pure functions — no state, no mutation of the input table.
//   - Deterministic output — documented sort orders, stable ties, group
//     keys sorted; byte-identical runs on identical input.
//   - Defined degenerate cases — zero-row/zero-column tables produce zero
//     counts and zero proportions, never NaN.
//   - Whole-input semantics — operations either cover every cell or fail
//     with a sentinel; nothing is silently skipped.
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/nabular/frame"
//	    "github.com/katalvlaran/nabular/profile"
//	)
//
//	t, _ := frame.New(
//	    frame.Numbers("weight", 36, math.NaN(), 40.5),
//	    frame.Strings("species", "argurus", "argurus", "delicatulus"),
//	)
//	profile.NMiss(t)        // 1
//	profile.PctMissCase(t)  // 33.33...
//	for _, v := range profile.Vars(t) {
//	    fmt.Println(v.Variable, v.NMiss, v.PctMiss)
//	}
//
// Performance: every operation is one O(r·c) pass over column validity
// masks plus an O(n·log n) sort of its result records.
package profile
