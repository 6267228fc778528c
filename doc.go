// Package nabular is your in-memory toolkit for seeing, counting and
// encoding missing data — from single-cell presence checks to whole-table
// profiles and shadow-matrix exports.
//
// 🚀 What is nabular?
//
//	A small, deterministic, explicit-by-design library that brings together:
//		• Table model: typed columns whose cells are PRESENT or ABSENT — never a magic value
//		• Profiling: n_miss/n_complete, per-case and per-variable summaries, histograms
//		• Grouped views: every summary split by a column's values
//		• Runs & spans: streaks and windowed counts of missingness down a column
//		• Shadow encoding: one "_NA" column per data column ("NA" / "!NA")
//		• Nabular binding: data + shadow side by side, safe to fill in
//		• Pattern clustering: rows grouped by their absence fingerprint (seeded k-means)
//		• Ingestion: CSV (+YAML schema), SQLite, Apache Arrow and Parquet readers
//
// ✨ Why choose nabular?
//
//   - Honest missingness – ABSENT is a first-class state, not NaN or ""
//   - Deterministic output – sorted summaries, seeded randomness, stable renderings
//   - Explicit errors – one sentinel per contract violation, errors.Is-friendly
//   - Imputation-safe – shadow columns never change once bound
//
// Under the hood, everything is organized under six packages:
//
//	frame/    — Kind, Cell, Column, Table: the presence-aware table model
//	profile/  — counts, case/variable summaries, histograms, grouped variants, runs & spans
//	shadow/   — shadow tables, Nabular binding, WithColumn fill seam, Clusters
//	kmeans/   — seeded partitional clustering over float vectors
//	ingest/   — CSV/SQLite/Arrow/Parquet → frame.Table (source nulls ⇔ ABSENT)
//	cmd/      — the nabular CLI: summary, shadow and cluster commands
//
// Quick ASCII example:
//
//	    x    y        x_NA  y_NA
//	    1    ABSENT   !NA   NA
//	  ABSENT ABSENT   NA    NA
//	    3    4        !NA   !NA
//
// a 3×2 table beside its shadow: the right half records exactly where the
// left half has gaps, and keeps recording it after the gaps are filled.
//
//	go get github.com/katalvlaran/nabular
package nabular
