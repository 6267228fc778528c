// SPDX-License-Identifier: MIT
// Package profile defines the result records and sentinel errors of the
// missingness profiler. The records carry json tags because they are the
// wire surface of every embedding tool; field names follow the established
// missing-data vocabulary (n_miss, pct_miss, case, variable).

package profile

import "errors"

// Sentinel errors for profile operations. Column-lookup and nil-table
// failures reuse the frame sentinels (frame.ErrUnknownColumn,
// frame.ErrNilTable) so one errors.Is check works across packages.
var (
	// ErrInvalidSpan indicates VarSpans was called with span < 1.
	ErrInvalidSpan = errors.New("profile: span must be >= 1")
)

// CaseSummary describes one row: how many of its cells are absent and what
// share of the row that is. Row is the position in the profiled table, not a
// rank: summaries are returned sorted by NMiss descending with ties in
// original row order.
type CaseSummary struct {
	Row     int     `json:"row"`
	NMiss   int     `json:"n_miss"`
	PctMiss float64 `json:"pct_miss"`
}

// CaseCount is one histogram bucket over rows: NCases rows contain exactly
// NMiss absent cells. Buckets are returned ascending by NMiss and only for
// observed counts.
type CaseCount struct {
	NMiss    int     `json:"n_miss_in_case"`
	NCases   int     `json:"n_cases"`
	PctCases float64 `json:"pct_cases"`
}

// VarSummary describes one column: its absent-cell count and the share of
// rows that count represents. Every column appears, including fully observed
// ones; order is NMiss descending, ties in declaration order.
type VarSummary struct {
	Variable string  `json:"variable"`
	NMiss    int     `json:"n_miss"`
	PctMiss  float64 `json:"pct_miss"`
}

// VarCount is one histogram bucket over columns: NVars columns contain
// exactly NMiss absent cells. Buckets are ascending by NMiss.
type VarCount struct {
	NMiss   int     `json:"n_miss_in_var"`
	NVars   int     `json:"n_vars"`
	PctVars float64 `json:"pct_vars"`
}

// CaseGroup pairs one group key with the case summaries of that group's rows.
// Group keys are the canonical cell renderings of the grouping column
// (absent cells group under "NA"); groups are returned sorted by key.
type CaseGroup struct {
	Group string        `json:"group"`
	Cases []CaseSummary `json:"cases"`
}

// VarGroup pairs one group key with per-column summaries computed over that
// group's rows.
type VarGroup struct {
	Group string       `json:"group"`
	Vars  []VarSummary `json:"vars"`
}

// CaseCountGroup pairs one group key with the row-histogram of that group.
type CaseCountGroup struct {
	Group  string      `json:"group"`
	Counts []CaseCount `json:"counts"`
}

// VarCountGroup pairs one group key with the column-histogram of that group.
type VarCountGroup struct {
	Group  string     `json:"group"`
	Counts []VarCount `json:"counts"`
}

// Run is one streak in a column: Length consecutive cells that are all
// absent (Absent=true) or all present. Runs alternate and cover the column
// end to end.
type Run struct {
	Absent bool `json:"absent"`
	Length int  `json:"length"`
}

// SpanCount reports absence inside one fixed-width window of consecutive
// rows. Span is the zero-based window index; PctMiss is taken over the
// window's actual width, so a short final window still reports a true share.
type SpanCount struct {
	Span    int     `json:"span"`
	NMiss   int     `json:"n_miss"`
	PctMiss float64 `json:"pct_miss"`
}
