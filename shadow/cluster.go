// SPDX-License-Identifier: MIT

// Package shadow: missingness-pattern clustering. This file defines:
//   - Option / Options (functional options with internal state),
//   - WithSeed / WithMaxIter constructors (panic on nonsensical values),
//   - Clusters, which encodes each row's absence pattern as a 0/1 vector and
//     partitions the rows with seeded k-means.

package shadow

import (
	"fmt"

	"github.com/katalvlaran/nabular/frame"
	"github.com/katalvlaran/nabular/kmeans"
)

// Internal panic message (no magic strings).
const panicMaxIterInvalid = "shadow: WithMaxIter: n must be >= 1"

// Option mutates internal options. Safe to apply repeatedly (idempotent);
// constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective clustering configuration after applying the
// Option setters. Fields are unexported; public entry points accept ...Option
// and resolve them via gatherOptions.
type Options struct {
	seed    int64 // 0 ⇒ kmeans default seed policy
	maxIter int   // ≥ 1; kmeans.DefaultMaxIter unless overridden
}

// WithSeed pins the RNG seed used by centroid initialization. Seed 0 keeps
// the documented default stream, so Clusters is deterministic with or without
// this option; pass a non-zero seed to get an independent reproducible run.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithMaxIter bounds the clustering refinement loop. Panics when n < 1.
func WithMaxIter(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// gatherOptions applies user-provided setters on top of defaults
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		seed:    0,
		maxIter: kmeans.DefaultMaxIter,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// Clusters groups the rows of t by the SHAPE of their missingness: rows that
// are absent in the same columns land in the same cluster. The returned slice
// has one cluster id in [0,k) per row, index-aligned with t.
// Implementation:
//   - Stage 1: validate (nil table; 1 ≤ k ≤ Rows — a zero-row table admits
//     no k at all).
//   - Stage 2: encode each row as a float vector over the columns in
//     declaration order, 1.0 where the cell is ABSENT, else 0.0.
//   - Stage 3: kmeans.Partition with the gathered seed and iteration cap;
//     same table, k and seed ⇒ bit-identical assignment.
//
// Errors: frame.ErrNilTable, kmeans.ErrInvalidK.
func Clusters(t *frame.Table, k int, opts ...Option) ([]int, error) {
	// Stage 1: validate.
	if t == nil {
		return nil, fmt.Errorf("shadow.Clusters: %w", frame.ErrNilTable)
	}
	if k < 1 || k > t.Rows() {
		return nil, fmt.Errorf("shadow.Clusters: k=%d with %d rows: %w", k, t.Rows(), kmeans.ErrInvalidK)
	}

	var cfg Options
	cfg = gatherOptions(opts...)

	// Stage 2: encode. Masks are snapshotted once per column; the vector
	// coordinate order is the declaration order of the columns.
	var (
		rows  = t.Rows()
		cols  = t.Columns()
		masks = make([][]bool, len(cols))
		c     int
	)
	for c = range cols {
		masks[c] = cols[c].AbsentMask()
	}

	var (
		vecs = make([][]float64, rows)
		r    int
	)
	for r = 0; r < rows; r++ {
		vec := make([]float64, len(cols))
		for c = range masks {
			if masks[c][r] {
				vec[c] = 1.0
			}
		}
		vecs[r] = vec
	}

	// Stage 3: partition. Validation above rules out the kmeans input
	// sentinels (0/1 coordinates are finite; rows ≥ k ≥ 1; dimension ≥ 1
	// because a table cannot have rows without columns).
	res, err := kmeans.Partition(vecs, k, &kmeans.Options{Seed: cfg.seed, MaxIter: cfg.maxIter})
	if err != nil {
		return nil, fmt.Errorf("shadow.Clusters: %w", err)
	}

	return res.Assign, nil
}
