// SPDX-License-Identifier: MIT
// Package kmeans defines options, results, and sentinel errors for the
// seeded partitional clustering used on missingness patterns.

package kmeans

import "errors"

// Sentinel errors for kmeans operations. Tests check them via errors.Is;
// Partition wraps them with call context at the boundary.
var (
	// ErrNoVectors indicates an empty input set.
	ErrNoVectors = errors.New("kmeans: no input vectors")

	// ErrInvalidK indicates k < 1 or k > len(vectors).
	ErrInvalidK = errors.New("kmeans: k out of range")

	// ErrDimensionMismatch indicates ragged input vectors or zero-length
	// vectors; every point must share one dimension ≥ 1.
	ErrDimensionMismatch = errors.New("kmeans: vectors must share one dimension >= 1")

	// ErrNonFinite indicates a NaN or ±Inf coordinate; squared-Euclidean
	// distances require finite input.
	ErrNonFinite = errors.New("kmeans: NaN or Inf coordinate")
)

// DefaultMaxIter bounds the Lloyd update-assign loop when Options.MaxIter
// is unset. Missingness-pattern inputs are 0/1 vectors with few distinct
// values; convergence is typically a handful of iterations.
const DefaultMaxIter = 50

// Options configures Partition.
//
// Fields:
//   - Seed    — RNG seed for k-means++ initialization. Seed 0 selects the
//     fixed default seed, so the zero Options value is still deterministic.
//   - MaxIter — upper bound on Lloyd iterations; values ≤ 0 fall back to
//     DefaultMaxIter.
//
// Example:
//
//	res, err := kmeans.Partition(vecs, 3, &kmeans.Options{Seed: 42})
//	if err != nil {
//	  // handle ErrInvalidK, ErrDimensionMismatch, ...
//	}
//	fmt.Println(res.Assign)
type Options struct {
	Seed    int64
	MaxIter int
}

// DefaultOptions returns the documented defaults (Seed 0 ⇒ fixed default
// stream, MaxIter = DefaultMaxIter).
func DefaultOptions() Options {
	return Options{Seed: 0, MaxIter: DefaultMaxIter}
}

// Result carries the outcome of one Partition run.
//
// Fields:
//   - Assign    — cluster id in [0,k) per input vector, index-aligned.
//   - Centroids — final cluster centers (k rows, input dimension).
//   - Iters     — Lloyd iterations executed before convergence or cutoff.
//   - Inertia   — sum of squared distances of every point to its centroid.
type Result struct {
	Assign    []int
	Centroids [][]float64
	Iters     int
	Inertia   float64
}
