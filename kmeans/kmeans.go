// SPDX-License-Identifier: MIT

// Package kmeans - Lloyd's algorithm with k-means++ seeding.
//
// Purpose:
//   - Provide the partitional clustering behind missingness-pattern grouping:
//     small dimension, 0/1-heavy vectors, determinism required.
//
// Policy (pinned, because "k-means" alone underspecifies the result):
//   - Distance: squared Euclidean, accumulated in fixed coordinate order.
//   - Initialization: k-means++ driven by one RNG from rngFromSeed(seed);
//     when every remaining point coincides with a chosen centroid, the
//     lowest-index unchosen point is taken (no RNG draw).
//   - Ties: equal distances always resolve to the lowest index (centroid
//     during assignment, point during repair and degenerate seeding).
//   - Empty clusters: after each update, every empty cluster is re-seeded
//     with the not-yet-stolen point farthest from its assigned centroid
//     (empties processed in ascending cluster order). Inputs with fewer
//     distinct vectors than k can still end with empty clusters; the
//     assignment stays valid, ids in [0,k).
//   - Convergence: stop when an update leaves the assignment unchanged, or
//     after MaxIter update+assign rounds.
//
// Determinism:
//   - Same vectors, k, and Options ⇒ bit-identical Result. No time source,
//     no map iteration, no goroutines.
//
// Complexity quicksheet:
//   - Partition: O(iters·n·k·d) time, O(n + k·d) extra space;
//     k-means++ seeding O(n·k·d).

package kmeans

import (
	"fmt"
	"math"
	"math/rand"
)

// Partition clusters the vectors into k groups and returns the assignment,
// final centroids, iteration count and inertia.
//
// Implementation:
//   - Stage 1: validate shape (non-empty, rectangular, finite, 1 ≤ k ≤ n).
//   - Stage 2: resolve Options (nil ⇒ defaults; MaxIter ≤ 0 ⇒ DefaultMaxIter).
//   - Stage 3: seed centroids with k-means++.
//   - Stage 4: Lloyd rounds — update means, repair empties, reassign — until
//     stable or MaxIter.
//   - Stage 5: package Result with inertia over the final assignment.
//
// Errors: ErrNoVectors, ErrInvalidK, ErrDimensionMismatch, ErrNonFinite.
func Partition(vecs [][]float64, k int, opts *Options) (*Result, error) {
	// Stage 1 (Validate): shape first, then content.
	n := len(vecs)
	if n == 0 {
		return nil, fmt.Errorf("kmeans.Partition(k=%d): %w", k, ErrNoVectors)
	}
	if k < 1 || k > n {
		return nil, fmt.Errorf("kmeans.Partition(n=%d,k=%d): %w", n, k, ErrInvalidK)
	}

	dim := len(vecs[0])
	if dim == 0 {
		return nil, fmt.Errorf("kmeans.Partition(n=%d,k=%d): zero dimension: %w", n, k, ErrDimensionMismatch)
	}

	var (
		i int
		j int
	)
	for i = 0; i < n; i++ {
		if len(vecs[i]) != dim {
			return nil, fmt.Errorf("kmeans.Partition: vector %d has length %d, want %d: %w",
				i, len(vecs[i]), dim, ErrDimensionMismatch)
		}
		for j = 0; j < dim; j++ {
			if math.IsNaN(vecs[i][j]) || math.IsInf(vecs[i][j], 0) {
				return nil, fmt.Errorf("kmeans.Partition: vector %d coordinate %d: %w", i, j, ErrNonFinite)
			}
		}
	}

	// Stage 2 (Configure): nil options mean defaults; zero seed means the
	// fixed default stream (see rng.go).
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = DefaultMaxIter
	}
	rng := rngFromSeed(cfg.Seed)

	// Stage 3 (Seed): k-means++ centers, deterministic given rng.
	centroids := plusPlusInit(vecs, k, rng)

	// Stage 4 (Lloyd): fixed-order rounds until stable or cutoff.
	assign := make([]int, n)
	prev := make([]int, n)
	assignPoints(vecs, centroids, assign)

	var iters int
	for iters < cfg.MaxIter {
		iters++
		updateCentroids(vecs, assign, centroids)
		repairEmpty(vecs, assign, centroids)
		copy(prev, assign)
		assignPoints(vecs, centroids, assign)
		if equalAssign(prev, assign) {
			break
		}
	}

	// Stage 5 (Package): inertia over the final, consistent assignment.
	var inertia float64
	for i = 0; i < n; i++ {
		inertia += dist2(vecs[i], centroids[assign[i]])
	}
	return &Result{Assign: assign, Centroids: centroids, Iters: iters, Inertia: inertia}, nil
}

// plusPlusInit picks k starting centroids: the first uniformly, each next
// with probability proportional to its squared distance from the nearest
// chosen centroid. The cumulative walk ascends point order, so equal weights
// resolve deterministically; an all-zero weight round (every point already
// coincides with a centroid) takes the lowest unchosen index without
// consuming randomness.
func plusPlusInit(vecs [][]float64, k int, rng *rand.Rand) [][]float64 {
	n := len(vecs)
	centroids := make([][]float64, 0, k)
	chosen := make([]bool, n)

	first := rng.Intn(n)
	centroids = append(centroids, cloneVec(vecs[first]))
	chosen[first] = true

	d2 := make([]float64, n)
	for len(centroids) < k {
		var total float64
		for i, v := range vecs {
			d2[i] = minDist2(v, centroids)
			total += d2[i]
		}

		pick := -1
		if total > 0 {
			r := rng.Float64() * total
			var cum float64
			for i := 0; i < n; i++ {
				cum += d2[i]
				if cum > r {
					pick = i
					break
				}
			}
			if pick < 0 { // float rounding put r at/after the last mass
				for i := n - 1; i >= 0; i-- {
					if d2[i] > 0 {
						pick = i
						break
					}
				}
			}
		} else {
			for i := 0; i < n; i++ {
				if !chosen[i] {
					pick = i
					break
				}
			}
		}

		centroids = append(centroids, cloneVec(vecs[pick]))
		chosen[pick] = true
	}
	return centroids
}

// assignPoints maps every vector to its nearest centroid; equal distances
// resolve to the lowest centroid index.
func assignPoints(vecs, centroids [][]float64, assign []int) {
	for i, v := range vecs {
		best := 0
		bestD := dist2(v, centroids[0])
		for c := 1; c < len(centroids); c++ {
			if d := dist2(v, centroids[c]); d < bestD {
				best, bestD = c, d
			}
		}
		assign[i] = best
	}
}

// updateCentroids recomputes each non-empty cluster's centroid as the mean
// of its members. Empty clusters are left untouched here; repairEmpty owns
// them.
func updateCentroids(vecs [][]float64, assign []int, centroids [][]float64) {
	k := len(centroids)
	dim := len(vecs[0])

	counts := make([]int, k)
	sums := make([][]float64, k)
	for c := range sums {
		sums[c] = make([]float64, dim)
	}
	for i, v := range vecs {
		c := assign[i]
		counts[c]++
		for j, x := range v {
			sums[c][j] += x
		}
	}

	for c := 0; c < k; c++ {
		if counts[c] == 0 {
			continue
		}
		for j := 0; j < dim; j++ {
			centroids[c][j] = sums[c][j] / float64(counts[c])
		}
	}
}

// repairEmpty re-seeds every empty cluster with the farthest unstolen point
// (distance to its assigned centroid, snapshot taken before any repair;
// ties and empties resolve in ascending index order).
func repairEmpty(vecs [][]float64, assign []int, centroids [][]float64) {
	k := len(centroids)
	counts := make([]int, k)
	for _, a := range assign {
		counts[a]++
	}

	var d2 []float64
	used := make([]bool, len(vecs))
	for c := 0; c < k; c++ {
		if counts[c] != 0 {
			continue
		}
		if d2 == nil { // lazily build the distance snapshot once
			d2 = make([]float64, len(vecs))
			for i, v := range vecs {
				d2[i] = dist2(v, centroids[assign[i]])
			}
		}

		best := -1
		bestD := -1.0
		for i := range vecs {
			if used[i] {
				continue
			}
			if d2[i] > bestD {
				best, bestD = i, d2[i]
			}
		}
		copy(centroids[c], vecs[best])
		used[best] = true
	}
}

// dist2 is squared Euclidean distance in fixed coordinate order.
func dist2(a, b []float64) float64 {
	var s float64
	for j := range a {
		d := a[j] - b[j]
		s += d * d
	}
	return s
}

// minDist2 is the squared distance from v to its nearest chosen centroid.
func minDist2(v []float64, centroids [][]float64) float64 {
	best := dist2(v, centroids[0])
	for c := 1; c < len(centroids); c++ {
		if d := dist2(v, centroids[c]); d < best {
			best = d
		}
	}
	return best
}

// equalAssign reports whether two assignments are identical.
func equalAssign(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// cloneVec copies one vector so centroids never alias caller memory.
func cloneVec(v []float64) []float64 {
	return append([]float64(nil), v...)
}
