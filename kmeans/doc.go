// SPDX-License-Identifier: MIT

// Package kmeans clusters float vectors with Lloyd's algorithm and
// k-means++ seeding, tuned for the module's missingness patterns: low
// dimension, many duplicate 0/1 vectors, and a hard determinism
// requirement.
//
// 🚀 Why a local kmeans?
//
//	Pattern grouping needs bit-for-bit reproducible assignments: the same
//	table, k and seed must yield the same clusters on every platform and
//	every run. That rules out implementations with time-based seeding,
//	map-order iteration or goroutine nondeterminism, and makes every tie
//	policy part of the contract:
//	  • distance ties → lowest index wins
//	  • k-means++ walk → ascending point order
//	  • empty clusters → re-seeded with the farthest unstolen point
//
// ✨ Behavior:
//   - Partition(vecs, k, opts) → Result{Assign, Centroids, Iters, Inertia}
//   - Seed 0 selects a fixed default stream; any other seed is used verbatim
//   - Inputs with fewer distinct vectors than k may legitimately end with
//     empty clusters; every vector still gets an id in [0,k)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/nabular/kmeans"
//
//	res, err := kmeans.Partition(patterns, 3, &kmeans.Options{Seed: 42})
//	if err != nil { ... }
//	_ = res.Assign // cluster id per input vector
//
// Performance: O(iters·n·k·d) time, O(n + k·d) space; see kmeans.go for
// the per-stage breakdown.
package kmeans
