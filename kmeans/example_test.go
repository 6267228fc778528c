// File: kmeans/example_test.go
package kmeans_test

import (
	"fmt"

	"github.com/katalvlaran/nabular/kmeans"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Partition
////////////////////////////////////////////////////////////////////////////////

// ExamplePartition splits five 1-D points into their two natural groups.
// Scenario:
//
//   - Points {0, 0.1, 0.2} and {10, 10.1}: one wide gap
//   - Cluster ids are arbitrary labels, so the example prints structure
//     (who shares a cluster) rather than raw ids
//
// Complexity: O(iters·n·k·d).
func ExamplePartition() {
	vecs := [][]float64{{0}, {0.1}, {0.2}, {10}, {10.1}}

	res, _ := kmeans.Partition(vecs, 2, &kmeans.Options{Seed: 7})

	fmt.Println("assignments:", len(res.Assign))
	fmt.Println("low blob together:", res.Assign[0] == res.Assign[1] && res.Assign[1] == res.Assign[2])
	fmt.Println("high blob together:", res.Assign[3] == res.Assign[4])
	fmt.Println("blobs apart:", res.Assign[0] != res.Assign[3])

	// Output:
	// assignments: 5
	// low blob together: true
	// high blob together: true
	// blobs apart: true
}
