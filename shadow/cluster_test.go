// Package shadow_test contains unit tests for missingness-pattern clustering.
package shadow_test

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/nabular/frame"
	"github.com/katalvlaran/nabular/kmeans"
	"github.com/katalvlaran/nabular/shadow"
	"github.com/stretchr/testify/require"
)

// patterns52 builds a 5×2 fixture with exactly two absence patterns:
// rows 0 and 2 are complete, rows 1, 3 and 4 are absent in both columns.
func patterns52(t *testing.T) *frame.Table {
	t.Helper()
	tab, err := frame.New(
		frame.Numbers("x", 1, math.NaN(), 3, math.NaN(), math.NaN()),
		frame.Numbers("y", 2, math.NaN(), 4, math.NaN(), math.NaN()),
	)
	require.NoError(t, err)

	return tab
}

// TestClustersValidation pins the closed error contract.
func TestClustersValidation(t *testing.T) {
	_, err := shadow.Clusters(nil, 2)
	require.ErrorIs(t, err, frame.ErrNilTable)

	tab := patterns52(t)
	_, err = shadow.Clusters(tab, 0) // k below 1
	require.ErrorIs(t, err, kmeans.ErrInvalidK)

	_, err = shadow.Clusters(tab, tab.Rows()+1) // more clusters than rows
	require.ErrorIs(t, err, kmeans.ErrInvalidK)

	empty, err2 := frame.New()
	require.NoError(t, err2)
	_, err = shadow.Clusters(empty, 1) // zero rows admit no k at all
	require.ErrorIs(t, err, kmeans.ErrInvalidK)
}

// TestClustersPatternSplit checks that rows sharing an absence pattern share a
// cluster and distinct patterns split, for every seed choice.
func TestClustersPatternSplit(t *testing.T) {
	tab := patterns52(t)

	ids, err := shadow.Clusters(tab, 2)
	require.NoError(t, err)
	require.Len(t, ids, tab.Rows())

	for _, id := range ids {
		require.GreaterOrEqual(t, id, 0)
		require.Less(t, id, 2) // ids live in [0,k)
	}

	require.Equal(t, ids[0], ids[2]) // complete rows stay together
	require.Equal(t, ids[1], ids[3]) // all-absent rows stay together
	require.Equal(t, ids[1], ids[4])
	require.NotEqual(t, ids[0], ids[1]) // the two patterns split
}

// TestClustersDeterminism checks bit-identical assignments for a fixed seed.
func TestClustersDeterminism(t *testing.T) {
	tab := patterns52(t)

	def1, err := shadow.Clusters(tab, 2)
	require.NoError(t, err)
	def2, err := shadow.Clusters(tab, 2)
	require.NoError(t, err)
	require.Equal(t, def1, def2) // default seed is fixed, not time-derived

	s1, err := shadow.Clusters(tab, 2, shadow.WithSeed(7), shadow.WithMaxIter(25))
	require.NoError(t, err)
	s2, err := shadow.Clusters(tab, 2, shadow.WithSeed(7), shadow.WithMaxIter(25))
	require.NoError(t, err)
	require.Equal(t, s1, s2)
}

// TestClustersSingleCluster checks the k=1 degenerate: one cluster takes all.
func TestClustersSingleCluster(t *testing.T) {
	tab := patterns52(t)

	ids, err := shadow.Clusters(tab, 1)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0, 0, 0}, ids)
}

// TestClustersKEqualsRows checks k == Rows over distinct patterns: every
// cluster gets used exactly once.
func TestClustersKEqualsRows(t *testing.T) {
	tab, err := frame.New(
		frame.Numbers("x", 1, math.NaN(), 1),
		frame.Numbers("y", 2, math.NaN(), math.NaN()),
	)
	require.NoError(t, err)

	ids, err := shadow.Clusters(tab, 3)
	require.NoError(t, err)

	got := append([]int(nil), ids...)
	sort.Ints(got)
	require.Equal(t, []int{0, 1, 2}, got) // a permutation of the cluster ids
}

// TestClustersMaxIterFloor checks that a tight iteration cap still yields a
// full, in-range assignment.
func TestClustersMaxIterFloor(t *testing.T) {
	tab := patterns52(t)

	ids, err := shadow.Clusters(tab, 2, shadow.WithMaxIter(1))
	require.NoError(t, err)
	require.Len(t, ids, tab.Rows())
	for _, id := range ids {
		require.GreaterOrEqual(t, id, 0)
		require.Less(t, id, 2)
	}
}

// TestWithMaxIterPanics pins the programmer-error contract of the option.
func TestWithMaxIterPanics(t *testing.T) {
	require.Panics(t, func() { shadow.WithMaxIter(0) })
	require.Panics(t, func() { shadow.WithMaxIter(-3) })
	require.NotPanics(t, func() { shadow.WithMaxIter(1) })
}
