// SPDX-License-Identifier: MIT

// Package cli - the cluster command.
//
// Purpose:
//   - Load one source and group its rows by missingness pattern: rows are
//     encoded as 0/1 absence vectors and partitioned into --k clusters.
//     Prints the row→cluster assignment and the per-cluster sizes.
//
// AI-Hints:
//   - Flag values outside the legal range (--k 0, --max-iter 0) are usage
//     mistakes; a k the loaded table cannot satisfy (k > rows) is an
//     operation failure and exits 1.

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nabular/kmeans"
	"github.com/katalvlaran/nabular/shadow"
)

// clusterOptions carries the cluster-specific flags.
type clusterOptions struct {
	src     sourceOptions
	k       int
	seed    int64
	maxIter int
}

// ClusterReport is the cluster payload: one cluster id per row, plus sizes.
type ClusterReport struct {
	K      int           `json:"k"`
	Seed   int64         `json:"seed"`
	Assign []int         `json:"assign"`
	Sizes  []ClusterSize `json:"sizes"`
}

// ClusterSize counts the rows assigned to one cluster.
type ClusterSize struct {
	Cluster int `json:"cluster"`
	NRows   int `json:"n_rows"`
}

// NewClusterCommand creates the cluster command.
func NewClusterCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &clusterOptions{}

	cmd := &cobra.Command{
		Use:   "cluster [data]",
		Short: "Cluster rows by missingness pattern",
		Long: `Cluster the rows of a data source by their missingness pattern.

Each row is encoded as a 0/1 vector over the columns (1 where the cell is
absent) and the rows are partitioned into --k clusters with seeded k-means.
Rows sharing an absence pattern land in the same cluster.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCluster(rootOpts, cmd, args, opts)
		},
	}

	addSourceFlags(cmd, &opts.src)
	cmd.Flags().IntVar(&opts.k, "k", 0,
		"number of clusters (required, >= 1)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0,
		"random seed for centroid initialisation (0 = fixed default)")
	cmd.Flags().IntVar(&opts.maxIter, "max-iter", kmeans.DefaultMaxIter,
		"iteration cap for the k-means loop")
	_ = cmd.MarkFlagRequired("k")

	return cmd
}

func runCluster(rootOpts *RootOptions, cmd *cobra.Command, args []string, opts *clusterOptions) error {
	formatter := newFormatter(rootOpts, cmd)

	// Range-check the flags before they reach the option constructors,
	// which treat nonsensical values as programmer error and panic.
	if opts.k < 1 {
		return usageError(formatter, fmt.Sprintf("--k must be >= 1, got %d", opts.k))
	}
	if opts.maxIter < 1 {
		return usageError(formatter, fmt.Sprintf("--max-iter must be >= 1, got %d", opts.maxIter))
	}

	tab, err := loadTable(formatter, args, &opts.src)
	if err != nil {
		return err
	}

	assign, err := shadow.Clusters(tab, opts.k,
		shadow.WithSeed(opts.seed), shadow.WithMaxIter(opts.maxIter))
	if err != nil {
		return fail(formatter, ErrCodeCluster,
			WrapExitError(ExitFailure, fmt.Sprintf("clustering into %d groups", opts.k), err))
	}

	report := &ClusterReport{
		K:      opts.k,
		Seed:   opts.seed,
		Assign: assign,
		Sizes:  clusterSizes(assign, opts.k),
	}
	if err := formatter.Success(report); err != nil {
		return WrapExitError(ExitFailure, "writing output", err)
	}
	return nil
}

// clusterSizes tallies the assignment into k buckets. Every cluster id
// appears, including any left empty by the partitioning.
func clusterSizes(assign []int, k int) []ClusterSize {
	counts := make([]int, k)
	for _, id := range assign {
		counts[id]++
	}

	sizes := make([]ClusterSize, k)
	for id, n := range counts {
		sizes[id] = ClusterSize{Cluster: id, NRows: n}
	}
	return sizes
}

// renderText draws the assignment and size tables.
func (r *ClusterReport) renderText(w io.Writer) error {
	kv := []struct{ label, value string }{
		{"k", itoaText(r.K)},
		{"seed", fmt.Sprintf("%d", r.Seed)},
		{"rows", itoaText(len(r.Assign))},
	}
	for _, line := range kv {
		if err := kvLine(w, line.label, line.value); err != nil {
			return err
		}
	}

	assignments := newTextTable("row", "cluster")
	for row, id := range r.Assign {
		assignments.addRow(itoaText(row), itoaText(id))
	}
	if err := writeSection(w, "assignments", assignments); err != nil {
		return err
	}

	sizes := newTextTable("cluster", "n_rows")
	for _, s := range r.Sizes {
		sizes.addRow(itoaText(s.Cluster), itoaText(s.NRows))
	}
	return writeSection(w, "sizes", sizes)
}
