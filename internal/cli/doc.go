// SPDX-License-Identifier: MIT

// Package cli implements the nabular command tree: summary (profile a
// source), shadow (emit the nabular form as csv) and cluster (group rows by
// missingness pattern). Commands share one loader for csv, parquet and
// sqlite sources and one formatter that switches between fixed-width text
// and a json envelope.
//
// The package is internal: the only consumer is cmd/nabular, which maps the
// returned *ExitError to the process exit code.
package cli
