// SPDX-License-Identifier: MIT

// Package cli - shared source resolution for summary, shadow and cluster.
//
// Purpose:
//   - Every command reads the same kinds of sources: a .csv file (with an
//     optional yaml schema), a .parquet file, or a sqlite database paired
//     with a query. loadTable resolves the positional argument and source
//     flags into one frame.Table and reports failures itself, so command
//     bodies stay linear.
//
// AI-Hints:
//   - Unreadable or unparseable sources are invocation problems (ExitUsage),
//     matching the exit-code contract: 1 is reserved for operations that
//     fail on a table that did load.

package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nabular/frame"
	"github.com/katalvlaran/nabular/ingest"

	// Register the sqlite3 driver for --sqlite sources. The binary and the
	// package tests both link it through this import.
	_ "github.com/mattn/go-sqlite3"
)

// sourceOptions collects the flags that pick and parameterise the input.
type sourceOptions struct {
	schemaPath string // --schema, csv only
	dsn        string // --sqlite
	query      string // --query, required with --sqlite
}

// addSourceFlags registers the shared input flags on a command.
func addSourceFlags(cmd *cobra.Command, src *sourceOptions) {
	cmd.Flags().StringVar(&src.schemaPath, "schema", "",
		"yaml column schema for csv input")
	cmd.Flags().StringVar(&src.dsn, "sqlite", "",
		"read from a sqlite database instead of a file")
	cmd.Flags().StringVar(&src.query, "query", "",
		"sql query to run against the --sqlite database")
}

// loadTable resolves args and src into a table. On failure the error has
// already been reported through f; callers return it unchanged.
func loadTable(f *OutputFormatter, args []string, src *sourceOptions) (*frame.Table, error) {
	var (
		tab *frame.Table
		err error
	)

	if src.dsn != "" {
		if len(args) > 0 {
			return nil, usageError(f, "pass either a data file or --sqlite, not both")
		}
		if src.query == "" {
			return nil, usageError(f, "--sqlite requires --query")
		}
		if src.schemaPath != "" {
			return nil, usageError(f, "--schema applies to csv input only")
		}
		tab, err = loadSQLite(f, src.dsn, src.query)
	} else {
		if len(args) == 0 {
			return nil, usageError(f, "expected a data file argument (or --sqlite)")
		}
		if src.query != "" {
			return nil, usageError(f, "--query requires --sqlite")
		}
		tab, err = loadFile(f, args[0], src.schemaPath)
	}
	if err != nil {
		return nil, err
	}

	f.VerboseLog("loaded %d rows × %d columns", tab.Rows(), tab.Cols())
	return tab, nil
}

// loadFile dispatches on the file extension: .csv (optionally schema-driven)
// or .parquet.
func loadFile(f *OutputFormatter, path, schemaPath string) (*frame.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(f, path, schemaPath)
	case ".parquet":
		if schemaPath != "" {
			return nil, usageError(f, "--schema applies to csv input only")
		}
		f.VerboseLog("reading parquet %s", path)
		tab, err := ingest.ReadParquet(path)
		if err != nil {
			return nil, loadError(f, fmt.Sprintf("reading %s", path), err)
		}
		return tab, nil
	default:
		return nil, usageError(f,
			fmt.Sprintf("unknown input format %q (expected .csv or .parquet)", filepath.Ext(path)))
	}
}

// loadCSV reads a csv file, steered by the yaml schema when one was given.
func loadCSV(f *OutputFormatter, path, schemaPath string) (*frame.Table, error) {
	var schema *ingest.Schema
	if schemaPath != "" {
		var err error
		schema, err = ingest.LoadSchema(schemaPath)
		if err != nil {
			return nil, loadError(f, fmt.Sprintf("reading schema %s", schemaPath), err)
		}
		f.VerboseLog("schema %s: %d columns", schemaPath, len(schema.Columns))
	}

	f.VerboseLog("reading csv %s", path)
	file, err := os.Open(path)
	if err != nil {
		return nil, loadError(f, fmt.Sprintf("opening %s", path), err)
	}
	defer file.Close()

	tab, err := ingest.ReadCSV(file, schema)
	if err != nil {
		return nil, loadError(f, fmt.Sprintf("reading %s", path), err)
	}
	return tab, nil
}

// loadSQLite runs one query against a sqlite database and lifts the result
// set into a table.
func loadSQLite(f *OutputFormatter, dsn, query string) (*frame.Table, error) {
	f.VerboseLog("querying sqlite %s", dsn)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, loadError(f, fmt.Sprintf("opening %s", dsn), err)
	}
	defer db.Close()

	tab, err := ingest.ReadSQL(context.Background(), db, query)
	if err != nil {
		return nil, loadError(f, fmt.Sprintf("querying %s", dsn), err)
	}
	return tab, nil
}

// usageError reports an invocation mistake and returns the typed error.
func usageError(f *OutputFormatter, message string) error {
	return fail(f, ErrCodeUsage, NewExitError(ExitUsage, message))
}

// loadError reports an unreadable or unparseable source and returns the
// typed error.
func loadError(f *OutputFormatter, message string, err error) error {
	return fail(f, ErrCodeLoad, WrapExitError(ExitUsage, message, err))
}
