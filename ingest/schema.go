// SPDX-License-Identifier: MIT

// Package ingest - YAML schema sidecar.
//
// Purpose:
//   - Describe how raw columns map onto frame kinds and which markers mean
//     "missing", so text sources stay declarative instead of sprouting
//     per-file parsing code.
//   - Validate eagerly: a schema either loads completely or not at all, with
//     one sentinel per defect class.

package ingest

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nabular/frame"
)

// Schema kind labels as written in YAML documents.
const (
	KindNumber = "number"
	KindString = "string"
	KindTime   = "time"
)

// DefaultTimeLayout parses time cells when a column declares no layout.
const DefaultTimeLayout = time.RFC3339

// DefaultMissingMarkers are always treated as ABSENT in text sources;
// per-column markers extend this set, they never replace it.
func DefaultMissingMarkers() []string { return []string{"", "NA"} }

// ColumnSpec declares one column of a text source.
type ColumnSpec struct {
	// Name is the header label, matched after NFC normalization.
	Name string `yaml:"name"`

	// Kind is one of "number", "string", "time".
	Kind string `yaml:"kind"`

	// Missing lists extra markers meaning ABSENT, on top of the defaults.
	Missing []string `yaml:"missing,omitempty"`

	// Layout is the time layout for Kind "time"; DefaultTimeLayout when
	// empty. Ignored for other kinds.
	Layout string `yaml:"layout,omitempty"`
}

// Schema is the sidecar document: an ordered list of column declarations.
// Order matters; the assembled table follows it, not the source order.
type Schema struct {
	Columns []ColumnSpec `yaml:"columns"`
}

// ParseSchema decodes and validates a YAML schema document. Unknown fields
// are rejected, so typos fail loudly instead of silently dropping markers.
//
// Errors: ErrSchemaEmpty, ErrSchemaName, ErrSchemaKind, ErrSchemaDuplicate.
func ParseSchema(data []byte) (*Schema, error) {
	var s Schema
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("ingest.ParseSchema: %w", err)
	}

	if err := validateSchema(&s); err != nil {
		return nil, fmt.Errorf("ingest.ParseSchema: %w", err)
	}
	return &s, nil
}

// LoadSchema reads a schema document from disk.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ingest.LoadSchema(%q): %w", path, err)
	}

	s, err := ParseSchema(data)
	if err != nil {
		return nil, fmt.Errorf("ingest.LoadSchema(%q): %w", path, err)
	}
	return s, nil
}

// validateSchema enforces the structural rules shared by every reader.
func validateSchema(s *Schema) error {
	if len(s.Columns) == 0 {
		return ErrSchemaEmpty
	}

	seen := make(map[string]struct{}, len(s.Columns))
	var (
		i    int
		spec ColumnSpec
	)
	for i, spec = range s.Columns {
		if spec.Name == "" {
			return fmt.Errorf("column %d: %w", i, ErrSchemaName)
		}
		if _, dup := seen[spec.Name]; dup {
			return fmt.Errorf("column %q: %w", spec.Name, ErrSchemaDuplicate)
		}
		seen[spec.Name] = struct{}{}
		if _, err := spec.frameKind(); err != nil {
			return fmt.Errorf("column %q: %w", spec.Name, err)
		}
	}
	return nil
}

// frameKind resolves the YAML kind label into the frame enum.
func (c ColumnSpec) frameKind() (frame.Kind, error) {
	switch c.Kind {
	case KindNumber:
		return frame.Number, nil
	case KindString:
		return frame.String, nil
	case KindTime:
		return frame.Time, nil
	default:
		return 0, fmt.Errorf("kind %q: %w", c.Kind, ErrSchemaKind)
	}
}

// layout returns the effective time layout of the column.
func (c ColumnSpec) layout() string {
	if c.Layout == "" {
		return DefaultTimeLayout
	}
	return c.Layout
}
