// SPDX-License-Identifier: MIT
// Package shadow: sentinel error set (unified, consistent).
// This file defines ONLY the sentinels specific to shadow encoding; structural
// failures (nil tables, unknown columns, kind or length mismatches) reuse the
// frame sentinels so callers match one error per condition, never two.

package shadow

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "shadow: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNameCollision indicates that a source column name plus Suffix equals
	// the name of another source column, so the combined table cannot hold
	// both without ambiguity.
	ErrNameCollision = errors.New("shadow: shadow column name collides with a source column")

	// ErrShadowImmutable indicates an attempt to replace a shadow column after
	// binding. Shadow columns record where values WERE missing; imputation
	// rewrites base values only.
	ErrShadowImmutable = errors.New("shadow: shadow columns cannot be replaced once bound")
)
