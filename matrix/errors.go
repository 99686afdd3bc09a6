// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and callers MUST check
// them via errors.Is. No algorithm should panic on user-triggered error
// conditions; panics are reserved for programmer errors in private helpers.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w these sentinels directly when more
// context is available; wrap with fmt.Errorf/errors.Wrapf at the outer
// boundary — callers will still match via errors.Is.

var (
	// ErrBadShape is returned when a requested row/column count is invalid
	// (e.g. a negative column count).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrColumnOverflow signals more than 2^32 columns were requested in a
	// single matrix, per the engine's column-index width contract.
	ErrColumnOverflow = errors.New("matrix: column count exceeds 2^32")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. concatenating rows built against mismatched column arenas.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingularPivot indicates a TOP row was expected to carry a distinct,
	// non-zero pivot on its left-lead column but did not.
	ErrSingularPivot = errors.New("matrix: missing or zero pivot")
)
