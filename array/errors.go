// SPDX-License-Identifier: MIT
// Package array: sentinel error set.
// This file defines ONLY package-level sentinel errors used by array and
// re-used by the matrix and solver layers. Algorithms return these sentinels
// (wrapped with an operation tag) and tests check them via errors.Is.
// No algorithm panics on caller-triggered error conditions.

package array

import "errors"

// Every message is prefixed with "array: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) when
// context is essential; callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative.
	// Zero-sized shapes (0×0, N×0, 0×N) are legal.
	ErrInvalidDimensions = errors.New("array: dimensions must be >= 0")

	// ErrBadShape is returned when a nested literal is ragged.
	ErrBadShape = errors.New("array: invalid shape")

	// ErrOutOfRange indicates that an index (row, column or flat cell) is
	// outside valid bounds. Public indexers return this, never panic.
	ErrOutOfRange = errors.New("array: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. coefficient-wise Add of different shapes or a vector of the wrong
	// length handed to SetColumn.
	ErrDimensionMismatch = errors.New("array: dimension mismatch")

	// ErrNilArray indicates that a nil *Array (receiver or argument) was used.
	ErrNilArray = errors.New("array: nil array")
)
