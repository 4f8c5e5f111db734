// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY the sentinels that belong to matrix algebra. Shape,
// index and dimension sentinels live in package array and are returned
// unchanged (wrapped) by matrix operations; match them with errors.Is.
// No algorithm panics on caller-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.
//
// ERROR PRIORITY (enforced by the validators):
// nil -> shape/square -> dimension mismatch -> numeric (singular).

var (
	// ErrNonSquare signals that a square matrix was required but the input wasn't
	// (Determinant, Trace, Inverted, Squared, Cubed, Cofactor).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverted when |det| does not exceed the fine tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
