// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for the guards shared by matrix algebra
//     and the solver layer.
//   - Return wrapped sentinels so call sites can add their own operation tag.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/rixmatrix/array"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and Rows == Cols.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(1).
func ValidateSquare(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if !m.a.IsSquare() {
		return validatorErrorf(fmt.Sprintf("ValidateSquare(%dx%d)", m.a.Rows(), m.a.Cols()), ErrNonSquare)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal dimensions.
// Errors: ErrNilMatrix, array.ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}

	return array.ValidateSameShape(a.a, b.a)
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, array.ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.a.Cols() != b.a.Rows() {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible(%dx%d · %dx%d)", a.a.Rows(), a.a.Cols(), b.a.Rows(), b.a.Cols()),
			array.ErrDimensionMismatch,
		)
	}

	return nil
}
