// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Provide a single source of truth for the shape checks shared by the
//     array, matrix and solver layers.
//   - Return wrapped sentinels so call sites can add their own operation tag.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil → Shape).

package array

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the array reference is non-nil.
// Returns ErrNilArray if a == nil. Complexity: O(1).
func ValidateNotNil(a *Array) error {
	if a == nil {
		return validatorErrorf("ValidateNotNil", ErrNilArray)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal dimensions.
// Errors: ErrNilArray, ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape(a, b *Array) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures a vector handed to a row/column setter has length n.
// Errors: ErrNilArray (nil vector), ErrDimensionMismatch. Complexity: O(1).
func ValidateVecLen(v *Array, n int) error {
	if v == nil {
		return validatorErrorf("ValidateVecLen", ErrNilArray)
	}
	if len(v.data) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRow ensures 0 ≤ row < a.Rows(). Complexity: O(1).
func ValidateRow(a *Array, row int) error {
	if row < 0 || row >= a.r {
		return validatorErrorf(fmt.Sprintf("ValidateRow(%d)", row), ErrOutOfRange)
	}

	return nil
}

// ValidateColumn ensures 0 ≤ col < a.Cols(). Complexity: O(1).
func ValidateColumn(a *Array, col int) error {
	if col < 0 || col >= a.c {
		return validatorErrorf(fmt.Sprintf("ValidateColumn(%d)", col), ErrOutOfRange)
	}

	return nil
}
