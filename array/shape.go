// SPDX-License-Identifier: MIT
// Package array - row/column extraction, broadcast setters, resize, swaps, transpose.
//
// Purpose:
//   - Extraction (Row, Column, Transposed) always returns fresh copies.
//   - Setters and swaps mutate in place and never reallocate.
//   - Resize (SetColumnCount, SetRowCount) is the only reallocation point:
//     the overlapping sub-rectangle is preserved, the rest truncated or zero-filled.

package array

import "fmt"

// Column returns a fresh rows×1 copy of column col.
// Errors: ErrOutOfRange. Complexity: O(r).
func (a *Array) Column(col int) (*Array, error) {
	if err := ValidateColumn(a, col); err != nil {
		return nil, opErrorf("Column", err)
	}
	res := newWithOptions(a.r, 1, a.opts)
	for i := 0; i < a.r; i++ {
		res.data[i] = a.data[i*a.c+col]
	}

	return res, nil
}

// Row returns a fresh 1×cols copy of row r.
// Errors: ErrOutOfRange. Complexity: O(c).
func (a *Array) Row(row int) (*Array, error) {
	if err := ValidateRow(a, row); err != nil {
		return nil, opErrorf("Row", err)
	}
	res := newWithOptions(1, a.c, a.opts)
	copy(res.data, a.data[row*a.c:(row+1)*a.c])

	return res, nil
}

// SetColumn overwrites column col with the cells of vec, read in row-major
// order (a rows×1 or 1×rows array both qualify).
// Errors: ErrOutOfRange, ErrNilArray, ErrDimensionMismatch (len(vec) != rows).
func (a *Array) SetColumn(col int, vec *Array) error {
	if err := ValidateColumn(a, col); err != nil {
		return opErrorf("SetColumn", err)
	}
	if err := ValidateVecLen(vec, a.r); err != nil {
		return opErrorf("SetColumn", err)
	}
	for i := 0; i < a.r; i++ {
		a.data[i*a.c+col] = vec.data[i]
	}

	return nil
}

// SetColumnScalar broadcasts v into every cell of column col.
// Errors: ErrOutOfRange.
func (a *Array) SetColumnScalar(col int, v float64) error {
	if err := ValidateColumn(a, col); err != nil {
		return opErrorf("SetColumnScalar", err)
	}
	for i := 0; i < a.r; i++ {
		a.data[i*a.c+col] = v
	}

	return nil
}

// SetRow overwrites row r with the cells of vec, read in row-major order.
// Errors: ErrOutOfRange, ErrNilArray, ErrDimensionMismatch (len(vec) != cols).
func (a *Array) SetRow(row int, vec *Array) error {
	if err := ValidateRow(a, row); err != nil {
		return opErrorf("SetRow", err)
	}
	if err := ValidateVecLen(vec, a.c); err != nil {
		return opErrorf("SetRow", err)
	}
	copy(a.data[row*a.c:(row+1)*a.c], vec.data)

	return nil
}

// SetRowScalar broadcasts v into every cell of row r.
// Errors: ErrOutOfRange.
func (a *Array) SetRowScalar(row int, v float64) error {
	if err := ValidateRow(a, row); err != nil {
		return opErrorf("SetRowScalar", err)
	}
	base := row * a.c
	for j := 0; j < a.c; j++ {
		a.data[base+j] = v
	}

	return nil
}

// SetColumnCount resizes the column dimension to cols.
// Implementation:
//   - Stage 1: no-op when cols is unchanged.
//   - Stage 2: allocate one fresh rows×cols buffer; copy the overlapping
//     min(old,new) columns of every row; the remainder stays zero.
//
// Errors:
//   - ErrInvalidDimensions for negative cols.
//
// Complexity:
//   - Time O(r*cols), Space O(r*cols).
func (a *Array) SetColumnCount(cols int) error {
	if cols < 0 {
		return fmt.Errorf("SetColumnCount(%d): %w", cols, ErrInvalidDimensions)
	}
	if cols == a.c {
		return nil
	}
	keep := min(a.c, cols)
	buf := make([]float64, a.r*cols)
	for i := 0; i < a.r; i++ {
		copy(buf[i*cols:i*cols+keep], a.data[i*a.c:i*a.c+keep])
	}
	a.data, a.c = buf, cols

	return nil
}

// SetRowCount resizes the row dimension to rows, preserving the leading
// min(old,new) rows and zero-filling any new ones.
// Errors: ErrInvalidDimensions for negative rows.
// Complexity: Time O(rows*c), Space O(rows*c).
func (a *Array) SetRowCount(rows int) error {
	if rows < 0 {
		return fmt.Errorf("SetRowCount(%d): %w", rows, ErrInvalidDimensions)
	}
	if rows == a.r {
		return nil
	}
	buf := make([]float64, rows*a.c)
	copy(buf, a.data[:min(a.r, rows)*a.c]) // row-major: leading rows are a prefix
	a.data, a.r = buf, rows

	return nil
}

// SwapRows exchanges rows r1 and r2 in place; no-op when r1 == r2.
// Errors: ErrOutOfRange.
func (a *Array) SwapRows(r1, r2 int) error {
	if err := ValidateRow(a, r1); err != nil {
		return opErrorf("SwapRows", err)
	}
	if err := ValidateRow(a, r2); err != nil {
		return opErrorf("SwapRows", err)
	}
	if r1 == r2 {
		return nil
	}
	b1, b2 := r1*a.c, r2*a.c
	for j := 0; j < a.c; j++ {
		a.data[b1+j], a.data[b2+j] = a.data[b2+j], a.data[b1+j]
	}

	return nil
}

// SwapColumns exchanges columns c1 and c2 in place; no-op when c1 == c2.
// Errors: ErrOutOfRange.
func (a *Array) SwapColumns(c1, c2 int) error {
	if err := ValidateColumn(a, c1); err != nil {
		return opErrorf("SwapColumns", err)
	}
	if err := ValidateColumn(a, c2); err != nil {
		return opErrorf("SwapColumns", err)
	}
	if c1 == c2 {
		return nil
	}
	var base int
	for i := 0; i < a.r; i++ {
		base = i * a.c
		a.data[base+c1], a.data[base+c2] = a.data[base+c2], a.data[base+c1]
	}

	return nil
}

// Transposed returns a new Array with rows and columns swapped (aᵀ).
// The receiver is never mutated.
// Complexity: Time O(r*c), Space O(r*c).
func (a *Array) Transposed() *Array {
	res := newWithOptions(a.c, a.r, a.opts) // dims flipped
	// data[i*c + j] → res.data[j*r + i]
	var i, j, baseSrc int
	for i = 0; i < a.r; i++ {
		baseSrc = i * a.c
		for j = 0; j < a.c; j++ {
			res.data[j*a.r+i] = a.data[baseSrc+j]
		}
	}

	return res
}
