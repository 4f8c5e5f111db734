// SPDX-License-Identifier: MIT

// Package matrix - Matrix type, constructors and the delegated Array surface.
//
// Purpose:
//   - Matrix composes an *array.Array and gives Mul the meaning of the matrix
//     product; the coefficient-wise product stays on Array (MulElem).
//   - Everything that keeps its Array meaning (indexing, scalar ops, resize,
//     swaps, equality) is forwarded unchanged.
//   - Values derived from a Matrix (Column, Row, products, inverses, ...)
//     inherit its numeric policy.
//
// Complexity quicksheet:
//   - New/FromRows/Identity: O(r*c); At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/rixmatrix/array"
	"github.com/katalvlaran/rixmatrix/config"
)

// ---------- operation tags ----------

const (
	opNew         = "New"
	opFromRows    = "FromRows"
	opFromArray   = "FromArray"
	opIdentity    = "Identity"
	opAdd         = "Add"
	opSub         = "Sub"
	opColumn      = "Column"
	opRow         = "Row"
	opSetColumn   = "SetColumn"
	opSetRow      = "SetRow"
	opSetAt       = "SetAt"
	opMul         = "Mul"
	opMulVec      = "MulVec"
	opSquared     = "Squared"
	opCubed       = "Cubed"
	opDeterminant = "Determinant"
	opMinor       = "Minor"
	opCofactor    = "Cofactor"
	opAdjoint     = "Adjoint"
	opAdjugate    = "Adjugate"
	opInverted    = "Inverted"
	opTrace       = "Trace"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", tag, err)
}

// Matrix is a rows×cols real matrix backed by an *array.Array.
// The zero value is not usable; build one with New, FromRows, FromArray,
// Identity or Diagonal.
type Matrix struct {
	a *array.Array // owned; never shared with another Matrix
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates a rows×cols zero matrix.
// Errors: array.ErrInvalidDimensions for negative dimensions.
func New(rows, cols int, opts ...config.Option) (*Matrix, error) {
	a, err := array.New(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return &Matrix{a: a}, nil
}

// FromRows builds a Matrix from a nested literal (outer = rows).
// Errors: array.ErrBadShape for ragged input.
func FromRows(rows [][]float64, opts ...config.Option) (*Matrix, error) {
	a, err := array.FromRows(rows, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}

	return &Matrix{a: a}, nil
}

// FromArray wraps a deep copy of a; later changes to a do not leak in.
// The numeric policy of a is kept.
// Errors: array.ErrNilArray.
func FromArray(a *array.Array) (*Matrix, error) {
	if err := array.ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opFromArray, err)
	}

	return &Matrix{a: a.Clone()}, nil
}

// Identity returns the n×n identity matrix.
// Errors: array.ErrInvalidDimensions for negative n.
// Complexity: Time O(n²), Space O(n²).
func Identity(n int, opts ...config.Option) (*Matrix, error) {
	m, err := New(n, n, opts...)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	data := m.a.RawData()
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}

	return m, nil
}

// Diagonal returns the square matrix with values on its main diagonal and
// zeros elsewhere. An empty values slice yields a 0×0 matrix.
func Diagonal(values []float64, opts ...config.Option) *Matrix {
	n := len(values)
	m, _ := New(n, n, opts...) // n >= 0 always
	data := m.a.RawData()
	for i, v := range values {
		data[i*n+i] = v
	}

	return m
}

// alloc returns a zero rows×cols Matrix carrying m's numeric policy.
// Callers guarantee rows, cols >= 0.
func (m *Matrix) alloc(rows, cols int) *Matrix {
	a, _ := array.New(rows, cols, m.a.Options().AsOptions()...)

	return &Matrix{a: a}
}

// wrap adopts an Array produced by this package without copying.
func wrap(a *array.Array) *Matrix { return &Matrix{a: a} }

// ---------- shape & policy ----------

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.a.Rows() }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.a.Cols() }

// Shape returns (rows, cols).
func (m *Matrix) Shape() (rows, cols int) { return m.a.Shape() }

// Len returns rows*cols.
func (m *Matrix) Len() int { return m.a.Len() }

// IsSquare reports whether rows == cols.
func (m *Matrix) IsSquare() bool { return m.a.IsSquare() }

// Options returns the resolved numeric policy.
func (m *Matrix) Options() config.Options { return m.a.Options() }

// SetOptions re-resolves the numeric policy of this matrix from defaults plus opts.
func (m *Matrix) SetOptions(opts ...config.Option) { m.a.SetOptions(opts...) }

// ---------- element access ----------

// At returns the value at (row, col) or array.ErrOutOfRange.
func (m *Matrix) At(row, col int) (float64, error) { return m.a.At(row, col) }

// Set stores v at (row, col) or returns array.ErrOutOfRange.
func (m *Matrix) Set(row, col int, v float64) error { return m.a.Set(row, col, v) }

// AtIndex returns the cell at flat row-major index i.
func (m *Matrix) AtIndex(i int) (float64, error) { return m.a.AtIndex(i) }

// SetIndex stores v at flat row-major index i.
func (m *Matrix) SetIndex(i int, v float64) error { return m.a.SetIndex(i, v) }

// Data returns a copy of the row-major buffer.
func (m *Matrix) Data() []float64 { return m.a.Data() }

// RawData exposes the backing row-major slice (no copy). Writes through it
// can never change the shape.
func (m *Matrix) RawData() []float64 { return m.a.RawData() }

// SetAll assigns v to every cell.
func (m *Matrix) SetAll(v float64) { m.a.SetAll(v) }

// SetAt copies src into m with src's top-left cell at (row, col).
// Errors: ErrNilMatrix, array.ErrOutOfRange.
func (m *Matrix) SetAt(src *Matrix, row, col int) error {
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(opSetAt, err)
	}

	return m.a.SetAt(src.a, row, col)
}

// Do visits each element in row-major order until f returns false.
func (m *Matrix) Do(f func(i, j int, v float64) bool) { m.a.Do(f) }

// Apply replaces each element with f(i,j,v) in place.
func (m *Matrix) Apply(f func(i, j int, v float64) float64) { m.a.Apply(f) }

// ---------- coefficient-wise arithmetic ----------

// Add performs m += other. Errors: ErrNilMatrix, array.ErrDimensionMismatch.
func (m *Matrix) Add(other *Matrix) error {
	if err := ValidateNotNil(other); err != nil {
		return matrixErrorf(opAdd, err)
	}

	return m.a.Add(other.a)
}

// Sub performs m -= other. Errors: ErrNilMatrix, array.ErrDimensionMismatch.
func (m *Matrix) Sub(other *Matrix) error {
	if err := ValidateNotNil(other); err != nil {
		return matrixErrorf(opSub, err)
	}

	return m.a.Sub(other.a)
}

// AddScalar adds v to every cell.
func (m *Matrix) AddScalar(v float64) { m.a.AddScalar(v) }

// SubScalar subtracts v from every cell.
func (m *Matrix) SubScalar(v float64) { m.a.SubScalar(v) }

// MulScalar multiplies every cell by v.
func (m *Matrix) MulScalar(v float64) { m.a.MulScalar(v) }

// DivScalar divides every cell by v (IEEE-754 semantics for v == 0).
func (m *Matrix) DivScalar(v float64) { m.a.DivScalar(v) }

// Equal reports whether shapes match and every cell pair is within Fine.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil {
		return false
	}

	return m.a.Equal(other.a)
}

// EqualWithin is Equal with an explicit absolute tolerance.
func (m *Matrix) EqualWithin(other *Matrix, tol float64) bool {
	if other == nil {
		return false
	}

	return m.a.EqualWithin(other.a, tol)
}

// Contains reports whether any cell lies within tol of value.
func (m *Matrix) Contains(value, tol float64) bool { return m.a.Contains(value, tol) }

// ---------- rows, columns, resize, swaps ----------

// Column returns a fresh rows×1 copy of column col.
func (m *Matrix) Column(col int) (*Matrix, error) {
	c, err := m.a.Column(col)
	if err != nil {
		return nil, matrixErrorf(opColumn, err)
	}

	return wrap(c), nil
}

// Row returns a fresh 1×cols copy of row r.
func (m *Matrix) Row(row int) (*Matrix, error) {
	r, err := m.a.Row(row)
	if err != nil {
		return nil, matrixErrorf(opRow, err)
	}

	return wrap(r), nil
}

// SetColumn overwrites column col with the cells of vec (length rows).
// Errors: ErrNilMatrix, array.ErrOutOfRange, array.ErrDimensionMismatch.
func (m *Matrix) SetColumn(col int, vec *Matrix) error {
	if err := ValidateNotNil(vec); err != nil {
		return matrixErrorf(opSetColumn, err)
	}

	return m.a.SetColumn(col, vec.a)
}

// SetColumnScalar broadcasts v into column col.
func (m *Matrix) SetColumnScalar(col int, v float64) error { return m.a.SetColumnScalar(col, v) }

// SetRow overwrites row r with the cells of vec (length cols).
// Errors: ErrNilMatrix, array.ErrOutOfRange, array.ErrDimensionMismatch.
func (m *Matrix) SetRow(row int, vec *Matrix) error {
	if err := ValidateNotNil(vec); err != nil {
		return matrixErrorf(opSetRow, err)
	}

	return m.a.SetRow(row, vec.a)
}

// SetRowScalar broadcasts v into row r.
func (m *Matrix) SetRowScalar(row int, v float64) error { return m.a.SetRowScalar(row, v) }

// SetColumnCount resizes the column dimension, preserving the overlap.
func (m *Matrix) SetColumnCount(cols int) error { return m.a.SetColumnCount(cols) }

// SetRowCount resizes the row dimension, preserving the overlap.
func (m *Matrix) SetRowCount(rows int) error { return m.a.SetRowCount(rows) }

// SwapRows exchanges two rows in place.
func (m *Matrix) SwapRows(r1, r2 int) error { return m.a.SwapRows(r1, r2) }

// SwapColumns exchanges two columns in place.
func (m *Matrix) SwapColumns(c1, c2 int) error { return m.a.SwapColumns(c1, c2) }

// ---------- copies ----------

// Clone returns a deep copy with the same numeric policy.
func (m *Matrix) Clone() *Matrix { return wrap(m.a.Clone()) }

// ToArray returns a deep copy of the underlying values as a plain Array, on
// which Mul no longer means the matrix product.
func (m *Matrix) ToArray() *array.Array { return m.a.Clone() }

// String renders one bracketed line per row.
func (m *Matrix) String() string { return m.a.String() }
