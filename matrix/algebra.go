// SPDX-License-Identifier: MIT
// Package matrix - matrix product, determinant family, inverse, trace,
// transpose and normalization.
//
// Purpose:
//   - Closed-form kernels sized for the 0..3 dimension range the eigen-solver
//     works in; the recursive Laplace expansion is O(n!) and is not meant for
//     large inputs.
//   - Every method validates shape first and returns wrapped sentinels.
//
// Determinism:
//   - Fixed loop orders (i→k→j for the product, row 0 for the Laplace expansion).

package matrix

import (
	"github.com/katalvlaran/rixmatrix/array"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Mul replaces m with the matrix product m × other.
// Implementation:
//   - Stage 1: ValidateMulCompatible(m, other).
//   - Stage 2: accumulate into one fresh r×c' buffer (i→k→j), then adopt it.
//
// Behavior highlights:
//   - The receiver keeps its numeric policy; its shape becomes Rows(m)×Cols(other).
//   - m.Mul(m) is safe: the product is built before the receiver changes.
//
// Errors:
//   - ErrNilMatrix, array.ErrDimensionMismatch (receiver left untouched).
//
// Complexity:
//   - Time O(r*n*c'), Space O(r*c').
func (m *Matrix) Mul(other *Matrix) error {
	if err := ValidateMulCompatible(m, other); err != nil {
		return matrixErrorf(opMul, err)
	}
	m.a = product(m, other).a

	return nil
}

// Product returns a fresh a × b; inputs are not mutated. The result carries
// a's numeric policy.
// Errors: ErrNilMatrix, array.ErrDimensionMismatch.
func Product(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return product(a, b), nil
}

// product is the unchecked row-major kernel behind Mul and Product.
func product(a, b *Matrix) *Matrix {
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := a.alloc(aRows, bCols)
	ad, bd, rd := a.a.RawData(), b.a.RawData(), res.a.RawData()

	var (
		i, k, j                          int
		av                               float64
		rowOffsetA, rowOffsetB, rowOffsR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsR = i * bCols
		for k = 0; k < aCols; k++ {
			av = ad[rowOffsetA+k]
			if av == 0 {
				continue // skip zero
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				rd[rowOffsR+j] += av * bd[rowOffsetB+j]
			}
		}
	}

	return res
}

// MulVec returns m × x for a vector x of length Cols(m).
// Errors: array.ErrDimensionMismatch. Complexity: O(r*c).
func (m *Matrix) MulVec(x []float64) ([]float64, error) {
	rows, cols := m.Shape()
	if len(x) != cols {
		return nil, matrixErrorf(opMulVec, validatorErrorf("ValidateVecLen", array.ErrDimensionMismatch))
	}
	data := m.a.RawData()
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = floats.Dot(data[i*cols:(i+1)*cols], x)
	}

	return out, nil
}

// Squared returns m × m. Errors: ErrNonSquare.
func (m *Matrix) Squared() (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSquared, err)
	}

	return product(m, m), nil
}

// Cubed returns m × m × m. Errors: ErrNonSquare.
func (m *Matrix) Cubed() (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCubed, err)
	}

	return product(product(m, m), m), nil
}

// Trace returns the sum of the main diagonal. Errors: ErrNonSquare.
func (m *Matrix) Trace() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	n := m.Rows()
	data := m.a.RawData()
	var sum float64
	for i := 0; i < n; i++ {
		sum += data[i*n+i]
	}

	return sum, nil
}

// Transposed returns a new matrix with rows and columns swapped (mᵀ).
// Transposing twice reproduces m bit for bit.
func (m *Matrix) Transposed() *Matrix { return wrap(m.a.Transposed()) }

// Determinant returns det(m).
// Implementation:
//   - 0×0 → 1 (empty product), 1×1 → the entry, 2×2 → ad − bc.
//   - n ≥ 3 → Laplace expansion along row 0, skipping zero entries.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - O(1) for n ≤ 2; O(n!) in general (n = 3 costs three 2×2 minors).
func (m *Matrix) Determinant() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return m.det(), nil
}

// det is the unchecked determinant kernel; m must be square.
func (m *Matrix) det() float64 {
	n := m.Rows()
	d := m.a.RawData()
	switch n {
	case 0:
		return 1
	case 1:
		return d[0]
	case 2:
		return d[0]*d[3] - d[1]*d[2]
	}

	var sum float64
	sign := 1.0
	for j := 0; j < n; j++ {
		if d[j] != 0 {
			sum += sign * d[j] * m.minor(0, j).det()
		}
		sign = -sign
	}

	return sum
}

// Minor returns the (r−1)×(c−1) sub-matrix obtained by deleting row and col.
// Errors: array.ErrOutOfRange. Complexity: O(r*c).
func (m *Matrix) Minor(row, col int) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := m.checkCell(row, col); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return m.minor(row, col), nil
}

// minor is the unchecked kernel behind Minor.
func (m *Matrix) minor(row, col int) *Matrix {
	rows, cols := m.Shape()
	res := m.alloc(rows-1, cols-1)
	src, dst := m.a.RawData(), res.a.RawData()
	k := 0
	for i := 0; i < rows; i++ {
		if i == row {
			continue
		}
		for j := 0; j < cols; j++ {
			if j == col {
				continue
			}
			dst[k] = src[i*cols+j]
			k++
		}
	}

	return res
}

// Cofactor returns det(Minor(row,col)) · (−1)^(row+col).
// Errors: ErrNonSquare, array.ErrOutOfRange.
func (m *Matrix) Cofactor(row, col int) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if err := m.checkCell(row, col); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	return m.cofactor(row, col), nil
}

func (m *Matrix) cofactor(row, col int) float64 {
	c := m.minor(row, col).det()
	if (row+col)%2 == 1 {
		return -c
	}

	return c
}

// Adjoint returns the cofactor matrix C with C[i][j] = Cofactor(i, j).
// Errors: ErrNonSquare. Complexity: O(n² · cost(det of (n−1)×(n−1))).
func (m *Matrix) Adjoint() (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}

	return m.adjoint(), nil
}

func (m *Matrix) adjoint() *Matrix {
	n := m.Rows()
	res := m.alloc(n, n)
	data := res.a.RawData()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data[i*n+j] = m.cofactor(i, j)
		}
	}

	return res
}

// Adjugate returns the transpose of the cofactor matrix.
// Errors: ErrNonSquare.
func (m *Matrix) Adjugate() (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return m.adjoint().Transposed(), nil
}

// IsInvertible reports whether m is square and |det(m)| exceeds the fine tolerance.
func (m *Matrix) IsInvertible() bool {
	if m == nil || !m.IsSquare() {
		return false
	}

	return !scalar.EqualWithinAbs(m.det(), 0, m.Options().Fine())
}

// Inverted returns m⁻¹ = Adjugate(m) / Determinant(m).
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: det; |det| ≤ Fine → ErrSingular.
//   - Stage 3: adjugate scaled by 1/det.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Dominated by the adjugate: n² cofactors of size n−1.
func (m *Matrix) Inverted() (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverted, err)
	}
	d := m.det()
	if scalar.EqualWithinAbs(d, 0, m.Options().Fine()) {
		return nil, matrixErrorf(opInverted, ErrSingular)
	}
	res := m.adjoint().Transposed()
	res.DivScalar(d)

	return res, nil
}

// Normalized returns a copy scaled to unit L2 norm over all cells.
// Behavior highlights:
//   - If the norm is below the fine tolerance the copy is returned unscaled.
//   - Canonical sign: the first cell whose magnitude exceeds Fine is made
//     positive, so v and −v normalize to the same vector.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix) Normalized() *Matrix {
	res := m.Clone()
	data := res.a.RawData()
	fine := m.Options().Fine()
	norm := floats.Norm(data, 2)
	if norm < fine {
		return res
	}
	for _, v := range data {
		if scalar.EqualWithinAbs(v, 0, fine) {
			continue
		}
		if v < 0 {
			norm = -norm
		}
		break
	}
	floats.Scale(1/norm, data)

	return res
}

// checkCell validates 0 ≤ row < Rows and 0 ≤ col < Cols.
func (m *Matrix) checkCell(row, col int) error {
	if err := array.ValidateRow(m.a, row); err != nil {
		return err
	}

	return array.ValidateColumn(m.a, col)
}
