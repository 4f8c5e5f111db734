// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the matrix tests.
//   - Keep all data finite and well-conditioned so tolerance checks stay tight.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rixmatrix/config"
	"github.com/katalvlaran/rixmatrix/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// looseTol is used where a result is compared against an independent oracle.
const looseTol = 1e-9

// MustFromRows builds a *Matrix from a nested literal or fails the test.
func MustFromRows(t testing.TB, rows [][]float64, opts ...config.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// MustMatrix ALLOCATES an r×c zero *Matrix or fails the test.
func MustMatrix(t testing.TB, r, c int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(r, c)
	require.NoError(t, err)

	return m
}

// randomSquare fills an n×n matrix with values in [-5, 5) from a seeded source.
func randomSquare(t testing.TB, rng *rand.Rand, n int) *matrix.Matrix {
	t.Helper()
	m := MustMatrix(t, n, n)
	m.Apply(func(_, _ int, _ float64) float64 { return rng.Float64()*10 - 5 })

	return m
}

// toDense copies a Matrix into a gonum *mat.Dense for oracle comparisons.
func toDense(m *matrix.Matrix) *mat.Dense {
	r, c := m.Shape()

	return mat.NewDense(r, c, m.Data())
}

// assertDenseClose checks m against the oracle d within tol, reporting every
// mismatching cell rather than stopping at the first.
func assertDenseClose(t *testing.T, d mat.Matrix, m *matrix.Matrix, tol float64) {
	t.Helper()
	r, c := d.Dims()
	require.Equal(t, r, m.Rows())
	require.Equal(t, c, m.Cols())
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			got, err := m.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, d.At(i, j), got, tol, "cell (%d,%d)", i, j)
		}
	}
}
