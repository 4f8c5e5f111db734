// SPDX-License-Identifier: MIT
// Package solver_test contains test helpers
//
// Purpose:
//   - Build solvers from literals and compare vectors up to scale and sign.
//   - Provide the residual check ‖A·v − λ·v‖ used by every eigenpair test.

package solver_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rixmatrix/config"
	"github.com/katalvlaran/rixmatrix/matrix"
	"github.com/katalvlaran/rixmatrix/solver"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// rootTol bounds the error of closed-form roots in the concrete cases.
const rootTol = 1e-9

// MustSolver builds a *Solver from a nested literal or fails the test.
func MustSolver(t testing.TB, rows [][]float64, opts ...config.Option) *solver.Solver {
	t.Helper()
	s, err := solver.FromRows(rows, opts...)
	require.NoError(t, err)

	return s
}

// MustMatrix builds a *matrix.Matrix from a nested literal or fails the test.
func MustMatrix(t testing.TB, rows [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// column returns column j of m as a plain slice.
func column(t testing.TB, m *matrix.Matrix, j int) []float64 {
	t.Helper()
	c, err := m.Column(j)
	require.NoError(t, err)

	return c.Data()
}

// requireParallel asserts got and want span the same direction.
func requireParallel(t testing.TB, want, got []float64, tol float64) {
	t.Helper()
	w, err := matrix.FromRows([][]float64{want})
	require.NoError(t, err)
	g, err := matrix.FromRows([][]float64{got})
	require.NoError(t, err)
	require.InDeltaSlice(t, w.Normalized().Data(), g.Normalized().Data(), tol,
		"want direction %v, got %v", want, got)
}

// residual returns ‖A·v − λ·v‖₂.
func residual(t testing.TB, s *solver.Solver, lambda float64, v []float64) float64 {
	t.Helper()
	av, err := s.MulVec(v)
	require.NoError(t, err)
	floats.AddScaled(av, -lambda, v)

	return floats.Norm(av, 2)
}

// requireEigenpairs checks every column of EigenvectorFor(λ) for every eigenvalue.
func requireEigenpairs(t testing.TB, s *solver.Solver) {
	t.Helper()
	vals, err := s.Eigenvalues()
	require.NoError(t, err)
	coarse := s.Options().Coarse()
	for _, lambda := range vals.Data() {
		basis, err := s.EigenvectorFor(lambda)
		require.NoError(t, err)
		require.Positive(t, basis.Cols(), "empty eigenspace for %g", lambda)
		for j := 0; j < basis.Cols(); j++ {
			v, err := basis.Column(j)
			require.NoError(t, err)
			require.LessOrEqual(t, residual(t, s, lambda, v.Normalized().Data()), coarse,
				"λ=%g column %d", lambda, j)
		}
	}
}

// randomSymmetric returns a 3×3 symmetric literal with entries in [-5, 5).
func randomSymmetric(rng *rand.Rand) [][]float64 {
	out := make([][]float64, 3)
	for i := range out {
		out[i] = make([]float64, 3)
	}
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			v := rng.Float64()*10 - 5
			out[i][j], out[j][i] = v, v
		}
	}

	return out
}
