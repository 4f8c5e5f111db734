// SPDX-License-Identifier: MIT
package solver_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rixmatrix/config"
	"github.com/katalvlaran/rixmatrix/matrix"
	"github.com/katalvlaran/rixmatrix/solver"
)

// EigenSuite exercises eigenvalues and eigenvectors on closed-form cases.
type EigenSuite struct {
	suite.Suite
}

// TestEigenvaluesConcrete pins the roots (and their order) for each branch.
func (s *EigenSuite) TestEigenvaluesConcrete() {
	cases := []struct {
		name string
		rows [][]float64
		want []float64
	}{
		{"scalar", [][]float64{{7}}, []float64{7}},
		{"quadratic", [][]float64{{6, -1}, {2, 3}}, []float64{5, 4}},
		{"threeReal", [][]float64{{-2, -4, 2}, {-2, 1, 2}, {4, 2, 5}}, []float64{6, -5, 3}},
		{"repeatedDiagonal", [][]float64{{1, 0, 0}, {0, 0, 0}, {0, 0, 1}}, []float64{0, 1}},
		{"repeatedDefective", [][]float64{{2, 0, 0}, {1, 2, 1}, {-1, 0, 1}}, []float64{1, 2}},
		{"tripleZero", [][]float64{{0, 0, 1}, {0, 0, -1}, {1, 1, 0}}, []float64{0}},
		{"oneReal", [][]float64{
			{33.0 / 29, -23.0 / 29, 9.0 / 29},
			{22.0 / 29, 33.0 / 29, -23.0 / 29},
			{19.0 / 29, 14.0 / 29, 50.0 / 29},
		}, []float64{2}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			vals, err := MustSolver(s.T(), tc.rows).Eigenvalues()
			require.NoError(s.T(), err)
			require.Equal(s.T(), len(tc.want), vals.Rows())
			require.Equal(s.T(), 1, vals.Cols())
			require.InDeltaSlice(s.T(), tc.want, vals.Data(), rootTol)
		})
	}
}

// TestEigenvaluesEmpty covers the 0×0 input and complex 2×2 roots.
func (s *EigenSuite) TestEigenvaluesEmpty() {
	empty, err := solver.New(0, 0)
	require.NoError(s.T(), err)
	vals, err := empty.Eigenvalues()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, vals.Rows())
	require.Equal(s.T(), 0, vals.Cols())

	vals, err = MustSolver(s.T(), [][]float64{{0, 1}, {-1, 0}}).Eigenvalues()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, vals.Rows())
	require.Equal(s.T(), 0, vals.Cols())
}

// TestPreconditions checks non-square and oversize inputs on every eigen entry point.
func (s *EigenSuite) TestPreconditions() {
	rect := MustSolver(s.T(), [][]float64{{1, 2, 3}, {4, 5, 6}})
	big, err := solver.New(4, 4)
	require.NoError(s.T(), err)

	_, err = rect.Eigenvalues()
	require.ErrorIs(s.T(), err, matrix.ErrNonSquare)
	_, err = rect.EigenvectorFor(1)
	require.ErrorIs(s.T(), err, matrix.ErrNonSquare)
	_, err = rect.Eigenvectors()
	require.ErrorIs(s.T(), err, matrix.ErrNonSquare)

	_, err = big.Eigenvalues()
	require.ErrorIs(s.T(), err, solver.ErrTooLarge)
	_, err = big.EigenvectorFor(0)
	require.ErrorIs(s.T(), err, solver.ErrTooLarge)
	_, err = big.Eigenvectors()
	require.ErrorIs(s.T(), err, solver.ErrTooLarge)

	_, err = solver.FromMatrix(nil)
	require.ErrorIs(s.T(), err, matrix.ErrNilMatrix)
}

// TestEigenvectorForThreeReal recovers each known direction of the 3×3 case.
func (s *EigenSuite) TestEigenvectorForThreeReal() {
	sv := MustSolver(s.T(), [][]float64{{-2, -4, 2}, {-2, 1, 2}, {4, 2, 5}})
	want := map[float64][]float64{
		3:  {-2, 3, 1},
		-5: {-2, -1, 1},
		6:  {1, 6, 16},
	}
	vals, err := sv.Eigenvalues()
	require.NoError(s.T(), err)
	for _, lambda := range vals.Data() {
		key := math.Round(lambda)
		basis, err := sv.EigenvectorFor(lambda)
		require.NoError(s.T(), err)
		require.Equal(s.T(), 1, basis.Cols(), "λ=%g", lambda)
		requireParallel(s.T(), want[key], column(s.T(), basis, 0), 1e-6)
	}
}

// TestEigenvectorForDiagonal covers a two-dimensional eigenspace.
func (s *EigenSuite) TestEigenvectorForDiagonal() {
	sv := MustSolver(s.T(), [][]float64{{1, 0, 0}, {0, 0, 0}, {0, 0, 1}})

	one, err := sv.EigenvectorFor(1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, one.Rows())
	require.Equal(s.T(), 2, one.Cols())
	require.InDeltaSlice(s.T(), []float64{1, 0, 0}, column(s.T(), one, 0), 1e-12)
	require.InDeltaSlice(s.T(), []float64{0, 0, 1}, column(s.T(), one, 1), 1e-12)

	zero, err := sv.EigenvectorFor(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, zero.Cols())
	require.InDeltaSlice(s.T(), []float64{0, 1, 0}, column(s.T(), zero, 0), 1e-12)

	none, err := sv.EigenvectorFor(5)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, none.Rows())
	require.Equal(s.T(), 0, none.Cols())
}

// TestEigenvectorsNormalized concatenates unit columns in eigenvalue order.
func (s *EigenSuite) TestEigenvectorsNormalized() {
	vecs, err := MustSolver(s.T(), [][]float64{{1, 0, 0}, {0, 0, 0}, {0, 0, 1}}).Eigenvectors()
	require.NoError(s.T(), err)
	want := MustMatrix(s.T(), [][]float64{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}})
	require.True(s.T(), vecs.Equal(want), vecs.String())

	vecs, err = MustSolver(s.T(), [][]float64{{6, -1}, {2, 3}}).Eigenvectors()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, vecs.Cols())
	requireParallel(s.T(), []float64{1, 1}, column(s.T(), vecs, 0), 1e-9)
	requireParallel(s.T(), []float64{1, 2}, column(s.T(), vecs, 1), 1e-9)

	vecs, err = MustSolver(s.T(), [][]float64{{0, 1}, {-1, 0}}).Eigenvectors()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, vecs.Rows())
	require.Equal(s.T(), 0, vecs.Cols())
}

// TestResidualConcrete checks ‖A·v − λ·v‖ ≤ Coarse on every concrete case.
func (s *EigenSuite) TestResidualConcrete() {
	for _, rows := range [][][]float64{
		{{6, -1}, {2, 3}},
		{{-2, -4, 2}, {-2, 1, 2}, {4, 2, 5}},
		{{1, 0, 0}, {0, 0, 0}, {0, 0, 1}},
		{{2, 0, 0}, {1, 2, 1}, {-1, 0, 1}},
		{{0, 0, 1}, {0, 0, -1}, {1, 1, 0}},
		{{33.0 / 29, -23.0 / 29, 9.0 / 29}, {22.0 / 29, 33.0 / 29, -23.0 / 29}, {19.0 / 29, 14.0 / 29, 50.0 / 29}},
	} {
		requireEigenpairs(s.T(), MustSolver(s.T(), rows))
	}
}

// TestAgainstGonumEigenSym compares roots of random symmetric matrices to gonum.
func (s *EigenSuite) TestAgainstGonumEigenSym() {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 25; trial++ {
		rows := randomSymmetric(rng)
		sv := MustSolver(s.T(), rows)

		vals, err := sv.Eigenvalues()
		require.NoError(s.T(), err)
		got := vals.Data()
		sort.Float64s(got)

		sym := mat.NewSymDense(3, append(append(append([]float64{}, rows[0]...), rows[1]...), rows[2]...))
		var es mat.EigenSym
		require.True(s.T(), es.Factorize(sym, false))
		require.InDeltaSlice(s.T(), es.Values(nil), got, 1e-8, "trial %d", trial)

		requireEigenpairs(s.T(), sv)
	}
}

// TestDebugTrace verifies the discriminant branch reaches an injected logger.
func (s *EigenSuite) TestDebugTrace() {
	core, logs := observer.New(zap.DebugLevel)
	sv := MustSolver(s.T(), [][]float64{{-2, -4, 2}, {-2, 1, 2}, {4, 2, 5}},
		config.WithLogger(zap.New(core)))

	_, err := sv.Eigenvectors()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, logs.FilterMessage("eigenvalues: cubic").
		FilterField(zap.String("branch", "three-real")).Len())
	require.Equal(s.T(), 3, logs.FilterMessage("eigenvector basis").Len())
	require.Positive(s.T(), logs.FilterMessage("reduce: degenerate pivot").Len())
}

// TestEigenSuite runs the suite.
func TestEigenSuite(t *testing.T) {
	suite.Run(t, new(EigenSuite))
}
