// SPDX-License-Identifier: MIT
// Package solver - closed-form eigenvalues and eigenvectors (n ≤ 3).
//
// Purpose:
//   - Eigenvalues from the characteristic polynomial det(A − λI) = 0.
//   - Eigenvectors from the null space of A − λI after full-pivot reduction.
//
// Determinism:
//   - Root order is fixed per branch (see Eigenvalues); eigenvector columns
//     follow eigenvalue order, then free-variable order.

package solver

import (
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/rixmatrix/matrix"
)

// Discriminant branch names used in debug traces.
const (
	branchTrig     = "three-real"
	branchCardano  = "one-real"
	branchRepeated = "repeated"
)

// Eigenvalues returns the real eigenvalues of s as an n×1 column.
// MAIN DESCRIPTION:
//   - Closed-form roots of the characteristic polynomial for n ∈ {0,1,2,3}.
//
// Implementation:
//   - n = 0: empty 0×0 result. n = 1: the single entry.
//   - n = 2: λ² − tr·λ + det = 0 with D = tr² − 4·det. D < 0 yields an empty
//     0×0 result; otherwise {(tr+√D)/2, (tr−√D)/2}.
//   - n = 3: λ³ + a2·λ² + a1·λ + a0 with a2 = −tr, a1 = (tr² − tr(A²))/2,
//     a0 = −det. Depressed form: q = (3a1 − a2²)/9, r = (9a2a1 − 27a0 − 2a2³)/54,
//     D = q³ + r².
//     D < −Fine: three real roots 2√(−q)·cos((θ + 2πk)/3) − a2/3, k = 0,1,2,
//     θ = acos(r/√(−q)³) with the argument clamped to [−1, 1].
//     D > Fine: one real root −a2/3 + ∛(r+√D) + ∛(r−√D).
//     |D| ≤ Fine: α = ∛r, roots −a2/3 + 2α and −a2/3 − α, collapsed to one
//     value when they differ by less than Fine.
//
// Behavior highlights:
//   - Complex roots are not an error: the 2×2 case returns 0×0, the cubic
//     case returns only the real root.
//   - Repeated roots of the 2×2 case are reported twice.
//
// Errors:
//   - matrix.ErrNonSquare, ErrTooLarge.
//
// Complexity:
//   - O(1) (one 3×3 product for tr(A²), one Laplace determinant).
func (s *Solver) Eigenvalues() (*matrix.Matrix, error) {
	if err := validateEigenInput(s); err != nil {
		return nil, solverErrorf(opEigenvalues, err)
	}
	vals, err := s.eigenvalues()
	if err != nil {
		return nil, solverErrorf(opEigenvalues, err)
	}
	if len(vals) == 0 {
		return s.alloc(0, 0), nil
	}
	res := s.alloc(len(vals), 1)
	copy(res.RawData(), vals)

	return res, nil
}

// eigenvalues dispatches on the dimension; s is square and n ≤ 3.
func (s *Solver) eigenvalues() ([]float64, error) {
	switch s.Rows() {
	case 0:
		return nil, nil
	case 1:
		return []float64{s.RawData()[0]}, nil
	case 2:
		return s.quadraticRoots()
	default:
		return s.cubicRoots()
	}
}

// quadraticRoots solves λ² − tr·λ + det = 0.
func (s *Solver) quadraticRoots() ([]float64, error) {
	tr, err := s.Trace()
	if err != nil {
		return nil, err
	}
	det, err := s.Determinant()
	if err != nil {
		return nil, err
	}
	disc := tr*tr - 4*det
	s.Options().Logger().Debug("eigenvalues: quadratic",
		zap.Float64("trace", tr), zap.Float64("det", det), zap.Float64("discriminant", disc))
	if disc < 0 {
		return nil, nil
	}
	sq := math.Sqrt(disc)

	return []float64{(tr + sq) / 2, (tr - sq) / 2}, nil
}

// cubicRoots solves the 3×3 characteristic polynomial in depressed form.
func (s *Solver) cubicRoots() ([]float64, error) {
	tr, err := s.Trace()
	if err != nil {
		return nil, err
	}
	sq, err := s.Squared()
	if err != nil {
		return nil, err
	}
	tr2, err := sq.Trace()
	if err != nil {
		return nil, err
	}
	det, err := s.Determinant()
	if err != nil {
		return nil, err
	}

	a2 := -tr
	a1 := (tr*tr - tr2) / 2
	a0 := -det
	q := (3*a1 - a2*a2) / 9
	r := (9*a2*a1 - 27*a0 - 2*a2*a2*a2) / 54
	disc := q*q*q + r*r
	shift := -a2 / 3
	fine := s.Options().Fine()
	logger := s.Options().Logger()

	switch {
	case disc < -fine:
		logger.Debug("eigenvalues: cubic", zap.String("branch", branchTrig),
			zap.Float64("q", q), zap.Float64("r", r), zap.Float64("discriminant", disc))
		mq := -q // q < 0 whenever disc < 0
		theta := math.Acos(clamp(r/math.Sqrt(mq*mq*mq), -1, 1))
		amp := 2 * math.Sqrt(mq)
		roots := make([]float64, 3)
		for k := 0; k < 3; k++ {
			roots[k] = amp*math.Cos((theta+2*math.Pi*float64(k))/3) + shift
		}

		return roots, nil

	case disc > fine:
		logger.Debug("eigenvalues: cubic", zap.String("branch", branchCardano),
			zap.Float64("q", q), zap.Float64("r", r), zap.Float64("discriminant", disc))
		sd := math.Sqrt(disc)

		return []float64{shift + math.Cbrt(r+sd) + math.Cbrt(r-sd)}, nil

	default:
		alpha := math.Cbrt(r)
		root1 := shift + 2*alpha
		root2 := shift - alpha
		logger.Debug("eigenvalues: cubic", zap.String("branch", branchRepeated),
			zap.Float64("root1", root1), zap.Float64("root2", root2))
		if scalar.EqualWithinAbs(root1, root2, fine) {
			return []float64{root1}, nil
		}

		return []float64{root1, root2}, nil
	}
}

// EigenvectorFor returns a basis of the eigenspace of lambda, one column per
// dimension, un-normalized.
// Implementation:
//   - Stage 1: form A − λI.
//   - Stage 2: Reduce with full pivoting → (reduced, permutation).
//   - Stage 3: permutation × reduced.NullSpace().
//
// Behavior highlights:
//   - A value that is not an eigenvalue (within Coarse) yields n×0.
//   - Every column v satisfies ‖A·v − λ·v‖ ≈ 0 up to the rounding carried in λ.
//
// Errors:
//   - matrix.ErrNonSquare, ErrTooLarge.
//
// Complexity:
//   - O(n³).
func (s *Solver) EigenvectorFor(lambda float64) (*matrix.Matrix, error) {
	if err := validateEigenInput(s); err != nil {
		return nil, solverErrorf(opEigenvectorFor, err)
	}
	n := s.Rows()
	shifted := s.Clone()
	d := shifted.RawData()
	for i := 0; i < n; i++ {
		d[i*n+i] -= lambda
	}

	reduced, perm := shifted.Reduce()
	basis, err := matrix.Product(perm, reduced.NullSpace())
	if err != nil {
		return nil, solverErrorf(opEigenvectorFor, err)
	}
	s.Options().Logger().Debug("eigenvector basis",
		zap.Float64("lambda", lambda), zap.Int("dimension", basis.Cols()))

	return basis, nil
}

// Eigenvectors returns the normalized eigenvectors of s as the columns of an
// n×k matrix, k being the total eigenspace dimension found.
// Implementation:
//   - For each eigenvalue in Eigenvalues order, append the normalized columns
//     of EigenvectorFor.
//
// Behavior highlights:
//   - Matrices with no real eigenvalues yield n×0.
//   - Columns have unit L2 norm and a non-negative first non-zero entry.
//
// Errors:
//   - matrix.ErrNonSquare, ErrTooLarge.
func (s *Solver) Eigenvectors() (*matrix.Matrix, error) {
	vals, err := s.Eigenvalues()
	if err != nil {
		return nil, solverErrorf(opEigenvectors, err)
	}
	n := s.Rows()
	res := s.alloc(n, 0)

	for _, lambda := range vals.RawData() {
		basis, err := s.EigenvectorFor(lambda)
		if err != nil {
			return nil, solverErrorf(opEigenvectors, err)
		}
		for j := 0; j < basis.Cols(); j++ {
			col, err := basis.Column(j)
			if err != nil {
				return nil, solverErrorf(opEigenvectors, err)
			}
			next := res.Cols()
			if err = res.SetColumnCount(next + 1); err != nil {
				return nil, solverErrorf(opEigenvectors, err)
			}
			if err = res.SetColumn(next, col.Normalized()); err != nil {
				return nil, solverErrorf(opEigenvectors, err)
			}
		}
	}

	return res, nil
}

// clamp bounds x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
