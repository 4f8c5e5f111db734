// SPDX-License-Identifier: MIT
// Package solver - full-pivot Gaussian elimination to reduced row-echelon form.
//
// Purpose:
//   - Reduce never touches the receiver; it returns the reduced copy together
//     with the column permutation the pivoting applied.
//   - Pivots whose magnitude does not exceed the coarse tolerance are left in
//     place and unscaled; their columns surface later as free variables.

package solver

import (
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/rixmatrix/matrix"
)

// Reduce returns the reduced row-echelon form of s and the cols×cols
// permutation matrix recording the column swaps made while pivoting.
// Implementation:
//   - Stage 1 (forward): for p = 0..min(r,c)−1, scan rows ≥ p and cols ≥ p
//     in row-major order for the strictly largest |x| (ties keep the first);
//     swap it into (p,p) and mirror the column swap into the permutation.
//     If |pivot| > Coarse, scale row p to make the pivot 1 and eliminate the
//     pivot column in every row below.
//   - Stage 2 (backward): for p from the last pivot down to 0, eliminate the
//     pivot column in every row above, skipping degenerate pivots.
//
// Behavior highlights:
//   - Idempotent on its own output as long as no off-pivot entry exceeds 1
//     in magnitude; a larger one would be swapped in as the next pivot.
//   - For every null-space column v of the reduced matrix, s × (perm × v) ≈ 0.
//
// Returns:
//   - *Solver: reduced copy carrying s's numeric policy.
//   - *matrix.Matrix: permutation (identity with swapped columns).
//
// Complexity:
//   - Time O(min(r,c)·r·c), Space O(r·c + c²).
//
// Notes:
//   - The row swaps are not recorded; they do not change the solution set.
func (s *Solver) Reduce() (*Solver, *matrix.Matrix) {
	res := s.Clone()
	rows, cols := res.Shape()
	perm, _ := matrix.Identity(cols, s.Options().AsOptions()...) // cols >= 0
	coarse := s.Options().Coarse()
	logger := s.Options().Logger()
	d := res.RawData()

	steps := min(rows, cols)
	var (
		p, i, j, pr, pc int
		best, pivot, f  float64
	)
	for p = 0; p < steps; p++ {
		// Locate the largest remaining magnitude.
		pr, pc = p, p
		best = math.Abs(d[p*cols+p])
		for i = p; i < rows; i++ {
			for j = p; j < cols; j++ {
				if v := math.Abs(d[i*cols+j]); v > best {
					best, pr, pc = v, i, j
				}
			}
		}
		_ = res.SwapRows(p, pr)    // indices in range by construction
		_ = res.SwapColumns(p, pc) // same
		_ = perm.SwapColumns(p, pc)

		pivot = d[p*cols+p]
		if math.Abs(pivot) <= coarse {
			logger.Debug("reduce: degenerate pivot", zap.Int("step", p), zap.Float64("pivot", pivot))
			continue
		}
		rowP := d[p*cols : (p+1)*cols]
		floats.Scale(1/pivot, rowP)
		for i = p + 1; i < rows; i++ {
			if f = d[i*cols+p]; f != 0 {
				floats.AddScaled(d[i*cols:(i+1)*cols], -f, rowP)
			}
		}
	}

	for p = steps - 1; p >= 0; p-- {
		if math.Abs(d[p*cols+p]) <= coarse {
			continue
		}
		rowP := d[p*cols : (p+1)*cols]
		for i = 0; i < p; i++ {
			if f = d[i*cols+p]; f != 0 {
				floats.AddScaled(d[i*cols:(i+1)*cols], -f, rowP)
			}
		}
	}

	return res, perm
}

// FreeVariables returns, in ascending order, the columns of a row-echelon
// matrix that carry no pivot.
// Implementation:
//   - Walk columns left to right with a row cursor r starting at 0.
//   - Column c is free when r has run past the last row or |m(r,c)| ≤ Coarse;
//     otherwise c is a pivot column and r advances.
//
// Behavior highlights:
//   - Meaningful only on Reduce output (or any row-echelon input).
//   - Columns beyond the row count of a wide matrix are always free.
//
// Complexity:
//   - Time O(c), Space O(c).
func (s *Solver) FreeVariables() []int {
	rows, cols := s.Shape()
	d := s.RawData()
	coarse := s.Options().Coarse()

	free := make([]int, 0, cols)
	r := 0
	for c := 0; c < cols; c++ {
		if r >= rows || math.Abs(d[r*cols+c]) <= coarse {
			free = append(free, c)
			continue
		}
		r++
	}
	s.Options().Logger().Debug("free variables", zap.Ints("columns", free))

	return free
}

// Rank returns the number of pivot columns after full-pivot reduction.
// Complexity: dominated by Reduce.
func (s *Solver) Rank() int {
	reduced, _ := s.Reduce()

	return s.Cols() - len(reduced.FreeVariables())
}
