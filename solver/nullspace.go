// SPDX-License-Identifier: MIT
// Package solver - null-space basis of a reduced row-echelon matrix.

package solver

import "github.com/katalvlaran/rixmatrix/matrix"

// NullSpace returns a cols×k basis of {v : s·v = 0}, one column per free
// variable (k = len(FreeVariables())).
// Implementation:
//   - For free column f, start from −(column f) of s; rows past the row
//     count stay 0.
//   - Set row f to 1 and the rows of every other free variable to 0.
//
// Behavior highlights:
//   - Valid on Reduce output; the basis is expressed in the permuted column
//     order, so map it back with permutation × basis.
//   - No free variables yields a cols×0 matrix (n×0 for square input).
//   - Columns are not normalized.
//
// Complexity:
//   - Time O(c·k), Space O(c·k).
func (s *Solver) NullSpace() *matrix.Matrix {
	rows, cols := s.Shape()
	free := s.FreeVariables()
	k := len(free)
	res := s.alloc(cols, k)
	src, dst := s.RawData(), res.RawData()

	for col, f := range free {
		for i := 0; i < rows && i < cols; i++ {
			if v := src[i*cols+f]; v != 0 {
				dst[i*k+col] = -v // keep +0 for zero cells
			}
		}
		for _, g := range free {
			dst[g*k+col] = 0
		}
		dst[f*k+col] = 1
	}

	return res
}
