// SPDX-License-Identifier: MIT

// Package rixmatrix is a small-dimension dense linear-algebra toolkit with a
// closed-form eigen-solver.
//
// Everything is organized in four subpackages, leaves first:
//
//	config/  numeric policy: fine/coarse tolerances and an optional zap logger
//	array/   Array: fixed-shape row-major grid of reals, coefficient-wise ops
//	matrix/  Matrix: product, determinant, cofactors, adjugate, inverse, trace
//	solver/  Solver: eigenvalues (n ≤ 3), full-pivot RREF, null space, eigenvectors
//
// Each layer composes the one below it: a Matrix wraps an Array, a Solver
// embeds a Matrix. Buffers are allocated once, to exact shape, and only an
// explicit resize reallocates. Precondition violations come back as sentinel
// errors matched with errors.Is; empty results (no real eigenvalues, trivial
// null space) are correctly shaped zero-width values, not errors.
//
// Quick start:
//
//	s, _ := solver.FromRows([][]float64{{6, -1}, {2, 3}})
//	vals, _ := s.Eigenvalues()   // 2×1: [5] [4]
//	vecs, _ := s.Eigenvectors()  // 2×2, unit columns
//
// Tolerances are carried per instance (config.WithFineTolerance,
// config.WithCoarseTolerance) and inherited by every derived value.
package rixmatrix
