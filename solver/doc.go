// SPDX-License-Identifier: MIT

// Package solver provides closed-form eigen-decomposition for real square
// matrices up to 3×3.
//
// A Solver wraps a *matrix.Matrix and adds:
//
//   - Eigenvalues: roots of the characteristic polynomial, returned as an n×1
//     column. Quadratic formula for 2×2; for 3×3 the depressed-cubic
//     discriminant picks the trigonometric (three real roots), Cardano (one
//     real root) or repeated-root branch. Complex roots yield an empty 0×0
//     result, not an error.
//   - Reduce: Gaussian elimination with full pivoting to reduced row-echelon
//     form. It is pure and returns the column permutation it applied, so a
//     solution vector v of the reduced system maps back as permutation × v.
//   - FreeVariables, NullSpace and Rank over a reduced matrix.
//   - EigenvectorFor(λ): null space of A − λI mapped through the permutation,
//     one column per dimension of the eigenspace; Eigenvectors concatenates the
//     normalized columns for every eigenvalue.
//
// Two tolerances drive the decisions (see package config): Fine for the cubic
// discriminant sign, Coarse for pivot degeneracy and free-variable detection.
// Inject a zap logger with config.WithLogger to trace those decisions at
// Debug level.
package solver
