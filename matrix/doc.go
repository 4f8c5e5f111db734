// SPDX-License-Identifier: MIT

// Package matrix provides the Matrix type: a real rows×cols matrix that
// composes an *array.Array and layers matrix algebra on top of it.
//
// The matrix package provides:
//
//   - Constructors: New, FromRows, FromArray, Identity, Diagonal.
//   - Matrix product (Mul in place, Product pure), MulVec, Squared, Cubed.
//   - Determinant (closed form up to 2×2, Laplace expansion above), Minor,
//     Cofactor, Adjoint (cofactor matrix) and Adjugate (its transpose).
//   - IsInvertible / Inverted (adjugate divided by determinant), Trace,
//     Transposed and Normalized (unit L2 norm, canonical sign).
//
// Everything that keeps its Array meaning (indexing, scalar arithmetic,
// row/column access, resize, swaps, tolerance-based Equal) is forwarded to
// the wrapped Array. Shape and index failures surface as the array package
// sentinels; ErrNonSquare, ErrSingular and ErrNilMatrix are defined here.
//
// The kernels target matrices up to a few rows: Determinant is O(n!) beyond
// 2×2 and Inverted is built from cofactors.
package matrix
