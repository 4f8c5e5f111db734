// SPDX-License-Identifier: MIT
// Package solver: sentinel error set.
// Non-square input surfaces as matrix.ErrNonSquare; shape and index failures
// as the array package sentinels. Only the size limit of the closed-form
// eigen-solver is defined here.

package solver

import "errors"

// ErrTooLarge indicates an eigen operation on a matrix larger than 3×3; the
// characteristic polynomial has no closed-form roots the solver can use.
var ErrTooLarge = errors.New("solver: closed-form eigen-solver supports at most 3x3")
