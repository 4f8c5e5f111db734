// SPDX-License-Identifier: MIT

// Package solver - Solver type, constructors and shared guards.
//
// Purpose:
//   - Solver embeds *matrix.Matrix: every matrix operation keeps its meaning
//     and is promoted unchanged; the eigen-specific operations live in
//     eigen.go, reduce.go and nullspace.go.
//   - All solver operations are pure: they read the receiver and return new
//     values.

package solver

import (
	"fmt"

	"github.com/katalvlaran/rixmatrix/config"
	"github.com/katalvlaran/rixmatrix/matrix"
)

// MaxEigenDim is the largest dimension the closed-form eigen-solver accepts.
const MaxEigenDim = 3

// ---------- operation tags ----------

const (
	opNew            = "New"
	opFromRows       = "FromRows"
	opFromMatrix     = "FromMatrix"
	opEigenvalues    = "Eigenvalues"
	opEigenvectorFor = "EigenvectorFor"
	opEigenvectors   = "Eigenvectors"
)

// solverErrorf wraps err with an operation tag, preserving the sentinel via %w.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("Solver.%s: %w", tag, err)
}

// Solver is a square or rectangular real matrix with eigen-solving and
// row-reduction operations on top of the matrix algebra.
type Solver struct {
	*matrix.Matrix
}

// New creates a rows×cols zero Solver.
// Errors: array.ErrInvalidDimensions.
func New(rows, cols int, opts ...config.Option) (*Solver, error) {
	m, err := matrix.New(rows, cols, opts...)
	if err != nil {
		return nil, solverErrorf(opNew, err)
	}

	return &Solver{Matrix: m}, nil
}

// FromRows builds a Solver from a nested literal (outer = rows).
// Errors: array.ErrBadShape.
func FromRows(rows [][]float64, opts ...config.Option) (*Solver, error) {
	m, err := matrix.FromRows(rows, opts...)
	if err != nil {
		return nil, solverErrorf(opFromRows, err)
	}

	return &Solver{Matrix: m}, nil
}

// FromMatrix wraps a deep copy of m, keeping its numeric policy.
// Errors: matrix.ErrNilMatrix.
func FromMatrix(m *matrix.Matrix) (*Solver, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, solverErrorf(opFromMatrix, err)
	}

	return &Solver{Matrix: m.Clone()}, nil
}

// Clone returns a deep copy with the same numeric policy.
func (s *Solver) Clone() *Solver { return &Solver{Matrix: s.Matrix.Clone()} }

// alloc returns a zero rows×cols Matrix carrying s's numeric policy.
// Callers guarantee rows, cols >= 0.
func (s *Solver) alloc(rows, cols int) *matrix.Matrix {
	m, _ := matrix.New(rows, cols, s.Options().AsOptions()...)

	return m
}

// validateEigenInput enforces the eigen preconditions: square, at most 3×3.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrTooLarge.
func validateEigenInput(s *Solver) error {
	if s == nil {
		return matrix.ValidateNotNil(nil)
	}
	if err := matrix.ValidateSquare(s.Matrix); err != nil {
		return err
	}
	if n := s.Rows(); n > MaxEigenDim {
		return fmt.Errorf("validateEigenInput(%dx%d): %w", n, n, ErrTooLarge)
	}

	return nil
}
