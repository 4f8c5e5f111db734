// SPDX-License-Identifier: MIT
// Package array - coefficient-wise arithmetic and tolerance-based comparison.
//
// Purpose:
//   - In-place mutators (Add, Sub, MulElem, AddScalar, ...) act on the receiver.
//   - Pure functions (Sum, Difference, Hadamard, Scale) allocate exactly one result.
//   - Equality is tolerance-based (|a-b| ≤ Fine per cell), never bit-exact.
//
// Determinism:
//   - Flat 0..n-1 traversal everywhere; results are stable across runs.

package array

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Operation name constants for unified error wrapping.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opMulElem  = "MulElem"
	opHadamard = "Hadamard"
)

// Add performs a += other coefficient-wise.
// Implementation:
//   - Stage 1: ValidateSameShape(a, other).
//   - Stage 2: single flat loop via floats.Add.
//
// Errors:
//   - ErrNilArray, ErrDimensionMismatch (receiver left untouched).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (a *Array) Add(other *Array) error {
	if err := ValidateSameShape(a, other); err != nil {
		return opErrorf(opAdd, err)
	}
	floats.Add(a.data, other.data)

	return nil
}

// Sub performs a -= other coefficient-wise.
// Errors: ErrNilArray, ErrDimensionMismatch (receiver left untouched).
func (a *Array) Sub(other *Array) error {
	if err := ValidateSameShape(a, other); err != nil {
		return opErrorf(opSub, err)
	}
	floats.Sub(a.data, other.data)

	return nil
}

// MulElem performs a *= other coefficient-wise (Hadamard product in place).
// Errors: ErrNilArray, ErrDimensionMismatch (receiver left untouched).
func (a *Array) MulElem(other *Array) error {
	if err := ValidateSameShape(a, other); err != nil {
		return opErrorf(opMulElem, err)
	}
	floats.Mul(a.data, other.data)

	return nil
}

// AddScalar adds v to every cell.
func (a *Array) AddScalar(v float64) { floats.AddConst(v, a.data) }

// SubScalar subtracts v from every cell.
func (a *Array) SubScalar(v float64) { floats.AddConst(-v, a.data) }

// MulScalar multiplies every cell by v.
func (a *Array) MulScalar(v float64) { floats.Scale(v, a.data) }

// DivScalar divides every cell by v. Division by zero follows IEEE-754
// (±Inf / NaN); no error is raised.
func (a *Array) DivScalar(v float64) {
	for i := range a.data {
		a.data[i] /= v
	}
}

// Sum returns a fresh a + b. Inputs are not mutated.
// Errors: ErrNilArray, ErrDimensionMismatch.
func Sum(a, b *Array) (*Array, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, opErrorf(opAdd, err)
	}
	res := a.Clone()
	floats.Add(res.data, b.data)

	return res, nil
}

// Difference returns a fresh a - b. Inputs are not mutated.
// Errors: ErrNilArray, ErrDimensionMismatch.
func Difference(a, b *Array) (*Array, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, opErrorf(opSub, err)
	}
	res := a.Clone()
	floats.Sub(res.data, b.data)

	return res, nil
}

// Hadamard returns the fresh coefficient-wise product a ⊙ b.
// Errors: ErrNilArray, ErrDimensionMismatch.
func Hadamard(a, b *Array) (*Array, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, opErrorf(opHadamard, err)
	}
	res := a.Clone()
	floats.Mul(res.data, b.data)

	return res, nil
}

// Scale returns a fresh alpha * a.
func Scale(a *Array, alpha float64) *Array {
	res := a.Clone()
	floats.Scale(alpha, res.data)

	return res
}

// Pow2 returns a fresh Array whose cells are the squares of a's cells.
func (a *Array) Pow2() *Array {
	res := a.Clone()
	floats.Mul(res.data, a.data)

	return res
}

// Equal reports whether shapes match and every cell pair differs by at most
// the receiver's fine tolerance (absolute difference).
// Complexity: Time O(r*c), Space O(1).
func (a *Array) Equal(other *Array) bool {
	return a.EqualWithin(other, a.opts.Fine())
}

// EqualWithin is Equal with an explicit absolute tolerance.
func (a *Array) EqualWithin(other *Array, tol float64) bool {
	if !a.EqualShape(other) {
		return false
	}
	for i, v := range a.data {
		if !scalar.EqualWithinAbs(v, other.data[i], tol) {
			return false
		}
	}

	return true
}

// Contains reports whether any cell lies within tol of value.
func (a *Array) Contains(value, tol float64) bool {
	for _, v := range a.data {
		if scalar.EqualWithinAbs(v, value, tol) {
			return true
		}
	}

	return false
}
