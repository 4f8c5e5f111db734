// SPDX-License-Identifier: MIT

// Package array - row-major storage of reals & safe accessors.
//
// Purpose:
//   - Provide one contiguous row-major buffer with the explicit index formula row*cols + col.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Carry the numeric policy (config.Options) per instance; Clone and every
//     derived value inherit it.
//
// Allocation model:
//   - The buffer is allocated once, to exact shape, at construction.
//   - It is reallocated only by an explicit resize (SetColumnCount / SetRowCount),
//     which copies into one fresh buffer.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); resize: O(r*c').

package array

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rixmatrix/config"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxAtIndex  = "AtIndex"  // flat read
	ctxSetIndex = "SetIndex" // flat write
	ctxNew      = "New"      // constructor tag
	ctxFromRows = "FromRows" // literal constructor tag
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// arrayErrorf wraps an error with a uniform Array context and callsite indices.
// Implementation:
//   - Stage 1: format "Array.<method>(row,col): %w".
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func arrayErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Array.%s(%d,%d): %w", method, row, col, err)
}

// opErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Array is a fixed-shape, row-major, mutable grid of reals.
//   - r,c hold dimensions (rows, cols); both may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - opts is the resolved numeric policy (tolerances, debug logger).
type Array struct {
	r, c int            // row and column counts (>= 0)
	data []float64      // contiguous row-major storage (len == r*c)
	opts config.Options // resolved policy; preserved by Clone and derived values
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Array)(nil)

// New creates a rows×cols zero-filled Array.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and the resolved numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer; resolve options.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Zero-sized shapes are legal: they are the sentinels for "no eigenvalues"
//     (0×0) and "empty null space" (n×0).
//
// Inputs:
//   - rows, cols: non-negative dimensions.
//   - opts: optional tolerance/logger setters (see package config).
//
// Returns:
//   - *Array: newly allocated array.
//
// Errors:
//   - ErrInvalidDimensions (negative dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int, opts ...config.Option) (*Array, error) {
	if rows < 0 || cols < 0 {
		return nil, opErrorf(ctxNew, ErrInvalidDimensions)
	}

	return newWithOptions(rows, cols, config.Gather(opts...)), nil
}

// newWithOptions allocates without validation; callers guarantee rows,cols >= 0.
func newWithOptions(rows, cols int, o config.Options) *Array {
	return &Array{
		r:    rows,
		c:    cols,
		data: make([]float64, rows*cols), // make() zero-fills deterministically
		opts: o,
	}
}

// FromRows builds an Array from a nested literal: outer length = rows,
// inner length = columns.
// Implementation:
//   - Stage 1: take cols from the first row; reject ragged input.
//   - Stage 2: copy row by row into one flat buffer.
//
// Behavior highlights:
//   - An empty outer slice yields a 0×0 Array.
//   - The input is copied; later mutation of the literal does not leak in.
//
// Errors:
//   - ErrBadShape when inner lengths differ.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64, opts ...config.Option) (*Array, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w", ctxFromRows, i, len(rows[i]), c, ErrBadShape)
		}
	}

	a := newWithOptions(r, c, config.Gather(opts...))
	for i := 0; i < r; i++ {
		copy(a.data[i*c:(i+1)*c], rows[i])
	}

	return a, nil
}

// Rows returns the row count. Complexity: O(1).
func (a *Array) Rows() int { return a.r }

// Cols returns the column count. Complexity: O(1).
func (a *Array) Cols() int { return a.c }

// Shape packs Rows() and Cols() into a single call.
func (a *Array) Shape() (rows, cols int) { return a.r, a.c }

// Len returns the number of cells (rows*cols).
func (a *Array) Len() int { return len(a.data) }

// IsSquare reports whether rows == cols.
func (a *Array) IsSquare() bool { return a.r == a.c }

// EqualShape reports whether a and other have identical dimensions.
func (a *Array) EqualShape(other *Array) bool {
	return other != nil && a.r == other.r && a.c == other.c
}

// Options returns the resolved numeric policy of this instance.
func (a *Array) Options() config.Options { return a.opts }

// SetOptions re-resolves the numeric policy of this instance from defaults
// plus opts. This is the explicit setter for overriding tolerances after
// construction; it affects only this instance and values derived from it
// afterwards.
func (a *Array) SetOptions(opts ...config.Option) {
	a.opts = config.Gather(opts...)
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Implementation:
//   - Stage 1: validate 0 ≤ row < r and 0 ≤ col < c.
//   - Stage 2: compute row*c + col.
//
// Notes:
//   - Returns the bare sentinel; public methods wrap with coordinates.
func (a *Array) indexOf(row, col int) (int, error) {
	if row < 0 || row >= a.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= a.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*a.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (a *Array) At(row, col int) (float64, error) {
	off, err := a.indexOf(row, col)
	if err != nil {
		return 0, arrayErrorf(ctxAt, row, col, err)
	}

	return a.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (a *Array) Set(row, col int, v float64) error {
	off, err := a.indexOf(row, col)
	if err != nil {
		return arrayErrorf(ctxSet, row, col, err)
	}
	a.data[off] = v

	return nil
}

// AtIndex returns the cell at flat row-major index i or ErrOutOfRange.
func (a *Array) AtIndex(i int) (float64, error) {
	if i < 0 || i >= len(a.data) {
		return 0, fmt.Errorf("Array.%s(%d): %w", ctxAtIndex, i, ErrOutOfRange)
	}

	return a.data[i], nil
}

// SetIndex stores v at flat row-major index i or returns ErrOutOfRange.
func (a *Array) SetIndex(i int, v float64) error {
	if i < 0 || i >= len(a.data) {
		return fmt.Errorf("Array.%s(%d): %w", ctxSetIndex, i, ErrOutOfRange)
	}
	a.data[i] = v

	return nil
}

// Data returns a copy of the row-major buffer.
func (a *Array) Data() []float64 {
	cp := make([]float64, len(a.data))
	copy(cp, a.data)

	return cp
}

// RawData exposes the row-major backing slice without copying. It exists for
// the matrix and solver layers' flat-index fast paths; writes through it
// bypass bounds checks but can never change the shape.
func (a *Array) RawData() []float64 { return a.data }

// Clone returns a deep copy (new buffer, same numeric policy).
// MAIN DESCRIPTION:
//   - Produce an independent Array with identical shape/data/policy.
//
// Behavior highlights:
//   - Independence: mutations do not affect the original.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (a *Array) Clone() *Array {
	cp := make([]float64, len(a.data)) // allocate same length
	copy(cp, a.data)                   // deep copy

	return &Array{
		r:    a.r,
		c:    a.c,
		data: cp,
		opts: a.opts, // preserve policy
	}
}

// SetAll assigns v to every cell.
func (a *Array) SetAll(v float64) {
	for i := range a.data {
		a.data[i] = v
	}
}

// SetAt copies src into a, with src's top-left cell landing on (row, col).
// Implementation:
//   - Stage 1: validate the whole block fits inside a.
//   - Stage 2: copy src row by row.
//
// Errors:
//   - ErrNilArray for nil src; ErrOutOfRange when the block overflows a.
//
// Complexity:
//   - Time O(src.r*src.c), Space O(1).
func (a *Array) SetAt(src *Array, row, col int) error {
	if src == nil {
		return opErrorf("SetAt", ErrNilArray)
	}
	if row < 0 || col < 0 || row+src.r > a.r || col+src.c > a.c {
		return arrayErrorf("SetAt", row, col, ErrOutOfRange)
	}
	var i, dst int
	for i = 0; i < src.r; i++ {
		dst = (row+i)*a.c + col
		copy(a.data[dst:dst+src.c], src.data[i*src.c:(i+1)*src.c])
	}

	return nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: Time O(r*c), Space O(1).
func (a *Array) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < a.r; i++ {
		base = i * a.c
		for j = 0; j < a.c; j++ {
			if !f(i, j, a.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, in row-major order.
// Complexity: Time O(r*c), Space O(1).
func (a *Array) Apply(f func(i, j int, v float64) float64) {
	var i, j, base int
	for i = 0; i < a.r; i++ {
		base = i * a.c
		for j = 0; j < a.c; j++ {
			a.data[base+j] = f(i, j, a.data[base+j])
		}
	}
}

// String renders rows as lines with comma-separated values, for diagnostics.
// Complexity: Time O(r*c).
func (a *Array) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < a.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * a.c
		for j = 0; j < a.c; j++ {
			b.WriteString(fmt.Sprintf("%g", a.data[base+j]))
			if j+1 < a.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
