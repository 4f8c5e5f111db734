// SPDX-License-Identifier: MIT
// Package array_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the array tests.
//   - Abort early on construction errors so each test body stays focused.

package array_test

import (
	"testing"

	"github.com/katalvlaran/rixmatrix/array"
	"github.com/katalvlaran/rixmatrix/config"
	"github.com/stretchr/testify/require"
)

// MustArray ALLOCATES an r×c zero-filled *Array or fails the test.
func MustArray(t testing.TB, r, c int, opts ...config.Option) *array.Array {
	t.Helper()
	a, err := array.New(r, c, opts...)
	require.NoError(t, err)

	return a
}

// MustFromRows builds an *Array from a nested literal or fails the test.
func MustFromRows(t testing.TB, rows [][]float64, opts ...config.Option) *array.Array {
	t.Helper()
	a, err := array.FromRows(rows, opts...)
	require.NoError(t, err)

	return a
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, a *array.Array, i, j int) float64 {
	t.Helper()
	v, err := a.At(i, j)
	require.NoError(t, err)

	return v
}

// fill123 returns an r×c array whose cells hold 1..r*c in row-major order.
func fill123(t testing.TB, r, c int) *array.Array {
	t.Helper()
	a := MustArray(t, r, c)
	a.Apply(func(i, j int, _ float64) float64 { return float64(i*c + j + 1) })

	return a
}
