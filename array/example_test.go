// SPDX-License-Identifier: MIT
package array_test

import (
	"fmt"

	"github.com/katalvlaran/rixmatrix/array"
)

// ExampleFromRows builds a 2×3 array, reads a column and transposes it.
func ExampleFromRows() {
	a, err := array.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	col, _ := a.Column(2)
	fmt.Print(col)
	fmt.Print(a.Transposed())
	// Output:
	// [3]
	// [6]
	// [1, 4]
	// [2, 5]
	// [3, 6]
}

// ExampleArray_SetColumnCount grows an array and shows the zero fill.
func ExampleArray_SetColumnCount() {
	a, _ := array.FromRows([][]float64{{1, 2}, {3, 4}})
	_ = a.SetColumnCount(3)
	fmt.Print(a)
	// Output:
	// [1, 2, 0]
	// [3, 4, 0]
}
