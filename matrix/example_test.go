// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/rixmatrix/matrix"
)

// ExampleMatrix_Inverted inverts a 2×2 matrix through its adjugate.
func ExampleMatrix_Inverted() {
	m, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	det, _ := m.Determinant()
	inv, err := m.Inverted()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("det:", det)
	fmt.Print(inv)
	// Output:
	// det: -2
	// [-2, 1]
	// [1.5, -0.5]
}

// ExampleProduct multiplies a matrix by a column vector.
func ExampleProduct() {
	a, _ := matrix.FromRows([][]float64{{2, 0}, {1, 3}})
	v, _ := matrix.FromRows([][]float64{{1}, {2}})
	p, _ := matrix.Product(a, v)
	fmt.Print(p)
	// Output:
	// [2]
	// [7]
}
