// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/cmm863/linalg/matrix"
)

// ExampleMul multiplies an upper-triangular matrix by a dense one.
// The product is always Dense.
func ExampleMul() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {9, 3}})
	u, _ := matrix.NewUpperTriFrom(a) // drops the 9 below the diagonal
	b, _ := matrix.NewDenseFromRows([][]float64{{1, 0}, {1, 1}})

	p, _ := matrix.Mul(u, b)
	fmt.Println(p.Kind())
	fmt.Print(p)
	// Output:
	// dense
	//            3           2
	//            3           3
}

// ExampleUpperTri_Transpose shows the unsupported outcome.
func ExampleUpperTri_Transpose() {
	u, _ := matrix.NewUpperTri(2)
	_, err := u.Transpose()
	fmt.Println(err)
	// Output:
	// UpperTri.Transpose: matrix: operation not supported
}
