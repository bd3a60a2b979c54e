// SPDX-License-Identifier: MIT
// Package matrix - bridge to gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Hand matrices to gonum for cross-checking (solve, eigen) and interop.
//   - Read any gonum mat.Matrix back into a Dense.
//
// Notes:
//   - gonum panics on empty matrices (mat.ErrZeroLength); ToGonum rejects 0×0
//     inputs with ErrBadShape instead.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new *mat.Dense.
// Errors: ErrNilMatrix; ErrBadShape for an empty matrix.
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return nil, matrixErrorf("ToGonum", ErrBadShape)
	}

	data := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf("ToGonum", err)
			}
			data = append(data, v)
		}
	}

	return mat.NewDense(rows, cols, data), nil
}

// FromGonum copies any gonum matrix into a new Dense.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) *Dense {
	rows, cols := g.Dims()
	res, _ := NewDense(rows, cols) // dims from gonum are never negative
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			_ = res.rows[i].Set(j, g.At(i, j))
		}
	}

	return res
}
