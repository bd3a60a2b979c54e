// SPDX-License-Identifier: MIT
// Package matrix - layout conversions.
//
// Purpose:
//   - Build a matrix of one layout from any other Matrix (deep copy of the
//     logically visible elements, read through At).
//
// Notes:
//   - A triangular source reads as zero below the diagonal, so NewDenseFrom of
//     an UpperTri yields the full square matrix with an explicit zero lower part.
//   - NewUpperTriFrom keeps only j ≥ i; lower values of the source are dropped.

package matrix

import "fmt"

// NewDenseFrom returns a Dense copy of src.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func NewDenseFrom(src Matrix) (*Dense, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, matrixErrorf("NewDenseFrom", err)
	}
	if d, ok := src.(*Dense); ok {
		return d.cloneDense(), nil
	}

	rows, cols := src.Rows(), src.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf("NewDenseFrom", err)
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = src.At(i, j); err != nil {
				return nil, matrixErrorf("NewDenseFrom", err)
			}
			_ = res.rows[i].Set(j, v)
		}
	}

	return res, nil
}

// NewUpperTriFrom returns the upper triangle of a square src in compact storage.
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square source).
// Complexity: O(n²/2).
func NewUpperTriFrom(src Matrix) (*UpperTri, error) {
	if err := ValidateSquare(src); err != nil {
		return nil, matrixErrorf("NewUpperTriFrom", err)
	}
	if u, ok := src.(*UpperTri); ok {
		return u.cloneUpperTri(), nil
	}

	n := src.Rows()
	res, err := NewUpperTri(n)
	if err != nil {
		return nil, matrixErrorf("NewUpperTriFrom", err)
	}
	var v float64
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if v, err = src.At(i, j); err != nil {
				return nil, matrixErrorf("NewUpperTriFrom", fmt.Errorf("source: %w", err))
			}
			_ = res.rows[i].Set(j-i, v)
		}
	}

	return res, nil
}

// Convert returns a copy of src in the requested layout.
// Errors: ErrUnsupported for an unknown Kind, plus the errors of the target constructor.
func Convert(src Matrix, kind Kind) (Matrix, error) {
	switch kind {
	case KindDense:
		return NewDenseFrom(src)
	case KindUpperTriangular:
		return NewUpperTriFrom(src)
	default:
		return nil, matrixErrorf("Convert", fmt.Errorf("target %s: %w", kind, ErrUnsupported))
	}
}
