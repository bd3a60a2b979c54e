// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by every layout.
// This file contains ONLY the capability interface and the layout tag.
// Errors live in errors.go, validators in validators.go.
package matrix

import "github.com/cmm863/linalg/vector"

// Kind tags the concrete storage layout of a Matrix.
// The set is closed: kernels dispatch on it and reject unknown values.
type Kind int

const (
	// KindDense stores every (i,j) element.
	KindDense Kind = iota
	// KindUpperTriangular stores only elements with j ≥ i of a square matrix.
	KindUpperTriangular
)

// String returns the layout name used in messages and CLI flags.
func (k Kind) String() string {
	switch k {
	case KindDense:
		return "dense"
	case KindUpperTriangular:
		return "upper"
	default:
		return "unknown"
	}
}

// ParseKind maps a layout name ("dense", "upper") back to its Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "dense":
		return KindDense, nil
	case "upper", "upper-triangular":
		return KindUpperTriangular, nil
	default:
		return 0, matrixErrorf("ParseKind "+s, ErrUnsupported)
	}
}

// Matrix represents a two-dimensional mutable array of float64 values
// backed by one vector.Vector per row.
//
// Complexity notes: all methods are expected O(1) except Transpose and
// Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// Row returns the backing vector of row i. For compact layouts the
	// vector holds only the stored part of the row.
	// Returns ErrOutOfRange if i<0 or i>=Rows().
	// Complexity: O(1).
	Row(i int) (*vector.Vector, error)

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid. Layouts that cannot store
	// (i, j) discard the write and return nil.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Transpose returns a new matrix with rows and columns swapped, or
	// ErrUnsupported when the layout cannot represent its transpose.
	// Complexity: O(rows*cols).
	Transpose() (Matrix, error)

	// Clone returns a deep copy of the matrix in the same layout.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix

	// Kind reports the storage layout.
	// Complexity: O(1).
	Kind() Kind
}
