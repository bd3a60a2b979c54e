// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row vectors) & safe accessors.
//
// Purpose:
//   - Store every (i,j) element: rows independent vector.Vector values of length cols.
//   - Guarantee safety at the public surface: Row/At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see impl_linear_algebra.go): operate on the row vectors directly.
//   - Dense is the universal result layout for products against any other layout.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; Row/At/Set: O(1); Clone/Transpose: O(r*c).

package matrix

import (
	"fmt"

	"github.com/cmm863/linalg/vector"
)

// ---------- error context tags ----------

const (
	layoutDense = "Dense" // layout tag used in error wrappers
	ctxRow      = "Row"   // method tag used in error wrappers
	ctxAt       = "At"    // method tag used in error wrappers
	ctxSet      = "Set"   // method tag used in error wrappers
)

// Dense is a concrete matrix that stores every element.
//   - r,c hold dimensions (rows, cols).
//   - rows holds r vectors, each of size c.
//
// The zero value is the empty 0×0 matrix.
type Dense struct {
	r, c int              // row and column counts (>= 0)
	rows []*vector.Vector // one owned vector per row, Size() == c
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: allocate one zero-filled vector per row.
//
// Errors:
//   - ErrBadShape (negative dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf("NewDense", err)
	}
	m := &Dense{r: rows, c: cols, rows: make([]*vector.Vector, rows)}
	for i := 0; i < rows; i++ {
		m.rows[i] = vector.Zeros(cols)
	}

	return m, nil
}

// NewSquareDense creates an n×n zero matrix.
func NewSquareDense(n int) (*Dense, error) { return NewDense(n, n) }

// NewDenseFromRows builds a Dense from row-major literal data.
// All rows must have the same length; otherwise ErrDimensionMismatch.
// Complexity: O(r*c).
func NewDenseFromRows(data [][]float64) (*Dense, error) {
	rows := len(data)
	cols := 0
	if rows > 0 {
		cols = len(data[0])
	}
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i, row := range data {
		if len(row) != cols {
			return nil, matrixErrorf(fmt.Sprintf("NewDenseFromRows: row %d", i), ErrDimensionMismatch)
		}
		m.rows[i] = vector.FromSlice(row...)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// Kind reports KindDense.
func (m *Dense) Kind() Kind { return KindDense }

// Row returns the backing vector of row i. Writes through it are visible in m.
func (m *Dense) Row(i int) (*vector.Vector, error) {
	if i < 0 || i >= m.r {
		return nil, layoutErrorf(layoutDense, ctxRow, i, 0, ErrOutOfRange)
	}

	return m.rows[i], nil
}

// checkIndex validates 0 ≤ row < r and 0 ≤ col < c.
func (m *Dense) checkIndex(method string, row, col int) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return layoutErrorf(layoutDense, method, row, col, ErrOutOfRange)
	}

	return nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if err := m.checkIndex(ctxAt, row, col); err != nil {
		return 0, err
	}

	return m.rows[row].At(col)
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if err := m.checkIndex(ctxSet, row, col); err != nil {
		return err
	}

	return m.rows[row].Set(col, v)
}

// Transpose returns a new Dense with rows and columns swapped: res(i,j) = m(j,i).
// Complexity: O(r*c).
func (m *Dense) Transpose() (Matrix, error) {
	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	var v float64
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v, _ = m.rows[i].At(j) // j < c by construction
			_ = res.rows[j].Set(i, v)
		}
	}

	return res, nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	return m.cloneDense()
}

// cloneDense is Clone with the concrete return type.
func (m *Dense) cloneDense() *Dense {
	cp := &Dense{r: m.r, c: m.c, rows: make([]*vector.Vector, m.r)}
	for i, row := range m.rows {
		cp.rows[i] = row.Clone()
	}

	return cp
}

// String renders the matrix with Format: one line per row, fixed-width fields.
func (m *Dense) String() string { return Format(m) }

// MoveDense transfers the backing storage of src into a new Dense and resets
// src to the empty 0×0 state. No element is copied.
// Complexity: O(1).
func MoveDense(src *Dense) *Dense {
	if src == nil {
		return &Dense{}
	}
	dst := &Dense{r: src.r, c: src.c, rows: src.rows}
	src.r, src.c, src.rows = 0, 0, nil

	return dst
}
