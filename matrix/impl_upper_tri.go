// SPDX-License-Identifier: MIT

// Package matrix - UpperTri storage (compact upper triangle) & safe accessors.
//
// Purpose:
//   - Store only the upper triangle of a square n×n matrix: row i holds the
//     n-i elements of columns [i, n), so (i,j) lives at offset j-i.
//   - Read (i,j) with i>j as 0; discard writes to (i,j) with i>j (no error).
//     Elimination and QR code rely on the discarded write.
//   - Refuse Transpose with ErrUnsupported (the lower-triangular mirror has no layout here).
//
// Complexity quicksheet:
//   - NewUpperTri: O(n²/2); At/Set: O(1); Clone: O(n²/2).

package matrix

import (
	"fmt"

	"github.com/cmm863/linalg/vector"
)

const layoutUpperTri = "UpperTri"

// UpperTri is a square upper-triangular matrix in compact row storage.
// The zero value is the empty 0×0 matrix.
type UpperTri struct {
	n    int              // rows == cols
	rows []*vector.Vector // rows[i].Size() == n-i
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*UpperTri)(nil)
	_ fmt.Stringer = (*UpperTri)(nil)
)

// NewUpperTri creates an n×n upper-triangular zero matrix.
// Errors: ErrBadShape when n < 0.
// Complexity: O(n²/2).
func NewUpperTri(n int) (*UpperTri, error) {
	if err := ValidateShape(n, n); err != nil {
		return nil, matrixErrorf("NewUpperTri", err)
	}
	m := &UpperTri{n: n, rows: make([]*vector.Vector, n)}
	for i := 0; i < n; i++ {
		m.rows[i] = vector.Zeros(n - i)
	}

	return m, nil
}

// Rows returns n.
func (m *UpperTri) Rows() int { return m.n }

// Cols returns n.
func (m *UpperTri) Cols() int { return m.n }

// Kind reports KindUpperTriangular.
func (m *UpperTri) Kind() Kind { return KindUpperTriangular }

// Row returns the compact backing vector of row i (columns [i, n)).
func (m *UpperTri) Row(i int) (*vector.Vector, error) {
	if i < 0 || i >= m.n {
		return nil, layoutErrorf(layoutUpperTri, ctxRow, i, 0, ErrOutOfRange)
	}

	return m.rows[i], nil
}

func (m *UpperTri) checkIndex(method string, row, col int) error {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return layoutErrorf(layoutUpperTri, method, row, col, ErrOutOfRange)
	}

	return nil
}

// At returns m(row,col); 0 below the diagonal.
func (m *UpperTri) At(row, col int) (float64, error) {
	if err := m.checkIndex(ctxAt, row, col); err != nil {
		return 0, err
	}
	if row > col {
		return 0, nil
	}

	return m.rows[row].At(col - row)
}

// Set assigns v to (row,col). Writes below the diagonal are discarded.
func (m *UpperTri) Set(row, col int, v float64) error {
	if err := m.checkIndex(ctxSet, row, col); err != nil {
		return err
	}
	if row > col {
		return nil
	}

	return m.rows[row].Set(col-row, v)
}

// Transpose is not provided for the upper-triangular layout.
// Always returns ErrUnsupported.
func (m *UpperTri) Transpose() (Matrix, error) {
	return nil, matrixErrorf(layoutUpperTri+"."+opTranspose, ErrUnsupported)
}

// Clone returns a deep copy of the compact storage, preserving the layout.
func (m *UpperTri) Clone() Matrix {
	return m.cloneUpperTri()
}

func (m *UpperTri) cloneUpperTri() *UpperTri {
	cp := &UpperTri{n: m.n, rows: make([]*vector.Vector, m.n)}
	for i, row := range m.rows {
		cp.rows[i] = row.Clone()
	}

	return cp
}

// String renders the full n×n view with Format.
func (m *UpperTri) String() string { return Format(m) }

// MoveUpperTri transfers the backing storage of src into a new UpperTri and
// resets src to the empty 0×0 state.
func MoveUpperTri(src *UpperTri) *UpperTri {
	if src == nil {
		return &UpperTri{}
	}
	dst := &UpperTri{n: src.n, rows: src.rows}
	src.n, src.rows = 0, nil

	return dst
}
