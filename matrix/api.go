// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import (
	"fmt"
	"math"

	"github.com/cmm863/linalg/vector"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// Identity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func Identity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		_ = I.Set(i, i, 1.0) // bounds-safe after shape validation
	}

	return I, nil
}

// CloneMatrix returns m.Clone(); the layout is preserved.
func CloneMatrix(m Matrix) Matrix {
	if m == nil {
		return nil
	}

	return m.Clone()
}

// ZerosLike returns a zero Dense with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// ---------- Algebra facades ----------

// Sum is an alias of Add.
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias of Sub.
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Product is an alias of Mul.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// ---------- Comparison ----------

// logicalRow returns the full, uncompacted row i of m as a fresh vector.
func logicalRow(m Matrix, i int) (*vector.Vector, error) {
	row := vector.WithCapacity(m.Cols())
	for j := 0; j < m.Cols(); j++ {
		v, err := m.At(i, j)
		if err != nil {
			return nil, err
		}
		row.Push(v)
	}

	return row, nil
}

// Equal reports whether a and b have the same shape and agree element-wise at
// vector.DefaultDigits decimal digits (truncated, as vector.Equal does).
// Layouts may differ: elements are compared through At.
// Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		ra, errA := logicalRow(a, i)
		rb, errB := logicalRow(b, i)
		if errA != nil || errB != nil || !vector.Equal(ra, rb) {
			return false
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if !closeTo(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeTo is the scalar relation used by AllClose.
func closeTo(a, b, rtol, atol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// MustAt is At that panics on error. Intended for tests and examples where
// indices are known valid.
func MustAt(m Matrix, i, j int) float64 {
	v, err := m.At(i, j)
	if err != nil {
		panic(fmt.Sprintf("matrix.MustAt: %v", err))
	}

	return v
}
