// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, transpose,
// scalar scaling and matrix-vector product. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Resolve every binary operator through the layout of the LEFT operand
//     (its Kind); the right operand is read only through At.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Dense results are produced for every product; Add/Sub/Scale keep the
//     layout of the matrix they start from (a clone).

package matrix

import (
	"fmt"

	"github.com/cmm863/linalg/vector"
)

// ZeroSum is the initial sum value for dot products and substitution.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opDiagonal  = "Diagonal"
)

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: dispatch on a.Kind():
//     Dense    → out = clone(a); out(i,j) += sign*b(i,j). Fast path when b is *Dense (row kernels).
//     UpperTri → out = clone(b); out(i,j) = a(i,j) + sign*out(i,j) over every cell.
//
// Behavior highlights:
//   - Triangular left: the result layout is the layout of b. Reading a(i,j)=0
//     below the diagonal makes the result exactly a ± b wherever out can store it.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrUnsupported (unknown left Kind).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the clone.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	var (
		res    Matrix
		i, j   int
		av, bv float64
		err    error
	)
	switch a.Kind() {
	case KindDense:
		res = a.Clone()
		// Fast path: both backed by full rows → vector kernels per row.
		if dr, okR := res.(*Dense); okR {
			if db, okB := b.(*Dense); okB {
				for i = 0; i < rows; i++ {
					if sign > 0 {
						err = vector.AddInPlace(dr.rows[i], db.rows[i])
					} else {
						err = vector.SubInPlace(dr.rows[i], db.rows[i])
					}
					if err != nil {
						return nil, matrixErrorf(opTag, fmt.Errorf("row %d: %w", i, err))
					}
				}

				return res, nil
			}
		}
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				if av, err = res.At(i, j); err != nil {
					return nil, matrixErrorf(opTag, err)
				}
				if bv, err = b.At(i, j); err != nil {
					return nil, matrixErrorf(opTag, err)
				}
				if err = res.Set(i, j, av+sign*bv); err != nil {
					return nil, matrixErrorf(opTag, err)
				}
			}
		}

	case KindUpperTriangular:
		res = b.Clone()
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				if av, err = a.At(i, j); err != nil {
					return nil, matrixErrorf(opTag, err)
				}
				if bv, err = res.At(i, j); err != nil {
					return nil, matrixErrorf(opTag, err)
				}
				if err = res.Set(i, j, av+sign*bv); err != nil {
					return nil, matrixErrorf(opTag, err)
				}
			}
		}

	default:
		return nil, matrixErrorf(opTag, fmt.Errorf("left layout %s: %w", a.Kind(), ErrUnsupported))
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
//
// Behavior highlights:
//   - Dense left: C is a Dense clone of A accumulated with B.
//   - UpperTri left: C starts as a clone of B, so C keeps B's layout.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B.
// With an UpperTri left operand C starts as a clone of B and every cell becomes
// A(i,j) - C(i,j), so the sign always applies to the right operand.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Scale returns c*m in the layout of m: the clone's backing rows are scaled
// in place, so compact triangular rows stay compact.
// Complexity: O(stored elements).
func Scale(c float64, m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	switch m.Kind() {
	case KindDense, KindUpperTriangular:
	default:
		return nil, matrixErrorf(opScale, ErrUnsupported)
	}

	res := m.Clone()
	for i := 0; i < res.Rows(); i++ {
		row, err := res.Row(i)
		if err != nil {
			return nil, matrixErrorf(opScale, err)
		}
		vector.ScaleInPlace(c, row)
	}

	return res, nil
}

// Mul performs matrix multiplication C = A × B and always returns a Dense C.
//
// Implementation:
//   - Stage 1: dispatch on A.Kind().
//   - Dense left: ValidateMulCompatible (A.Cols == B.Rows). If both are *Dense,
//     use i→k→j with row kernels (AddScaled); otherwise i→j→k via At.
//     Every term enters the sum, zeros included, so 0·Inf and 0·NaN yield NaN.
//   - UpperTri left: require A.Cols == B.Cols (square case) and A.Cols == B.Rows;
//     accumulate only over k ∈ [i, n) since A(i,k) = 0 for k < i.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrUnsupported (unknown left Kind).
//
// Complexity:
//   - Time O(r*n*c) for Dense, about half that for UpperTri; Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	switch a.Kind() {
	case KindDense:
		return mulDense(a, b)
	case KindUpperTriangular:
		if a.Cols() != b.Cols() {
			return nil, matrixErrorf(opMul, fmt.Errorf("triangular left needs equal column counts %d != %d: %w",
				a.Cols(), b.Cols(), ErrDimensionMismatch))
		}

		return mulTriangular(a, b)
	default:
		return nil, matrixErrorf(opMul, fmt.Errorf("left layout %s: %w", a.Kind(), ErrUnsupported))
	}
}

// mulDense is the general triple loop with a Dense fast path.
func mulDense(a, b Matrix) (Matrix, error) {
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewZeros(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices: res.row(i) += a(i,k) * b.row(k).
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i = 0; i < aRows; i++ {
				for k = 0; k < aCols; k++ {
					av, _ = da.rows[i].At(k)
					if err = vector.AddScaled(res.rows[i], av, db.rows[k]); err != nil {
						return nil, matrixErrorf(opMul, err)
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			_ = res.rows[i].Set(j, current) // indices in range by construction
		}
	}

	return res, nil
}

// mulTriangular multiplies an upper-triangular left operand by any right operand.
func mulTriangular(a, b Matrix) (Matrix, error) {
	// b is n×cols, the shape of the product.
	n, cols := a.Rows(), b.Cols()
	res, err := ZerosLike(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < cols; j++ {
			current = ZeroSum
			for k = i; k < n; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			_ = res.rows[i].Set(j, current)
		}
	}

	return res, nil
}

// Transpose returns mᵀ through the layout's own Transpose.
// Errors: ErrNilMatrix; ErrUnsupported for layouts without a transpose (UpperTri).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	t, err := m.Transpose()
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return t, nil
}

// MatVec computes y = m·x.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateVecLen(x, m.Cols()).
//   - Stage 2: *Dense → y[i] = Dot(row_i, x); otherwise an At-based i→j loop.
//
// Errors:
//   - ErrNilMatrix, vector.ErrNilVector, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x *vector.Vector) (*vector.Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := vector.Zeros(rows)
	var (
		i, j        int
		mv, xv, sum float64
		err         error
	)
	if dm, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			if sum, err = vector.Dot(dm.rows[i], x); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			_ = y.Set(i, sum)
		}

		return y, nil
	}

	for i = 0; i < rows; i++ {
		sum = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			xv, _ = x.At(j)
			sum += mv * xv
		}
		_ = y.Set(i, sum)
	}

	return y, nil
}

// Diagonal returns the vector of m(i,i) for i < min(rows, cols).
func Diagonal(m Matrix) (*vector.Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	n := m.Rows()
	if m.Cols() < n {
		n = m.Cols()
	}
	d := vector.WithCapacity(n)
	for i := 0; i < n; i++ {
		v, err := m.At(i, i)
		if err != nil {
			return nil, matrixErrorf(opDiagonal, err)
		}
		d.Push(v)
	}

	return d, nil
}
