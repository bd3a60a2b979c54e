package solver

import (
	"fmt"
	"math"

	"github.com/cmm863/linalg/matrix"
	"github.com/cmm863/linalg/vector"
)

const opGauss = "Gaussian"

// Gaussian solves square systems by elimination without pivoting.
// The zero value is ready to use.
type Gaussian struct{}

var _ Solver = Gaussian{}

// Solve returns x with a·x = b.
//
// Implementation:
//   - Stage 1: validate; w = a.Clone(), rhs = b.Clone().
//   - Stage 2: for each pivot j, for each row i > j: c = w(i,j)/w(j,j);
//     row_i -= c·row_j and rhs_i -= c·rhs_j.
//   - Stage 3: back-substitute from the last row:
//     x_i = (rhs_i − Σ_{k>i} w(i,k)·x_k) / w(i,i).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, vector.ErrNilVector,
//     ErrEmptySystem, ErrSingular (zero pivot), ErrNonFinite.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working clone.
func (Gaussian) Solve(a matrix.Matrix, b *vector.Vector) (*vector.Vector, error) {
	n, err := validateSystem(opGauss, a, b)
	if err != nil {
		return nil, err
	}
	w := matrix.CloneMatrix(a)
	rhs := b.Clone()

	if err = eliminate(w, rhs, n); err != nil {
		return nil, fmt.Errorf("%s: %w", opGauss, err)
	}
	x, err := backSubstitute(w, rhs, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGauss, err)
	}

	return x, nil
}

// eliminate reduces w to upper-triangular form in place, updating rhs alongside.
// Dense rows are combined with vector kernels; other layouts go through At/Set
// (below-diagonal writes on a triangular w are discarded, its c is always 0).
func eliminate(w matrix.Matrix, rhs *vector.Vector, n int) error {
	dense, isDense := w.(*matrix.Dense)
	var (
		i, j, k       int
		pivot, wij, c float64
		wjk, wik      float64
		rj, ri        float64
		err           error
	)
	for j = 0; j < n; j++ {
		if pivot, err = w.At(j, j); err != nil {
			return err
		}
		if pivot == 0 {
			return fmt.Errorf("pivot %d: %w", j, ErrSingular)
		}
		rj, _ = rhs.At(j)
		for i = j + 1; i < n; i++ {
			if wij, err = w.At(i, j); err != nil {
				return err
			}
			c = wij / pivot
			if c == 0 {
				continue
			}
			if isDense {
				rowI, _ := dense.Row(i)
				rowJ, _ := dense.Row(j)
				if err = vector.AddScaled(rowI, -c, rowJ); err != nil {
					return err
				}
			} else {
				for k = j; k < n; k++ {
					wjk, _ = w.At(j, k)
					wik, _ = w.At(i, k)
					if err = w.Set(i, k, wik-c*wjk); err != nil {
						return err
					}
				}
			}
			ri, _ = rhs.At(i)
			_ = rhs.Set(i, ri-c*rj)
		}
	}

	return nil
}

// backSubstitute solves the upper-triangular system held in w.
func backSubstitute(w matrix.Matrix, rhs *vector.Vector, n int) (*vector.Vector, error) {
	x := vector.Zeros(n)
	var (
		sum, wik, xk, wii float64
		err               error
	)
	for i := n - 1; i >= 0; i-- {
		sum, _ = rhs.At(i)
		for k := i + 1; k < n; k++ {
			if wik, err = w.At(i, k); err != nil {
				return nil, err
			}
			xk, _ = x.At(k)
			sum -= wik * xk
		}
		if wii, err = w.At(i, i); err != nil {
			return nil, err
		}
		if wii == 0 {
			return nil, fmt.Errorf("pivot %d: %w", i, ErrSingular)
		}
		xi := sum / wii
		if math.IsNaN(xi) || math.IsInf(xi, 0) {
			return nil, fmt.Errorf("x[%d]=%v: %w", i, xi, ErrNonFinite)
		}
		_ = x.Set(i, xi)
	}

	return x, nil
}
