// SPDX-License-Identifier: MIT
// Package ops - eigenvalue estimation by unshifted QR iteration.
package ops

import (
	"fmt"

	"github.com/cmm863/linalg/matrix"
	"github.com/cmm863/linalg/vector"
)

const opEigen = "Eigenvalues"

// EigenResult is the outcome of Eigenvalues.
type EigenResult struct {
	// Values is the diagonal of the last A_k: the eigenvalue estimates.
	Values *vector.Vector
	// Iterations counts the A_k formed, A_0 included.
	Iterations int
	// Converged reports that two successive estimates matched at the
	// configured precision before the iteration bound was reached.
	Converged bool
	// Final is the last A_k.
	Final matrix.Matrix
}

// Eigenvalues estimates the eigenvalues of the square matrix a by QR iteration:
// A_0 = a, A_k = Q_k·R_k, A_{k+1} = R_k·Q_k.
//
// Implementation:
//   - Stage 1: validate a (square, non-empty) and maxIter ≥ 1.
//   - Stage 2: for k = 0..maxIter-1: form A_k, record diag(A_k); stop when it
//     equals the previous estimate at opts digits (vector.EqualDigits);
//     otherwise factor A_k. The iterate at the bound is recorded, not factored.
//
// Behavior highlights:
//   - Running out of iterations is not an error: the last estimate is returned
//     with Converged == false.
//   - R_k·Q_k goes through the triangular-left product (k ≥ i accumulation).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square),
//     matrix.ErrBadShape (0×0), ErrBadIterations, and QR errors
//     (ErrRankDeficient for singular iterates).
//
// Complexity:
//   - Time O(maxIter·n³), Space O(n²).
//
// Notes:
//   - Converges for real, well-separated eigenvalues. Complex or repeated
//     eigenvalues may exhaust maxIter.
func Eigenvalues(a matrix.Matrix, maxIter int, opts ...Option) (*EigenResult, error) {
	// Stage 1: validate input
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opEigen, err)
	}
	n := a.Rows()
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", opEigen, matrix.ErrBadShape)
	}
	if maxIter < 1 {
		return nil, fmt.Errorf("%s: %d: %w", opEigen, maxIter, ErrBadIterations)
	}
	o := gatherOptions(opts...)

	// Stage 2: iterate
	var (
		ak            matrix.Matrix
		q             *matrix.Dense
		r             *matrix.UpperTri
		past, current *vector.Vector
		res           = &EigenResult{}
		err           error
	)
	for it := 0; it < maxIter; it++ {
		if it == 0 {
			ak = a.Clone()
		} else if ak, err = matrix.Mul(r, q); err != nil {
			return nil, fmt.Errorf("%s: iteration %d: %w", opEigen, it, err)
		}
		res.Iterations = it + 1

		if current, err = matrix.Diagonal(ak); err != nil {
			return nil, fmt.Errorf("%s: %w", opEigen, err)
		}
		if o.trace != nil {
			o.trace(it, current)
		}
		if it > 0 && vector.EqualDigits(current, past, o.digits) {
			res.Converged = true
			break
		}
		if it == maxIter-1 {
			break // bound reached; A_k is not factored again
		}

		if q, r, err = QR(ak); err != nil {
			return nil, fmt.Errorf("%s: iteration %d: %w", opEigen, it, err)
		}
		past = current
	}

	res.Values = current.Clone()
	res.Final = ak

	return res, nil
}
