// SPDX-License-Identifier: MIT
// Package ops - QR decomposition by classical Gram-Schmidt.
//
// QR computes A = Q·R for an m×n matrix (m ≥ n): Q has orthonormal columns,
// R is n×n upper triangular. Work is done on the rows of Aᵀ so every
// projection is a dot product of two backing row vectors.
package ops

import (
	"fmt"
	"math"

	"github.com/cmm863/linalg/matrix"
	"github.com/cmm863/linalg/vector"
)

const opQR = "QR"

// QR returns Q (*matrix.Dense, m×n) and R (*matrix.UpperTri, n×n) with A = Q·R.
//
// Implementation:
//   - Stage 1: validate A (non-nil, m ≥ n); X = Aᵀ as Dense (any layout is
//     first expanded to Dense), Qt = clone(X).
//   - Stage 2: for i = 0..n-1, for j = i-1 … 0:
//     Qt[i] -= ((X[i]·Qt[j]) / (Qt[j]·Qt[j])) · Qt[j]; then Qt[i] /= ‖Qt[i]‖.
//   - Stage 3: Q = Qtᵀ, R = Qt·A stored in compact triangular form.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (m < n),
//     ErrRankDeficient (a column with zero or non-finite norm).
//
// Complexity:
//   - Time O(m·n²), Space O(m·n).
//
// Notes:
//   - Classical (not modified) Gram-Schmidt: projections use the original
//     column X[i]. Orthogonality degrades on ill-conditioned inputs.
//   - R's entries below the diagonal are round-off and are dropped.
func QR(a matrix.Matrix) (*matrix.Dense, *matrix.UpperTri, error) {
	// Stage 1: Validate input dimensions
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opQR, err)
	}
	rows, cols := a.Rows(), a.Cols()
	if rows < cols {
		return nil, nil, fmt.Errorf("%s: %dx%d has fewer rows than columns: %w",
			opQR, rows, cols, matrix.ErrDimensionMismatch)
	}

	ad, err := matrix.NewDenseFrom(a)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opQR, err)
	}
	xt, err := ad.Transpose()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opQR, err)
	}
	qt := xt.Clone()

	// Stage 2: orthogonalize, then normalize, row by row
	var (
		i, j             int
		xi, qi, qj       *vector.Vector
		top, bottom, nrm float64
	)
	for i = 0; i < cols; i++ {
		xi, _ = xt.Row(i) // i < cols == xt.Rows()
		qi, _ = qt.Row(i)
		for j = i - 1; j >= 0; j-- {
			qj, _ = qt.Row(j)
			if top, err = vector.Dot(xi, qj); err != nil {
				return nil, nil, fmt.Errorf("%s: %w", opQR, err)
			}
			if bottom, err = vector.Dot(qj, qj); err != nil {
				return nil, nil, fmt.Errorf("%s: %w", opQR, err)
			}
			if err = vector.AddScaled(qi, -top/bottom, qj); err != nil {
				return nil, nil, fmt.Errorf("%s: %w", opQR, err)
			}
		}
		nrm = qi.Magnitude()
		if nrm == 0 || math.IsNaN(nrm) || math.IsInf(nrm, 0) {
			return nil, nil, fmt.Errorf("%s: column %d: %w", opQR, i, ErrRankDeficient)
		}
		vector.ScaleInPlace(1/nrm, qi)
	}

	// Stage 3: Q = Qtᵀ and R = Qt·A
	qm, err := qt.Transpose()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opQR, err)
	}
	q, ok := qm.(*matrix.Dense)
	if !ok {
		return nil, nil, fmt.Errorf("%s: Q layout %s: %w", opQR, qm.Kind(), matrix.ErrUnsupported)
	}
	rd, err := matrix.Mul(qt, ad)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opQR, err)
	}
	r, err := matrix.NewUpperTriFrom(rd)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opQR, err)
	}

	return q, r, nil
}
