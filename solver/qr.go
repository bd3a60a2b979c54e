package solver

import (
	"errors"
	"fmt"

	"github.com/cmm863/linalg/matrix"
	"github.com/cmm863/linalg/matrix/ops"
	"github.com/cmm863/linalg/vector"
)

const opQR = "QR"

// QR solves A·x = b through A = Q·R: b' = Qᵗ·b, then R·x = b' by Gaussian.
// A may be m×n with m ≥ n; for m > n the result is the least-squares solution
// minimizing ‖A·x − b‖. The zero value is ready to use.
type QR struct{}

var _ Solver = QR{}

// Solve returns x (length n) with a·x = b, or the least-squares x when a has
// more rows than columns. b must hold a.Rows() entries.
//
// Errors:
//   - matrix.ErrDimensionMismatch (m < n or len(b) ≠ m), ErrEmptySystem (n = 0);
//   - as Gaussian; a dependent column reports both ErrSingular and
//     ops.ErrRankDeficient (errors.Is matches either).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (QR) Solve(a matrix.Matrix, b *vector.Vector) (*vector.Vector, error) {
	if err := validateLeastSquares(a, b); err != nil {
		return nil, err
	}

	q, r, err := ops.QR(a)
	if err != nil {
		if errors.Is(err, ops.ErrRankDeficient) {
			return nil, fmt.Errorf("%s: %w: %w", opQR, ErrSingular, err)
		}
		return nil, fmt.Errorf("%s: %w", opQR, err)
	}
	qt, err := q.Transpose()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opQR, err)
	}
	bp, err := matrix.MatVec(qt, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opQR, err)
	}

	x, err := Gaussian{}.Solve(r, bp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opQR, err)
	}

	return x, nil
}

// validateLeastSquares checks a is m×n with m ≥ n > 0 and b has m entries.
func validateLeastSquares(a matrix.Matrix, b *vector.Vector) error {
	if err := matrix.ValidateNotNil(a); err != nil {
		return fmt.Errorf("%s: %w", opQR, err)
	}
	rows, cols := a.Rows(), a.Cols()
	if cols == 0 {
		return fmt.Errorf("%s: %w", opQR, ErrEmptySystem)
	}
	if rows < cols {
		return fmt.Errorf("%s: %dx%d has fewer rows than columns: %w", opQR, rows, cols, matrix.ErrDimensionMismatch)
	}
	if err := matrix.ValidateVecLen(b, rows); err != nil {
		return fmt.Errorf("%s: %w", opQR, err)
	}

	return nil
}
