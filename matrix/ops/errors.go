// Package ops provides matrix decompositions built on the matrix package:
// Gram-Schmidt QR factorization and the QR-iteration eigenvalue solver.
package ops

import "errors"

// ErrRankDeficient is returned when a column becomes zero (or non-finite)
// during orthogonalization, so it cannot be normalized.
var ErrRankDeficient = errors.New("ops: rank-deficient input, zero column during orthogonalization")

// ErrBadIterations is returned when the iteration bound is below 1.
var ErrBadIterations = errors.New("ops: iteration bound must be at least 1")
