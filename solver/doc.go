// Package solver - direct solvers for square linear systems A·x = b.
//
// Two methods are provided behind one Solver interface:
//
//   - Gaussian: forward elimination without pivoting, then back-substitution.
//   - QR:       A = Q·R (Gram-Schmidt), b' = Qᵗ·b, then Gaussian on (R, b').
//     A may be tall (m > n); the result is then the least-squares solution.
//
// Design principles:
//   - Inputs are never mutated: elimination runs on A.Clone(), which keeps the
//     layout (an upper-triangular A is already eliminated).
//   - Strict sentinels: ErrSingular for an exactly zero pivot, ErrNonFinite
//     for an Inf/NaN in the solution, matrix.ErrDimensionMismatch for shape errors.
//   - Near-zero pivots are NOT guarded. Elimination without row exchanges is
//     unstable for such inputs; precondition or reorder A first.
//
// Complexity: Gaussian O(n³); QR O(n³) (factorization dominates).
package solver
