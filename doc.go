// Package linalg is a small, layered linear-algebra engine: a growable
// float64 vector, a Matrix capability with dense and upper-triangular
// layouts, direct solvers, Gram-Schmidt QR with QR-iteration eigenvalues,
// and a 5-point Dirichlet assembler for the unit square.
//
// Everything is organized under subpackages, leaves first:
//
//	vector/      - growable Vector, arithmetic, digit-truncated equality
//	matrix/      - Matrix interface, Dense, UpperTri, Add/Sub/Mul/Scale/MatVec
//	matrix/ops/  - QR factorization, QR-iteration eigensolver, options
//	solver/      - Solver interface, Gaussian elimination, QR solve
//	dirichlet/   - interior grid, boundary table, assembly, heat-map plot
//	matrixio/    - matrix literal reader, matrix/vector writers
//	cmd/linalg/  - arith, eigen and dirichlet commands
//
// Binary operators dispatch on the left operand's layout and read the right
// operand only through At, so any two layouts combine:
//
//	A (dense)   + U (upper)  → dense
//	U (upper)   · A (dense)  → dense
//	U (upper)ᵀ               → matrix.ErrUnsupported
//
// The engine is single-threaded; Clone is the only way to share derived data.
//
//	go get github.com/cmm863/linalg
package linalg
