// SPDX-License-Identifier: MIT

// Package matrix offers a polymorphic matrix abstraction with two storage
// layouts and the arithmetic kernels that operate on them.
//
// The matrix package provides:
//
//   - Matrix, the capability interface every layout implements: shape, row
//     access, bounds-checked element access, Transpose, Clone and a Kind tag.
//   - Dense, which stores every element as rows of vector.Vector.
//   - UpperTri, which stores only the upper triangle of a square matrix; row i
//     holds columns [i, n) and writes below the diagonal are discarded.
//   - Add, Sub, Scale and Mul, dispatched on the left operand's Kind. The right
//     operand is read through At only, so layouts mix freely.
//   - Conversions (NewDenseFrom, NewUpperTriFrom), ownership moves
//     (MoveDense, MoveUpperTri), fixed-width rendering (Format) and a bridge to
//     gonum (ToGonum, FromGonum).
//
// Errors are package sentinels matched with errors.Is: ErrOutOfRange for
// index violations, ErrDimensionMismatch for incompatible shapes and
// ErrUnsupported for operations a layout does not provide (UpperTri.Transpose).
//
// All kernels are single-threaded and allocate a fresh result; operands are
// never mutated.
package matrix
