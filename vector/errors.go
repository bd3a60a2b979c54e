// SPDX-License-Identifier: MIT

package vector

import "errors"

var (
	// ErrIndexOutOfRange indicates an index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrLengthMismatch indicates that two operands of an element-wise
	// operation (Add, Sub, Dot) have different sizes.
	ErrLengthMismatch = errors.New("vector: length mismatch")

	// ErrNilVector indicates that a nil *Vector was passed to an operation.
	ErrNilVector = errors.New("vector: nil vector")
)
