// SPDX-License-Identifier: MIT

// Package vector provides a growable float64 vector used as the row storage
// of every matrix layout in linalg.
//
// What:
//
//   - Vector tracks a logical size (elements in use) and a capacity (backing
//     storage). Capacity starts at 1 and doubles whenever Push overflows it.
//   - Indices [0, Size()) are readable and writable; anything else returns
//     ErrIndexOutOfRange.
//   - Add, Sub and Dot require equal sizes and return ErrLengthMismatch
//     otherwise; the result is never silently truncated.
//   - Equal compares element-wise after truncating to DefaultDigits decimal
//     digits, which absorbs floating-point noise in convergence checks.
//
// Complexity:
//
//   - Push: amortized O(1). At/Set: O(1).
//   - Magnitude, Add, Sub, Scale, Dot, Equal: O(n).
//
// Kernels delegate to gonum.org/v1/gonum/floats once sizes are validated.
package vector
