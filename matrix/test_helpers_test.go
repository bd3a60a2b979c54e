// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for layouts/kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/cmm863/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Embed matrix.Matrix to forward all methods (Kind included).
//   - Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one *Dense to isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// DenseOf BUILDS a *Dense from row-major literals or fails the test.
func DenseOf(t *testing.T, rows ...[]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// UpperOf BUILDS an *UpperTri from square row-major literals; entries below the
// diagonal are dropped.
func UpperOf(t *testing.T, rows ...[]float64) *matrix.UpperTri {
	t.Helper()
	u, err := matrix.NewUpperTriFrom(DenseOf(t, rows...))
	require.NoError(t, err)

	return u
}

// RequireEntries ASSERTS every element of m against want (exact comparison).
func RequireEntries(t *testing.T, m matrix.Matrix, want [][]float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i, row := range want {
		require.Equal(t, len(row), m.Cols(), "cols")
		for j, w := range row {
			got, err := m.At(i, j)
			require.NoError(t, err)
			require.Equalf(t, w, got, "(%d,%d)", i, j)
		}
	}
}

// RequireClose ASSERTS AllClose(got, want, 0, tol).
func RequireClose(t *testing.T, want, got matrix.Matrix, tol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "want:\n%s\ngot:\n%s", matrix.Format(want), matrix.Format(got))
}
