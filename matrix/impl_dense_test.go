// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/cmm863/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions
// and accepts the empty shape.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 5)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, "", m.String())
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, matrix.KindDense, m.Kind())

	var zero matrix.Dense
	require.Equal(t, 0, zero.Rows())
	require.Equal(t, 0, zero.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "Dense.Row(2,0)")
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.5))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 7.5}, row.Slice())
}

// TestRowIsBacking checks that writes through Row are visible in the matrix.
func TestRowIsBacking(t *testing.T) {
	m := MustDense(t, 2, 2)
	row, err := m.Row(0)
	require.NoError(t, err)
	require.NoError(t, row.Set(1, 9))
	require.Equal(t, 9.0, matrix.MustAt(m, 0, 1))
}

// TestNewDenseFromRowsRagged rejects rows of unequal length.
func TestNewDenseFromRowsRagged(t *testing.T) {
	_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestCloneIndependence ensures that Clone() produces an independent deep copy.
func TestCloneIndependence(t *testing.T) {
	m := DenseOf(t, []float64{1, 2}, []float64{3, 4})
	c := m.Clone()
	require.Equal(t, matrix.KindDense, c.Kind())

	require.NoError(t, c.Set(0, 0, 100))
	require.Equal(t, 1.0, matrix.MustAt(m, 0, 0))
	require.Equal(t, 100.0, matrix.MustAt(c, 0, 0))
}

// TestDenseTranspose checks shape swap and element mapping, and that a double
// transpose is the identity.
func TestDenseTranspose(t *testing.T) {
	m := DenseOf(t, []float64{1, 2, 3}, []float64{4, 5, 6})
	tr, err := m.Transpose()
	require.NoError(t, err)
	RequireEntries(t, tr, [][]float64{{1, 4}, {2, 5}, {3, 6}})

	back, err := matrix.Transpose(tr)
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, back))
}

// TestMoveDense transfers storage and leaves the source empty.
func TestMoveDense(t *testing.T) {
	src := DenseOf(t, []float64{1, 2}, []float64{3, 4})
	dst := matrix.MoveDense(src)

	RequireEntries(t, dst, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, 0, src.Rows())
	require.Equal(t, 0, src.Cols())
	_, err := src.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.Equal(t, 0, matrix.MoveDense(nil).Rows())
}

// TestDenseString checks the fixed-width rendering.
func TestDenseString(t *testing.T) {
	m := DenseOf(t, []float64{1, 2.5}, []float64{-3, 0})
	want := "           1         2.5\n" +
		"          -3           0\n"
	require.Equal(t, want, m.String())
}
