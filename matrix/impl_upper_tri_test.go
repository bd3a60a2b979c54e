package matrix_test

import (
	"testing"

	"github.com/cmm863/linalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewUpperTri(t *testing.T) {
	_, err := matrix.NewUpperTri(-2)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	u, err := matrix.NewUpperTri(3)
	require.NoError(t, err)
	require.Equal(t, 3, u.Rows())
	require.Equal(t, 3, u.Cols())
	require.Equal(t, matrix.KindUpperTriangular, u.Kind())

	// Row i stores columns [i, n).
	for i := 0; i < 3; i++ {
		row, err := u.Row(i)
		require.NoError(t, err)
		require.Equal(t, 3-i, row.Size())
	}
}

func TestUpperTriAccess(t *testing.T) {
	u := UpperOf(t,
		[]float64{1, 2, 3},
		[]float64{9, 4, 5},
		[]float64{9, 9, 6},
	)
	RequireEntries(t, u, [][]float64{{1, 2, 3}, {0, 4, 5}, {0, 0, 6}})

	row, err := u.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5}, row.Slice())

	_, err = u.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = u.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, u.Set(0, 3, 1), matrix.ErrOutOfRange)
}

// TestUpperTriSetBelowDiagonalIsNoOp checks that writes below the diagonal are
// discarded without error.
func TestUpperTriSetBelowDiagonalIsNoOp(t *testing.T) {
	u := UpperOf(t, []float64{1, 2}, []float64{0, 3})
	before := u.Clone()

	require.NoError(t, u.Set(1, 0, 42))
	require.Equal(t, 0.0, matrix.MustAt(u, 1, 0))
	require.True(t, matrix.Equal(before, u))
}

func TestUpperTriTransposeUnsupported(t *testing.T) {
	u := UpperOf(t, []float64{1, 2}, []float64{0, 3})
	tr, err := u.Transpose()
	require.Nil(t, tr)
	require.ErrorIs(t, err, matrix.ErrUnsupported)

	_, err = matrix.Transpose(u)
	require.ErrorIs(t, err, matrix.ErrUnsupported)
}

func TestUpperTriCloneAndMove(t *testing.T) {
	u := UpperOf(t, []float64{1, 2}, []float64{0, 3})
	c := u.Clone()
	require.Equal(t, matrix.KindUpperTriangular, c.Kind())
	require.NoError(t, c.Set(0, 1, 7))
	require.Equal(t, 2.0, matrix.MustAt(u, 0, 1))

	moved := matrix.MoveUpperTri(u)
	RequireEntries(t, moved, [][]float64{{1, 2}, {0, 3}})
	require.Equal(t, 0, u.Rows())
	require.Equal(t, 0, matrix.MoveUpperTri(nil).Rows())
}

func TestUpperTriString(t *testing.T) {
	u := UpperOf(t, []float64{1, 2}, []float64{5, 3})
	want := "           1           2\n" +
		"           0           3\n"
	require.Equal(t, want, u.String())
}
