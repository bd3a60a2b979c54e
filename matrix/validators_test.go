package matrix_test

import (
	"testing"

	"github.com/cmm863/linalg/matrix"
	"github.com/cmm863/linalg/vector"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	sq := MustDense(t, 2, 2)
	rect := MustDense(t, 2, 3)

	require.NoError(t, matrix.ValidateShape(0, 0))
	require.ErrorIs(t, matrix.ValidateShape(-1, 1), matrix.ErrBadShape)

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateMulCompatible(sq, rect))
	require.ErrorIs(t, matrix.ValidateMulCompatible(rect, sq), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(sq, rect), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateVecLen(vector.Zeros(2), 2))
	require.ErrorIs(t, matrix.ValidateVecLen(vector.Zeros(3), 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), vector.ErrNilVector)
}
