package matrixio_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cmm863/linalg/matrix"
	"github.com/cmm863/linalg/matrixio"
	"github.com/cmm863/linalg/vector"
	"github.com/stretchr/testify/require"
)

const literal = `# 3x3 test input
3
1 2 3
4 5 6
7 8 9
`

func TestReadSquareDense(t *testing.T) {
	m, err := matrixio.ReadSquare(strings.NewReader(literal), matrix.KindDense)
	require.NoError(t, err)
	require.Equal(t, matrix.KindDense, m.Kind())
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 6.0, matrix.MustAt(m, 1, 2))
	require.Equal(t, 7.0, matrix.MustAt(m, 2, 0))
}

func TestReadSquareUpperDropsLowerTokens(t *testing.T) {
	m, err := matrixio.ReadSquare(strings.NewReader(literal), matrix.KindUpperTriangular)
	require.NoError(t, err)
	require.Equal(t, matrix.KindUpperTriangular, m.Kind())
	require.Equal(t, 0.0, matrix.MustAt(m, 2, 0))
	require.Equal(t, 9.0, matrix.MustAt(m, 2, 2))
}

func TestReadSquareErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", io.ErrUnexpectedEOF},
		{"bad size", "x 1", matrixio.ErrMalformed},
		{"negative size", "-2", matrixio.ErrMalformed},
		{"bad value", "2 1 2 three 4", matrixio.ErrMalformed},
		{"short", "2 1 2 3", io.ErrUnexpectedEOF},
		{"size without values", "4096", io.ErrUnexpectedEOF},
		{"oversized", "100000", matrixio.ErrTooLarge},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrixio.ReadSquare(strings.NewReader(tc.input), matrix.KindDense)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := matrixio.ReadSquare(strings.NewReader("1 1"), matrix.Kind(9))
	require.ErrorIs(t, err, matrix.ErrUnsupported)
}

func TestWriteReadRoundTrip(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1.5, -2}, {0.25, 1e6}})
	require.NoError(t, err)

	var buf bytes.Buffer
	buf.WriteString("2\n")
	require.NoError(t, matrixio.WriteMatrix(&buf, m))

	back, err := matrixio.ReadSquare(&buf, matrix.KindDense)
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, back))
}

func TestReadSquareFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dense_input.in")
	require.NoError(t, os.WriteFile(path, []byte(literal), 0o600))

	m, err := matrixio.ReadSquareFile(path, matrix.KindDense)
	require.NoError(t, err)
	require.Equal(t, 3, m.Cols())

	_, err = matrixio.ReadSquareFile(filepath.Join(t.TempDir(), "missing.in"), matrix.KindDense)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, matrixio.WriteVector(&buf, vector.FromSlice(1, 2.5, -3)))
	require.Equal(t, "1, 2.5, -3\n", buf.String())

	buf.Reset()
	u, err := matrix.NewUpperTri(1)
	require.NoError(t, err)
	require.NoError(t, u.Set(0, 0, 4))
	require.NoError(t, matrixio.WriteSection(&buf, "Sum", u))
	require.Equal(t, "=== Sum ===\n           4\n\n", buf.String())
}
