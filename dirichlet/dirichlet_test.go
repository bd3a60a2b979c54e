package dirichlet_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cmm863/linalg/dirichlet"
	"github.com/cmm863/linalg/matrix"
	"github.com/cmm863/linalg/solver"
	"github.com/cmm863/linalg/vector"
	"github.com/stretchr/testify/require"
)

// harmonic is u = x² − y²; the 5-point stencil reproduces it exactly.
func harmonic(x, y float64) float64 { return x*x - y*y }

func harmonicBoundary() dirichlet.Boundary {
	return dirichlet.Boundary{
		XLower: func(y float64) float64 { return harmonic(0, y) },
		XUpper: func(y float64) float64 { return harmonic(1, y) },
		YLower: func(x float64) float64 { return harmonic(x, 0) },
		YUpper: func(x float64) float64 { return harmonic(x, 1) },
	}
}

func TestGridIndexing(t *testing.T) {
	g, err := dirichlet.NewGrid(4)
	require.NoError(t, err)
	require.Equal(t, 3, g.Width())
	require.Equal(t, 9, g.Size())
	require.Equal(t, 0.25, g.Spacing())

	require.Equal(t, 0, g.Index(1, 1))
	require.Equal(t, 2, g.Index(3, 1))
	require.Equal(t, 3, g.Index(1, 2))
	xi, yi := g.Coordinate(4)
	require.Equal(t, [2]int{2, 2}, [2]int{xi, yi})

	require.True(t, g.InBounds(1, 3))
	require.False(t, g.InBounds(0, 2))
	require.False(t, g.InBounds(2, 4))

	idx, err := g.PointIndex(0.5, 0.5)
	require.NoError(t, err)
	require.Equal(t, 4, idx)
	idx, err = g.PointIndex(0.75, 0.25)
	require.NoError(t, err)
	require.Equal(t, 2, idx)
	_, err = g.PointIndex(0, 0.5)
	require.ErrorIs(t, err, dirichlet.ErrPoint)

	_, err = dirichlet.NewGrid(1)
	require.ErrorIs(t, err, dirichlet.ErrResolution)
}

// TestAssembleStencil checks the n=4 system: 9×9, one 1.0 on each diagonal
// and at most four -0.25 per row, exactly one per interior neighbour.
func TestAssembleStencil(t *testing.T) {
	a, b, err := dirichlet.Assemble(4, dirichlet.Reference())
	require.NoError(t, err)
	require.Equal(t, 9, a.Rows())
	require.Equal(t, 9, a.Cols())
	require.Equal(t, 9, b.Size())

	g, err := dirichlet.NewGrid(4)
	require.NoError(t, err)
	for row := 0; row < 9; row++ {
		var ones, quarters, others int
		for col := 0; col < 9; col++ {
			switch v := matrix.MustAt(a, row, col); {
			case v == 1 && col == row:
				ones++
			case v == -0.25:
				quarters++
			case v != 0:
				others++
			}
		}
		xi, yi := g.Coordinate(row)
		interior := 0
		for _, d := range [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			if g.InBounds(xi+d[0], yi+d[1]) {
				interior++
			}
		}
		require.Equal(t, 1, ones, "row %d", row)
		require.LessOrEqual(t, quarters, 4)
		require.Equal(t, interior, quarters, "row %d", row)
		require.Zero(t, others)
	}

	// Corner (1,1) folds YLower(0.25) and XLower(0.25); the centre folds nothing.
	b0, _ := b.At(0)
	require.Equal(t, 0.25*(0.9375+1.0625), b0)
	b4, _ := b.At(4)
	require.Equal(t, 0.0, b4)
	// Right-middle point (3,2) folds XUpper(0.5) = 0.
	b5, _ := b.At(5)
	require.Equal(t, 0.0, b5)
	// Top-middle point (2,3) folds YUpper(0.5) = 1.5.
	b7, _ := b.At(7)
	require.Equal(t, 0.25*1.5, b7)
}

func TestAssembleErrors(t *testing.T) {
	_, _, err := dirichlet.Assemble(1, dirichlet.Reference())
	require.ErrorIs(t, err, dirichlet.ErrResolution)

	bnd := dirichlet.Reference()
	bnd.YUpper = nil
	_, _, err = dirichlet.Assemble(4, bnd)
	require.ErrorIs(t, err, dirichlet.ErrBoundary)
	require.Contains(t, err.Error(), "YUpper")
}

// TestSolveHarmonicExact checks both solvers reproduce a harmonic quadratic.
func TestSolveHarmonicExact(t *testing.T) {
	want, err := dirichlet.Sample(6, harmonic)
	require.NoError(t, err)

	for _, s := range []solver.Solver{solver.Gaussian{}, solver.QR{}} {
		u, err := dirichlet.Solve(6, harmonicBoundary(), s)
		require.NoError(t, err)
		require.InDeltaSlice(t, want.Slice(), u.Slice(), 1e-9)
	}
}

func TestReference(t *testing.T) {
	bnd := dirichlet.Reference()
	for _, s := range []float64{0, 0.3, 1} {
		require.Equal(t, dirichlet.ReferenceSolution(0, s), bnd.XLower(s))
		require.Equal(t, dirichlet.ReferenceSolution(1, s), bnd.XUpper(s))
		require.Equal(t, dirichlet.ReferenceSolution(s, 0), bnd.YLower(s))
		require.InDelta(t, dirichlet.ReferenceSolution(s, 1), bnd.YUpper(s), 1e-15)
	}

	c, err := dirichlet.Sample(4, dirichlet.ReferenceSolution)
	require.NoError(t, err)
	require.Equal(t, 9, c.Size())
	c0, _ := c.At(0)
	require.Equal(t, (1-0.0625)*(1+0.0625), c0)

	u, err := dirichlet.Solve(4, bnd, solver.Gaussian{})
	require.NoError(t, err)
	require.Equal(t, 9, u.Size())
	// The discrete maximum principle bounds u by its boundary data.
	for _, v := range u.Slice() {
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 2.0)
	}
}

func TestSavePlot(t *testing.T) {
	u, err := dirichlet.Solve(5, dirichlet.Reference(), solver.Gaussian{})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "u.png")
	require.NoError(t, dirichlet.SavePlot(u, 5, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())

	_, err = dirichlet.Plot(vector.Zeros(3), 5)
	require.ErrorIs(t, err, dirichlet.ErrSolution)
	_, err = dirichlet.Plot(u, 1)
	require.ErrorIs(t, err, dirichlet.ErrResolution)
}
