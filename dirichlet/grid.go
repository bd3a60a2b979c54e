package dirichlet

import (
	"fmt"
	"math"
)

// conn4 lists the 5-point stencil neighbours as (dx, dy) offsets.
// The offset at position s crosses the edge Side(s) when it leaves the interior.
var conn4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid is the interior of the uniform lattice with n intervals per axis on the
// unit square: points (i·h, j·h) with h = 1/n and 1 ≤ i, j ≤ n-1.
// Indices 0 and n lie on the boundary.
// Grid is immutable once built.
type Grid struct {
	n int     // intervals per axis
	h float64 // spacing 1/n
}

// NewGrid returns the interior grid of resolution n.
// Returns ErrResolution if n < 2.
// Complexity: O(1).
func NewGrid(n int) (*Grid, error) {
	if n < 2 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrResolution)
	}

	return &Grid{n: n, h: 1 / float64(n)}, nil
}

// N returns the resolution.
func (g *Grid) N() int { return g.n }

// Spacing returns h = 1/n.
func (g *Grid) Spacing() float64 { return g.h }

// Width returns the number of interior points per axis, n-1.
func (g *Grid) Width() int { return g.n - 1 }

// Size returns the number of interior points, (n-1)².
func (g *Grid) Size() int { return (g.n - 1) * (g.n - 1) }

// InBounds reports whether (xi, yi) is an interior grid point.
// Complexity: O(1).
func (g *Grid) InBounds(xi, yi int) bool {
	return xi >= 1 && xi < g.n && yi >= 1 && yi < g.n
}

// Index maps interior point (xi, yi) to its row: (n-1)·(yi-1) + (xi-1).
// Complexity: O(1).
func (g *Grid) Index(xi, yi int) int {
	return g.Width()*(yi-1) + (xi - 1)
}

// Coordinate converts a row index back to grid indices (xi, yi).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (xi, yi int) {
	return idx%g.Width() + 1, idx/g.Width() + 1
}

// At returns the coordinate i·h of grid index i.
func (g *Grid) At(i int) float64 { return float64(i) * g.h }

// PointIndex maps the coordinates (x, y) to the row of the nearest grid point.
// Returns ErrPoint when that point is not interior.
func (g *Grid) PointIndex(x, y float64) (int, error) {
	xi := int(math.Round(x * float64(g.n)))
	yi := int(math.Round(y * float64(g.n)))
	if !g.InBounds(xi, yi) {
		return 0, fmt.Errorf("(%g,%g): %w", x, y, ErrPoint)
	}

	return g.Index(xi, yi), nil
}
