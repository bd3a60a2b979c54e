package dirichlet

import (
	"fmt"

	"github.com/cmm863/linalg/matrix"
	"github.com/cmm863/linalg/solver"
	"github.com/cmm863/linalg/vector"
)

const (
	// Diagonal is the coefficient of the centre point of the stencil.
	Diagonal = 1.0
	// Weight is the share of each of the four neighbours.
	Weight = 0.25
)

// Assemble builds the (n-1)²×(n-1)² system A·u = b of the 5-point Laplacian
// on the unit square with Dirichlet data from bnd.
//
// Row Index(xi, yi) of A holds Diagonal at the centre and -Weight for every
// interior neighbour. A neighbour on the boundary contributes
// Weight·f(coordinate) to b instead, f being the edge function of that side.
//
// Errors: ErrResolution (n < 2), ErrBoundary (nil edge function).
// Complexity: O((n-1)⁴) for the dense allocation, O((n-1)²) writes.
func Assemble(n int, bnd Boundary) (*matrix.Dense, *vector.Vector, error) {
	g, err := NewGrid(n)
	if err != nil {
		return nil, nil, err
	}
	if err = bnd.Validate(); err != nil {
		return nil, nil, err
	}

	size := g.Size()
	a, err := matrix.NewSquareDense(size)
	if err != nil {
		return nil, nil, err
	}
	b := vector.Zeros(size)

	var (
		xi, yi, nx, ny, row int
		acc                 float64
	)
	for yi = 1; yi < n; yi++ {
		for xi = 1; xi < n; xi++ {
			row = g.Index(xi, yi)
			if err = a.Set(row, row, Diagonal); err != nil {
				return nil, nil, err
			}
			acc = 0
			for s, d := range conn4 {
				nx, ny = xi+d[0], yi+d[1]
				if g.InBounds(nx, ny) {
					if err = a.Set(row, g.Index(nx, ny), -Weight); err != nil {
						return nil, nil, err
					}
					continue
				}
				acc += Weight * bnd.Eval(Side(s), g.At(nx), g.At(ny))
			}
			_ = b.Set(row, acc)
		}
	}

	return a, b, nil
}

// Solve assembles the system for (n, bnd) and solves it with s.
// The returned vector holds u at the interior points in Index order.
func Solve(n int, bnd Boundary, s solver.Solver) (*vector.Vector, error) {
	a, b, err := Assemble(n, bnd)
	if err != nil {
		return nil, err
	}
	u, err := s.Solve(a, b)
	if err != nil {
		return nil, fmt.Errorf("dirichlet: n=%d: %w", n, err)
	}

	return u, nil
}
