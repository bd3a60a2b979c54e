package dirichlet

import "github.com/cmm863/linalg/vector"

// Reference returns the boundary table of the demonstration problem:
//
//	XLower(y) = 1 + y²    XUpper(y) = 0
//	YLower(x) = 1 − x²    YUpper(x) = 2(1 − x²)
//
// It matches ReferenceSolution on every edge.
func Reference() Boundary {
	return Boundary{
		XLower: func(y float64) float64 { return 1 + y*y },
		XUpper: func(float64) float64 { return 0 },
		YLower: func(x float64) float64 { return 1 - x*x },
		YUpper: func(x float64) float64 { return 2 * (1 - x*x) },
	}
}

// ReferenceSolution is u(x, y) = (1 − x²)(1 + y²), the closed form the
// Reference boundary table is sampled from.
func ReferenceSolution(x, y float64) float64 {
	return (1 - x*x) * (1 + y*y)
}

// Sample evaluates f at every interior point of the resolution-n grid, in
// Index order, so the result lines up with a solution of Assemble(n, ...).
// Returns ErrResolution if n < 2.
func Sample(n int, f func(x, y float64) float64) (*vector.Vector, error) {
	g, err := NewGrid(n)
	if err != nil {
		return nil, err
	}
	out := vector.WithCapacity(g.Size())
	for yi := 1; yi < n; yi++ {
		for xi := 1; xi < n; xi++ {
			out.Push(f(g.At(xi), g.At(yi)))
		}
	}

	return out, nil
}
