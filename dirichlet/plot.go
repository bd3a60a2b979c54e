package dirichlet

import (
	"fmt"

	"github.com/cmm863/linalg/vector"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	// PaletteColors is the number of colours in the heat-map palette.
	PaletteColors = 32
	// PlotSize is the width and height of saved images.
	PlotSize = 12 * vg.Centimeter
)

// solutionGrid exposes an interior solution as a plotter.GridXYZ.
// Column c and row r address interior point (c+1, r+1).
type solutionGrid struct {
	g *Grid
	u *vector.Vector
}

var _ plotter.GridXYZ = solutionGrid{}

func (s solutionGrid) Dims() (c, r int) { return s.g.Width(), s.g.Width() }

func (s solutionGrid) Z(c, r int) float64 {
	v, _ := s.u.At(s.g.Index(c+1, r+1)) // size checked by Plot
	return v
}

func (s solutionGrid) X(c int) float64 { return s.g.At(c + 1) }

func (s solutionGrid) Y(r int) float64 { return s.g.At(r + 1) }

// Plot renders u, a solution of the resolution-n problem in Index order, as a
// heat map over the unit square.
// Errors: ErrResolution, ErrSolution (u.Size() != (n-1)²).
func Plot(u *vector.Vector, n int) (*plot.Plot, error) {
	g, err := NewGrid(n)
	if err != nil {
		return nil, err
	}
	if u == nil || u.Size() != g.Size() {
		return nil, fmt.Errorf("want %d values: %w", g.Size(), ErrSolution)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Dirichlet solution, n=%d", n)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	p.Add(plotter.NewHeatMap(solutionGrid{g: g, u: u}, palette.Heat(PaletteColors, 1)))

	return p, nil
}

// SavePlot renders u with Plot and writes it to path; the image format follows
// the file extension (.png, .svg, .pdf, ...).
func SavePlot(u *vector.Vector, n int, path string) error {
	p, err := Plot(u, n)
	if err != nil {
		return err
	}
	if err = p.Save(PlotSize, PlotSize, path); err != nil {
		return fmt.Errorf("dirichlet: save %s: %w", path, err)
	}

	return nil
}
