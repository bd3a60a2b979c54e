// Package dirichlet defines the boundary table, grid connectivity and
// sentinel errors of the 5-point Dirichlet assembler.
package dirichlet

import (
	"errors"
	"fmt"
)

// Sentinel errors for dirichlet operations.
var (
	// ErrResolution indicates a grid resolution n < 2 (no interior point).
	ErrResolution = errors.New("dirichlet: resolution must be at least 2")
	// ErrBoundary indicates a missing boundary function.
	ErrBoundary = errors.New("dirichlet: boundary function is nil")
	// ErrPoint indicates a coordinate that is not an interior grid point.
	ErrPoint = errors.New("dirichlet: point is not an interior grid point")
	// ErrSolution indicates a solution vector whose size does not match the grid.
	ErrSolution = errors.New("dirichlet: solution size does not match grid")
)

// Func is a boundary function of one coordinate on the unit interval.
type Func func(t float64) float64

// Boundary holds the four edge functions of the unit square.
//   - XLower(y): values on x = 0;  XUpper(y): values on x = 1.
//   - YLower(x): values on y = 0;  YUpper(x): values on y = 1.
type Boundary struct {
	XLower, XUpper Func
	YLower, YUpper Func
}

// Validate reports ErrBoundary when any edge function is nil.
func (b Boundary) Validate() error {
	switch {
	case b.XLower == nil:
		return fmt.Errorf("%w: XLower", ErrBoundary)
	case b.XUpper == nil:
		return fmt.Errorf("%w: XUpper", ErrBoundary)
	case b.YLower == nil:
		return fmt.Errorf("%w: YLower", ErrBoundary)
	case b.YUpper == nil:
		return fmt.Errorf("%w: YUpper", ErrBoundary)
	default:
		return nil
	}
}

// Side names an edge of the unit square.
type Side int

const (
	// SideYLower is the edge y = 0.
	SideYLower Side = iota
	// SideXUpper is the edge x = 1.
	SideXUpper
	// SideYUpper is the edge y = 1.
	SideYUpper
	// SideXLower is the edge x = 0.
	SideXLower
)

// String returns the edge function name.
func (s Side) String() string {
	switch s {
	case SideYLower:
		return "YLower"
	case SideXUpper:
		return "XUpper"
	case SideYUpper:
		return "YUpper"
	case SideXLower:
		return "XLower"
	default:
		return "unknown"
	}
}

// Eval evaluates the edge function of side s at the point (x, y) lying on it.
func (b Boundary) Eval(s Side, x, y float64) float64 {
	switch s {
	case SideYLower:
		return b.YLower(x)
	case SideXUpper:
		return b.XUpper(y)
	case SideYUpper:
		return b.YUpper(x)
	default:
		return b.XLower(y)
	}
}
