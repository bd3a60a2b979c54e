package solver

import (
	"errors"
	"fmt"

	"github.com/cmm863/linalg/matrix"
	"github.com/cmm863/linalg/vector"
)

var (
	// ErrSingular is returned when elimination meets an exactly zero pivot
	// or the QR factorization meets a dependent column.
	ErrSingular = errors.New("solver: singular system (zero pivot)")

	// ErrNonFinite is returned when the computed solution holds Inf or NaN.
	ErrNonFinite = errors.New("solver: non-finite value in solution")

	// ErrEmptySystem is returned for a 0×0 system.
	ErrEmptySystem = errors.New("solver: empty system")

	// ErrUnknownMethod is returned by ParseMethod and ForMethod for unknown names/values.
	ErrUnknownMethod = errors.New("solver: unknown method")
)

// Solver solves A·x = b for a square A and returns x.
// Implementations must not mutate a or b.
type Solver interface {
	Solve(a matrix.Matrix, b *vector.Vector) (*vector.Vector, error)
}

// Method names a solving algorithm.
type Method int

const (
	// MethodGauss selects Gaussian elimination.
	MethodGauss Method = iota
	// MethodQR selects the QR-based solver.
	MethodQR
)

// String returns the name accepted by ParseMethod.
func (m Method) String() string {
	switch m {
	case MethodGauss:
		return "gauss"
	case MethodQR:
		return "qr"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "gauss"/"gaussian" and "qr" to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "gauss", "gaussian":
		return MethodGauss, nil
	case "qr":
		return MethodQR, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
	}
}

// ForMethod returns the Solver implementing m.
func ForMethod(m Method) (Solver, error) {
	switch m {
	case MethodGauss:
		return Gaussian{}, nil
	case MethodQR:
		return QR{}, nil
	default:
		return nil, fmt.Errorf("%s: %w", m, ErrUnknownMethod)
	}
}

// ByName is ParseMethod followed by ForMethod.
func ByName(name string) (Solver, error) {
	m, err := ParseMethod(name)
	if err != nil {
		return nil, err
	}

	return ForMethod(m)
}

// validateSystem checks a is square and non-empty and b has a.Rows() entries.
func validateSystem(tag string, a matrix.Matrix, b *vector.Vector) (int, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return 0, fmt.Errorf("%s: %w", tag, err)
	}
	n := a.Rows()
	if n == 0 {
		return 0, fmt.Errorf("%s: %w", tag, ErrEmptySystem)
	}
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return 0, fmt.Errorf("%s: %w", tag, err)
	}

	return n, nil
}
