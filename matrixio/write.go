package matrixio

import (
	"fmt"
	"io"

	"github.com/cmm863/linalg/matrix"
	"github.com/cmm863/linalg/vector"
)

// WriteMatrix writes m as matrix.Format renders it: one line per row, each
// element in a matrix.ElementFormat field.
func WriteMatrix(w io.Writer, m matrix.Matrix) error {
	_, err := io.WriteString(w, matrix.Format(m))
	return err
}

// WriteVector writes the comma-separated elements of v followed by a newline.
func WriteVector(w io.Writer, v *vector.Vector) error {
	_, err := fmt.Fprintln(w, v.String())
	return err
}

// WriteSection writes a "=== title ===" header line, then m, then a blank line.
func WriteSection(w io.Writer, title string, m matrix.Matrix) error {
	if _, err := fmt.Fprintf(w, "=== %s ===\n", title); err != nil {
		return err
	}
	if err := WriteMatrix(w, m); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)

	return err
}
