// Package matrixio reads square matrix literals from text and writes matrices
// and vectors in the fixed-width layout of matrix.Format.
//
// Input format: whitespace-separated tokens. The first token is the size n,
// followed by n·n values in row-major order. Lines starting with '#' are
// comments.
package matrixio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cmm863/linalg/matrix"
)

// MaxSize bounds the size token of a literal.
const MaxSize = 4096

var (
	// ErrMalformed indicates a token that is not a valid size or number.
	ErrMalformed = errors.New("matrixio: malformed input")
	// ErrTooLarge indicates a size token above MaxSize.
	ErrTooLarge = errors.New("matrixio: matrix size exceeds limit")
)

// tokenizer yields whitespace-separated tokens, skipping '#' comment lines.
type tokenizer struct {
	sc      *bufio.Scanner
	pending []string
	line    int
}

func newTokenizer(r io.Reader) *tokenizer {
	return &tokenizer{sc: bufio.NewScanner(r)}
}

// next returns the next token and its line, or io.EOF.
func (t *tokenizer) next() (string, int, error) {
	for len(t.pending) == 0 {
		if !t.sc.Scan() {
			if err := t.sc.Err(); err != nil {
				return "", t.line, err
			}
			return "", t.line, io.EOF
		}
		t.line++
		line := strings.TrimSpace(t.sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t.pending = strings.Fields(line)
	}
	tok := t.pending[0]
	t.pending = t.pending[1:]

	return tok, t.line, nil
}

// ReadSquare reads n followed by n·n values into a new matrix of the given
// layout. Values are stored with Set, so an upper-triangular target discards
// the tokens below the diagonal. The matrix is allocated only after every
// value token has been read.
//
// Errors: ErrMalformed (bad size or value token), ErrTooLarge (n > MaxSize),
// io.ErrUnexpectedEOF (fewer than n·n values), matrix.ErrUnsupported (unknown kind).
func ReadSquare(r io.Reader, kind matrix.Kind) (matrix.Matrix, error) {
	t := newTokenizer(r)

	tok, line, err := t.next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("matrixio: size: %w", io.ErrUnexpectedEOF)
		}
		return nil, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("line %d: size %q: %w", line, tok, ErrMalformed)
	}
	if n > MaxSize {
		return nil, fmt.Errorf("line %d: size %d > %d: %w", line, n, MaxSize, ErrTooLarge)
	}
	switch kind {
	case matrix.KindDense, matrix.KindUpperTriangular:
	default:
		return nil, fmt.Errorf("matrixio: layout %s: %w", kind, matrix.ErrUnsupported)
	}

	// values grows with the input, not with the declared size.
	var (
		values []float64
		v      float64
	)
	for k := 0; k < n*n; k++ {
		tok, line, err = t.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("matrixio: value (%d,%d): %w", k/n, k%n, io.ErrUnexpectedEOF)
			}
			return nil, err
		}
		if v, err = strconv.ParseFloat(tok, 64); err != nil {
			return nil, fmt.Errorf("line %d: value %q: %w", line, tok, ErrMalformed)
		}
		values = append(values, v)
	}

	var m matrix.Matrix
	if kind == matrix.KindDense {
		m, err = matrix.NewDense(n, n)
	} else {
		m, err = matrix.NewUpperTri(n)
	}
	if err != nil {
		return nil, err
	}
	for k, v := range values {
		if err = m.Set(k/n, k%n, v); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ReadSquareFile is a convenience wrapper that opens a file path.
func ReadSquareFile(path string, kind matrix.Kind) (matrix.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ReadSquare(f, kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
