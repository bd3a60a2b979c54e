package main

import (
	"fmt"
	"log"

	"github.com/cmm863/linalg/matrix"
	"github.com/cmm863/linalg/matrixio"
	"gopkg.in/urfave/cli.v1"
)

// linalg arith command
var ArithCommand = cli.Command{
	Action: arithAction,
	Name:   "arith",
	Usage:  "reads a square matrix A and prints A, B = clone(A), A+B, A-B and A*B",
	Flags: []cli.Flag{
		InputFlag,
		LayoutFlag,
	},
	Description: `
The linalg arith command reads a matrix literal (size n, then n*n values in
row-major order) into the requested layout, clones it into B and prints the
sum, difference and product of the two.
`,
}

var InputFlag = cli.StringFlag{
	Name:  "input",
	Usage: "matrix literal file",
	Value: "test_inputs/dense_input.in",
}

var LayoutFlag = cli.StringFlag{
	Name:  "layout",
	Usage: "storage layout: dense or upper",
	Value: "dense",
}

func arithAction(ctx *cli.Context) error {
	kind, err := matrix.ParseKind(ctx.String(LayoutFlag.Name))
	if err != nil {
		return err
	}
	a, err := matrixio.ReadSquareFile(ctx.String(InputFlag.Name), kind)
	if err != nil {
		return err
	}
	if ctx.GlobalBool(VerboseFlag.Name) {
		log.Printf("read %dx%d %s matrix", a.Rows(), a.Cols(), a.Kind())
	}
	b := a.Clone()

	sum, err := matrix.Add(a, b)
	if err != nil {
		return err
	}
	diff, err := matrix.Sub(a, b)
	if err != nil {
		return err
	}
	prod, err := matrix.Mul(a, b)
	if err != nil {
		return err
	}

	w := ctx.App.Writer
	for _, s := range []struct {
		title string
		m     matrix.Matrix
	}{
		{"Matrix A", a},
		{"Matrix B", b},
		{"Sum", sum},
		{"Difference", diff},
		{"Product", prod},
	} {
		if err = matrixio.WriteSection(w, s.title, s.m); err != nil {
			return fmt.Errorf("write %s: %w", s.title, err)
		}
	}

	return nil
}
