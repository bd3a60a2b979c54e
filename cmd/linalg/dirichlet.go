package main

import (
	"fmt"
	"log"

	"github.com/cmm863/linalg/dirichlet"
	"github.com/cmm863/linalg/matrixio"
	"github.com/cmm863/linalg/solver"
	"gopkg.in/urfave/cli.v1"
)

// linalg dirichlet command
var DirichletCommand = cli.Command{
	Action: dirichletAction,
	Name:   "dirichlet",
	Usage:  "solves the reference Dirichlet problem on the unit square",
	Flags: []cli.Flag{
		ResolutionFlag,
		SolverFlag,
		PlotFlag,
	},
	Description: `
The linalg dirichlet command assembles the 5-point system for the reference
boundary table (x=0: 1+y^2, x=1: 0, y=0: 1-x^2, y=1: 2(1-x^2)), solves it and
prints the right-hand side, the sampled closed form (1-x^2)(1+y^2) and the
solution, all in interior-point order.
`,
}

var ResolutionFlag = cli.IntFlag{
	Name:  "n",
	Usage: "intervals per axis; the system has (n-1)^2 unknowns",
	Value: 4,
}

var SolverFlag = cli.StringFlag{
	Name:  "solver",
	Usage: "gauss or qr",
	Value: "gauss",
}

var PlotFlag = cli.StringFlag{
	Name:  "plot",
	Usage: "write a heat map of the solution to this file (.png, .svg, .pdf)",
	Value: "",
}

func dirichletAction(ctx *cli.Context) error {
	n := ctx.Int(ResolutionFlag.Name)
	s, err := solver.ByName(ctx.String(SolverFlag.Name))
	if err != nil {
		return err
	}

	bnd := dirichlet.Reference()
	a, b, err := dirichlet.Assemble(n, bnd)
	if err != nil {
		return err
	}
	if ctx.GlobalBool(VerboseFlag.Name) {
		log.Printf("assembled %dx%d system, solver %s", a.Rows(), a.Cols(), ctx.String(SolverFlag.Name))
	}
	c, err := dirichlet.Sample(n, dirichlet.ReferenceSolution)
	if err != nil {
		return err
	}
	u, err := s.Solve(a, b)
	if err != nil {
		return err
	}

	w := ctx.App.Writer
	for _, line := range []struct {
		title string
		print func() error
	}{
		{"B", func() error { return matrixio.WriteVector(w, b) }},
		{"C", func() error { return matrixio.WriteVector(w, c) }},
		{"Solution", func() error { return matrixio.WriteVector(w, u) }},
	} {
		fmt.Fprintf(w, "=== %s ===\n", line.title)
		if err = line.print(); err != nil {
			return err
		}
	}

	if path := ctx.String(PlotFlag.Name); path != "" {
		if err = dirichlet.SavePlot(u, n, path); err != nil {
			return err
		}
		log.Printf("wrote %s", path)
	}

	return nil
}
