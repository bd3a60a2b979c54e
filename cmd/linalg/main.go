// Command linalg exercises the matrix engine from the command line:
// layout arithmetic on a matrix literal, QR-iteration eigenvalues and the
// Dirichlet boundary-value demonstration.
package main

import (
	"log"
	"os"

	"gopkg.in/urfave/cli.v1"
)

var VerboseFlag = cli.BoolFlag{
	Name:  "verbose",
	Usage: "log intermediate results (eigen iterations, system sizes)",
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "linalg"
	app.Usage = "dense/triangular matrix arithmetic, direct solvers and QR eigen-iteration"
	app.Flags = []cli.Flag{VerboseFlag}
	app.Commands = []cli.Command{
		ArithCommand,
		EigenCommand,
		DirichletCommand,
	}

	return app
}

func main() {
	log.SetPrefix("linalg: ")
	log.SetFlags(0)

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
