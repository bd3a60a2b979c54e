package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"sort"

	"github.com/cmm863/linalg/matrix"
	"github.com/cmm863/linalg/matrix/ops"
	"github.com/cmm863/linalg/matrixio"
	"github.com/cmm863/linalg/vector"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/urfave/cli.v1"
)

// linalg eigen command
var EigenCommand = cli.Command{
	Action: eigenAction,
	Name:   "eigen",
	Usage:  "estimates eigenvalues by QR iteration",
	Flags: []cli.Flag{
		InputFlag,
		IterationsFlag,
		DigitsFlag,
		VerifyFlag,
	},
	Description: `
The linalg eigen command reads a dense matrix literal and runs the unshifted
QR iteration A(k+1) = R(k)*Q(k) until two successive diagonals agree at the
requested number of digits, or the iteration bound is reached. It prints the
iteration count, the final iterate and the eigenvalue estimates.
`,
}

var IterationsFlag = cli.IntFlag{
	Name:  "iterations",
	Usage: "upper bound on QR iterations",
	Value: 1000,
}

var DigitsFlag = cli.IntFlag{
	Name:  "digits",
	Usage: "decimal digits at which successive estimates must agree",
	Value: ops.DefaultDigits,
}

var VerifyFlag = cli.BoolFlag{
	Name:  "verify",
	Usage: "cross-check the estimates against gonum's eigen decomposition",
}

// verifyTolerance is the absolute difference accepted by --verify.
const verifyTolerance = 1e-4

func eigenAction(ctx *cli.Context) error {
	a, err := matrixio.ReadSquareFile(ctx.String(InputFlag.Name), matrix.KindDense)
	if err != nil {
		return err
	}

	digits := ctx.Int(DigitsFlag.Name)
	if digits < 0 || digits > ops.MaxDigits {
		return fmt.Errorf("--digits %d outside [0, %d]", digits, ops.MaxDigits)
	}
	opts := []ops.Option{ops.WithDigits(digits)}
	if ctx.GlobalBool(VerboseFlag.Name) {
		opts = append(opts, ops.WithTrace(func(it int, est *vector.Vector) {
			log.Printf("iteration %d: %s", it, est)
		}))
	}

	res, err := ops.Eigenvalues(a, ctx.Int(IterationsFlag.Name), opts...)
	if err != nil {
		return err
	}
	if !res.Converged {
		log.Printf("no convergence after %d iterations", res.Iterations)
	}

	w := ctx.App.Writer
	fmt.Fprintf(w, "Iterations: %d\n", res.Iterations)
	if err = matrixio.WriteSection(w, "Final", res.Final); err != nil {
		return err
	}
	fmt.Fprint(w, "Eigenvalues: ")
	if err = matrixio.WriteVector(w, res.Values); err != nil {
		return err
	}

	if ctx.Bool(VerifyFlag.Name) {
		return verifyEigen(w, a, res.Values)
	}

	return nil
}

// verifyEigen compares the sorted estimates with gonum's general eigensolver.
func verifyEigen(w io.Writer, a matrix.Matrix, got *vector.Vector) error {
	g, err := matrix.ToGonum(a)
	if err != nil {
		return err
	}
	var eig mat.Eigen
	if !eig.Factorize(g, mat.EigenNone) {
		return fmt.Errorf("verify: gonum factorization failed")
	}

	want := make([]float64, 0, got.Size())
	for _, c := range eig.Values(nil) {
		if math.Abs(imag(c)) > verifyTolerance {
			return fmt.Errorf("verify: complex eigenvalue %v is out of reach of QR iteration", c)
		}
		want = append(want, real(c))
	}
	have := got.Slice()
	sort.Float64s(want)
	sort.Float64s(have)

	fmt.Fprintf(w, "gonum: %s\n", vector.FromSlice(want...))
	for i := range want {
		if math.Abs(want[i]-have[i]) > verifyTolerance {
			return fmt.Errorf("verify: eigenvalue %d: got %g, gonum %g", i, have[i], want[i])
		}
	}

	return nil
}
