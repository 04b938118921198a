// Command haarinfo prints properties of orthonormal Haar bases and the
// progressive reconstruction error of a signal.
//
// Usage:
//
//	haarinfo [flags]
//
// Without flags it analyzes a linear ramp of length 8.
//
// Examples:
//
//	haarinfo -n 16
//	haarinfo -n 4 -matrix
//	haarinfo -csv data.csv -col 1 -paa 64
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-haar/haar/basis"
	"github.com/cwbudde/algo-haar/haar/reconstruct"
	"github.com/cwbudde/algo-haar/haar/transform"
	"github.com/cwbudde/algo-haar/internal/dyadic"
	"github.com/cwbudde/algo-haar/paa"
	"github.com/cwbudde/algo-haar/signal"
	"github.com/cwbudde/algo-haar/signalio"
)

func main() {
	n := flag.Int("n", 8, "signal length when no CSV input is given (power of two)")
	csvPath := flag.String("csv", "", "CSV file to read the signal from")
	col := flag.Int("col", 0, "CSV column holding the signal")
	segments := flag.Int("paa", 0, "downsample the input to this many segments before the transform")
	printMatrix := flag.Bool("matrix", false, "print the basis matrix entries")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: haarinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints Haar basis properties and per-prefix reconstruction error.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	x, err := inputSignal(*csvPath, *col, *n)
	if err != nil {
		fatal(err)
	}

	if *segments > 0 {
		x, err = paa.Downsample(x, *segments)
		if err != nil {
			fatal(err)
		}
	}

	h, err := basis.Get(len(x))
	if err != nil {
		fatal(fmt.Errorf("signal length %d: %w", len(x), err))
	}

	fmt.Printf("basis: %dx%d, %d levels, orthonormal within 1e-9: %v\n",
		h.Dim(), h.Dim(), dyadic.Log2(h.Dim()), h.IsOrthonormal(1e-9))

	if *printMatrix {
		printBasis(h)
	}

	c, err := transform.Forward(h, x)
	if err != nil {
		fatal(err)
	}

	steps, err := reconstruct.All(h, c)
	if err != nil {
		fatal(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "prefix\trmse")
	for i, step := range steps {
		e, err := reconstruct.RMSE(x, step)
		if err != nil {
			fatal(err)
		}
		fmt.Fprintf(w, "%d\t%.6g\n", i+2, e)
	}
	if err := w.Flush(); err != nil {
		fatal(err)
	}
}

func inputSignal(csvPath string, col, n int) ([]float64, error) {
	if csvPath == "" {
		return signal.NewGenerator().Ramp(1, n)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return signalio.ReadColumn(f, col)
}

func printBasis(h *basis.Matrix) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	n := h.Dim()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			fmt.Fprintf(w, "%.4f\t", h.At(i, j))
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "haarinfo:", err)
	os.Exit(1)
}
