package reconstruct

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-haar/haar/basis"
)

// Errors returned by reconstruction functions.
var (
	ErrInvalidBasis      = errors.New("reconstruct: basis must be a non-empty Haar matrix")
	ErrDimensionMismatch = errors.New("reconstruct: coefficient shape must match basis dimension")
)

func validateBasis(h *basis.Matrix) error {
	if h == nil || h.Dim() == 0 {
		return ErrInvalidBasis
	}
	return nil
}

// All returns the partial reconstructions of the signal behind c, one per
// prefix length k = 2..n. Entry j holds the rank-(j+2) reconstruction; the
// last entry equals the full inverse transform up to rounding.
//
// The sequence is computed by running accumulation: each step reuses the
// previous partial sum and adds the next coefficient-scaled basis column, so
// the whole sequence costs one pass over the matrix.
func All(h *basis.Matrix, c []float64) ([][]float64, error) {
	if err := validateBasis(h); err != nil {
		return nil, err
	}

	n := h.Dim()
	if len(c) != n {
		return nil, fmt.Errorf("%w: len(c)=%d, basis dim=%d", ErrDimensionMismatch, len(c), n)
	}

	acc := make([]float64, n)
	col := make([]float64, n)
	scratch := make([]float64, n)

	// Fold in the k=1 (mean) term before the first emitted step.
	h.Col(col, 0)
	vecmath.ScaleBlock(acc, col, c[0])

	out := make([][]float64, 0, n-1)
	for k := 1; k < n; k++ {
		h.Col(col, k)
		vecmath.ScaleBlock(scratch, col, c[k])
		vecmath.AddBlockInPlace(acc, scratch)

		step := make([]float64, n)
		copy(step, acc)
		out = append(out, step)
	}

	return out, nil
}

// AllImage returns the partial reconstructions of an image from its row-axis
// coefficient matrix, one per prefix length k = 2..n:
//
//	M_k = H[:,:k] · C[:k,:]
//
// Each entry is an independent product of the rank-k basis view with the
// matching coefficient rows; entries share no storage with the input.
func AllImage(h *basis.Matrix, coeffs *mat.Dense) ([]*mat.Dense, error) {
	if err := validateBasis(h); err != nil {
		return nil, err
	}
	if coeffs == nil {
		return nil, fmt.Errorf("%w: nil coefficient matrix", ErrDimensionMismatch)
	}

	n := h.Dim()
	r, cols := coeffs.Dims()
	if r != n {
		return nil, fmt.Errorf("%w: %d coefficient rows, basis dim=%d", ErrDimensionMismatch, r, n)
	}

	out := make([]*mat.Dense, 0, n-1)
	for k := 2; k <= n; k++ {
		var rec mat.Dense
		rec.Mul(h.Prefix(k), coeffs.Slice(0, k, 0, cols))
		out = append(out, &rec)
	}

	return out, nil
}

// RMSE returns the root-mean-square error between a and b, the fidelity
// measure for comparing a partial reconstruction against its original.
func RMSE(a, b []float64) (float64, error) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, fmt.Errorf("%w: len(a)=%d, len(b)=%d", ErrDimensionMismatch, len(a), len(b))
	}

	diff := make([]float64, len(a))
	for i := range a {
		diff[i] = a[i] - b[i]
	}
	vecmath.MulBlockInPlace(diff, diff)

	sum := 0.0
	for _, v := range diff {
		sum += v
	}
	return math.Sqrt(sum / float64(len(a))), nil
}
