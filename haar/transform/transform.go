// Package transform moves signals between sample space and Haar coefficient
// space.
//
// Because the basis is orthonormal, the forward transform is the plain
// transpose product c = Hᵀ·x and the inverse is x = H·c; the two are exact
// inverses of each other up to floating-point rounding.
package transform

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-haar/haar/basis"
)

// Errors returned by transform functions.
var (
	ErrInvalidBasis      = errors.New("transform: basis must be a non-empty Haar matrix")
	ErrDimensionMismatch = errors.New("transform: input shape must match basis dimension")
)

func validateBasis(h *basis.Matrix) error {
	if h == nil || h.Dim() == 0 {
		return ErrInvalidBasis
	}
	return nil
}

// Forward projects x onto the Haar basis: c = Hᵀ·x.
//
// Entry i of the result is the projection of x onto basis vector i. The
// input is not modified.
func Forward(h *basis.Matrix, x []float64) ([]float64, error) {
	if err := validateBasis(h); err != nil {
		return nil, err
	}
	if len(x) != h.Dim() {
		return nil, fmt.Errorf("%w: len(x)=%d, basis dim=%d", ErrDimensionMismatch, len(x), h.Dim())
	}

	var c mat.VecDense
	c.MulVec(h.T(), mat.NewVecDense(len(x), x))

	out := make([]float64, h.Dim())
	copy(out, c.RawVector().Data)
	return out, nil
}

// Inverse synthesizes a signal from its Haar coefficients: x = H·c.
func Inverse(h *basis.Matrix, c []float64) ([]float64, error) {
	if err := validateBasis(h); err != nil {
		return nil, err
	}
	if len(c) != h.Dim() {
		return nil, fmt.Errorf("%w: len(c)=%d, basis dim=%d", ErrDimensionMismatch, len(c), h.Dim())
	}

	var x mat.VecDense
	x.MulVec(h, mat.NewVecDense(len(c), c))

	out := make([]float64, h.Dim())
	copy(out, x.RawVector().Data)
	return out, nil
}

// ForwardImage transforms an image along its row axis: C = Hᵀ·M.
//
// Each column of M is transformed independently by the single left
// multiplication; the column axis is left untouched. The basis dimension
// must equal the row count of M.
func ForwardImage(h *basis.Matrix, img *mat.Dense) (*mat.Dense, error) {
	if err := validateBasis(h); err != nil {
		return nil, err
	}
	if err := validateRows(h, img); err != nil {
		return nil, err
	}

	var out mat.Dense
	out.Mul(h.T(), img)
	return &out, nil
}

// InverseImage synthesizes an image from row-axis Haar coefficients: M = H·C.
func InverseImage(h *basis.Matrix, coeffs *mat.Dense) (*mat.Dense, error) {
	if err := validateBasis(h); err != nil {
		return nil, err
	}
	if err := validateRows(h, coeffs); err != nil {
		return nil, err
	}

	var out mat.Dense
	out.Mul(h, coeffs)
	return &out, nil
}

func validateRows(h *basis.Matrix, m *mat.Dense) error {
	if m == nil {
		return fmt.Errorf("%w: nil matrix", ErrDimensionMismatch)
	}
	r, _ := m.Dims()
	if r != h.Dim() {
		return fmt.Errorf("%w: %d rows, basis dim=%d", ErrDimensionMismatch, r, h.Dim())
	}
	return nil
}
