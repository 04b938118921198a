package basis

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-haar/internal/dyadic"
)

// ErrInvalidDimension is returned when the requested dimension is not a
// power of two or is below 2.
var ErrInvalidDimension = errors.New("basis: dimension must be a power of two and >= 2")

const invSqrt2 = 1 / math.Sqrt2

// Matrix is an immutable n×n orthonormal Haar basis matrix.
//
// Matrix implements [mat.Matrix], so it can be passed directly into gonum
// products. Column j is the j-th Haar basis vector.
type Matrix struct {
	n    int
	data *mat.Dense
}

// Build constructs the Haar basis matrix of dimension n.
func Build(n int) (*Matrix, error) {
	if n < 2 || !dyadic.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, n)
	}

	rows := [][]float64{
		{invSqrt2, invSqrt2},
		{invSqrt2, -invSqrt2},
	}
	for len(rows) < n {
		rows = double(rows)
	}

	flat := make([]float64, n*n)
	for i, row := range rows {
		copy(flat[i*n:(i+1)*n], row)
	}

	return &Matrix{n: n, data: mat.NewDense(n, n, flat)}, nil
}

// double derives H_2m from the rows of H_m. Row pair (2i, 2i+1) carries row i
// stretched into the first m columns and rescaled by 1/sqrt2; column m+i
// holds the new detail vector, nonzero only on that row pair.
func double(h [][]float64) [][]float64 {
	m := len(h)
	out := make([][]float64, 2*m)

	for i, row := range h {
		top := make([]float64, 2*m)
		bot := make([]float64, 2*m)

		vecmath.ScaleBlock(top[:m], row, invSqrt2)
		copy(bot[:m], top[:m])

		top[m+i] = invSqrt2
		bot[m+i] = -invSqrt2

		out[2*i] = top
		out[2*i+1] = bot
	}

	return out
}

// Dim returns the basis dimension n.
func (h *Matrix) Dim() int {
	if h == nil {
		return 0
	}
	return h.n
}

// Dims returns the matrix dimensions. Part of [mat.Matrix].
func (h *Matrix) Dims() (r, c int) { return h.n, h.n }

// At returns the entry at row i, column j. Part of [mat.Matrix].
func (h *Matrix) At(i, j int) float64 { return h.data.At(i, j) }

// T returns the transpose view of the matrix. Part of [mat.Matrix].
//
// Since the matrix is orthonormal, the transpose is also its inverse.
func (h *Matrix) T() mat.Matrix { return h.data.T() }

// Col copies basis vector j into dst and returns it. If dst is nil a new
// slice is allocated; otherwise len(dst) must equal the dimension.
func (h *Matrix) Col(dst []float64, j int) []float64 {
	return mat.Col(dst, j, h.data)
}

// Prefix returns a read-only view of the first k basis columns, the rank-k
// synthesis operator used for partial reconstruction. It panics if k is
// outside [1, Dim].
func (h *Matrix) Prefix(k int) mat.Matrix {
	return h.data.Slice(0, h.n, 0, k)
}

// IsOrthonormal reports whether H·Hᵀ matches the identity within tol.
func (h *Matrix) IsOrthonormal(tol float64) bool {
	var g mat.Dense
	g.Mul(h.data, h.data.T())

	for i := 0; i < h.n; i++ {
		for j := 0; j < h.n; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if !dyadic.NearlyEqual(g.At(i, j), want, tol) {
				return false
			}
		}
	}
	return true
}

var (
	cacheMu sync.RWMutex
	cache   = map[int]*Matrix{}
)

// Get returns the memoized Haar basis of dimension n, building it on first
// use. It is safe for concurrent use; the returned matrix is shared and must
// not be assumed unique per call.
func Get(n int) (*Matrix, error) {
	cacheMu.RLock()
	h, ok := cache[n]
	cacheMu.RUnlock()
	if ok {
		return h, nil
	}

	h, err := Build(n)
	if err != nil {
		return nil, err
	}

	cacheMu.Lock()
	cache[n] = h
	cacheMu.Unlock()
	return h, nil
}
