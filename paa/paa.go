// Package paa implements piecewise aggregate approximation, the windowed
// averaging preprocessor that shrinks a long signal to a dyadic length
// before it enters the Haar transform.
package paa

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Errors returned by Downsample.
var (
	ErrInvalidSegments = errors.New("paa: segment count must be positive and not exceed the signal length")
	ErrUnevenSegments  = errors.New("paa: signal length must be divisible by the segment count")
)

// Downsample reduces x to the given number of segments, each the mean of one
// fixed-size window. The input length must be an exact multiple of segments.
func Downsample(x []float64, segments int) ([]float64, error) {
	if segments <= 0 || segments > len(x) {
		return nil, fmt.Errorf("%w: %d segments for %d samples", ErrInvalidSegments, segments, len(x))
	}
	if len(x)%segments != 0 {
		return nil, fmt.Errorf("%w: %d samples into %d segments", ErrUnevenSegments, len(x), segments)
	}

	window := len(x) / segments
	out := make([]float64, segments)
	for i := range out {
		out[i] = stat.Mean(x[i*window:(i+1)*window], nil)
	}
	return out, nil
}
