// Package dyadic holds shared helpers for power-of-two dimension handling
// and tolerant float comparison.
package dyadic

import "math"

const defaultEpsilon = 1e-12

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns floor(log2(n)). It returns -1 for n < 1.
func Log2(n int) int {
	if n < 1 {
		return -1
	}

	k := 0
	for n > 1 {
		n >>= 1
		k++
	}
	return k
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}
