// Package basis constructs orthonormal Haar basis matrices of dyadic
// dimension.
//
// A Haar matrix of size n (n a power of two, n >= 2) holds the discrete Haar
// wavelet basis vectors in its columns, ordered coarsest to finest. It is
// built by recursive doubling from the 2x2 base:
//
//	H_2 = (1/sqrt2) * | 1  1 |
//	                  | 1 -1 |
//
// Each doubling step stretches every existing basis vector by repeating each
// entry across a row pair (rescaled by 1/sqrt2) and appends one new detail
// vector per position, a +-1/sqrt2 step confined to a disjoint row pair. The
// columns stay pairwise orthogonal and unit norm at every level, which
// [Matrix.IsOrthonormal] verifies directly.
//
// # Usage
//
// Build a basis and hand it to the transform:
//
//	h, err := basis.Get(8)
//	if err != nil {
//	    // n was not a power of two
//	}
//	c, _ := transform.Forward(h, x)
//
// [Get] memoizes built matrices; [Build] always constructs a fresh one.
// A Matrix never mutates after construction and is safe to share across
// goroutines.
package basis
