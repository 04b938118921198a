// Package reconstruct produces progressively refined signals from a prefix
// of Haar coefficients.
//
// Given a full coefficient vector c for a basis H of dimension n, the rank-k
// partial reconstruction is the truncated series
//
//	x_k = H[:,:k] · c[:k]
//
// i.e. the best approximation of the original signal using only the first k
// basis vectors. The reconstruction error ||x - x_k|| is non-increasing in k
// and reaches (near-)zero at k = n.
//
// [All] and [AllImage] emit the sequence for k = 2..n, n-1 entries in total.
// The k = 1 prefix reproduces only the signal mean and is deliberately not
// emitted as a distinct approximation.
//
// # Usage
//
//	h, _ := basis.Get(len(x))
//	c, _ := transform.Forward(h, x)
//	steps, _ := reconstruct.All(h, c)
//	final := steps[len(steps)-1] // ≈ x
package reconstruct
