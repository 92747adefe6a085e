// SPDX-License-Identifier: MIT
// File: refine.go
// Role: Kernighan–Lin style steepest-ascent refinement of a bisection.

package community

import "gonum.org/v1/gonum/mat"

// klTolerance is the smallest gain in sᵀBs accepted as an improvement.
const klTolerance = 1e-10

// KernighanLin improves the sign vector s in place by repeatedly applying
// the single flip with the largest strictly positive gain in sᵀBs, until no
// flip improves it. An index may be flipped in several passes.
//
// Flipping s_i changes sᵀBs by -4·s_i·((Bs)_i - B_ii·s_i); Bs is maintained
// incrementally, so each pass costs O(n) and each applied flip O(n).
// Returns the number of flips applied. The caller recomputes ΔQ.
func KernighanLin(s []float64, b mat.Symmetric) int {
	n := b.SymmetricDim()
	if len(s) != n || n < 2 {
		return 0
	}
	bs := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += b.At(i, j) * s[j]
		}
		bs[i] = sum
	}

	flips := 0
	for {
		best, gainBest := -1, klTolerance
		for i := 0; i < n; i++ {
			gain := -4 * s[i] * (bs[i] - b.At(i, i)*s[i])
			if gain > gainBest {
				best, gainBest = i, gain
			}
		}
		if best < 0 {
			return flips
		}
		old := s[best]
		s[best] = -old
		for j := 0; j < n; j++ {
			bs[j] -= 2 * old * b.At(j, best)
		}
		flips++
	}
}

// quadratic returns sᵀBs.
func quadratic(b mat.Symmetric, s []float64) float64 {
	v := mat.NewVecDense(len(s), s)
	return mat.Inner(v, b, v)
}
