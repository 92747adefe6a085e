// SPDX-License-Identifier: MIT
// File: eigen.go
// Role: Leading eigenpair of a symmetric matrix.
// Solvers:
//   - gonum mat.EigenSym (LAPACK dsyev) is the default.
//   - Cyclic Jacobi rotations serve as the bounded fallback; exhausting the
//     sweep budget yields *ConvergenceError.

package community

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const jacobiTolerance = 1e-13

// leading returns the algebraically largest eigenvalue of a and its eigenvector.
func leading(a *mat.SymDense, solver Solver, maxIter int) (float64, []float64, error) {
	if solver == SolverAuto {
		var es mat.EigenSym
		if es.Factorize(a, true) {
			n, _ := a.Dims()
			values := es.Values(nil)
			var vecs mat.Dense
			es.VectorsTo(&vecs)
			// Values are ascending; the last column pairs with the largest.
			return values[n-1], mat.Col(nil, n-1, &vecs), nil
		}
	}

	return jacobiLeading(a, maxIter)
}

// jacobiLeading diagonalizes a with cyclic Jacobi sweeps and returns the
// largest eigenpair. Each sweep rotates away every off-diagonal entry once.
// Complexity: O(n³) per sweep.
func jacobiLeading(a *mat.SymDense, maxIter int) (float64, []float64, error) {
	n, _ := a.Dims()
	w := mat.NewDense(n, n, nil)
	w.Copy(a)
	q := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		q.Set(i, i, 1)
	}

	scale := mat.Norm(a, 2)
	if scale == 0 {
		scale = 1
	}

	converged := false
	for sweep := 0; sweep < maxIter; sweep++ {
		if offDiagonal(w) <= jacobiTolerance*scale {
			converged = true
			break
		}
		for p := 0; p < n-1; p++ {
			for r := p + 1; r < n; r++ {
				rotate(w, q, p, r)
			}
		}
	}
	if !converged && offDiagonal(w) > jacobiTolerance*scale {
		return 0, nil, &ConvergenceError{Iterations: maxIter, Size: n}
	}

	best := 0
	for i := 1; i < n; i++ {
		if w.At(i, i) > w.At(best, best) {
			best = i
		}
	}

	return w.At(best, best), mat.Col(nil, best, q), nil
}

// offDiagonal returns the Frobenius norm of the strictly off-diagonal part.
func offDiagonal(w *mat.Dense) float64 {
	n, _ := w.Dims()
	var sum float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				sum += w.At(i, j) * w.At(i, j)
			}
		}
	}

	return math.Sqrt(sum)
}

// rotate zeroes w[p][r] with a Givens rotation, accumulating it into q.
func rotate(w, q *mat.Dense, p, r int) {
	apr := w.At(p, r)
	if apr == 0 {
		return
	}
	app, arr := w.At(p, p), w.At(r, r)
	theta := (arr - app) / (2 * apr)
	t := math.Copysign(1/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
	c := 1 / math.Sqrt(t*t+1)
	s := t * c

	n, _ := w.Dims()
	for k := 0; k < n; k++ {
		if k == p || k == r {
			continue
		}
		akp, akr := w.At(k, p), w.At(k, r)
		w.Set(k, p, c*akp-s*akr)
		w.Set(p, k, c*akp-s*akr)
		w.Set(k, r, s*akp+c*akr)
		w.Set(r, k, s*akp+c*akr)
	}
	w.Set(p, p, app-t*apr)
	w.Set(r, r, arr+t*apr)
	w.Set(p, r, 0)
	w.Set(r, p, 0)

	for k := 0; k < n; k++ {
		qkp, qkr := q.At(k, p), q.At(k, r)
		q.Set(k, p, c*qkp-s*qkr)
		q.Set(k, r, s*qkp+c*qkr)
	}
}
