// SPDX-License-Identifier: MIT

package community

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func randomSym(n int, seed uint64) *mat.SymDense {
	r := rand.New(rand.NewPCG(seed, 0))
	a := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			a.SetSym(i, j, r.Float64()*2-1)
		}
	}

	return a
}

// TestJacobiMatchesEigenSym compares the fallback solver with LAPACK on
// random symmetric matrices, up to the eigenvector's sign.
func TestJacobiMatchesEigenSym(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		a := randomSym(7, seed)
		v1, x1, err := leading(a, SolverAuto, defaultMaxIterations)
		require.NoError(t, err)
		v2, x2, err := leading(a, SolverJacobi, defaultMaxIterations)
		require.NoError(t, err)
		assert.InDelta(t, v1, v2, 1e-9)

		dot := 0.0
		for i := range x1 {
			dot += x1[i] * x2[i]
		}
		assert.InDelta(t, 1, math.Abs(dot), 1e-9)
	}
}

func TestJacobi_ConvergenceError(t *testing.T) {
	_, _, err := jacobiLeading(randomSym(8, 3), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoConvergence)

	var ce *ConvergenceError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 1, ce.Iterations)
	assert.Equal(t, 8, ce.Size)
}

func TestJacobi_Diagonal(t *testing.T) {
	a := mat.NewSymDense(3, []float64{1, 0, 0, 0, 5, 0, 0, 0, -2})
	v, x, err := jacobiLeading(a, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
	assert.Equal(t, []float64{0, 1, 0}, x)
}

// TestKernighanLin_NeverDecreases checks sᵀBs is monotone under refinement
// and that the result is a local optimum with respect to single flips.
func TestKernighanLin_NeverDecreases(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		b := randomSym(9, seed)
		r := rand.New(rand.NewPCG(seed, 1))
		s := make([]float64, 9)
		for i := range s {
			s[i] = 1
			if r.IntN(2) == 0 {
				s[i] = -1
			}
		}
		before := quadratic(b, s)
		KernighanLin(s, b)
		after := quadratic(b, s)
		assert.GreaterOrEqual(t, after, before-1e-12)

		for i := range s {
			s[i] = -s[i]
			assert.LessOrEqual(t, quadratic(b, s), after+1e-9, "flip %d improves", i)
			s[i] = -s[i]
		}
	}
}

func TestKernighanLin_SizeMismatch(t *testing.T) {
	assert.Zero(t, KernighanLin([]float64{1}, randomSym(3, 1)))
	assert.Zero(t, KernighanLin([]float64{1}, randomSym(1, 1)))
}

func TestSigns_ZeroIsPositive(t *testing.T) {
	assert.Equal(t, []float64{1, -1, 1}, signs([]float64{0, -0.5, 2}))
}
