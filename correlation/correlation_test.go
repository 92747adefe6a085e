// SPDX-License-Identifier: MIT

package correlation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motifnull/builder"
	"github.com/katalvlaran/motifnull/core"
	"github.com/katalvlaran/motifnull/correlation"
)

func TestDegreeCorrelation(t *testing.T) {
	tests := []struct {
		name     string
		directed bool
		cons     builder.Constructor
		want     float64
	}{
		{"star is disassortative", false, builder.Star(5), -1},
		{"directed transitive triad", true, builder.FromEdges([]core.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 2}}), -0.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(tc.directed)}, nil, tc.cons)
			require.NoError(t, err)
			r, err := correlation.DegreeCorrelation(g)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, r, 1e-12)
		})
	}
}

func TestDegreeCorrelation_Bounds(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithDirected(seed%2 == 0)},
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(25, 0.15),
		)
		require.NoError(t, err)
		r, err := correlation.DegreeCorrelation(g)
		if err != nil {
			assert.ErrorIs(t, err, correlation.ErrDegenerate)
			continue
		}
		assert.GreaterOrEqual(t, r, -1-1e-9)
		assert.LessOrEqual(t, r, 1+1e-9)
	}
}

func TestDegreeCorrelation_Errors(t *testing.T) {
	_, err := correlation.DegreeCorrelation(nil)
	assert.ErrorIs(t, err, core.ErrNilGraph)

	_, err = correlation.DegreeCorrelation(core.NewGraph())
	assert.ErrorIs(t, err, correlation.ErrNoEdges)

	cycle, err := builder.BuildGraph(nil, nil, builder.Cycle(6))
	require.NoError(t, err)
	_, err = correlation.DegreeCorrelation(cycle)
	assert.ErrorIs(t, err, correlation.ErrDegenerate)
}
