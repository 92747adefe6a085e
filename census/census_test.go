// SPDX-License-Identifier: MIT
// Package census_test verifies the triad census against hand-computed fixtures.

package census_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motifnull/builder"
	"github.com/katalvlaran/motifnull/census"
	"github.com/katalvlaran/motifnull/core"
)

func directedFromEdges(t *testing.T, n int, edges ...core.Edge) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	g.AddVertices(n)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.From, e.To))
	}

	return g
}

// TestCompute_SingleTriads VERIFIES each connected class on its smallest witness.
func TestCompute_SingleTriads(t *testing.T) {
	tests := []struct {
		want  census.Class
		edges []core.Edge
	}{
		{census.Triad021D, []core.Edge{{From: 0, To: 1}, {From: 0, To: 2}}},
		{census.Triad021U, []core.Edge{{From: 1, To: 0}, {From: 2, To: 0}}},
		{census.Triad021C, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}}},
		{census.Triad111D, []core.Edge{{From: 0, To: 1}, {From: 1, To: 0}, {From: 2, To: 1}}},
		{census.Triad111U, []core.Edge{{From: 0, To: 1}, {From: 1, To: 0}, {From: 1, To: 2}}},
		{census.Triad030T, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 0, To: 2}}},
		{census.Triad030C, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}}},
		{census.Triad201, []core.Edge{{From: 0, To: 1}, {From: 1, To: 0}, {From: 1, To: 2}, {From: 2, To: 1}}},
		{census.Triad120D, []core.Edge{{From: 0, To: 1}, {From: 1, To: 0}, {From: 2, To: 0}, {From: 2, To: 1}}},
		{census.Triad120U, []core.Edge{{From: 0, To: 1}, {From: 1, To: 0}, {From: 0, To: 2}, {From: 1, To: 2}}},
		{census.Triad120C, []core.Edge{{From: 0, To: 1}, {From: 1, To: 0}, {From: 0, To: 2}, {From: 2, To: 1}}},
		{census.Triad210, []core.Edge{{From: 0, To: 1}, {From: 1, To: 0}, {From: 1, To: 2}, {From: 2, To: 1}, {From: 0, To: 2}}},
		{census.Triad300, []core.Edge{{From: 0, To: 1}, {From: 1, To: 0}, {From: 1, To: 2}, {From: 2, To: 1}, {From: 0, To: 2}, {From: 2, To: 0}}},
	}
	for _, tc := range tests {
		t.Run(tc.want.String(), func(t *testing.T) {
			res, err := census.Compute(directedFromEdges(t, 3, tc.edges...))
			require.NoError(t, err)
			require.Len(t, res.Counts, 13)
			for c, k := range res.Counts {
				if c == tc.want {
					assert.EqualValues(t, 1, k, c.String())
				} else {
					assert.EqualValues(t, 0, k, c.String())
				}
			}
		})
	}
}

func TestCompute_DirectedCycle(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Cycle(3))
	require.NoError(t, err)

	res, err := census.Compute(g)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Count(census.Triad030C))
	assert.EqualValues(t, 1, res.Total())
	assert.False(t, res.Disconnected)
}

func TestCompute_Disconnected(t *testing.T) {
	// 0→1 plus two isolated vertices.
	g := directedFromEdges(t, 4, core.Edge{From: 0, To: 1})
	res, err := census.Compute(g, census.WithDisconnected())
	require.NoError(t, err)
	require.Len(t, res.Counts, 16)
	assert.EqualValues(t, 2, res.Count(census.Triad012))
	assert.EqualValues(t, 2, res.Count(census.Triad003))
	assert.EqualValues(t, 0, res.Count(census.Triad102))
	assert.EqualValues(t, 4, res.Total())

	// Mutual dyad 0↔1 plus 1→2 in a graph of five.
	g = directedFromEdges(t, 5, core.Edge{From: 0, To: 1}, core.Edge{From: 1, To: 0}, core.Edge{From: 1, To: 2})
	res, err = census.Compute(g, census.WithDisconnected())
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.Count(census.Triad102))
	assert.EqualValues(t, 2, res.Count(census.Triad012))
	assert.EqualValues(t, 1, res.Count(census.Triad111U))
	assert.EqualValues(t, 10, res.Total())
}

func TestCompute_CompleteDigraph(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Complete(5))
	require.NoError(t, err)
	res, err := census.Compute(g, census.WithDisconnected())
	require.NoError(t, err)
	assert.EqualValues(t, 10, res.Count(census.Triad300))
	assert.EqualValues(t, 10, res.Total())
}

func TestCompute_Record(t *testing.T) {
	g := directedFromEdges(t, 4, core.Edge{From: 0, To: 1}, core.Edge{From: 0, To: 2}, core.Edge{From: 3, To: 0})
	res, err := census.Compute(g, census.WithRecord())
	require.NoError(t, err)
	require.NotNil(t, res.Triples)

	var recorded int
	for c, ts := range res.Triples {
		assert.Len(t, ts, int(res.Count(c)), c.String())
		recorded += len(ts)
	}
	assert.Equal(t, 3, recorded)
	assert.Equal(t, []census.Triple{{0, 1, 2}}, res.Triples[census.Triad021D])
	assert.Len(t, res.Triples[census.Triad021C], 2)
}

func TestCompute_Ranking(t *testing.T) {
	g := directedFromEdges(t, 4, core.Edge{From: 0, To: 1}, core.Edge{From: 1, To: 2}, core.Edge{From: 2, To: 3}, core.Edge{From: 3, To: 1})
	plain, err := census.Compute(g, census.WithDisconnected())
	require.NoError(t, err)
	ranked, err := census.Compute(g, census.WithDisconnected(), census.WithRanking([]int{3, 1, 0, 2}))
	require.NoError(t, err)
	assert.Equal(t, plain.Counts, ranked.Counts)

	_, err = census.Compute(g, census.WithRanking([]int{0, 1, 1, 2}))
	require.ErrorIs(t, err, census.ErrInvalidRanking)
	_, err = census.Compute(g, census.WithRanking([]int{0, 1}))
	require.ErrorIs(t, err, census.ErrInvalidRanking)
}

func TestCompute_SelfLoopsIgnored(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(1, 1))
	res, err := census.Compute(g, census.WithDisconnected())
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Count(census.Triad021C))
	assert.EqualValues(t, 1, res.Total())
}

func TestCompute_Errors(t *testing.T) {
	_, err := census.Compute(nil)
	require.ErrorIs(t, err, core.ErrNilGraph)

	_, err = census.Compute(core.NewGraph())
	require.ErrorIs(t, err, census.ErrUndirected)

	_, err = census.Compute(core.NewGraph(core.WithDirected(true), core.WithMultiEdges()))
	require.ErrorIs(t, err, census.ErrMultigraph)
}

// TestCompute_LargeSparse VERIFIES the 003 count stays exact past the point
// where N·(N-1)·(N-2) overflows int64.
func TestCompute_LargeSparse(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates ~2.1M vertices")
	}
	const n = 2_100_000
	g := directedFromEdges(t, n, core.Edge{From: 0, To: n - 1})

	res, err := census.Compute(g, census.WithDisconnected())
	require.NoError(t, err)
	assert.EqualValues(t, n-2, res.Count(census.Triad012))
	assert.EqualValues(t, int64(1_543_497_795_000_700_000)-(n-2), res.Count(census.Triad003))
	assert.EqualValues(t, int64(1_543_497_795_000_700_000), res.Total())
}

func TestClass(t *testing.T) {
	for k, c := range census.ConnectedClasses {
		assert.Equal(t, k+1, c.Number())
		assert.True(t, c.Connected())
	}
	assert.Equal(t, 0, census.Triad102.Number())
	assert.False(t, census.Triad012.Connected())

	c, err := census.ParseClass("120C")
	require.NoError(t, err)
	assert.Equal(t, census.Triad120C, c)
	_, err = census.ParseClass("999")
	require.ErrorIs(t, err, census.ErrUnknownClass)
	assert.Equal(t, "Class(40)", census.Class(40).String())
}

func TestResult_Vector(t *testing.T) {
	g := directedFromEdges(t, 3, core.Edge{From: 0, To: 1}, core.Edge{From: 1, To: 2}, core.Edge{From: 2, To: 0})
	res, err := census.Compute(g)
	require.NoError(t, err)
	v := res.Vector()
	require.Len(t, v, 13)
	assert.Equal(t, 1.0, v[census.Triad030C.Number()-1])
	assert.Equal(t, 1.0, res.Named()["030C"])
}
