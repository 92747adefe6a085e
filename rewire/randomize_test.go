// SPDX-License-Identifier: MIT

package rewire_test

import (
	"math/rand/v2"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motifnull/builder"
	"github.com/katalvlaran/motifnull/core"
	"github.com/katalvlaran/motifnull/rewire"
)

type degreeSig struct {
	out, in []int
	edges   int
}

func signature(g *core.Graph) degreeSig {
	n := g.VertexCount()
	s := degreeSig{out: make([]int, n), in: make([]int, n), edges: g.EdgeCount()}
	for v := 0; v < n; v++ {
		if g.Directed() {
			s.out[v], s.in[v] = g.OutDegree(v), g.InDegree(v)
		} else {
			s.out[v] = g.Degree(v)
		}
	}

	return s
}

func reciprocated(g *core.Graph) int {
	k := 0
	for _, e := range g.Edges() {
		if !e.IsLoop() && g.HasEdge(e.To, e.From) {
			k++
		}
	}

	return k
}

func randomGraph(n int, p float64, seed uint64, directed bool) *core.Graph {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(directed)},
		[]builder.BuilderOption{builder.WithSeed(seed)},
		builder.RandomSparse(n, p),
	)
	if err != nil {
		panic(err)
	}

	return g
}

// TestRandomizeProperties VERIFIES degree preservation and, for directed
// graphs under Standard, that the reciprocity classes keep their sizes.
func TestRandomizeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	properties := gopter.NewProperties(parameters)

	properties.Property("directed degrees and classes preserved", prop.ForAll(
		func(n int, p float64, seed uint64) bool {
			g := randomGraph(n, p, seed, true)
			before, recip := signature(g), reciprocated(g)
			out, _, err := rewire.Randomize(g, rewire.WithSeed(seed), rewire.WithFlip(5))
			if err != nil {
				return false
			}
			after := signature(out)
			return assert.ObjectsAreEqual(before, after) &&
				recip == reciprocated(out) &&
				out.SelfLoopCount() == 0 &&
				!out.HasParallelEdges()
		},
		gen.IntRange(4, 14),
		gen.Float64Range(0.05, 0.6),
		gen.UInt64(),
	))

	properties.Property("undirected degrees preserved", prop.ForAll(
		func(n int, p float64, seed uint64) bool {
			g := randomGraph(n, p, seed, false)
			before := signature(g)
			out, _, err := rewire.Randomize(g, rewire.WithSeed(seed), rewire.WithFlip(5))
			if err != nil {
				return false
			}
			return assert.ObjectsAreEqual(before, signature(out)) && out.SelfLoopCount() == 0
		},
		gen.IntRange(4, 14),
		gen.Float64Range(0.05, 0.6),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestRandomize_DoubleSwitch(t *testing.T) {
	g := digraph(t, false, core.Edge{From: 0, To: 1}, core.Edge{From: 1, To: 0}, core.Edge{From: 2, To: 3}, core.Edge{From: 3, To: 2})
	res, err := rewire.RandomizeWithStats(g, rewire.WithSeed(11), rewire.WithFlip(10))
	require.NoError(t, err)
	require.Len(t, res.Categories, 2)

	bi := res.Categories[1]
	assert.Equal(t, rewire.CategoryBidirectional, bi.Category)
	assert.Equal(t, 4, bi.Size)
	assert.Equal(t, 10*2*4, bi.Expected)
	assert.Positive(t, bi.Successes)
	assert.InDelta(t, float64(bi.Successes)/float64(bi.Expected), res.Ratio, 1e-12)

	assert.Equal(t, 4, reciprocated(res.Graph))
	assert.Equal(t, signature(g), signature(res.Graph))
}

func TestRandomize_SelfLoopPolicy(t *testing.T) {
	g := digraph(t, true, core.Edge{From: 0, To: 0}, core.Edge{From: 1, To: 2}, core.Edge{From: 3, To: 4}, core.Edge{From: 4, To: 5})
	_, _, err := rewire.Randomize(g, rewire.WithSeed(1))
	assert.ErrorIs(t, err, rewire.ErrSelfLoop)

	out, ratio, err := rewire.Randomize(g, rewire.WithSeed(1), rewire.WithPolicy(rewire.WithSelfLoops()), rewire.WithFlip(10))
	require.NoError(t, err)
	assert.Positive(t, ratio)
	assert.Equal(t, signature(g), signature(out))
	assert.Zero(t, reciprocated(out))
}

func TestRandomize_DomainPreservesRoles(t *testing.T) {
	g, labels := metabolic(t)
	r1, _ := labels.Lookup("R1")
	r2, _ := labels.Lookup("R2")
	policy := rewire.DomainSpecific(rewire.DomainConfig{Pivots: []int{r1, r2}})
	out, _, err := rewire.Randomize(g, rewire.WithSeed(5), rewire.WithPolicy(policy))
	require.NoError(t, err)
	assert.Equal(t, signature(g), signature(out))
	for _, e := range out.Edges() {
		assert.True(t, e.From == r1 || e.From == r2 || e.To == r1 || e.To == r2, "edge %v lost its pivot", e)
	}
}

func TestRandomize_Degenerate(t *testing.T) {
	empty := core.NewGraph(core.WithDirected(true))
	empty.AddVertices(4)
	out, ratio, err := rewire.Randomize(empty, rewire.WithSeed(1))
	require.NoError(t, err)
	assert.Zero(t, ratio)
	assert.Zero(t, out.EdgeCount())

	// One edge per group is below every arity, so nothing can be attempted.
	single := digraph(t, false, core.Edge{From: 0, To: 1})
	res, err := rewire.RandomizeWithStats(single, rewire.WithSeed(1))
	require.NoError(t, err)
	assert.Zero(t, res.Ratio)
	assert.Equal(t, []core.Edge{{From: 0, To: 1}}, res.Graph.Edges())
	for _, c := range res.Categories {
		assert.Zero(t, c.Expected)
	}

	out, ratio, err = rewire.Randomize(single, rewire.WithSeed(1), rewire.WithFlip(0))
	require.NoError(t, err)
	assert.Zero(t, ratio)
	assert.Equal(t, 1, out.EdgeCount())
}

func TestRandomize_Errors(t *testing.T) {
	_, _, err := rewire.Randomize(nil, rewire.WithSeed(1))
	assert.ErrorIs(t, err, core.ErrNilGraph)

	multi := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	require.NoError(t, multi.AddEdge(0, 1))
	_, _, err = rewire.Randomize(multi, rewire.WithSeed(1))
	assert.ErrorIs(t, err, rewire.ErrMultigraph)

	g := digraph(t, false, core.Edge{From: 0, To: 1}, core.Edge{From: 2, To: 3})
	_, _, err = rewire.Randomize(g)
	assert.ErrorIs(t, err, rewire.ErrNeedRandSource)

	assert.Panics(t, func() { rewire.WithFlip(-1) })
	assert.Panics(t, func() { rewire.WithRand(nil) })
	assert.Panics(t, func() { rewire.WithObserver(nil) })
}

func TestRandomize_CopySemantics(t *testing.T) {
	g := randomGraph(12, 0.3, 4, true)
	edges := g.Edges()

	out, _, err := rewire.Randomize(g, rewire.WithSeed(9))
	require.NoError(t, err)
	assert.NotSame(t, g, out)
	assert.Equal(t, edges, g.Edges())

	out, _, err = rewire.Randomize(g, rewire.WithSeed(9), rewire.WithCopy(false))
	require.NoError(t, err)
	assert.Same(t, g, out)
}

func TestRandomize_Deterministic(t *testing.T) {
	g := randomGraph(15, 0.25, 2, true)
	a, ra, err := rewire.Randomize(g, rewire.WithRand(rand.New(rand.NewPCG(3, 7))))
	require.NoError(t, err)
	b, rb, err := rewire.Randomize(g, rewire.WithRand(rand.New(rand.NewPCG(3, 7))))
	require.NoError(t, err)
	assert.Equal(t, ra, rb)
	assert.Equal(t, a.Edges(), b.Edges())
}

type countingObserver struct {
	attempts  map[string]int
	successes map[string]int
}

func (o *countingObserver) ObserveSwitch(category string, accepted bool) {
	o.attempts[category]++
	if accepted {
		o.successes[category]++
	}
}

func TestRandomize_Observer(t *testing.T) {
	g := randomGraph(12, 0.3, 8, true)
	obs := &countingObserver{attempts: map[string]int{}, successes: map[string]int{}}
	res, err := rewire.RandomizeWithStats(g, rewire.WithSeed(2), rewire.WithFlip(3), rewire.WithObserver(obs))
	require.NoError(t, err)
	for _, c := range res.Categories {
		assert.Equal(t, c.Expected, obs.attempts[c.Category], c.Category)
		assert.Equal(t, c.Successes, obs.successes[c.Category], c.Category)
	}
}
