// SPDX-License-Identifier: MIT

package ensemble_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motifnull/builder"
	"github.com/katalvlaran/motifnull/census"
	"github.com/katalvlaran/motifnull/core"
	"github.com/katalvlaran/motifnull/ensemble"
	"github.com/katalvlaran/motifnull/metrics"
	"github.com/katalvlaran/motifnull/rewire"
)

func observedGraph(t *testing.T, directed bool) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(directed)},
		[]builder.BuilderOption{builder.WithSeed(3)},
		builder.RandomSparse(20, 0.15),
	)
	require.NoError(t, err)

	return g
}

func allScorers() []ensemble.Scorer {
	return []ensemble.Scorer{ensemble.CensusScorer{}, ensemble.ModularityScorer{}, ensemble.CorrelationScorer{}}
}

func TestRun(t *testing.T) {
	g := observedGraph(t, true)
	before := g.Edges()
	rep, err := ensemble.Run(context.Background(), g, allScorers(),
		ensemble.WithMembers(12), ensemble.WithWorkers(3), ensemble.WithFlip(5), ensemble.WithSeed(7))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, rep.RunID)
	assert.Len(t, rep.Members, 12)
	assert.Empty(t, rep.Failures)
	assert.Len(t, rep.SuccessRatios(), 12)
	for i, m := range rep.Members {
		assert.Equal(t, i, m.Index)
		assert.Greater(t, m.Ratio, 0.0)
	}
	assert.Equal(t, before, g.Edges(), "observed graph must not change")

	assert.Contains(t, rep.Observed, ensemble.Key("census", "030C"))
	assert.Contains(t, rep.Observed, ensemble.Key("modularity", "q"))
	assert.Contains(t, rep.Observed, ensemble.Key("correlation", "degree"))
	assert.Len(t, rep.Keys(), 13+2+1)
	assert.Equal(t, len(rep.Observed), len(rep.ZScores))
	assert.Len(t, rep.Samples(ensemble.Key("census", "021C")), 12)
}

func TestRun_IndependentOfWorkers(t *testing.T) {
	g := observedGraph(t, true)
	run := func(workers int) *ensemble.Report {
		rep, err := ensemble.Run(context.Background(), g, []ensemble.Scorer{ensemble.CensusScorer{}},
			ensemble.WithMembers(8), ensemble.WithWorkers(workers), ensemble.WithFlip(3), ensemble.WithSeed(99))
		require.NoError(t, err)
		return rep
	}
	a, b := run(1), run(4)
	assert.Equal(t, a.Members, b.Members)
	assert.Equal(t, a.ZScores, b.ZScores)
	assert.NotEqual(t, a.RunID, b.RunID)
}

// flakyScorer succeeds on its first call (the observed graph) and then
// fails on every even-numbered call.
type flakyScorer struct {
	calls  atomic.Int64
	always bool
}

var errFlaky = errors.New("flaky")

func (*flakyScorer) Name() string { return "flaky" }

func (s *flakyScorer) Score(g *core.Graph) (map[string]float64, error) {
	n := s.calls.Add(1)
	if n > 1 && (s.always || n%2 == 0) {
		return nil, errFlaky
	}
	return map[string]float64{"edges": float64(g.EdgeCount())}, nil
}

func TestRun_MemberFailuresAreDropped(t *testing.T) {
	reg := metrics.NewRegistry()
	rep, err := ensemble.Run(context.Background(), observedGraph(t, true), []ensemble.Scorer{&flakyScorer{}},
		ensemble.WithMembers(6), ensemble.WithWorkers(2), ensemble.WithFlip(1), ensemble.WithMetrics(reg))
	require.NoError(t, err)
	assert.Len(t, rep.Members, 3)
	require.Len(t, rep.Failures, 3)
	for _, f := range rep.Failures {
		assert.ErrorIs(t, f, errFlaky)
	}
	// Edge count is preserved, so every survivor equals the observed value.
	assert.Zero(t, rep.ZScores[ensemble.Key("flaky", "edges")])

	var m dto.Metric
	require.NoError(t, reg.MembersTotal.WithLabelValues(metrics.StatusOK).Write(&m))
	assert.Equal(t, 3.0, m.GetCounter().GetValue())
	require.NoError(t, reg.MembersTotal.WithLabelValues(metrics.StatusFailed).Write(&m))
	assert.Equal(t, 3.0, m.GetCounter().GetValue())
	require.NoError(t, reg.SwitchAttemptsTotal.WithLabelValues(rewire.CategoryUnidirectional).Write(&m))
	assert.Positive(t, m.GetCounter().GetValue())
}

func TestRun_NoSurvivors(t *testing.T) {
	_, err := ensemble.Run(context.Background(), observedGraph(t, true), []ensemble.Scorer{&flakyScorer{always: true}},
		ensemble.WithMembers(4), ensemble.WithFlip(1))
	assert.ErrorIs(t, err, ensemble.ErrNoSurvivors)
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()
	_, err := ensemble.Run(ctx, nil, allScorers())
	assert.ErrorIs(t, err, core.ErrNilGraph)

	_, err = ensemble.Run(ctx, observedGraph(t, true), nil)
	assert.ErrorIs(t, err, ensemble.ErrNoScorers)

	_, err = ensemble.Run(ctx, observedGraph(t, false), allScorers(),
		ensemble.WithPolicy(rewire.DomainSpecific(rewire.DomainConfig{Pivots: []int{0}})))
	assert.ErrorIs(t, err, rewire.ErrUnsupportedGraphMode)

	_, err = ensemble.Run(ctx, observedGraph(t, false), []ensemble.Scorer{ensemble.CensusScorer{}}, ensemble.WithMembers(2))
	assert.ErrorIs(t, err, census.ErrUndirected)
	var se *ensemble.ScorerError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "census", se.Scorer)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = ensemble.Run(cancelled, observedGraph(t, true), allScorers(), ensemble.WithMembers(4))
	assert.ErrorIs(t, err, context.Canceled)
}

// cancellingScorer cancels its context while scoring member number after.
type cancellingScorer struct {
	calls  atomic.Int64
	after  int64
	cancel context.CancelFunc
}

func (*cancellingScorer) Name() string { return "cancelling" }

func (s *cancellingScorer) Score(g *core.Graph) (map[string]float64, error) {
	if s.calls.Add(1) == s.after+1 {
		s.cancel()
	}
	return map[string]float64{"edges": float64(g.EdgeCount())}, nil
}

func TestRun_CancelStopsSubmission(t *testing.T) {
	const members = 200
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	scorer := &cancellingScorer{after: 3, cancel: cancel}
	g := observedGraph(t, true)

	done := make(chan error, 1)
	go func() {
		_, err := ensemble.Run(ctx, g, []ensemble.Scorer{scorer},
			ensemble.WithMembers(members), ensemble.WithWorkers(2), ensemble.WithFlip(1))
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	// observed + 3 members, one in-flight member on the other worker and at
	// most one task sent after cancellation.
	assert.LessOrEqual(t, scorer.calls.Load(), int64(1+3+2+1))
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { ensemble.WithMembers(0) })
	assert.Panics(t, func() { ensemble.WithWorkers(0) })
	assert.Panics(t, func() { ensemble.WithFlip(-1) })
}
