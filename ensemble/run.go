// SPDX-License-Identifier: MIT
// File: run.go
// Role: Parallel null-model ensemble: randomize-then-score on a worker pool.
// Concurrency:
//   - One producer feeds member indices into a task channel; W workers pull
//     tasks and push results; the caller's goroutine collects.
//   - The observed graph is only read (cloned by rewire); members share no
//     mutable state, and member i always draws from PCG(seed, i).
//   - A failing member is dropped and reported; it never stops the pool.
//   - Cancelling ctx stops submission; members already running finish.

package ensemble

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/motifnull/core"
	"github.com/katalvlaran/motifnull/metrics"
	"github.com/katalvlaran/motifnull/rewire"
	"github.com/katalvlaran/motifnull/zscore"
)

// TracerName names the tracer used for run and member spans.
const TracerName = "github.com/katalvlaran/motifnull/ensemble"

const methodRun = "Run"

// Member is one surviving randomized graph's statistics.
type Member struct {
	Index int
	Ratio float64
	Stats map[string]float64
}

// Report is the outcome of Run. Members and Failures are ordered by index.
type Report struct {
	RunID    uuid.UUID
	Observed map[string]float64
	Members  []Member
	Failures []MemberFailure
	ZScores  map[string]float64
}

// SuccessRatios returns the switch success ratio of every surviving member.
func (r *Report) SuccessRatios() []float64 {
	out := make([]float64, len(r.Members))
	for i, m := range r.Members {
		out[i] = m.Ratio
	}

	return out
}

// Samples returns the values of key across surviving members.
func (r *Report) Samples(key string) []float64 {
	out := make([]float64, len(r.Members))
	for i, m := range r.Members {
		out[i] = m.Stats[key]
	}

	return out
}

// Keys returns the observed statistic keys in ascending order.
func (r *Report) Keys() []string { return zscore.Keys(r.Observed) }

type memberResult struct {
	index int
	ratio float64
	stats map[string]float64
	err   error
}

// Run scores g, builds the randomized ensemble and standardizes every
// observed statistic against it.
//
// Errors: core.ErrNilGraph, ErrNoScorers, a *ScorerError when g itself
// cannot be scored, any rewire.Categorize error for g, ErrNoSurvivors, or
// the context error after cancellation.
func Run(ctx context.Context, g *core.Graph, scorers []Scorer, opts ...Option) (*Report, error) {
	cfg := newConfig(opts...)
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodRun, core.ErrNilGraph)
	}
	if len(scorers) == 0 {
		return nil, fmt.Errorf("%s: %w", methodRun, ErrNoScorers)
	}
	if _, err := rewire.Categorize(g, cfg.policy); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}

	report := &Report{RunID: uuid.New()}
	cfg.logger = cfg.logger.With().Str("run_id", report.RunID.String()).Logger()

	ctx, span := otel.Tracer(TracerName).Start(ctx, "ensemble.run",
		trace.WithAttributes(
			attribute.String("motifnull.run_id", report.RunID.String()),
			attribute.Int("motifnull.members", cfg.members),
			attribute.Int("motifnull.workers", cfg.workers),
			attribute.String("motifnull.policy", cfg.policy.String()),
		),
	)
	defer span.End()

	observed, err := scoreAll(g, scorers)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "observed graph")
		return nil, fmt.Errorf("%s: observed graph: %w", methodRun, err)
	}
	report.Observed = observed

	results, err := runPool(ctx, g, scorers, cfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "cancelled")
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}

	for _, res := range results {
		if res.err != nil {
			report.Failures = append(report.Failures, MemberFailure{Index: res.index, Err: res.err})
			continue
		}
		report.Members = append(report.Members, Member{Index: res.index, Ratio: res.ratio, Stats: res.stats})
	}
	cfg.logger.Info().
		Int("members", len(report.Members)).
		Int("failures", len(report.Failures)).
		Msg("ensemble finished")
	if len(report.Members) == 0 {
		span.SetStatus(codes.Error, "no survivors")
		return nil, fmt.Errorf("%s: %d members failed: %w", methodRun, len(report.Failures), ErrNoSurvivors)
	}

	stats := make([]map[string]float64, len(report.Members))
	for i, m := range report.Members {
		stats[i] = m.Stats
	}
	report.ZScores = zscore.Profile(report.Observed, stats)

	return report, nil
}

// runPool executes every member and returns the results ordered by index.
func runPool(ctx context.Context, g *core.Graph, scorers []Scorer, cfg config) ([]memberResult, error) {
	eg, ctx := errgroup.WithContext(ctx)
	tasks := make(chan int)
	results := make(chan memberResult)

	eg.Go(func() error {
		defer close(tasks)
		for i := 0; i < cfg.members; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case tasks <- i:
			}
		}
		return nil
	})
	for range min(cfg.workers, cfg.members) {
		eg.Go(func() error {
			for i := range tasks {
				results <- runMember(ctx, g, scorers, cfg, i)
			}
			return nil
		})
	}

	var waitErr error
	go func() {
		waitErr = eg.Wait()
		close(results)
	}()

	collected := make([]memberResult, 0, cfg.members)
	for res := range results {
		collected = append(collected, res)
	}
	if waitErr != nil {
		return nil, waitErr
	}
	sort.Slice(collected, func(i, j int) bool { return collected[i].index < collected[j].index })

	return collected, nil
}

// runMember randomizes a private copy of g and scores it.
func runMember(ctx context.Context, g *core.Graph, scorers []Scorer, cfg config, index int) memberResult {
	_, span := otel.Tracer(TracerName).Start(ctx, "ensemble.member",
		trace.WithAttributes(attribute.Int("motifnull.member", index)),
	)
	defer span.End()
	start := time.Now()

	res := memberResult{index: index}
	opts := []rewire.Option{
		rewire.WithRand(rand.New(rand.NewPCG(cfg.seed, uint64(index)))),
		rewire.WithFlip(cfg.flip),
		rewire.WithPolicy(cfg.policy),
		rewire.WithLogger(cfg.logger),
	}
	if cfg.metrics != nil {
		opts = append(opts, rewire.WithObserver(cfg.metrics))
	}

	var member *core.Graph
	member, res.ratio, res.err = rewire.Randomize(g, opts...)
	if res.err == nil {
		cfg.logger.Debug().Int("member", index).Float64("ratio", res.ratio).Msg("switching success")
		res.stats, res.err = scoreAll(member, scorers)
	}

	status := metrics.StatusOK
	if res.err != nil {
		status = metrics.StatusFailed
		span.RecordError(res.err)
		span.SetStatus(codes.Error, "member failed")
		cfg.logger.Warn().Err(res.err).Int("member", index).Msg("member dropped")
	}
	span.SetAttributes(attribute.Float64("motifnull.success_ratio", res.ratio))
	cfg.metrics.RecordMember(status, res.ratio, time.Since(start))

	return res
}
