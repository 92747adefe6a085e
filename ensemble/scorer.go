// SPDX-License-Identifier: MIT
// File: scorer.go
// Role: Statistics evaluated on the observed graph and on every member.

package ensemble

import (
	"strconv"

	"github.com/katalvlaran/motifnull/census"
	"github.com/katalvlaran/motifnull/community"
	"github.com/katalvlaran/motifnull/core"
	"github.com/katalvlaran/motifnull/correlation"
)

// Scorer computes named statistics of a graph. Score must not mutate g and
// must be safe for concurrent use on distinct graphs.
type Scorer interface {
	Name() string
	Score(g *core.Graph) (map[string]float64, error)
}

// Key joins a scorer name and a statistic name as used in Report maps.
func Key(scorer, stat string) string { return scorer + "." + stat }

// CensusScorer reports the thirteen connected triad counts, keyed by class
// name ("021D" … "300").
type CensusScorer struct{}

func (CensusScorer) Name() string { return "census" }

func (CensusScorer) Score(g *core.Graph) (map[string]float64, error) {
	res, err := census.Compute(g)
	if err != nil {
		return nil, err
	}

	return res.Named(), nil
}

// ModularityScorer reports the spectral modularity and community count.
type ModularityScorer struct {
	Options []community.Option
}

func (ModularityScorer) Name() string { return "modularity" }

func (s ModularityScorer) Score(g *core.Graph) (map[string]float64, error) {
	res, err := community.Detect(g, s.Options...)
	if err != nil {
		return nil, err
	}

	return map[string]float64{
		"q":           res.Modularity,
		"communities": float64(len(res.Communities)),
	}, nil
}

// CorrelationScorer reports degree assortativity.
type CorrelationScorer struct{}

func (CorrelationScorer) Name() string { return "correlation" }

func (CorrelationScorer) Score(g *core.Graph) (map[string]float64, error) {
	r, err := correlation.DegreeCorrelation(g)
	if err != nil {
		return nil, err
	}

	return map[string]float64{"degree": r}, nil
}

// scoreAll evaluates every scorer and flattens the statistics under Key.
func scoreAll(g *core.Graph, scorers []Scorer) (map[string]float64, error) {
	out := make(map[string]float64)
	for i, s := range scorers {
		stats, err := s.Score(g)
		if err != nil {
			return nil, &ScorerError{Scorer: s.Name(), Position: i, Err: err}
		}
		for k, v := range stats {
			out[Key(s.Name(), k)] = v
		}
	}

	return out, nil
}

// ScorerError reports which scorer failed.
type ScorerError struct {
	Scorer   string
	Position int
	Err      error
}

func (e *ScorerError) Error() string {
	return "ensemble: scorer " + e.Scorer + " (#" + strconv.Itoa(e.Position) + "): " + e.Err.Error()
}

func (e *ScorerError) Unwrap() error { return e.Err }
