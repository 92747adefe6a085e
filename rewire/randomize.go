// SPDX-License-Identifier: MIT
// File: randomize.go
// Role: Degree-preserving edge switching (Milo et al. 2002).
// Invariants:
//   - Every vertex keeps its in- and out-degree; the edge count is constant.
//   - Groups and graph change together: new edges are added before old ones
//     are removed, and group positions are overwritten in place.
// Determinism:
//   - For a fixed graph, policy, flip and random source the result is fixed.

package rewire

import (
	"fmt"

	"github.com/katalvlaran/motifnull/core"
)

const methodRandomize = "Randomize"

// CategoryStats summarizes one group after randomization.
type CategoryStats struct {
	Category  string
	Arity     int
	Size      int
	Expected  int
	Successes int
}

// Result is the outcome of RandomizeWithStats.
type Result struct {
	Graph      *core.Graph
	Ratio      float64
	Categories []CategoryStats
}

// Randomize rewires g by repeated edge switches and returns the rewired
// graph with the ratio of successful switches to attempts.
//
// A group of size s and arity k gets flip·k·s attempts when s > k, else none.
// Each attempt picks a group with probability proportional to its remaining
// attempts, draws two positions with replacement and applies the switch
// when legal. A graph without edges, or one whose groups are all too small,
// is returned unmodified with ratio 0.
//
// Errors: core.ErrNilGraph, ErrMultigraph, ErrNeedRandSource, and any
// Categorize error. All of them occur before the graph is touched.
func Randomize(g *core.Graph, opts ...Option) (*core.Graph, float64, error) {
	res, err := RandomizeWithStats(g, opts...)
	if err != nil {
		return nil, 0, err
	}

	return res.Graph, res.Ratio, nil
}

// RandomizeWithStats is Randomize with per-category accounting.
func RandomizeWithStats(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomize, core.ErrNilGraph)
	}
	if g.Multigraph() {
		return nil, fmt.Errorf("%s: %w", methodRandomize, ErrMultigraph)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomize, ErrNeedRandSource)
	}

	work := g
	if cfg.copy {
		work = g.Clone()
	}
	res := &Result{Graph: work}
	if work.EdgeCount() == 0 {
		return res, nil
	}
	groups, err := Categorize(work, cfg.policy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomize, err)
	}

	s := newSwitcher(work, groups, cfg)
	if s.total == 0 {
		res.Categories = s.stats()
		return res, nil
	}
	if err = s.run(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomize, err)
	}
	res.Categories = s.stats()
	res.Ratio = s.ratio()
	for _, c := range res.Categories {
		cfg.logger.Debug().
			Str("category", c.Category).
			Int("size", c.Size).
			Int("expected", c.Expected).
			Int("successes", c.Successes).
			Msg("category rewired")
	}

	return res, nil
}

// track is the per-group bookkeeping: expected attempts, remaining attempts
// and successes.
type track struct {
	expected  int
	remaining int
	successes int
}

type switcher struct {
	g      *core.Graph
	groups []*EdgeGroup
	tracks []track
	total  int
	cfg    config
}

func newSwitcher(g *core.Graph, groups []*EdgeGroup, cfg config) *switcher {
	s := &switcher{g: g, groups: groups, tracks: make([]track, len(groups)), cfg: cfg}
	for i, eg := range groups {
		if eg.Len() > eg.Arity {
			s.tracks[i].expected = cfg.flip * eg.Arity * eg.Len()
			s.tracks[i].remaining = s.tracks[i].expected
			s.total += s.tracks[i].expected
		}
	}

	return s
}

// run consumes the global attempt pool one attempt at a time.
func (s *switcher) run() error {
	rng := s.cfg.rng
	for s.total > 0 {
		j := s.pick(rng.IntN(s.total))
		eg := s.groups[j]
		u, v := rng.IntN(eg.Len()), rng.IntN(eg.Len())

		var ok bool
		var err error
		if eg.Arity == 2 {
			ok, err = s.switchDouble(eg, u, v)
		} else {
			ok, err = s.switchSingle(eg, u, v)
		}
		if err != nil {
			return fmt.Errorf("category %s: %w", eg.Category, err)
		}
		if ok {
			s.tracks[j].successes++
		}
		s.cfg.observer.ObserveSwitch(eg.Category, ok)
		s.tracks[j].remaining--
		s.total--
	}

	return nil
}

// pick maps a draw in [0, total) onto the group owning that slice of the
// remaining attempts.
func (s *switcher) pick(draw int) int {
	for j := range s.tracks {
		if draw < s.tracks[j].remaining {
			return j
		}
		draw -= s.tracks[j].remaining
	}

	return len(s.tracks) - 1
}

func (s *switcher) switchSingle(eg *EdgeGroup, u, v int) (bool, error) {
	first, second := eg.At(u), eg.At(v)
	if !s.g.Directed() && s.cfg.rng.IntN(2) == 1 {
		second = second.Reverse()
	}
	if !legal(s.g, first, second) {
		return false, nil
	}
	newFirst := core.Edge{From: first.From, To: second.To}
	newSecond := core.Edge{From: second.From, To: first.To}
	if err := s.replace([]core.Edge{newFirst, newSecond}, []core.Edge{first, second}); err != nil {
		return false, err
	}
	eg.Set(u, newFirst)
	eg.Set(v, newSecond)

	return true, nil
}

// switchDouble turns the reciprocal pairs a⇄b and c⇄d into a⇄d and c⇄b.
func (s *switcher) switchDouble(eg *EdgeGroup, u, v int) (bool, error) {
	first, second := eg.At(u), eg.At(v)
	if !legal(s.g, first, second) {
		return false, nil
	}
	x, okx := eg.Position(first.Reverse())
	y, oky := eg.Position(second.Reverse())
	if !okx || !oky {
		return false, fmt.Errorf("missing reverse of %v or %v: %w", first, second, ErrCorruptGroup)
	}
	a, b, c, d := first.From, first.To, second.From, second.To
	added := []core.Edge{{From: a, To: d}, {From: c, To: b}, {From: b, To: c}, {From: d, To: a}}
	removed := []core.Edge{first, first.Reverse(), second, second.Reverse()}
	if err := s.replace(added, removed); err != nil {
		return false, err
	}
	eg.Set(u, added[0])
	eg.Set(v, added[1])
	eg.Set(x, added[2])
	eg.Set(y, added[3])

	return true, nil
}

func (s *switcher) replace(added, removed []core.Edge) error {
	for _, e := range added {
		if err := s.g.AddEdge(e.From, e.To); err != nil {
			return fmt.Errorf("add %v: %v: %w", e, err, ErrCorruptGroup)
		}
	}
	for _, e := range removed {
		if err := s.g.RemoveEdge(e.From, e.To); err != nil {
			return fmt.Errorf("remove %v: %v: %w", e, err, ErrCorruptGroup)
		}
	}

	return nil
}

func (s *switcher) stats() []CategoryStats {
	out := make([]CategoryStats, len(s.groups))
	for i, eg := range s.groups {
		out[i] = CategoryStats{
			Category:  eg.Category,
			Arity:     eg.Arity,
			Size:      eg.Len(),
			Expected:  s.tracks[i].expected,
			Successes: s.tracks[i].successes,
		}
	}

	return out
}

func (s *switcher) ratio() float64 {
	var expected, successes int
	for _, t := range s.tracks {
		expected += t.expected
		successes += t.successes
	}
	if expected == 0 {
		return 0
	}

	return float64(successes) / float64(expected)
}
