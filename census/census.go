// SPDX-License-Identifier: MIT
// File: census.go
// Role: Batagelj–Mrvar subquadratic triad census.
// Determinism:
//   - Nodes are visited in ascending index order, neighbors ascending, so
//     recorded triples appear in a stable order.
// Concurrency:
//   - Works on a core.Adjacency snapshot; the graph is only read-locked while
//     the snapshot is taken.

package census

import (
	"fmt"
	"math"
	"math/bits"
	"sort"

	"github.com/katalvlaran/motifnull/core"
)

const methodCompute = "Compute"

// Compute returns the triad census of the directed graph g.
//
// Without WithDisconnected the result holds the thirteen connected classes;
// with it, all sixteen and their sum equals C(N,3).
//
// Errors: core.ErrNilGraph, ErrUndirected, ErrMultigraph, ErrInvalidRanking,
// ErrTooLarge (WithDisconnected only, when C(N,3) exceeds int64).
// Complexity: O(m·Δ).
func Compute(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodCompute, core.ErrNilGraph)
	}
	if !g.Directed() {
		return nil, fmt.Errorf("%s: %w", methodCompute, ErrUndirected)
	}
	if g.Multigraph() {
		return nil, fmt.Errorf("%s: %w", methodCompute, ErrMultigraph)
	}
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	adj := g.Snapshot()
	n := adj.Len()
	rank, err := resolveRanking(cfg.rank, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCompute, err)
	}
	var total int64
	if cfg.disconnected {
		var ok bool
		if total, ok = choose3(n); !ok {
			return nil, fmt.Errorf("%s: C(%d,3): %w", methodCompute, n, ErrTooLarge)
		}
	}

	res := newResult(n, cfg)
	nbrs := neighborhoods(adj)

	var (
		v, u, w int
		s       []int
		inV     []bool
	)
	for v = 0; v < n; v++ {
		for _, u = range nbrs[v] {
			if rank[u] <= rank[v] {
				continue
			}
			s, inV = mergeExcluding(nbrs[v], nbrs[u], u, v, s[:0], inV[:0])
			if cfg.disconnected {
				dyadic := int64(n - len(s) - 2)
				if hasArc(adj, v, u) && hasArc(adj, u, v) {
					res.Counts[Triad102] += dyadic
				} else {
					res.Counts[Triad012] += dyadic
				}
			}
			for i := range s {
				w = s[i]
				if rank[u] < rank[w] || (rank[v] < rank[w] && rank[w] < rank[u] && !inV[i]) {
					res.add(tricode(adj, v, u, w).Class(), Triple{v, u, w})
				}
			}
		}
	}

	if cfg.disconnected {
		var found int64
		for c, k := range res.Counts {
			if c != Triad003 {
				found += k
			}
		}
		res.Counts[Triad003] = total - found
	}

	return res, nil
}

// choose3 returns C(n,3), dividing the factors before multiplying; ok is
// false when the result does not fit in an int64.
func choose3(n int) (int64, bool) {
	if n < 3 {
		return 0, true
	}
	a, b, c := uint64(n), uint64(n-1), uint64(n-2)
	if a%2 == 0 {
		a /= 2
	} else {
		b /= 2
	}
	switch {
	case a%3 == 0:
		a /= 3
	case b%3 == 0:
		b /= 3
	default:
		c /= 3
	}
	hi, ab := bits.Mul64(a, b)
	if hi != 0 {
		return 0, false
	}
	hi, abc := bits.Mul64(ab, c)
	if hi != 0 || abc > math.MaxInt64 {
		return 0, false
	}

	return int64(abc), true
}

// resolveRanking validates rank or returns the identity ordering.
func resolveRanking(rank []int, n int) ([]int, error) {
	if rank == nil {
		id := make([]int, n)
		for i := range id {
			id[i] = i
		}
		return id, nil
	}
	if len(rank) != n {
		return nil, fmt.Errorf("len(rank)=%d, N=%d: %w", len(rank), n, ErrInvalidRanking)
	}
	seen := make([]bool, n)
	for v, r := range rank {
		if r < 0 || r >= n || seen[r] {
			return nil, fmt.Errorf("rank[%d]=%d: %w", v, r, ErrInvalidRanking)
		}
		seen[r] = true
	}

	return rank, nil
}

// neighborhoods returns the sorted union of successors and predecessors of
// every node, excluding the node itself.
func neighborhoods(adj *core.Adjacency) [][]int {
	out := make([][]int, adj.Len())
	for v := range out {
		merged := make([]int, 0, len(adj.Out[v])+len(adj.In[v]))
		a, b := adj.Out[v], adj.In[v]
		i, j := 0, 0
		for i < len(a) || j < len(b) {
			var x int
			switch {
			case j >= len(b) || (i < len(a) && a[i] < b[j]):
				x = a[i]
				i++
			case i >= len(a) || b[j] < a[i]:
				x = b[j]
				j++
			default:
				x = a[i]
				i++
				j++
			}
			if x != v {
				merged = append(merged, x)
			}
		}
		out[v] = merged
	}

	return out
}

// mergeExcluding writes the sorted union of a and b without x and y into s,
// and records in inA whether each element came from a.
func mergeExcluding(a, b []int, x, y int, s []int, inA []bool) ([]int, []bool) {
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		var (
			w     int
			fromA bool
		)
		switch {
		case j >= len(b) || (i < len(a) && a[i] < b[j]):
			w, fromA = a[i], true
			i++
		case i >= len(a) || b[j] < a[i]:
			w = b[j]
			j++
		default:
			w, fromA = a[i], true
			i++
			j++
		}
		if w == x || w == y {
			continue
		}
		s = append(s, w)
		inA = append(inA, fromA)
	}

	return s, inA
}

// hasArc reports whether from→to exists in the snapshot.
func hasArc(adj *core.Adjacency, from, to int) bool {
	row := adj.Out[from]
	k := sort.SearchInts(row, to)

	return k < len(row) && row[k] == to
}

// tricode encodes the arcs among (v, u, w).
func tricode(adj *core.Adjacency, v, u, w int) Tricode {
	var t Tricode
	if hasArc(adj, v, u) {
		t |= bitVU
	}
	if hasArc(adj, u, v) {
		t |= bitUV
	}
	if hasArc(adj, v, w) {
		t |= bitVW
	}
	if hasArc(adj, w, v) {
		t |= bitWV
	}
	if hasArc(adj, u, w) {
		t |= bitUW
	}
	if hasArc(adj, w, u) {
		t |= bitWU
	}

	return t
}
