// SPDX-License-Identifier: MIT
// File: legality.go
// Role: Switch legality checks. A failed check is a counted no-op.

package rewire

import "github.com/katalvlaran/motifnull/core"

// legal reports whether first=(a,b), second=(c,d) may become (a,d), (c,b).
func legal(g *core.Graph, first, second core.Edge) bool {
	if g.Directed() {
		return legalDirected(g, first, second)
	}

	return legalUndirected(g, first, second)
}

// legalDirected is the classic Milo et al. condition set. The same checks
// serve single and double switches: the last two forbid covering an existing
// reverse edge, which would change a unidirectional edge into a
// bidirectional one or collide with the partner of a double switch.
func legalDirected(g *core.Graph, first, second core.Edge) bool {
	a, b, c, d := first.From, first.To, second.From, second.To
	switch {
	case first == second:
		return false
	case a == d, c == b: // self-loop
		return false
	case g.HasEdge(a, d), g.HasEdge(c, b): // parallel edge
		return false
	case g.HasEdge(d, a), g.HasEdge(b, c): // reverse edge
		return false
	case a == b && c == d: // two self-loops would become a reciprocal pair
		return false
	}

	return true
}

func legalUndirected(g *core.Graph, first, second core.Edge) bool {
	a, b, c, d := first.From, first.To, second.From, second.To
	switch {
	case first == second, first == second.Reverse():
		return false
	case a == d, c == b:
		return false
	case g.HasEdge(a, d), g.HasEdge(c, b):
		return false
	case a == b && c == d: // two loops would become the same edge twice
		return false
	}

	return true
}
