// SPDX-License-Identifier: MIT
// Package: motifnull/builder
//
// impl_edgelist.go: FromEdges and ReadEdgeList constructors.
//
// Edge-list format:
//   • One "from to" pair per line, separated by whitespace.
//   • Blank lines and lines starting with '#' are skipped; trailing fields
//     after the pair (weights, attributes) are ignored.
//   • Labels are mapped through core.Labels in first-seen order.
//   • Repeated pairs collapse into one edge unless the graph is a multigraph.

package builder

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/motifnull/core"
)

const (
	methodFromEdges    = "FromEdges"
	methodReadEdgeList = "ReadEdgeList"
	commentPrefix      = "#"
	minEdgeFields      = 2
)

// FromEdges returns a Constructor that inserts the given edges in order.
// Indices are shifted by WithOffset.
func FromEdges(edges []core.Edge) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, e := range edges {
			u, v := cfg.vertex(e.From), cfg.vertex(e.To)
			if err := addCollapsing(g, u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodFromEdges, u, v, err)
			}
		}

		return nil
	}
}

// ReadEdgeList returns a Constructor that parses r and maps labels through
// labels, which must be non-nil. Offsets do not apply to label-mapped indices.
func ReadEdgeList(r io.Reader, labels *core.Labels) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if labels == nil {
			return fmt.Errorf("%s: nil labels: %w", methodReadEdgeList, ErrConstructFailed)
		}
		sc := bufio.NewScanner(r)
		line := 0
		for sc.Scan() {
			line++
			text := strings.TrimSpace(sc.Text())
			if text == "" || strings.HasPrefix(text, commentPrefix) {
				continue
			}
			fields := strings.Fields(text)
			if len(fields) < minEdgeFields {
				return fmt.Errorf("%s: line %d %q: %w", methodReadEdgeList, line, text, ErrMalformedEdgeList)
			}
			u, v := labels.Index(fields[0]), labels.Index(fields[1])
			if err := addCollapsing(g, u, v); err != nil {
				return fmt.Errorf("%s: line %d: AddEdge(%s→%s): %w", methodReadEdgeList, line, fields[0], fields[1], err)
			}
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("%s: %w", methodReadEdgeList, err)
		}
		// Labels seen only on skipped lines never exist; make the vertex set match the table.
		if n := labels.Len(); n > 0 {
			if err := g.EnsureVertex(n - 1); err != nil {
				return fmt.Errorf("%s: %w", methodReadEdgeList, err)
			}
		}

		return nil
	}
}

// addCollapsing inserts u→v, treating a duplicate on a simple graph as a no-op.
func addCollapsing(g *core.Graph, u, v int) error {
	err := g.AddEdge(u, v)
	if errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		return nil
	}

	return err
}
