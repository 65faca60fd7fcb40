// SPDX-License-Identifier: MIT
// Package: incgraph/incgen
//
// zipf.go — Zipfian Budget Refresh.
//
// Each iteration, for every Zipfian direction of the edge-type, every node
// with IterationID ≤ iteration gets Total = FindPosition(Zipf(d, iteration),
// Position) and Open shifted by the same delta. A node keeps its relative
// popularity (Position is fixed) while its target degree follows the table
// over the population seen so far.
//
// Policy when the new Total is below what the node already consumed:
//   • default: Open is clamped to 0 and a debug line is logged;
//   • WithStrictBudgets: ErrBudgetUnderflow is returned.

package incgen

import (
	"fmt"

	"github.com/katalvlaran/incgraph/cdf"
	"github.com/katalvlaran/incgraph/schema"
)

// refreshZipf applies the refresh to both sides of e as applicable.
func (g *Generator) refreshZipf(e schema.EdgeType, iteration int) error {
	if e.Outgoing.Kind == schema.Zipfian {
		if err := g.refreshSide(e.SubjectType, e.ID, Outgoing, e.Outgoing, iteration); err != nil {
			return err
		}
	}
	if e.Incoming.Kind == schema.Zipfian {
		if err := g.refreshSide(e.ObjectType, e.ID, Incoming, e.Incoming, iteration); err != nil {
			return err
		}
	}
	return nil
}

// refreshSide recomputes the (et, dir) budgets of type t.
//
// Complexity: O(iteration) for the table plus, per node, a scan that stops at
// the node's degree bucket.
func (g *Generator) refreshSide(t, et int, dir Direction, d schema.Distribution, iteration int) error {
	table := cdf.Zipf(d, iteration)
	nodes := g.graph.Nodes[t]

	var s *Interface
	var newTotal, delta, open int
	for i := 0; i < len(nodes) && i <= iteration; i++ {
		s = nodes[i].slot(et, dir)
		newTotal = cdf.FindPosition(table, s.Position)
		delta = newTotal - s.Total
		open = s.Open + delta

		if open < 0 {
			if g.cfg.strict {
				return fmt.Errorf("%s: node %d edge-type %d %s total %d→%d open=%d: %w",
					methodRefreshZipf, nodes[i].ID, et, dir, s.Total, newTotal, open, ErrBudgetUnderflow)
			}
			g.log.Debug("zipfian refresh clamped open connections",
				"node", nodes[i].ID, "edge_type", et, "direction", dir.String(),
				"total", newTotal, "open", open)
			open = 0
		}

		s.Open = open
		s.Total = newTotal
	}
	return nil
}
