// SPDX-License-Identifier: MIT
// Package: incgraph/incgen
//
// budget.go — Interface-Connection Model.
//
// A node holds, per (edge-type, direction), a target degree Total and the
// unconsumed part Open. assignBudget (re)sets the slot from a fresh draw;
// consume spends one unit when an edge is committed.

package incgen

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/incgraph/schema"
)

// assignBudget samples d and stores the result in n's (et, dir) slot.
// Counted draws set Total = Open = count; a Zipfian draw only replaces
// Position and leaves the counts to the Zipfian refresh.
// It returns the draw so callers can report clamping.
func assignBudget(rng *rand.Rand, n *Node, et int, d schema.Distribution, dir Direction) draw {
	s := n.slot(et, dir)
	dr := sample(rng, d)
	if dr.positional {
		s.Position = dr.position
		return dr
	}
	s.Total = dr.count
	s.Open = dr.count
	return dr
}

// consume spends one open connection of n's (et, dir) slot.
func consume(n *Node, et int, dir Direction) error {
	s := n.slot(et, dir)
	if s.Open <= 0 {
		return fmt.Errorf("%s: node %d edge-type %d %s open=%d: %w",
			methodConsume, n.ID, et, dir, s.Open, ErrBudgetUnderflow)
	}
	s.Open--
	return nil
}
