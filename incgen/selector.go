// SPDX-License-Identifier: MIT
// Package: incgraph/incgen
//
// selector.go — CDF-Based Endpoint Selector.
//
// Candidates are the first min(population, iteration+1) nodes of the type,
// weighted by their open connections for (edge-type, direction). Zipfian
// directions are covered by the same rule because their open counts come from
// the Zipfian refresh. The chosen node may be virtual; callers discard it.

package incgen

import (
	"math/rand"

	"github.com/katalvlaran/incgraph/cdf"
)

// selectEndpoint draws one candidate of type t. ok is false when no candidate
// has open connections; no random value is consumed in that case.
//
// Complexity: O(min(population, iteration+1)).
func (g *Generator) selectEndpoint(rng *rand.Rand, t, et int, dir Direction, iteration int) (ref NodeRef, ok bool) {
	nodes := g.graph.Nodes[t]
	n := g.store.population(t)
	if n > iteration+1 {
		n = iteration + 1
	}

	g.weights = g.weights[:0]
	for i := 0; i < n; i++ {
		g.weights = append(g.weights, nodes[i].slot(et, dir).Open)
	}

	table := cdf.ForOpenConnections(g.weights)
	if cdf.Empty(table) {
		return NodeRef{}, false
	}

	i := cdf.FindPosition(table, rng.Float64())
	return NodeRef{Type: t, Index: settle(g.weights, i)}, true
}

// settle moves i onto a bucket with positive weight. A draw equal to a bucket
// boundary (r == 0 with leading empty nodes) can land on a zero-width bucket.
// weights must contain at least one positive value.
func settle(weights []int, i int) int {
	if weights[i] > 0 {
		return i
	}
	for j := i + 1; j < len(weights); j++ {
		if weights[j] > 0 {
			return j
		}
	}
	for j := i - 1; j >= 0; j-- {
		if weights[j] > 0 {
			return j
		}
	}
	return i
}
