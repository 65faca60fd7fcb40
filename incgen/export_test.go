package incgen

import (
	"math/rand"

	"github.com/katalvlaran/incgraph/schema"
)

// White-box bridge for incgen_test. Compiled only with the package tests.

// ExportedSample exposes the distribution sampler.
func ExportedSample(rng *rand.Rand, d schema.Distribution) (count int, position float64, positional, clamped bool) {
	dr := sample(rng, d)
	return dr.count, dr.position, dr.positional, dr.clamped
}

// ExportedSampleSaturated reports whether a draw was lowered to schema.MaxDegree.
func ExportedSampleSaturated(rng *rand.Rand, d schema.Distribution) (count int, saturated bool) {
	dr := sample(rng, d)
	return dr.count, dr.saturated
}

// ExportedDeriveSeed exposes the per-edge-type seed mixer.
var ExportedDeriveSeed = deriveSeed

// ExportedSettle exposes settle.
var ExportedSettle = settle

// ExportedConsume exposes consume.
var ExportedConsume = consume

// ExportedAssignBudget exposes assignBudget, discarding the draw.
func ExportedAssignBudget(rng *rand.Rand, n *Node, et int, d schema.Distribution, dir Direction) {
	assignBudget(rng, n, et, d, dir)
}

// ExportedCreateNode materializes a node through the generator's store.
func ExportedCreateNode(g *Generator, t, iter int, virtual bool) (*Node, error) {
	return g.store.create(t, iter, virtual)
}

// ExportedSetSlot overwrites a budget slot.
func ExportedSetSlot(n *Node, et int, dir Direction, s Interface) {
	*n.slot(et, dir) = s
}

// ExportedRefreshSide runs the Zipfian refresh for one side.
func ExportedRefreshSide(g *Generator, t, et int, dir Direction, d schema.Distribution, iteration int) error {
	return g.refreshSide(t, et, dir, d, iteration)
}

// ExportedSelectEndpoint exposes the endpoint selector.
func ExportedSelectEndpoint(g *Generator, rng *rand.Rand, t, et int, dir Direction, iteration int) (NodeRef, bool) {
	return g.selectEndpoint(rng, t, et, dir, iteration)
}
