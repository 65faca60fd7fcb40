// SPDX-License-Identifier: MIT
// Package: incgraph/incgen
//
// driver.go — Iteration Driver and the public Generator.
//
// Per edge-type e (stream = ctx.Stream(e.ID)), for i in 0..Iterations(e)-1:
//   1. materialize subject then object at iteration i;
//   2. Zipfian refresh for each Zipfian side;
//   3. quota: both sides counted → min(open); one side counted → its open;
//      neither → bothUncountedQuota; a side without a node has open 0;
//   4. quota attempts: draw source, draw target; discard when either is
//      missing or virtual; otherwise consume one unit on each and append.

package incgen

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/incgraph/schema"
)

// Generator drives one generation run. It is not safe for concurrent use.
type Generator struct {
	schema *schema.Config
	cfg    generatorConfig
	log    *slog.Logger
	ctx    *GenerationContext

	graph *Graph
	store *nodeStore
	done  []bool // by edge-type position

	weights []int // selector scratch buffer
}

// New validates cfg and prepares an empty graph. The schema must not be
// modified while the Generator is in use.
//
// Complexity: O(T + E).
func New(cfg *schema.Config, opts ...Option) (*Generator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNilConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}

	gc := newGeneratorConfig(opts...)
	seed := cfg.Seed
	if gc.seedSet {
		seed = gc.seed
	}

	g := &Generator{
		schema: cfg,
		cfg:    gc,
		log:    gc.logger,
		ctx:    NewGenerationContext(seed, len(cfg.EdgeTypes)),
		graph:  &Graph{Edges: make([][]Edge, len(cfg.EdgeTypes))},
		done:   make([]bool, len(cfg.EdgeTypes)),
	}
	g.store = newNodeStore(g.graph, len(cfg.Types), len(cfg.EdgeTypes))
	return g, nil
}

// Seed returns the effective master seed.
func (g *Generator) Seed() int64 { return g.ctx.Seed() }

// Graph returns the live graph. It keeps changing while edge-types are
// processed.
func (g *Generator) Graph() *Graph { return g.graph }

// Generate processes every not-yet-processed edge-type in schema order and
// returns the graph.
//
// Complexity: Σ over edge-types of Iterations(e) × (population + quota ×
// population) in the worst case.
func (g *Generator) Generate() (*Graph, error) {
	for pos := range g.schema.EdgeTypes {
		if g.done[pos] {
			continue
		}
		if err := g.ProcessEdgeType(pos); err != nil {
			return nil, fmt.Errorf("%s: %w", methodGenerate, err)
		}
	}
	return g.graph, nil
}

// ProcessEdgeType runs all iterations of the edge-type at position pos in the
// schema. Each edge-type can be processed once.
func (g *Generator) ProcessEdgeType(pos int) error {
	if pos < 0 || pos >= len(g.schema.EdgeTypes) {
		return fmt.Errorf("%s: position=%d: %w", methodProcessEdgeType, pos, ErrEdgeTypeOutOfRange)
	}
	if g.done[pos] {
		return fmt.Errorf("%s: position=%d: %w", methodProcessEdgeType, pos, ErrEdgeTypeProcessed)
	}

	e := g.schema.EdgeTypes[pos]
	rng := g.ctx.Stream(e.ID)
	n := g.schema.Iterations(e)

	var total IterationStats
	for i := 0; i < n; i++ {
		st, err := g.processIteration(rng, e, i)
		if err != nil {
			return fmt.Errorf("%s: edge-type %d: %w", methodProcessEdgeType, e.ID, err)
		}
		total.Quota += st.Quota
		total.Emitted += st.Emitted
		total.Discarded += st.Discarded
		if g.cfg.observer != nil {
			g.cfg.observer(st, g.graph)
		}
	}
	g.done[pos] = true

	g.log.Debug("edge-type processed",
		"edge_type", e.ID, "iterations", n,
		"attempts", total.Quota, "edges", total.Emitted, "discarded", total.Discarded)
	return nil
}

// processIteration performs the four steps of one iteration.
func (g *Generator) processIteration(rng *rand.Rand, e schema.EdgeType, i int) (IterationStats, error) {
	st := IterationStats{EdgeType: e.ID, Iteration: i}

	subj, subjOK, err := g.materialize(rng, e, Outgoing, i)
	if err != nil {
		return st, fmt.Errorf("%s: iteration %d: %w", methodIteration, i, err)
	}
	obj, objOK, err := g.materialize(rng, e, Incoming, i)
	if err != nil {
		return st, fmt.Errorf("%s: iteration %d: %w", methodIteration, i, err)
	}

	if err = g.refreshZipf(e, i); err != nil {
		return st, fmt.Errorf("%s: iteration %d: %w", methodIteration, i, err)
	}

	st.Quota = g.quota(e, subj, subjOK, obj, objOK)

	for k := 0; k < st.Quota; k++ {
		src, srcOK := g.selectEndpoint(rng, e.SubjectType, e.ID, Outgoing, i)
		dst, dstOK := g.selectEndpoint(rng, e.ObjectType, e.ID, Incoming, i)
		if !srcOK || !dstOK {
			st.Discarded++
			continue
		}

		sn, tn := g.store.at(src), g.store.at(dst)
		if sn.Virtual || tn.Virtual {
			st.Discarded++
			continue
		}

		if err = consume(sn, e.ID, Outgoing); err != nil {
			return st, fmt.Errorf("%s: iteration %d: %w", methodIteration, i, err)
		}
		if err = consume(tn, e.ID, Incoming); err != nil {
			return st, fmt.Errorf("%s: iteration %d: %w", methodIteration, i, err)
		}
		g.graph.Edges[e.ID] = append(g.graph.Edges[e.ID], Edge{Source: src, Predicate: e.Predicate, Target: dst})
		st.Emitted++
	}
	return st, nil
}

// materialize finds or creates the node on one side of e at iteration i and
// assigns its budget for e. ok is false when the side's type is non-scalable
// and already complete.
func (g *Generator) materialize(rng *rand.Rand, e schema.EdgeType, dir Direction, i int) (ref NodeRef, ok bool, err error) {
	t, d := e.SubjectType, e.Outgoing
	if dir == Incoming {
		t, d = e.ObjectType, e.Incoming
	}
	nt := g.schema.Types[t]
	ref = NodeRef{Type: t, Index: i}

	if n := g.store.lookup(t, i); n != nil {
		g.assign(rng, n, e.ID, d, dir)
		if i < nt.Size {
			n.Virtual = false
		}
		return ref, true, nil
	}

	if !nt.Scalable && i > nt.Size-1 {
		return NodeRef{}, false, nil
	}

	n, err := g.store.create(t, i, i > nt.Size-1)
	if err != nil {
		return NodeRef{}, false, err
	}
	g.assign(rng, n, e.ID, d, dir)
	return ref, true, nil
}

// assign wraps assignBudget with clamp diagnostics.
func (g *Generator) assign(rng *rand.Rand, n *Node, et int, d schema.Distribution, dir Direction) {
	switch dr := assignBudget(rng, n, et, d, dir); {
	case dr.clamped:
		g.log.Debug("normal draw below zero clamped",
			"node", n.ID, "edge_type", et, "direction", dir.String(), "distribution", d.String())
	case dr.saturated:
		g.log.Debug("normal draw above max degree saturated",
			"node", n.ID, "edge_type", et, "direction", dir.String(), "distribution", d.String())
	}
}

// quota returns the number of edge attempts for this iteration.
func (g *Generator) quota(e schema.EdgeType, subj NodeRef, subjOK bool, obj NodeRef, objOK bool) int {
	open := func(ref NodeRef, ok bool, dir Direction) int {
		if !ok {
			return 0
		}
		return g.store.at(ref).slot(e.ID, dir).Open
	}

	switch out, in := e.Outgoing.Counted(), e.Incoming.Counted(); {
	case out && in:
		return min(open(subj, subjOK, Outgoing), open(obj, objOK, Incoming))
	case in:
		return open(obj, objOK, Incoming)
	case out:
		return open(subj, subjOK, Outgoing)
	default:
		return bothUncountedQuota
	}
}
