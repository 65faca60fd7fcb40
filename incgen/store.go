// SPDX-License-Identifier: MIT
// Package: incgraph/incgen
//
// store.go — Node Store: the growable per-type node arena.
//
// Contract:
//   • create appends at exactly len(type); anything else is ErrStoreGap.
//   • Global IDs increase by one per created node and are never reused.
//   • Pointers returned by lookup/create are valid only until the next create
//     on the same type; hold NodeRefs across creates.

package incgen

import "fmt"

// nodeStore owns Graph.Nodes and the global ID counter.
type nodeStore struct {
	graph  *Graph
	slots  int // Interface slots per node
	nextID uint64
}

// newNodeStore prepares empty sequences for nTypes node-types whose nodes
// carry budgets for nEdgeTypes edge-types.
func newNodeStore(g *Graph, nTypes, nEdgeTypes int) *nodeStore {
	g.Nodes = make([][]Node, nTypes)
	return &nodeStore{graph: g, slots: nEdgeTypes * directions}
}

// population returns the number of materialized nodes of type t.
func (s *nodeStore) population(t int) int {
	return len(s.graph.Nodes[t])
}

// lookup returns the node of type t at iteration iter, or nil if it has not
// been materialized yet.
func (s *nodeStore) lookup(t, iter int) *Node {
	nodes := s.graph.Nodes[t]
	if iter < 0 || iter >= len(nodes) {
		return nil
	}
	return &nodes[iter]
}

// at resolves a ref produced by this store.
func (s *nodeStore) at(ref NodeRef) *Node {
	return &s.graph.Nodes[ref.Type][ref.Index]
}

// create materializes the node of type t at iteration iter.
//
// Complexity: O(slots) amortized.
func (s *nodeStore) create(t, iter int, virtual bool) (*Node, error) {
	if t < 0 || t >= len(s.graph.Nodes) {
		return nil, fmt.Errorf("%s: type=%d: %w", methodCreate, t, ErrTypeOutOfRange)
	}
	if iter != len(s.graph.Nodes[t]) {
		return nil, fmt.Errorf("%s: type=%d iteration=%d population=%d: %w",
			methodCreate, t, iter, len(s.graph.Nodes[t]), ErrStoreGap)
	}

	s.graph.Nodes[t] = append(s.graph.Nodes[t], Node{
		ID:          s.nextID,
		IterationID: iter,
		Type:        t,
		Virtual:     virtual,
		slots:       make([]Interface, s.slots),
	})
	s.nextID++
	return &s.graph.Nodes[t][iter], nil
}
