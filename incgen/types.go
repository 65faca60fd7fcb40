// SPDX-License-Identifier: MIT
// Package: incgraph/incgen
//
// types.go — Direction, Interface, Node, NodeRef, Edge and Graph.
//
// Ownership:
//   • Graph.Nodes is the arena: nodes live in their type's slice and are
//     addressed by NodeRef{Type, Index}; Index == IterationID.
//   • Edges hold NodeRefs, never node copies, so budget updates are always
//     applied to the stored node.

package incgen

import (
	"strconv"

	"github.com/katalvlaran/incgraph/schema"
)

// Direction selects the outgoing (subject) or incoming (object) side of an
// edge-type.
type Direction uint8

const (
	// Outgoing is the subject side, governed by EdgeType.Outgoing.
	Outgoing Direction = iota
	// Incoming is the object side, governed by EdgeType.Incoming.
	Incoming
)

// directions is the number of Direction values; slots are laid out
// edgeType*directions + direction.
const directions = 2

// String returns "out" or "in".
func (d Direction) String() string {
	if d == Outgoing {
		return "out"
	}
	return "in"
}

// Interface is the degree budget a node holds for one edge-type and direction.
type Interface struct {
	// Total is the target degree.
	Total int
	// Open is the part of Total not yet consumed by an edge.
	Open int
	// Position is the node's fixed draw in [0,1) for Zipfian directions.
	Position float64
}

// Node is one materialized node. Nodes are never deleted; only their budgets
// and Virtual flag change after creation.
type Node struct {
	// ID is the global identity, assigned in creation order and never reused.
	ID uint64
	// IterationID is the node's position within its type (0-based).
	IterationID int
	// Type is the node-type ordinal.
	Type int
	// Virtual marks bookkeeping-only nodes past the type's configured size.
	Virtual bool

	slots []Interface
}

// Slot returns the budget for edge-type et and direction dir. Unknown slots
// read as the zero Interface.
func (n *Node) Slot(et int, dir Direction) Interface {
	i := et*directions + int(dir)
	if et < 0 || i >= len(n.slots) {
		return Interface{}
	}
	return n.slots[i]
}

// slot returns a pointer to the stored budget; et must be in range.
func (n *Node) slot(et int, dir Direction) *Interface {
	return &n.slots[et*directions+int(dir)]
}

// Label returns the display name alias+iterationID, e.g. "A3".
func (n *Node) Label(cfg *schema.Config) string {
	return cfg.TypeAlias(n.Type) + strconv.Itoa(n.IterationID)
}

// NodeRef addresses a node in Graph.Nodes.
type NodeRef struct {
	Type  int
	Index int
}

// Edge is an immutable (source, predicate, target) triple.
type Edge struct {
	Source    NodeRef
	Predicate int
	Target    NodeRef
}

// Graph is the generation result: Nodes indexed by node-type, Edges indexed
// by edge-type ID. Nodes of a type are stored in strictly increasing
// IterationID order without gaps; the slice includes virtual nodes.
type Graph struct {
	Nodes [][]Node
	Edges [][]Edge
}

// Node resolves ref, or returns nil when it is out of range.
func (g *Graph) Node(ref NodeRef) *Node {
	if ref.Type < 0 || ref.Type >= len(g.Nodes) {
		return nil
	}
	nodes := g.Nodes[ref.Type]
	if ref.Index < 0 || ref.Index >= len(nodes) {
		return nil
	}
	return &nodes[ref.Index]
}

// RealNodes returns copies of the non-virtual nodes of type t in
// IterationID order.
//
// Complexity: O(len(Nodes[t])).
func (g *Graph) RealNodes(t int) []Node {
	if t < 0 || t >= len(g.Nodes) {
		return nil
	}
	out := make([]Node, 0, len(g.Nodes[t]))
	for i := range g.Nodes[t] {
		if !g.Nodes[t][i].Virtual {
			out = append(out, g.Nodes[t][i])
		}
	}
	return out
}

// RealNodeCount returns the number of non-virtual nodes of type t.
func (g *Graph) RealNodeCount(t int) int {
	if t < 0 || t >= len(g.Nodes) {
		return 0
	}
	var n int
	for i := range g.Nodes[t] {
		if !g.Nodes[t][i].Virtual {
			n++
		}
	}
	return n
}

// EdgeCount returns the number of edges across all edge-types.
func (g *Graph) EdgeCount() int {
	var n int
	for _, es := range g.Edges {
		n += len(es)
	}
	return n
}
