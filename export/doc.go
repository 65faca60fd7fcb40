// SPDX-License-Identifier: MIT

// Package export renders a generated graph for people and downstream tools.
//
// Two views are provided:
//
//   - WriteText: a plain dump of real nodes per node-type and of every edge,
//     grouped by edge-type, one line per edge:
//
//     ###NODES###
//     Expected number of nodes: 3
//     A0
//     A1
//     A2
//
//     ###EDGES###
//     A0 (id=0) - knows - A0 (id=0)
//     ...
//
//   - Summarize / Summary.Write: per node-type real and virtual counts, and per
//     edge-type edge counts with out/in degree statistics over real nodes.
//
// Neither view mutates the graph. Virtual nodes never appear in WriteText.
package export
