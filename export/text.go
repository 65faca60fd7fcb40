// SPDX-License-Identifier: MIT
// Package: incgraph/export
//
// text.go — plain-text dump of real nodes and edges.

package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/incgraph/incgen"
	"github.com/katalvlaran/incgraph/schema"
)

const (
	nodesHeader = "###NODES###"
	edgesHeader = "###EDGES###"
)

// WriteText writes g in the node/edge listing format described in the
// package documentation. Node-types are listed in schema order; edge-types in
// ID order, each group followed by a blank line.
//
// Complexity: O(V + E).
func WriteText(w io.Writer, g *incgen.Graph, cfg *schema.Config) error {
	if g == nil || cfg == nil {
		return fmt.Errorf("WriteText: %w", ErrNilGraph)
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(nodesHeader)
	bw.WriteByte('\n')
	for t := range g.Nodes {
		size := 0
		if t < len(cfg.Types) {
			size = cfg.Types[t].Size
		}
		fmt.Fprintf(bw, "Expected number of nodes: %d\n", size)
		for i := range g.Nodes[t] {
			n := &g.Nodes[t][i]
			if n.Virtual {
				continue
			}
			bw.WriteString(n.Label(cfg))
			bw.WriteByte('\n')
		}
	}

	bw.WriteByte('\n')
	bw.WriteString(edgesHeader)
	bw.WriteByte('\n')
	for _, es := range g.Edges {
		for _, e := range es {
			writeEndpoint(bw, g.Node(e.Source), cfg)
			bw.WriteString(" - ")
			bw.WriteString(cfg.PredicateAlias(e.Predicate))
			bw.WriteString(" - ")
			writeEndpoint(bw, g.Node(e.Target), cfg)
			bw.WriteByte('\n')
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteText: %w", err)
	}
	return nil
}

// writeEndpoint renders "A3 (id=7)".
func writeEndpoint(bw *bufio.Writer, n *incgen.Node, cfg *schema.Config) {
	if n == nil {
		bw.WriteString("?")
		return
	}
	bw.WriteString(n.Label(cfg))
	bw.WriteString(" (id=")
	bw.WriteString(strconv.FormatUint(n.ID, 10))
	bw.WriteByte(')')
}
