// SPDX-License-Identifier: MIT
// Package: incgraph/export
//
// summary.go — per-type and per-edge-type statistics.
//
// Degree statistics are taken over the REAL nodes of the endpoint type,
// zero-degree nodes included, so Mean × real count == edge count.

package export

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/incgraph/incgen"
	"github.com/katalvlaran/incgraph/schema"
)

// TypeSummary counts the nodes of one node-type.
type TypeSummary struct {
	Alias    string
	Expected int // configured size
	Real     int
	Virtual  int
}

// DegreeStats summarizes the degrees of one side of an edge-type.
type DegreeStats struct {
	Min  int
	Max  int
	Mean float64
}

// EdgeTypeSummary describes the edges of one edge-type.
type EdgeTypeSummary struct {
	ID      int
	Subject string
	Label   string // predicate alias
	Object  string
	Edges   int
	Out     DegreeStats // over real subject nodes
	In      DegreeStats // over real object nodes
}

// Summary is the result of Summarize.
type Summary struct {
	Types      []TypeSummary
	EdgeTypes  []EdgeTypeSummary
	TotalEdges int
}

// Summarize computes a Summary of g. Edge-types are reported in ID order.
//
// Complexity: O(V × E_types + E).
func Summarize(g *incgen.Graph, cfg *schema.Config) (Summary, error) {
	if g == nil || cfg == nil {
		return Summary{}, fmt.Errorf("Summarize: %w", ErrNilGraph)
	}

	var s Summary
	for t := range g.Nodes {
		ts := TypeSummary{Alias: cfg.TypeAlias(t)}
		if t < len(cfg.Types) {
			ts.Expected = cfg.Types[t].Size
		}
		ts.Real = g.RealNodeCount(t)
		ts.Virtual = len(g.Nodes[t]) - ts.Real
		s.Types = append(s.Types, ts)
	}

	byID := make(map[int]schema.EdgeType, len(cfg.EdgeTypes))
	for _, e := range cfg.EdgeTypes {
		byID[e.ID] = e
	}
	for id, edges := range g.Edges {
		e, ok := byID[id]
		if !ok {
			continue
		}
		out := make(map[int]int)
		in := make(map[int]int)
		for _, edge := range edges {
			out[edge.Source.Index]++
			in[edge.Target.Index]++
		}
		s.EdgeTypes = append(s.EdgeTypes, EdgeTypeSummary{
			ID:      id,
			Subject: cfg.TypeAlias(e.SubjectType),
			Label:   cfg.PredicateAlias(e.Predicate),
			Object:  cfg.TypeAlias(e.ObjectType),
			Edges:   len(edges),
			Out:     degreeStats(g, e.SubjectType, out),
			In:      degreeStats(g, e.ObjectType, in),
		})
		s.TotalEdges += len(edges)
	}
	return s, nil
}

// degreeStats folds deg (keyed by iteration ID) over the real nodes of t.
func degreeStats(g *incgen.Graph, t int, deg map[int]int) DegreeStats {
	if t < 0 || t >= len(g.Nodes) {
		return DegreeStats{}
	}

	var ds DegreeStats
	var n, sum int
	for i := range g.Nodes[t] {
		if g.Nodes[t][i].Virtual {
			continue
		}
		d := deg[i]
		if n == 0 || d < ds.Min {
			ds.Min = d
		}
		if d > ds.Max {
			ds.Max = d
		}
		sum += d
		n++
	}
	if n > 0 {
		ds.Mean = float64(sum) / float64(n)
	}
	return ds
}

// Write renders s as two aligned tables.
func (s Summary) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "TYPE\tEXPECTED\tREAL\tVIRTUAL")
	for _, t := range s.Types {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", t.Alias, t.Expected, t.Real, t.Virtual)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "ID\tEDGE-TYPE\tEDGES\tOUT MIN/MAX/MEAN\tIN MIN/MAX/MEAN")
	for _, e := range s.EdgeTypes {
		fmt.Fprintf(tw, "%d\t%s -%s-> %s\t%d\t%d/%d/%.2f\t%d/%d/%.2f\n",
			e.ID, e.Subject, e.Label, e.Object, e.Edges,
			e.Out.Min, e.Out.Max, e.Out.Mean, e.In.Min, e.In.Max, e.In.Mean)
	}
	fmt.Fprintf(tw, "\ntotal edges: %d\n", s.TotalEdges)

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("Summary.Write: %w", err)
	}
	return nil
}
