package incgen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/incgraph/incgen"
	"github.com/katalvlaran/incgraph/schema"
)

// oneType returns a schema with a single node-type and one self edge-type.
func oneType(size int, scalable bool, out, in schema.Distribution) *schema.Config {
	return &schema.Config{
		Types:      []schema.NodeType{{Alias: "A", Size: size, Scalable: scalable}},
		Predicates: []schema.Predicate{{Alias: "knows"}},
		EdgeTypes: []schema.EdgeType{
			{ID: 0, SubjectType: 0, ObjectType: 0, Predicate: 0, Outgoing: out, Incoming: in},
		},
	}
}

// mixedSchema exercises every distribution kind, scalable and non-scalable
// types, and node-types shared between edge-types.
func mixedSchema() *schema.Config {
	return &schema.Config{
		Seed: 11,
		Types: []schema.NodeType{
			{Alias: "person", Size: 40},
			{Alias: "city", Size: 8, Scalable: true},
			{Alias: "post", Size: 60, Scalable: true},
			{Alias: "tag", Size: 5},
		},
		Predicates: []schema.Predicate{{Alias: "livesIn"}, {Alias: "wrote"}, {Alias: "hasTag"}, {Alias: "knows"}},
		EdgeTypes: []schema.EdgeType{
			{ID: 0, SubjectType: 0, ObjectType: 1, Predicate: 0,
				Outgoing: schema.UniformDist(1, 1), Incoming: schema.ZipfianDist(2.0, 0)},
			{ID: 1, SubjectType: 0, ObjectType: 2, Predicate: 1,
				Outgoing: schema.NormalDist(2, 1.5), Incoming: schema.UniformDist(1, 1)},
			{ID: 2, SubjectType: 2, ObjectType: 3, Predicate: 2,
				Outgoing: schema.UniformDist(0, 3), Incoming: schema.UndefinedDist()},
			{ID: 3, SubjectType: 0, ObjectType: 0, Predicate: 3,
				Outgoing: schema.ZipfianDist(1.5, 1), Incoming: schema.ZipfianDist(2.5, 0)},
			{ID: 4, SubjectType: 3, ObjectType: 0, Predicate: 3,
				Outgoing: schema.NormalDist(6, 2), Incoming: schema.NormalDist(1, 1)},
		},
	}
}

// generate builds a Generator and runs it to completion.
func generate(t *testing.T, cfg *schema.Config, opts ...incgen.Option) *incgen.Graph {
	t.Helper()
	gen, err := incgen.New(cfg, opts...)
	require.NoError(t, err)
	g, err := gen.Generate()
	require.NoError(t, err)
	return g
}

// degrees counts, per node-type and iteration ID, the edges of edge-type et
// leaving (Outgoing) or entering (Incoming) each node.
func degrees(g *incgen.Graph, et int, dir incgen.Direction) map[incgen.NodeRef]int {
	out := make(map[incgen.NodeRef]int)
	for _, e := range g.Edges[et] {
		if dir == incgen.Outgoing {
			out[e.Source]++
		} else {
			out[e.Target]++
		}
	}
	return out
}
