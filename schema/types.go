// SPDX-License-Identifier: MIT
// Package: incgraph/schema
//
// types.go — node-type, predicate, edge-type and the Config aggregate.

package schema

// NodeType is a partition of nodes sharing a target cardinality.
type NodeType struct {
	// Alias prefixes the display name of every node of this type ("A" → "A0").
	Alias string `yaml:"alias"`
	// Size is the configured number of real nodes.
	Size int `yaml:"size"`
	// Scalable lets degree bookkeeping continue past Size with virtual nodes.
	Scalable bool `yaml:"scalable"`
}

// Predicate labels the edges of one or more edge-types.
type Predicate struct {
	Alias string `yaml:"alias"`
}

// EdgeType relates SubjectType to ObjectType. Outgoing governs the subject's
// out-degree, Incoming the object's in-degree.
type EdgeType struct {
	ID          int          `yaml:"id"`
	SubjectType int          `yaml:"subject"`
	ObjectType  int          `yaml:"object"`
	Predicate   int          `yaml:"predicate"`
	Outgoing    Distribution `yaml:"outgoing"`
	Incoming    Distribution `yaml:"incoming"`
}

// Config is the full generation schema plus the master seed.
// Seed 0 selects the generator's default master seed.
type Config struct {
	Seed       int64       `yaml:"seed"`
	Types      []NodeType  `yaml:"types"`
	Predicates []Predicate `yaml:"predicates"`
	EdgeTypes  []EdgeType  `yaml:"edge_types"`
}

// Iterations returns the number of iterations the driver runs for e:
// the larger configured size of its two endpoint types.
// Callers must have validated e against c.
func (c *Config) Iterations(e EdgeType) int {
	s, o := c.Types[e.SubjectType].Size, c.Types[e.ObjectType].Size
	if s > o {
		return s
	}
	return o
}

// TypeAlias returns the alias of node-type t, or "" when out of range.
func (c *Config) TypeAlias(t int) string {
	if t < 0 || t >= len(c.Types) {
		return ""
	}
	return c.Types[t].Alias
}

// PredicateAlias returns the alias of predicate p, or "" when out of range.
func (c *Config) PredicateAlias(p int) string {
	if p < 0 || p >= len(c.Predicates) {
		return ""
	}
	return c.Predicates[p].Alias
}
