// Package schema describes the graph a generation run must produce: node-types
// with their target cardinality and scalability, predicates, and edge-types
// that relate two node-types through independent outgoing and incoming degree
// distributions.
//
// A Config is a plain value. It is loaded from YAML (Load/Parse), optionally
// adjusted from the environment (ApplyEnv), and checked with Validate before
// the generator consumes it. The generator treats every index stored here as
// trusted once Validate has returned nil.
//
// YAML shape:
//
//	seed: 222
//	types:
//	  - {alias: A, size: 3}
//	  - {alias: B, size: 2, scalable: true}
//	predicates:
//	  - {alias: knows}
//	edge_types:
//	  - id: 0
//	    subject: 0
//	    object: 1
//	    predicate: 0
//	    outgoing: {kind: uniform, arg1: 1, arg2: 3}
//	    incoming: {kind: zipfian, arg1: 2.5}
//
// Distribution arguments by kind:
//
//	uniform(arg1=min, arg2=max)      integer degree drawn in [min,max]
//	normal(arg1=mean, arg2=stddev)   rounded Gaussian degree, clamped at 0
//	zipfian(arg1=s, arg2=q)          degree k has mass ∝ (k+1+q)^-s
//	undefined                        no connections on that side
package schema
