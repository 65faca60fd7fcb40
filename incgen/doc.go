// Package incgen generates a typed, labeled graph incrementally and
// deterministically from a schema.Config and a master seed.
//
// 🚀 What it does
//
//	For each edge-type, in schema order, the generator walks iterations
//	0..N-1 (N = larger configured size of the two endpoint types). Each
//	iteration materializes (or revisits) the subject and object node at that
//	position, gives them a degree budget for the edge-type, refreshes Zipfian
//	budgets, decides how many edges to attempt and draws their endpoints from
//	cumulative tables weighted by remaining budget.
//
// Building blocks (one file each):
//
//	store.go    — Node Store: per-type arena, nodes addressed by NodeRef
//	budget.go   — Interface-Connection Model: assign / consume budgets
//	sampler.go  — Distribution Sampler: count or Zipf position per draw
//	selector.go — CDF-Based Endpoint Selector
//	zipf.go     — Zipfian Budget Refresh
//	driver.go   — Iteration Driver and the public Generator
//	rng.go      — GenerationContext: master seed → per-edge-type streams
//
// Guarantees:
//
//   - Determinism: the same Config, seed and processing order yield identical
//     node and edge sequences.
//   - Stream independence: each edge-type draws from its own stream keyed by
//     its ID, so reordering edge-types does not change which random numbers
//     any edge-type receives.
//   - Non-scalable types never exceed their configured size; nodes past the
//     size of a scalable type are virtual and never appear as edge endpoints.
//   - For every node and (edge-type, direction): 0 ≤ Open ≤ Total after every
//     operation.
//
// Concurrency:
//
//	A Generator is single-threaded. Do not call its methods from several
//	goroutines; run separate Generators instead.
//
// Quick start:
//
//	cfg, _ := schema.Load("schema.yaml")
//	gen, _ := incgen.New(cfg, incgen.WithSeed(42))
//	g, err := gen.Generate()
package incgen
