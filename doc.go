// Package incgraph generates labeled, typed graphs whose per-node degrees
// follow configured distributions, reproducibly from one master seed.
//
// Generation is incremental: for each edge-type the generator walks
// iterations 0..max(size(subject), size(object))-1, materializes one node per
// side per iteration, gives it a degree budget, and spends budgets on edges
// drawn between nodes seen so far, weighted by their open connections.
//
// Layout:
//
//	schema/        — node-types, predicates, edge-types, distributions; YAML loading
//	cdf/           — cumulative tables (open connections, Zipfian) and inverse lookup
//	incgen/        — node store, budgets, sampler, endpoint selector, iteration driver
//	export/        — plain-text node/edge listing and summary statistics
//	cmd/incgraph/  — command-line front end
//
// Quick start:
//
//	cfg, err := schema.Load("schema.yaml")
//	gen, err := incgen.New(cfg, incgen.WithSeed(42))
//	g, err := gen.Generate()
//	err = export.WriteText(os.Stdout, g, cfg)
//
//	go install github.com/katalvlaran/incgraph/cmd/incgraph@latest
package incgraph
