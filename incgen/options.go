// SPDX-License-Identifier: MIT
// Package: incgraph/incgen
//
// options.go — functional options for New.
//
// Contract:
//   • Option constructors validate and panic on meaningless input (nil
//     logger, nil observer). The generator itself never panics.
//   • Later options override earlier ones.

package incgen

import (
	"io"
	"log/slog"
)

// IterationStats describes one finished iteration of one edge-type.
type IterationStats struct {
	EdgeType  int // edge-type ID
	Iteration int
	Quota     int // edge attempts made
	Emitted   int // edges appended
	Discarded int // attempts without a real source and target
}

// Observer is called after every iteration with its stats and the live graph.
// It must not mutate g.
type Observer func(st IterationStats, g *Graph)

// Option customizes a Generator.
type Option func(*generatorConfig)

// generatorConfig holds resolved options.
type generatorConfig struct {
	seed     int64
	seedSet  bool
	logger   *slog.Logger
	strict   bool
	observer Observer
}

// newGeneratorConfig applies opts over the defaults: schema seed, discarding
// logger, clamping Zipfian refresh, no observer.
func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed overrides the schema's master seed. Seed 0 selects DefaultSeed.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		c.seed = seed
		c.seedSet = true
	}
}

// WithLogger routes diagnostics (clamped draws, per-edge-type summaries) to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("incgen: WithLogger(nil)")
	}
	return func(c *generatorConfig) { c.logger = l }
}

// WithStrictBudgets makes a Zipfian refresh that would drive open connections
// below zero fail with ErrBudgetUnderflow instead of clamping.
func WithStrictBudgets() Option {
	return func(c *generatorConfig) { c.strict = true }
}

// WithObserver installs a per-iteration callback. Panics on nil.
func WithObserver(fn Observer) Option {
	if fn == nil {
		panic("incgen: WithObserver(nil)")
	}
	return func(c *generatorConfig) { c.observer = fn }
}
