// SPDX-License-Identifier: MIT
// Package: incgraph/incgen
//
// errors.go — sentinel errors for the generator.
//
// Error policy:
//   • Callers branch with errors.Is; context is attached with %w.
//   • Every sentinel below signals a programmer or schema defect. The
//     "no eligible endpoint" outcome of a draw is not an error, and neither is
//     skipping a node past a non-scalable type's size.

package incgen

import "errors"

// ErrNilConfig indicates New was called without a schema.
var ErrNilConfig = errors.New("incgen: nil config")

// ErrTypeOutOfRange indicates a node-type ordinal outside the schema.
var ErrTypeOutOfRange = errors.New("incgen: node-type out of range")

// ErrEdgeTypeOutOfRange indicates an edge-type position outside the schema.
var ErrEdgeTypeOutOfRange = errors.New("incgen: edge-type out of range")

// ErrEdgeTypeProcessed indicates an edge-type was already driven to completion.
var ErrEdgeTypeProcessed = errors.New("incgen: edge-type already processed")

// ErrStoreGap indicates a node would be created at an iteration that does not
// immediately follow the last materialized node of its type.
var ErrStoreGap = errors.New("incgen: node store gap")

// ErrBudgetUnderflow indicates an open-connection count would drop below zero.
var ErrBudgetUnderflow = errors.New("incgen: open connections underflow")
