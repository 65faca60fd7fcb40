// SPDX-License-Identifier: MIT
// Package: incgraph/schema
//
// errors.go — sentinel errors for schema loading and validation.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (which type / edge-type / field) is attached with %w wrapping.

package schema

import "errors"

// ErrIndexOutOfRange indicates an edge-type references a node-type or
// predicate ordinal that does not exist.
var ErrIndexOutOfRange = errors.New("schema: index out of range")

// ErrDuplicateEdgeType indicates two edge-types share the same ID, or an ID
// falls outside [0, len(EdgeTypes)).
var ErrDuplicateEdgeType = errors.New("schema: duplicate or out-of-range edge-type id")

// ErrBadDistribution indicates distribution arguments that cannot be sampled
// (min > max, negative stddev, non-positive Zipf exponent, ...).
var ErrBadDistribution = errors.New("schema: invalid distribution")

// ErrBadSize indicates a negative node-type size.
var ErrBadSize = errors.New("schema: invalid node-type size")

// ErrUnknownKind indicates an unrecognized distribution kind in a config file.
var ErrUnknownKind = errors.New("schema: unknown distribution kind")
