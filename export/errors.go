// SPDX-License-Identifier: MIT
// Package: incgraph/export
//
// errors.go — sentinel errors.

package export

import "errors"

// ErrNilGraph is returned when the graph or schema passed in is nil.
var ErrNilGraph = errors.New("export: nil graph or schema")
