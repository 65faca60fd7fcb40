// Package cdf builds the cumulative tables the generator samples from and
// performs the inverse-CDF lookup shared by every draw.
//
// Two tables exist:
//
//   - ForOpenConnections: one bucket per node, width proportional to the
//     node's remaining open connections. Used for weighted endpoint selection.
//   - Zipf: one bucket per degree value 0..iteration, width proportional to
//     (k+1+q)^-s. Used to turn a node's stored position into a target degree.
//
// Both tables are non-decreasing and end at exactly 1.0. A table whose total
// weight is zero is returned as the single sentinel value NoEligible, which
// callers must read as "no candidate", never as an index.
//
// FindPosition is the only lookup: the first bucket whose cumulative value is
// ≥ r, found by linear scan, clamped to the last bucket if floating-point
// rounding lets r run past the end.
package cdf
