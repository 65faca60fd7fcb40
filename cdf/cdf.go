// SPDX-License-Identifier: MIT
// Package: incgraph/cdf
//
// cdf.go — cumulative tables and the inverse-CDF lookup.
//
// Contract:
//   • Every returned table is either [NoEligible] or non-decreasing with
//     last element exactly 1.0.
//   • FindPosition never returns an index ≥ len(table).
//   • Pure functions: no RNG, no shared state.

package cdf

import (
	"math"

	"github.com/katalvlaran/incgraph/schema"
)

// NoEligible is stored at index 0 of a table that carries no weight.
const NoEligible = -1.0

// noEligible returns a fresh sentinel table.
func noEligible() []float64 { return []float64{NoEligible} }

// Empty reports whether c is the sentinel table (or has no buckets at all).
func Empty(c []float64) bool {
	return len(c) == 0 || c[0] == NoEligible
}

// ForOpenConnections returns the cumulative distribution over weights, where
// weights[i] is the open-connection count of the i-th node. Negative weights
// contribute nothing.
//
// Complexity: O(n) time, O(n) space.
func ForOpenConnections(weights []int) []float64 {
	var total int
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return noEligible()
	}

	out := make([]float64, len(weights))
	var (
		acc int
		i   int
	)
	for i = range weights {
		if weights[i] > 0 {
			acc += weights[i]
		}
		out[i] = float64(acc) / float64(total)
	}
	return out
}

// Zipf returns the degree table for a Zipfian distribution over a population
// that has reached the given iteration: iteration+1 buckets, bucket k holding
// the probability that a node's target degree is k.
// Non-Zipfian d or a negative iteration yields the sentinel.
//
// Complexity: O(iteration) time and space.
func Zipf(d schema.Distribution, iteration int) []float64 {
	if d.Kind != schema.Zipfian || iteration < 0 || d.Arg1 <= 0 {
		return noEligible()
	}

	n := iteration + 1
	out := make([]float64, n)
	var (
		sum float64
		k   int
	)
	for k = 0; k < n; k++ {
		sum += math.Pow(float64(k)+1+d.Arg2, -d.Arg1)
		out[k] = sum
	}
	for k = 0; k < n-1; k++ {
		out[k] /= sum
	}
	out[n-1] = 1.0
	return out
}

// FindPosition returns the first index i with r ≤ c[i]. If no bucket matches,
// the last index is returned. An empty table yields -1.
//
// Complexity: O(len(c)).
func FindPosition(c []float64, r float64) int {
	if len(c) == 0 {
		return -1
	}
	i := 0
	for _, v := range c {
		if r <= v {
			return i
		}
		i++
	}
	return len(c) - 1
}
