// SPDX-License-Identifier: MIT
// Package: incgraph/incgen
//
// sampler.go — Distribution Sampler.
//
// Every kind is handled explicitly:
//   • Uniform(lo,hi)   → integer in [lo,hi].
//   • Normal(mean,sd)  → round(N(mean,sd)), ties away from zero, clamped to
//     [0, schema.MaxDegree].
//   • Zipfian          → position in [0,1); count stays 0 until refreshed.
//   • Undefined        → count 0, no draw.

package incgen

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/incgraph/schema"
)

// draw is one sampler outcome.
type draw struct {
	count      int
	position   float64
	positional bool // Zipfian: position is meaningful, count is not
	clamped    bool // Normal: a negative rounded value was raised to 0
	saturated  bool // Normal: a rounded value above schema.MaxDegree was lowered to it
}

// sample consumes at most one value from rng.
//
// Complexity: O(1).
func sample(rng *rand.Rand, d schema.Distribution) draw {
	switch d.Kind {
	case schema.Uniform:
		lo, hi := int(d.Arg1), int(d.Arg2)
		return draw{count: lo + rng.Intn(hi-lo+1)}
	case schema.Normal:
		v := math.Round(rng.NormFloat64()*d.Arg2 + d.Arg1)
		switch {
		case !(v >= 0):
			return draw{clamped: true}
		case v > schema.MaxDegree:
			return draw{count: schema.MaxDegree, saturated: true}
		}
		return draw{count: int(v)}
	case schema.Zipfian:
		return draw{position: rng.Float64(), positional: true}
	default:
		return draw{}
	}
}
