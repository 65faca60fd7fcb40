// SPDX-License-Identifier: MIT
// Package: incgraph/schema
//
// distribution.go — the closed Distribution variant.
//
// Contract:
//   • Kind is exhaustive: Undefined (zero value), Uniform, Normal, Zipfian.
//   • Undefined always means "zero contribution": no budget, no endpoint weight.
//   • Counted() is the Uniform/Normal class used by the per-iteration quota rule.

package schema

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// DistributionKind tags the shape of a degree distribution.
type DistributionKind uint8

const (
	// Undefined allocates no connections on the side it governs.
	Undefined DistributionKind = iota
	// Uniform draws an integer degree uniformly in [Arg1, Arg2].
	Uniform
	// Normal draws a rounded Gaussian degree with mean Arg1 and stddev Arg2.
	Normal
	// Zipfian derives the degree from a fixed per-node position and the
	// Zipf table over the population seen so far.
	Zipfian
)

var kindNames = [...]string{
	Undefined: "undefined",
	Uniform:   "uniform",
	Normal:    "normal",
	Zipfian:   "zipfian",
}

// String returns the lowercase config name of k.
func (k DistributionKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("DistributionKind(%d)", uint8(k))
}

// ParseKind resolves a config name (case-insensitive) to a DistributionKind.
// The empty string resolves to Undefined.
func ParseKind(s string) (DistributionKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return Undefined, nil
	}
	for i, n := range kindNames {
		if n == name {
			return DistributionKind(i), nil
		}
	}
	return Undefined, fmt.Errorf("ParseKind: %q: %w", s, ErrUnknownKind)
}

// UnmarshalYAML decodes a scalar kind name.
func (k *DistributionKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = parsed
	return nil
}

// MarshalYAML encodes k by name.
func (k DistributionKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// Distribution is a pure value describing one side of an edge-type.
type Distribution struct {
	Kind DistributionKind `yaml:"kind"`
	Arg1 float64          `yaml:"arg1"`
	Arg2 float64          `yaml:"arg2"`
}

// UniformDist returns UNIFORM(lo,hi).
func UniformDist(lo, hi int) Distribution {
	return Distribution{Kind: Uniform, Arg1: float64(lo), Arg2: float64(hi)}
}

// NormalDist returns NORMAL(mean,stddev).
func NormalDist(mean, stddev float64) Distribution {
	return Distribution{Kind: Normal, Arg1: mean, Arg2: stddev}
}

// ZipfianDist returns ZIPFIAN(s,q).
func ZipfianDist(s, q float64) Distribution {
	return Distribution{Kind: Zipfian, Arg1: s, Arg2: q}
}

// UndefinedDist returns the zero-contribution distribution.
func UndefinedDist() Distribution {
	return Distribution{}
}

// Counted reports whether the distribution assigns a concrete connection count
// at node creation (Uniform or Normal).
func (d Distribution) Counted() bool {
	return d.Kind == Uniform || d.Kind == Normal
}

// String renders d as KIND(arg1,arg2).
func (d Distribution) String() string {
	if d.Kind == Undefined {
		return "UNDEFINED"
	}
	return fmt.Sprintf("%s(%g,%g)", strings.ToUpper(d.Kind.String()), d.Arg1, d.Arg2)
}

// MaxDegree bounds every drawn degree. Uniform bounds and Normal arguments
// must lie within ±MaxDegree; Normal draws beyond it saturate.
const MaxDegree = math.MaxInt32

// check validates the arguments for the distribution's kind. Conditions are
// written so that NaN fails them.
func (d Distribution) check() error {
	if d.Kind > Zipfian {
		return fmt.Errorf("%s: %w", d.Kind, ErrUnknownKind)
	}
	if !finite(d.Arg1) || !finite(d.Arg2) {
		return fmt.Errorf("%s: arguments must be finite: %w", d, ErrBadDistribution)
	}

	switch d.Kind {
	case Undefined:
		return nil
	case Uniform:
		if !(d.Arg1 >= 0 && d.Arg1 <= d.Arg2 && d.Arg2 <= MaxDegree) {
			return fmt.Errorf("%s: require 0 ≤ min ≤ max ≤ %d: %w", d, MaxDegree, ErrBadDistribution)
		}
		if d.Arg1 != math.Trunc(d.Arg1) || d.Arg2 != math.Trunc(d.Arg2) {
			return fmt.Errorf("%s: bounds must be integers: %w", d, ErrBadDistribution)
		}
	case Normal:
		if !(math.Abs(d.Arg1) <= MaxDegree) {
			return fmt.Errorf("%s: |mean| must be ≤ %d: %w", d, MaxDegree, ErrBadDistribution)
		}
		if !(d.Arg2 >= 0 && d.Arg2 <= MaxDegree) {
			return fmt.Errorf("%s: require 0 ≤ stddev ≤ %d: %w", d, MaxDegree, ErrBadDistribution)
		}
	case Zipfian:
		if !(d.Arg1 > 0) {
			return fmt.Errorf("%s: exponent must be > 0: %w", d, ErrBadDistribution)
		}
		if !(d.Arg2 >= 0) {
			return fmt.Errorf("%s: offset must be ≥ 0: %w", d, ErrBadDistribution)
		}
	default:
		return fmt.Errorf("%s: %w", d.Kind, ErrUnknownKind)
	}
	return nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
