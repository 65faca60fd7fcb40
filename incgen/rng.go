// SPDX-License-Identifier: MIT
// Package: incgraph/incgen
//
// rng.go — GenerationContext: explicit ownership of all randomness.
//
// Goals:
//   - Determinism: same master seed ⇒ identical streams.
//   - Order independence: the stream of an edge-type depends only on the
//     master seed and the edge-type ID, not on which edge-types ran before.
//   - No globals: the context is owned by one Generator.
//
// Derivation:
//   - The master seeding source is seeded once and drawn once per edge-type ID
//     in ID order, at construction.
//   - Each stream is rand.New(rand.NewSource(deriveSeed(base[id], id))).

package incgen

import "math/rand"

// GenerationContext owns the master seeding source and hands out one stream
// per edge-type.
type GenerationContext struct {
	seed  int64
	bases []int64
}

// NewGenerationContext seeds the master source with seed (0 ⇒ DefaultSeed)
// and prepares streams for edge-type IDs 0..edgeTypes-1.
//
// Complexity: O(edgeTypes).
func NewGenerationContext(seed int64, edgeTypes int) *GenerationContext {
	if seed == 0 {
		seed = DefaultSeed
	}
	master := rand.New(rand.NewSource(seed))
	bases := make([]int64, edgeTypes)
	for i := range bases {
		bases[i] = master.Int63()
	}
	return &GenerationContext{seed: seed, bases: bases}
}

// Seed returns the effective master seed.
func (c *GenerationContext) Seed() int64 { return c.seed }

// Stream returns a freshly seeded RNG for edge-type id. Calling it twice for
// the same id yields two identical, independent streams.
// Out-of-range ids fall back to mixing the master seed directly.
func (c *GenerationContext) Stream(id int) *rand.Rand {
	parent := c.seed
	if id >= 0 && id < len(c.bases) {
		parent = c.bases[id]
	}
	return rand.New(rand.NewSource(deriveSeed(parent, uint64(id))))
}

// deriveSeed turns an edge-type's base draw and its ID into the seed of that
// edge-type's stream. Mixing in the ID keeps streams apart even if two bases
// collide; the SplitMix64 finalizer (golden-ratio increment, then two
// xor-shift-multiply rounds) spreads one-bit input changes over all 64 bits.
//
// Complexity: O(1).
func deriveSeed(base int64, edgeType uint64) int64 {
	const (
		golden = 0x9e3779b97f4a7c15
		mix1   = 0xbf58476d1ce4e5b9
		mix2   = 0x94d049bb133111eb
	)
	z := uint64(base) ^ (edgeType + golden)
	z += golden
	z = (z ^ z>>30) * mix1
	z = (z ^ z>>27) * mix2
	return int64(z ^ z>>31)
}
