// SPDX-License-Identifier: MIT
// Package: incgraph/schema
//
// config.go — loading and structural validation.
//
// Sources, in order of precedence (later wins):
//   1. YAML file (Load) or bytes (Parse).
//   2. Environment: INCGRAPH_SEED overrides Seed (ApplyEnv).
//   3. Caller options in the generator (incgen.WithSeed).

package schema

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvSeed is the environment variable consulted by ApplyEnv.
const EnvSeed = "INCGRAPH_SEED"

// Load reads and validates a YAML schema file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML schema.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyEnv overrides fields from the environment. Unset or unparsable values
// leave cfg untouched; it reports whether an override was applied.
func ApplyEnv(cfg *Config) bool {
	raw, ok := os.LookupEnv(EnvSeed)
	if !ok {
		return false
	}
	seed, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return false
	}
	cfg.Seed = seed
	return true
}

// Validate checks every ordinal and distribution argument the generator will
// rely on. It does not judge whether the schema is sensible.
//
// Complexity: O(T + P + E).
func (c *Config) Validate() error {
	for i, t := range c.Types {
		if t.Size < 0 {
			return fmt.Errorf("Validate: type %d (%s) size=%d: %w", i, t.Alias, t.Size, ErrBadSize)
		}
	}

	seen := make([]bool, len(c.EdgeTypes))
	for i, e := range c.EdgeTypes {
		if e.ID < 0 || e.ID >= len(c.EdgeTypes) || seen[e.ID] {
			return fmt.Errorf("Validate: edge-type at %d has id=%d: %w", i, e.ID, ErrDuplicateEdgeType)
		}
		seen[e.ID] = true

		if e.SubjectType < 0 || e.SubjectType >= len(c.Types) {
			return fmt.Errorf("Validate: edge-type %d subject=%d: %w", e.ID, e.SubjectType, ErrIndexOutOfRange)
		}
		if e.ObjectType < 0 || e.ObjectType >= len(c.Types) {
			return fmt.Errorf("Validate: edge-type %d object=%d: %w", e.ID, e.ObjectType, ErrIndexOutOfRange)
		}
		if e.Predicate < 0 || e.Predicate >= len(c.Predicates) {
			return fmt.Errorf("Validate: edge-type %d predicate=%d: %w", e.ID, e.Predicate, ErrIndexOutOfRange)
		}
		if err := e.Outgoing.check(); err != nil {
			return fmt.Errorf("Validate: edge-type %d outgoing: %w", e.ID, err)
		}
		if err := e.Incoming.check(); err != nil {
			return fmt.Errorf("Validate: edge-type %d incoming: %w", e.ID, err)
		}
	}
	return nil
}
