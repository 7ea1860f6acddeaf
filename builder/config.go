// SPDX-License-Identifier: MIT
// Package: polysched/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn   ("0","1","2",...)
//   • rng      = nil           (no randomness unless seeded)
//   • weightFn = DefaultWeightFn

package builder

import "math/rand"

// builderConfig aggregates the knobs used by constructors. It is passed by
// value to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
}

// newBuilderConfig applies opts in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws one edge weight from the configured generator.
func (c builderConfig) weight() int {
	return c.weightFn(c.rng)
}
