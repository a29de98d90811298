// SPDX-License-Identifier: MIT
// Package: flarelath/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn          = DefaultIDFn        ("0","1","2",...)
//   • rng           = nil                (pure/deterministic unless seeded)
//   • weightFn      = DefaultWeightFn    (constant 1)
//   • membershipKey = core.DefaultMembershipKey

package builder

import (
	"math/rand"

	"github.com/katalvlaran/flarelath/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic weight generators; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges; used only for weighted graphs.
	weightFn WeightFn
	// Metadata key membership constructors write to.
	membershipKey string
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:          DefaultIDFn,
		weightFn:      DefaultWeightFn,
		membershipKey: core.DefaultMembershipKey,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.membershipKey == "" {
		cfg.membershipKey = core.DefaultMembershipKey
	}

	return cfg
}
