// SPDX-License-Identifier: MIT
// Package: gpmap/simulate
//
// options.go — functional options and the resolved landscape configuration.
//
// Contract:
//   - Options mutate an unexported fujiConfig; later options override earlier.
//   - WithRand panics on nil (programmer error); value checks that depend on
//     the landscape (finite field strength, ordered range) happen in the
//     constructor and surface as sentinel errors.
//   - Without WithSeed/WithRand, draws use a clock-seeded source.
//
// Deterministic defaults:
//   - fieldStrength = 1.0
//   - roughness     = unset (all-zero field)

package simulate

import (
	"math/rand"
	"time"
)

const (
	defaultFieldStrength = 1.0
	rangeArity           = 2 // (low, high)
)

// Option customizes a MountFuji before its first build.
type Option func(*fujiConfig)

// fujiConfig aggregates construction knobs. Passed by value.
type fujiConfig struct {
	fieldStrength float64
	rng           *rand.Rand
	// roughness bounds to draw at construction; nil keeps the zero field.
	roughness []float64
}

// WithFieldStrength sets the slope c of the linear fitness field.
func WithFieldStrength(c float64) Option {
	return func(cfg *fujiConfig) {
		cfg.fieldStrength = c
	}
}

// WithRand provides the RNG used for roughness draws. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("simulate: WithRand(nil)")
	}
	return func(cfg *fujiConfig) {
		cfg.rng = r
	}
}

// WithSeed creates a deterministic RNG for roughness draws.
func WithSeed(seed int64) Option {
	return func(cfg *fujiConfig) {
		// Seeded source → reproducible roughness draws.
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRoughness draws roughness uniformly from [low, high) at construction,
// exactly as a later SetRoughness(low, high) would.
func WithRoughness(low, high float64) Option {
	return func(cfg *fujiConfig) {
		// Validated in the constructor so a bad range surfaces as ErrInvalidRange.
		cfg.roughness = []float64{low, high}
	}
}

// newFujiConfig applies opts over the defaults and resolves the RNG.
// Complexity: O(len(opts)).
func newFujiConfig(opts ...Option) fujiConfig {
	cfg := fujiConfig{
		fieldStrength: defaultFieldStrength, // unit slope
		rng:           nil,                  // resolved below unless seeded
		roughness:     nil,                  // zero field
	}
	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}
	// No WithSeed/WithRand: fall back to a clock-seeded source.
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
