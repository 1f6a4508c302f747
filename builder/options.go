// SPDX-License-Identifier: MIT
// Package: redistrict/builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/redistrict/rng"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// A nil fn is ignored and the current scheme is kept.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithRand provides an explicit RNG for population draws.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new deterministic *rand.Rand (seed 0 ⇒ rng.DefaultSeed).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rng.New(seed)
	}
}

// WithPopulationFn overrides the per-precinct population generator.
// Panics on nil.
func WithPopulationFn(fn PopulationFn) BuilderOption {
	if fn == nil {
		panic("builder: WithPopulationFn(nil)")
	}
	return func(c *builderConfig) {
		c.populationFn = fn
	}
}

// WithConstantPopulation gives every precinct the same population.
func WithConstantPopulation(pop int64) BuilderOption {
	return WithPopulationFn(ConstantPopulationFn(pop))
}

// WithUniformPopulation draws populations uniformly from [min, max].
func WithUniformPopulation(min, max int64) BuilderOption {
	return WithPopulationFn(UniformPopulationFn(min, max))
}
