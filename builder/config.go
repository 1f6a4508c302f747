// SPDX-License-Identifier: MIT
// Package: redistrict/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn         = DefaultIDFn                 ("0","1","2",...)
//   • rng          = nil                          (pure/deterministic unless seeded)
//   • populationFn = DefaultPopulationFn          (every precinct DefaultPopulation)

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/redistrict/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for population draws; nil means “no randomness”.
	rng *rand.Rand
	// Population generator, called once per added precinct in insertion order.
	populationFn PopulationFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:         DefaultIDFn,
		rng:          nil,
		populationFn: DefaultPopulationFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// addPrecinct inserts id and assigns its population from cfg.populationFn.
// Re-adding an existing precinct leaves its population untouched.
func (cfg builderConfig) addPrecinct(g *core.Graph, method, id string) error {
	if g.HasVertex(id) {
		return nil
	}
	if err := g.AddVertex(id); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
	}
	pop := cfg.populationFn(cfg.rng)
	if err := g.SetPopulation(id, pop); err != nil {
		return fmt.Errorf("%s: SetPopulation(%s, %d): %w", method, id, pop, err)
	}
	return nil
}

// addEdge links two existing precincts; an already present edge is a no-op
// so constructors can be re-applied to the same graph.
func addEdge(g *core.Graph, method, u, v string) error {
	if g.HasEdge(u, v) {
		return nil
	}
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, u, v, err)
	}
	return nil
}
