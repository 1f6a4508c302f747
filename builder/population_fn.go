// Package builder provides helper types for configuring precinct
// population distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultPopulation is assigned to each precinct when no PopulationFn is provided.
const DefaultPopulation int64 = 1

// PopulationFn produces a precinct population given an optional *rand.Rand.
// It must be deterministic for a given RNG seed and never return a negative value.
type PopulationFn func(rng *rand.Rand) int64

// DefaultPopulationFn always returns DefaultPopulation.
func DefaultPopulationFn(_ *rand.Rand) int64 {
	return DefaultPopulation
}

// ConstantPopulationFn returns a PopulationFn that always yields pop.
// Panics if pop < 0.
func ConstantPopulationFn(pop int64) PopulationFn {
	if pop < 0 {
		panic(fmt.Sprintf("ConstantPopulationFn: pop must be ≥ 0, got %d", pop))
	}
	return func(_ *rand.Rand) int64 {
		return pop
	}
}

// UniformPopulationFn returns a PopulationFn sampling uniformly in [min, max] inclusive.
// Panics if min < 0 or max < min.
// If rng is nil, yields min to keep a deterministic fallback.
func UniformPopulationFn(min, max int64) PopulationFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformPopulationFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Int63n(max-min+1)
	}
}
