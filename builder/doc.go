// Package builder provides deterministic synthetic precinct maps for tests,
// examples and the CLI's synthetic mode.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph(gopts, bopts, cons...): creates a core.Graph, resolves the
//     builder configuration and applies constructors in order.
//   - Topologies (Constructor factories):
//     – Path(n), Cycle(n), Star(n), Grid(rows, cols).
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithIDScheme / WithSymbNumb: vertex-ID schemes (IDFn).
//     – WithSeed / WithRand: random source for population draws.
//     – WithPopulationFn / WithConstantPopulation / WithUniformPopulation:
//     per-precinct population distributions (PopulationFn).
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with %w.
package builder
