// Package redistrict samples redistricting plans for a precinct adjacency
// graph with a Metropolis-Hastings Markov chain.
//
// A plan assigns every precinct to one of k districts such that each district
// is non-empty and connected. The chain starts from a randomized recursive
// bisection of the graph and moves by flipping a single precinct across a
// district border, keeping only flips that leave every district connected.
// Each candidate is accepted with probability
//
//	min(1, exp(alpha·ΔEc + beta·ΔEp))
//
// where Ec and Ep are pluggable compactness and population energies.
//
// Packages:
//
//	core/       precinct graph with populations, thread-safe reads
//	bfs/        breadth-first traversal and connectivity checks
//	rng/        seeded random sources and derived streams
//	plan/       plans, border tracking and validation
//	partition/  randomized bisection and initial plans for any k
//	proposal/   single-precinct flip proposals
//	energy/     acceptance evaluator and energy strategies
//	chain/      chain driver, parallel ensembles and metrics
//	graphio/    CSV/TSV graph, boundary and plan files
//	builder/    synthetic topologies for tests and demos
//	config/     YAML configuration with environment overrides
//
// Quick ASCII example, a 2x3 grid split into two districts:
//
//	1───1───2
//	│   │   │
//	1───2───2
//
// The command in cmd/redistrict wires these together.
package redistrict
