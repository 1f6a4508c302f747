// Package rng centralizes deterministic random generation for the
// partitioner, the proposal generator and the chain driver.
//
// Goals:
//   - Determinism: same seed ⇒ identical plans and chains.
//   - Encapsulation: one factory; no time-based sources hidden anywhere.
//   - Independence: Derive creates decorrelated streams for parallel chains.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use Derive to create independent streams for parallel chains.
package rng

import "math/rand"

// DefaultSeed is the fixed “zero” seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// New returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func New(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// OrDefault returns r, or a fresh DefaultSeed stream when r is nil.
func OrDefault(r *rand.Rand) *rand.Rand {
	if r == nil {
		return New(0)
	}
	return r
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64-style finalizer.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive creates an independent deterministic stream based on a base RNG
// and a stream identifier. If base==nil, DefaultSeed is used as the parent.
// Otherwise, base.Int63() is consumed once to decorrelate consecutive derivations.
//
// Call during setup, not in hot loops.
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = DefaultSeed
	} else {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// Pick returns a uniformly random element of items.
// The caller guarantees len(items) > 0; items must be in a stable order
// for the draw to be reproducible.
func Pick[T any](r *rand.Rand, items []T) T {
	return items[r.Intn(len(items))]
}

// Coin returns true with probability 1/2.
func Coin(r *rand.Rand) bool {
	return r.Float64() < 0.5
}
