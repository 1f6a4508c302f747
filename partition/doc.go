// Package partition bootstraps redistricting plans by recursively cutting a
// connected precinct set into connected regions.
//
// What
//
//   - Split grows one side as a random connected blob from a random start
//     precinct, then accepts the attempt only if the complement is connected
//     too (rejection sampling over a connectivity predicate).
//   - TreeSplit is the deterministic fallback: it builds a BFS spanning tree
//     of the set and removes the tree edge whose two halves come closest to
//     the requested share. Both halves of a spanning tree are connected.
//   - Initial builds a k-district plan. Each group destined for m districts
//     is split into ceil(m/2) and floor(m/2) districts until every group
//     holds one district, so power-of-two k is plain recursive bisection.
//
// Termination
//
//	Split makes at most MaxAttempts random attempts (WithMaxAttempts, default
//	DefaultMaxAttempts). After that it falls back to TreeSplit unless
//	WithoutFallback is set, in which case ErrSplitExhausted is returned.
//	Disconnected or empty input sets are rejected before any sampling.
//
// Determinism
//
//	Every draw indexes into a sorted slice through the *rand.Rand supplied by
//	WithRand or WithSeed, so the same seed yields the same plan.
//
// Errors
//
//   - ErrEmptySet, ErrSetTooSmall, ErrDisconnectedSet for bad input sets.
//   - ErrSameLabel when both sides would get the same label.
//   - ErrSplitExhausted when no attempt (and no tree cut) satisfies the size bounds.
//   - ErrInvalidDistrictCount, ErrTooManyDistricts for Initial.
package partition
