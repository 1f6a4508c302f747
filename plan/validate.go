package plan

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/redistrict/bfs"
	"github.com/katalvlaran/redistrict/core"
	"github.com/katalvlaran/redistrict/rng"
)

// Validate checks the full plan invariant against g for a k-district plan:
//   - every graph precinct is assigned and every assignment names a graph precinct;
//   - every label lies in 1..k;
//   - every label 1..k is carried by at least one precinct;
//   - the precincts of every label induce one connected component.
//
// The first violation found is returned, wrapped with the offending precinct or label.
//
// Complexity: O(k·(V + E)).
func Validate(g *core.Graph, p *Plan, k int) error {
	if p == nil {
		return ErrNilPlan
	}
	if g == nil {
		return bfs.ErrGraphNil
	}

	for _, id := range g.Vertices() {
		if _, ok := p.assign[id]; !ok {
			return fmt.Errorf("Validate: %s: %w", id, ErrIncomplete)
		}
	}
	for _, id := range p.Precincts() {
		if !g.HasVertex(id) {
			return fmt.Errorf("Validate: %s: %w", id, ErrUnknownPrecinct)
		}
		if d := p.assign[id]; d < 1 || int(d) > k {
			return fmt.Errorf("Validate: %s has district %d (k=%d): %w", id, d, k, ErrLabelOutOfRange)
		}
	}

	for d := District(1); int(d) <= k; d++ {
		set := p.MemberSet(d)
		if len(set) == 0 {
			return fmt.Errorf("Validate: district %d: %w", d, ErrEmptyDistrict)
		}
		ok, err := bfs.IsConnected(g, set)
		if err != nil {
			return fmt.Errorf("Validate: district %d: %w", d, err)
		}
		if !ok {
			return fmt.Errorf("Validate: district %d: %w", d, ErrDisconnectedDistrict)
		}
	}
	return nil
}

// CountConnected sums, over labels 1..k, the number of precincts reachable
// inside each district from a random member of that district.
//
// For a total assignment with labels in 1..k the sum equals g.VertexCount()
// iff every non-empty district is connected: a split district contributes
// only the component of its start precinct. An empty district contributes
// zero without lowering the sum, so callers must check emptiness separately.
//
// Complexity: O(k·(V + E)).
func CountConnected(g *core.Graph, p *Plan, k int, r *rand.Rand) (int, error) {
	r = rng.OrDefault(r)
	total := 0
	for d := District(1); int(d) <= k; d++ {
		members := p.Members(d)
		if len(members) == 0 {
			continue
		}
		start := rng.Pick(r, members)
		label := d
		n, err := bfs.ReachableCount(g, start, func(id string) bool {
			l, ok := p.assign[id]
			return ok && l == label
		})
		if err != nil {
			return 0, fmt.Errorf("CountConnected: district %d: %w", d, err)
		}
		total += n
	}
	return total, nil
}
