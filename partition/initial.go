package partition

import (
	"context"
	"fmt"

	"github.com/katalvlaran/redistrict/bfs"
	"github.com/katalvlaran/redistrict/core"
	"github.com/katalvlaran/redistrict/plan"
)

// group is a connected precinct set that still has to be cut into m districts
// labelled first..first+m-1.
type group struct {
	set   map[string]bool
	first plan.District
	m     int
}

// Initial builds a valid k-district plan of the whole graph.
//
// Implementation:
//   - Stage 1: Validate k and check that the graph is connected.
//   - Stage 2: Process groups FIFO starting from (all precincts, 1, k).
//     A group with m > 1 is split into sides for ceil(m/2) and floor(m/2)
//     districts, and each side must hold at least as many precincts as the
//     districts it will receive. Only an uneven split (odd m) caps side A at
//     a ceil(m/2)/m share; an even split grows side A uncapped.
//     A group with m == 1 becomes district `first`.
//   - Stage 3: Validate the assembled plan.
//
// For power-of-two k every split is a bisection, depth log2(k).
//
// Errors:
//   - bfs.ErrGraphNil, ErrInvalidDistrictCount, ErrEmptySet,
//     ErrTooManyDistricts, ErrDisconnectedSet, any Split error.
//
// Complexity:
//   - O(log k) split levels, each O(MaxAttempts·(V + E)) worst case.
func Initial(ctx context.Context, g *core.Graph, k int, opts ...Option) (*plan.Plan, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodInitial, bfs.ErrGraphNil)
	}
	if k < 1 {
		return nil, fmt.Errorf("%s: k=%d: %w", methodInitial, k, ErrInvalidDistrictCount)
	}
	ids := g.Vertices()
	if len(ids) == 0 {
		return nil, fmt.Errorf("%s: %w", methodInitial, ErrEmptySet)
	}
	if k > len(ids) {
		return nil, fmt.Errorf("%s: k=%d, precincts=%d: %w", methodInitial, k, len(ids), ErrTooManyDistricts)
	}

	all := make(map[string]bool, len(ids))
	for _, id := range ids {
		all[id] = true
	}
	ok, err := bfs.IsConnected(g, all)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodInitial, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", methodInitial, ErrDisconnectedSet)
	}

	base := newConfig(opts)
	assign := make(map[string]plan.District, len(ids))
	queue := []group{{set: all, first: 1, m: k}}
	for len(queue) > 0 {
		grp := queue[0]
		queue = queue[1:]

		if grp.m == 1 {
			for id := range grp.set {
				assign[id] = grp.first
			}
			continue
		}

		mA := (grp.m + 1) / 2
		mB := grp.m - mA
		cfg := base
		cfg.minA, cfg.minB = mA, mB
		if mA != mB {
			cfg.share = float64(mA) / float64(grp.m)
		}

		halves, err := split(ctx, g, grp.set, 1, 2, cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: districts %d..%d: %w",
				methodInitial, grp.first, int(grp.first)+grp.m-1, err)
		}
		sideA := make(map[string]bool, len(halves))
		sideB := make(map[string]bool, len(halves))
		for id, d := range halves {
			if d == 1 {
				sideA[id] = true
			} else {
				sideB[id] = true
			}
		}
		queue = append(queue,
			group{set: sideA, first: grp.first, m: mA},
			group{set: sideB, first: grp.first + plan.District(mA), m: mB},
		)
	}

	p := plan.FromMap(assign)
	if err = plan.Validate(g, p, k); err != nil {
		return nil, fmt.Errorf("%s: %w", methodInitial, err)
	}
	return p, nil
}
