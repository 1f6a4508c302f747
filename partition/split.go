package partition

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/redistrict/bfs"
	"github.com/katalvlaran/redistrict/core"
	"github.com/katalvlaran/redistrict/plan"
	"github.com/katalvlaran/redistrict/rng"
)

// Split divides the connected precinct set into two connected sides and
// returns a mapping of every member to a or b.
//
// Implementation:
//   - Stage 1: Validate the set (non-empty, known precincts, large enough for
//     both minimum sizes, connected). Nothing is sampled for a bad set.
//   - Stage 2: Up to MaxAttempts times, grow side A from a uniform random
//     start. The cursor moves to a random unassigned in-set neighbor; when it
//     has none, a precinct is drawn from the potential frontier (neighbors
//     seen but not chosen). Growth stops when a uniform draw lands within
//     StopTolerance of 1/|set|, when the cap for side A is reached, or when
//     the frontier is exhausted.
//   - Stage 3: Accept the attempt iff side B is reachable in full from a
//     random member of side B and both sides meet their minimum sizes.
//   - Stage 4: After the cap, fall back to TreeSplit or return ErrSplitExhausted.
//
// Errors:
//   - bfs.ErrGraphNil, ErrSameLabel, ErrEmptySet, core.ErrVertexNotFound,
//     ErrSetTooSmall, ErrDisconnectedSet, ErrSplitExhausted, ctx.Err().
//
// Complexity:
//   - Time O(MaxAttempts·(V + E)) worst case, Space O(V).
func Split(ctx context.Context, g *core.Graph, set map[string]bool, a, b plan.District, opts ...Option) (map[string]plan.District, error) {
	return split(ctx, g, set, a, b, newConfig(opts))
}

func split(ctx context.Context, g *core.Graph, set map[string]bool, a, b plan.District, cfg config) (map[string]plan.District, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	members, err := checkSet(methodSplit, g, set, a, b, cfg)
	if err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= cfg.maxAttempts; attempt++ {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: attempt %d: %w", methodSplit, attempt, err)
		}
		sideA, ok, err := grow(g, set, members, cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: attempt %d: %w", methodSplit, attempt, err)
		}
		if ok {
			return label(members, sideA, a, b), nil
		}
	}

	if !cfg.fallback {
		return nil, fmt.Errorf("%s: %d attempts: %w", methodSplit, cfg.maxAttempts, ErrSplitExhausted)
	}
	sideA, err := treeCut(g, set, members, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: fallback: %w", methodSplit, err)
	}
	return label(members, sideA, a, b), nil
}

// checkSet validates a split request and returns the members in ascending order.
func checkSet(method string, g *core.Graph, set map[string]bool, a, b plan.District, cfg config) ([]string, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", method, bfs.ErrGraphNil)
	}
	if a == b {
		return nil, fmt.Errorf("%s: a=b=%d: %w", method, a, ErrSameLabel)
	}
	members := sortedSet(set)
	if len(members) == 0 {
		return nil, fmt.Errorf("%s: %w", method, ErrEmptySet)
	}
	for _, id := range members {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%s: %s: %w", method, id, core.ErrVertexNotFound)
		}
	}
	if len(members) < cfg.minA+cfg.minB {
		return nil, fmt.Errorf("%s: %d precincts, need %d+%d: %w",
			method, len(members), cfg.minA, cfg.minB, ErrSetTooSmall)
	}
	ok, err := bfs.IsConnected(g, set)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", method, ErrDisconnectedSet)
	}
	return members, nil
}

// grow runs one randomized attempt. ok reports whether both sides are
// connected and within their size bounds.
func grow(g *core.Graph, set map[string]bool, members []string, cfg config) (sideA map[string]bool, ok bool, err error) {
	r := cfg.rng
	n := len(members)
	limit := n - cfg.minB
	if cfg.share > 0 {
		if c := int(math.Ceil(cfg.share * float64(n))); c < limit {
			limit = c
		}
	}
	target := 1 / float64(n)

	cur := rng.Pick(r, members)
	sideA = map[string]bool{cur: true}
	var potential frontier

	for len(sideA) < limit {
		u := r.Float64()
		if len(sideA) >= cfg.minA && math.Abs(u-target) <= StopTolerance {
			break
		}

		nbrs, err := g.NeighborIDs(cur)
		if err != nil {
			return nil, false, err
		}
		var cands []string
		for _, v := range nbrs {
			if set[v] && !sideA[v] {
				cands = append(cands, v)
			}
		}

		if len(cands) == 0 {
			if potential.len() == 0 {
				break
			}
			cur = potential.take(r)
		} else {
			cur = rng.Pick(r, cands)
			potential.remove(cur)
			for _, v := range cands {
				if v != cur {
					potential.add(v)
				}
			}
		}
		sideA[cur] = true
	}

	if len(sideA) < cfg.minA {
		return nil, false, nil
	}
	rest := make([]string, 0, n-len(sideA))
	for _, id := range members {
		if !sideA[id] {
			rest = append(rest, id)
		}
	}
	if len(rest) < cfg.minB {
		return nil, false, nil
	}

	reached, err := bfs.ReachableCount(g, rng.Pick(r, rest), func(id string) bool {
		return set[id] && !sideA[id]
	})
	if err != nil {
		return nil, false, err
	}
	return sideA, reached == len(rest), nil
}

// label maps side A to a and every other member to b.
func label(members []string, sideA map[string]bool, a, b plan.District) map[string]plan.District {
	out := make(map[string]plan.District, len(members))
	for _, id := range members {
		if sideA[id] {
			out[id] = a
		} else {
			out[id] = b
		}
	}
	return out
}

func sortedSet(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for id, in := range set {
		if in {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// frontier is an insertion-ordered set with O(1) add, remove and random take.
// Order depends only on the sequence of operations, keeping draws reproducible.
type frontier struct {
	items []string
	pos   map[string]int
}

func (f *frontier) len() int { return len(f.items) }

func (f *frontier) add(id string) {
	if f.pos == nil {
		f.pos = make(map[string]int)
	}
	if _, ok := f.pos[id]; ok {
		return
	}
	f.pos[id] = len(f.items)
	f.items = append(f.items, id)
}

func (f *frontier) remove(id string) {
	i, ok := f.pos[id]
	if !ok {
		return
	}
	last := len(f.items) - 1
	f.items[i] = f.items[last]
	f.pos[f.items[i]] = i
	f.items = f.items[:last]
	delete(f.pos, id)
}

func (f *frontier) take(r *rand.Rand) string {
	id := rng.Pick(r, f.items)
	f.remove(id)
	return id
}
