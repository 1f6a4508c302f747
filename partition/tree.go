package partition

import (
	"fmt"
	"math"

	"github.com/katalvlaran/redistrict/bfs"
	"github.com/katalvlaran/redistrict/core"
	"github.com/katalvlaran/redistrict/plan"
)

// TreeSplit deterministically divides the connected set into two connected
// sides by cutting one edge of a BFS spanning tree rooted at the smallest member.
//
// The cut is the tree edge whose side A size is closest to share·|set|
// (WithShare, default one half) among cuts meeting the minimum sizes. Side A
// is the half containing the root when both halves are equally close.
// Randomness is not consumed.
//
// Errors:
//   - same validation errors as Split;
//   - ErrSplitExhausted when no tree edge satisfies the minimum sizes
//     (for example a star whose leaves must not be separated).
//
// Complexity: O(V + E).
func TreeSplit(g *core.Graph, set map[string]bool, a, b plan.District, opts ...Option) (map[string]plan.District, error) {
	cfg := newConfig(opts)
	members, err := checkSet(methodTreeSplit, g, set, a, b, cfg)
	if err != nil {
		return nil, err
	}
	sideA, err := treeCut(g, set, members, cfg)
	if err != nil {
		return nil, err
	}
	return label(members, sideA, a, b), nil
}

func treeCut(g *core.Graph, set map[string]bool, members []string, cfg config) (map[string]bool, error) {
	n := len(members)
	tree, err := bfs.SpanningTree(g, members[0], bfs.InSet(set))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodTreeSplit, err)
	}
	if len(tree.Order) != n {
		return nil, fmt.Errorf("%s: %w", methodTreeSplit, ErrDisconnectedSet)
	}
	size := tree.SubtreeSizes()

	want := float64(n) / 2
	if cfg.share > 0 {
		want = cfg.share * float64(n)
	}
	var (
		cut      string
		subtreeA bool
		bestDiff = math.Inf(1)
	)
	for _, v := range tree.Order[1:] {
		s := size[v]
		for _, c := range [2]struct {
			sizeA   int
			subtree bool
		}{{n - s, false}, {s, true}} {
			if c.sizeA < cfg.minA || n-c.sizeA < cfg.minB {
				continue
			}
			if d := math.Abs(float64(c.sizeA) - want); d < bestDiff {
				bestDiff, cut, subtreeA = d, v, c.subtree
			}
		}
	}
	if cut == "" {
		return nil, fmt.Errorf("%s: no tree edge meets sizes %d+%d: %w",
			methodTreeSplit, cfg.minA, cfg.minB, ErrSplitExhausted)
	}

	below := tree.Below(cut)
	sideA := make(map[string]bool, n)
	for _, id := range members {
		if below[id] == subtreeA {
			sideA[id] = true
		}
	}
	return sideA, nil
}
