package bfs

import (
	"fmt"

	"github.com/katalvlaran/redistrict/core"
)

// Member reports whether a precinct belongs to the region being walked.
// A nil Member admits every vertex.
type Member func(id string) bool

// InSet returns a Member admitting exactly the IDs mapped to true in set.
func InSet(set map[string]bool) Member {
	return func(id string) bool { return set[id] }
}

// walk visits every member reachable from start, stepping only through
// members, and returns them in visit order. onEdge, when non-nil, receives
// each tree edge (child, parent) as the child is discovered.
//
// Neighbors come from core.NeighborIDs in ascending order, so the order is
// reproducible. The queue doubles as the result; no per-vertex depth or
// parent state is kept unless onEdge records it.
func walk(g *core.Graph, start string, member Member, onEdge func(child, parent string)) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}
	if member == nil {
		member = func(string) bool { return true }
	}
	if !member(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotMember, start)
	}

	seen := map[string]bool{start: true}
	queue := []string{start}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		nbrs, err := g.NeighborIDs(cur)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, cur, err)
		}
		for _, v := range nbrs {
			if seen[v] || !member(v) {
				continue
			}
			seen[v] = true
			if onEdge != nil {
				onEdge(v, cur)
			}
			queue = append(queue, v)
		}
	}
	return queue, nil
}

// Tree is a breadth-first spanning tree of the members reachable from Root.
type Tree struct {
	Root string

	// Order lists vertices in visit order; every parent precedes its children.
	Order []string

	// Parent maps every vertex except Root to its tree parent.
	Parent map[string]string
}

// SpanningTree builds the BFS tree of the members reachable from start.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrStartNotMember, ErrNeighbors.
//
// Complexity: O(V + E).
func SpanningTree(g *core.Graph, start string, member Member) (*Tree, error) {
	parent := make(map[string]string)
	order, err := walk(g, start, member, func(child, p string) { parent[child] = p })
	if err != nil {
		return nil, err
	}
	return &Tree{Root: start, Order: order, Parent: parent}, nil
}

// SubtreeSizes returns, for every vertex, the number of vertices in the
// subtree rooted at it (itself included). Removing the edge above v leaves
// two connected parts of sizes SubtreeSizes()[v] and len(Order) minus that.
func (t *Tree) SubtreeSizes() map[string]int {
	size := make(map[string]int, len(t.Order))
	for i := len(t.Order) - 1; i >= 0; i-- {
		v := t.Order[i]
		size[v]++
		if p, ok := t.Parent[v]; ok {
			size[p] += size[v]
		}
	}
	return size
}

// Below returns v and all of its descendants.
func (t *Tree) Below(v string) map[string]bool {
	below := map[string]bool{}
	for _, u := range t.Order {
		if u == v || below[t.Parent[u]] {
			below[u] = true
		}
	}
	return below
}
