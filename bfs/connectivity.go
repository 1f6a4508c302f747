package bfs

import (
	"sort"

	"github.com/katalvlaran/redistrict/core"
)

// ReachableCount returns how many members can be reached from start while
// stepping only through members. start itself is counted.
//
// A member set is connected iff ReachableCount from any member equals its
// size; every district check in a chain step reduces to this count.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrStartNotMember, ErrNeighbors.
//
// Complexity: O(V + E) time, O(V) memory.
func ReachableCount(g *core.Graph, start string, member Member) (int, error) {
	order, err := walk(g, start, member, nil)
	if err != nil {
		return 0, err
	}
	return len(order), nil
}

// IsConnected reports whether set induces a single connected component of g.
// The empty set is not connected. Members absent from g make the set disconnected.
//
// The traversal starts from the lexicographically smallest member so the
// result is deterministic.
//
// Complexity: O(|set| log |set| + V + E).
func IsConnected(g *core.Graph, set map[string]bool) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	members := sortedMembers(set)
	if len(members) == 0 || !g.HasVertex(members[0]) {
		return false, nil
	}
	n, err := ReachableCount(g, members[0], InSet(set))
	if err != nil {
		return false, err
	}
	return n == len(members), nil
}

// Components splits set into its connected components under g.
// Each component is sorted ascending; components are ordered by their first member.
// Members absent from g are ignored.
//
// Complexity: O(|set| log |set| + V + E).
func Components(g *core.Graph, set map[string]bool) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, len(set))
	var comps [][]string
	for _, id := range sortedMembers(set) {
		if seen[id] || !g.HasVertex(id) {
			continue
		}
		comp, err := walk(g, id, InSet(set), nil)
		if err != nil {
			return nil, err
		}
		for _, v := range comp {
			seen[v] = true
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}
	return comps, nil
}

// sortedMembers returns the keys of set whose value is true, ascending.
func sortedMembers(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for id, ok := range set {
		if ok {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
