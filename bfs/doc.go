// Package bfs answers the connectivity questions of the redistricting
// engine with breadth-first walks restricted to a region of the precinct
// graph.
//
// Connectivity
//
//   - ReachableCount(g, start, member): members reachable from start.
//   - IsConnected(g, set): set induces one connected component.
//   - Components(g, set): connected components of set.
//
// Spanning trees
//
//	SpanningTree returns the BFS tree of a region. Cutting any tree edge
//	leaves two connected parts, which is what the deterministic bisection
//	fallback relies on; SubtreeSizes and Below describe those parts.
//
// Determinism
//
//	core.NeighborIDs returns neighbors sorted ascending and the walk enqueues
//	them in that order, so visit order and tree shape are reproducible.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrStartNotMember       if the member predicate excludes the start.
//   - ErrNeighbors            if core.NeighborIDs fails for any vertex.
package bfs
