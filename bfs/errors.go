package bfs

import "errors"

// Sentinel errors for traversal and connectivity checks.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrStartNotMember is returned when the start vertex fails the member predicate.
	ErrStartNotMember = errors.New("bfs: start vertex is not a member")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)
