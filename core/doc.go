// Package core provides a thread-safe in-memory precinct Graph: the geography
// that redistricting plans are drawn on.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are precincts, identified by non-empty strings, each carrying a population.
//   - Edges are undirected geographic adjacencies; no self-loops, no parallel edges.
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Deterministic iteration: Vertices(), Edges(), NeighborIDs() all return sorted
// results. Randomized algorithms built on top (partition, proposal) sample by
// index into these slices, so a seeded *rand.Rand yields reproducible plans.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                 // O(1)
//	HasVertex(id string) bool                  // O(1)
//	RemoveVertex(id string) error              // O(deg(v))
//	SetPopulation(id string, pop int64) error  // O(1)
//	Population(id string) (int64, error)       // O(1)
//	TotalPopulation() int64                    // O(V)
//
//	// Edge lifecycle
//	AddEdge(from, to string) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error                     // O(1)
//	HasEdge(from, to string) bool                       // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)    // O(d·log d)
//	NeighborIDs(id string) ([]string, error) // O(d·log d), sorted
//	AdjacencyList() map[string][]string      // O(V+E)
//	Vertices() []string                      // O(V·log V)
//	Edges() []*Edge                          // O(E·log E)
//	Degree(id string) (int, error)           // O(1)
//	VertexCount() int                        // O(1)
//	EdgeCount() int                          // O(1)
//
//	// Copies
//	Clone() *Graph                           // O(V+E)
//	InducedSubgraph(g, keep) *Graph          // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – parallel edge
//	ErrNegativePopulation  – population below zero
package core
