// Package core defines the precinct Graph, its Vertex and Edge types,
// and thread-safe primitives for building, querying, and cloning it.
//
// The Graph is undirected and simple: no self-loops, no parallel edges.
// Each vertex is a precinct and carries a non-negative population.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so a fully built Graph can be shared
// read-only between goroutines (for example, independent Markov chains).
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - edge from a precinct to itself.
//	ErrMultiEdgeNotAllowed - second edge between the same pair of precincts.
//	ErrNegativePopulation  - population below zero.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrNegativePopulation indicates a precinct population below zero.
	ErrNegativePopulation = errors.New("core: population is negative")
)

// Vertex represents a precinct in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Population is the number of residents; it is read by population energies only.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Population is the resident count of the precinct (>= 0).
	Population int64
}

// Edge represents geographic adjacency between two precincts.
//
// The pair is unordered; From and To keep the order in which the edge was added.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the first endpoint.
	From string

	// To is the second endpoint.
	To string
}

// Other returns the endpoint of e opposite to id, or "" if id is not an endpoint.
func (e *Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return ""
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithSizeHint pre-sizes the vertex and adjacency catalogs for n precincts.
// Non-positive n is ignored.
func WithSizeHint(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.sizeHint = n
		}
	}
}

// Graph is the in-memory precinct adjacency graph.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	sizeHint int

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[u][v] = edge ID; mirrored for both endpoints.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1) (plus pre-sizing when WithSizeHint is supplied).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.vertices = make(map[string]*Vertex, g.sizeHint)
	g.edges = make(map[string]*Edge, 2*g.sizeHint)
	g.adjacency = make(map[string]map[string]string, g.sizeHint)

	return g
}
