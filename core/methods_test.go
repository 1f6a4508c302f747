// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/redistrict/core"
)

// buildSquare returns the 4-cycle A–B–C–D–A.
func buildSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	return g
}

func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	assert.True(t, g.HasVertex("A"))

	// duplicate insert is a no-op
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount())

	assert.ErrorIs(t, g.RemoveVertex(""), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.RemoveVertex("X"), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex("A"))
	assert.False(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex(""))
}

func TestGraph_RemoveVertexDropsIncidentEdges(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.RemoveVertex("B"))

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("C", "B"))

	nbrs, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"D"}, nbrs)
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", "B")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge("A", "A")
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	eid, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)

	// the reverse pair is the same undirected edge
	_, err = g.AddEdge("B", "A")
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := buildSquare(t)
	e, err := g.GetEdge("e1")
	require.NoError(t, err)
	assert.Equal(t, "A", e.From)
	assert.Equal(t, "B", e.To)

	require.NoError(t, g.RemoveEdge("e1"))
	assert.ErrorIs(t, g.RemoveEdge("e1"), core.ErrEdgeNotFound)
	assert.False(t, g.HasEdge("A", "B"))

	_, err = g.GetEdge("e1")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestGraph_DeterministicOrdering(t *testing.T) {
	g := core.NewGraph()
	for _, p := range [][2]string{{"C", "A"}, {"B", "C"}, {"A", "B"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	ids := make([]string, 0, 3)
	for _, e := range g.Edges() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"e1", "e2", "e3"}, ids)

	nbrs, err := g.NeighborIDs("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, nbrs)

	_, err = g.NeighborIDs("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	adj := g.AdjacencyList()
	assert.Equal(t, []string{"B", "C"}, adj["A"])
}

func TestGraph_Population(t *testing.T) {
	g := buildSquare(t)

	require.NoError(t, g.SetPopulation("A", 10))
	require.NoError(t, g.SetPopulation("B", 20))
	assert.ErrorIs(t, g.SetPopulation("A", -1), core.ErrNegativePopulation)
	assert.ErrorIs(t, g.SetPopulation("Z", 1), core.ErrVertexNotFound)

	pop, err := g.Population("B")
	require.NoError(t, err)
	assert.Equal(t, int64(20), pop)
	assert.Equal(t, int64(30), g.TotalPopulation())

	v, err := g.Vertex("A")
	require.NoError(t, err)
	assert.Equal(t, core.Vertex{ID: "A", Population: 10}, v)
}

func TestGraph_Degree(t *testing.T) {
	g := buildSquare(t)
	d, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	_, err = g.Degree("Q")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestEdge_Other(t *testing.T) {
	e := core.Edge{ID: "e1", From: "A", To: "B"}
	assert.Equal(t, "B", e.Other("A"))
	assert.Equal(t, "A", e.Other("B"))
	assert.Equal(t, "", e.Other("C"))
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.SetPopulation("C", 7))

	c := g.Clone()
	assert.Equal(t, g.Vertices(), c.Vertices())
	assert.Equal(t, g.EdgeCount(), c.EdgeCount())

	pop, err := c.Population("C")
	require.NoError(t, err)
	assert.Equal(t, int64(7), pop)

	// new edge IDs continue the source sequence
	eid, err := c.AddEdge("A", "C")
	require.NoError(t, err)
	assert.Equal(t, "e5", eid)
	assert.False(t, g.HasEdge("A", "C"))
}

func TestInducedSubgraph(t *testing.T) {
	g := buildSquare(t)
	sub := core.InducedSubgraph(g, map[string]bool{"A": true, "B": true, "C": true})

	assert.Equal(t, []string{"A", "B", "C"}, sub.Vertices())
	assert.Equal(t, 2, sub.EdgeCount())
	assert.True(t, sub.HasEdge("A", "B"))
	assert.False(t, sub.HasEdge("A", "D"))
}
