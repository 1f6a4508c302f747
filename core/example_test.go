package core_test

import (
	"fmt"

	"github.com/katalvlaran/redistrict/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an empty precinct graph:
	g := core.NewGraph()

	// 2) Add adjacencies (auto-adds precincts A, B, C):
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "A")
	g.SetPopulation("A", 120)
	g.SetPopulation("B", 80)

	// 3) Inspect vertices and edges:
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B–A exists?", g.HasEdge("B", "A"))
	fmt.Println("Population:", g.TotalPopulation())

	// 4) Remove a precinct and its edges:
	g.RemoveVertex("B")
	fmt.Println("After removing B:", g.Vertices(), g.EdgeCount())

	// Output:
	// Vertices: [A B C]
	// Edge B–A exists? true
	// Population: 200
	// After removing B: [A C] 1
}
