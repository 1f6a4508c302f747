package plan_test

import (
	"fmt"

	"github.com/katalvlaran/redistrict/core"
	"github.com/katalvlaran/redistrict/plan"
)

// ExampleBorders lists the cut edges of a 4-cycle split into two paths.
func ExampleBorders() {
	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "D")
	g.AddEdge("D", "A")
	p := plan.FromMap(map[string]plan.District{"A": 1, "B": 1, "C": 2, "D": 2})

	for _, e := range plan.Borders(g, p) {
		fmt.Printf("%s-%s\n", e.From, e.To)
	}
	fmt.Println(plan.Validate(g, p, 2) == nil)
	// Output:
	// B-C
	// D-A
	// true
}
