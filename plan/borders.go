package plan

import "github.com/katalvlaran/redistrict/core"

// Borders returns the border set of p: the edges of g whose endpoints carry
// different district labels, ordered by edge ID. Edges touching an unassigned
// precinct are skipped.
//
// Complexity: O(E log E) (dominated by the sorted edge enumeration).
func Borders(g *core.Graph, p *Plan) []*core.Edge {
	var out []*core.Edge
	for _, e := range g.Edges() {
		a, okA := p.assign[e.From]
		b, okB := p.assign[e.To]
		if okA && okB && a != b {
			out = append(out, e)
		}
	}
	return out
}

// BorderPrecincts returns, for each district, how many of its precincts touch
// another district. Used by perimeter-style energies.
func BorderPrecincts(g *core.Graph, p *Plan) map[District]int {
	touching := make(map[string]bool)
	for _, e := range Borders(g, p) {
		touching[e.From] = true
		touching[e.To] = true
	}
	out := make(map[District]int)
	for id := range touching {
		out[p.assign[id]]++
	}
	return out
}

// CutEdges returns, for each district, the number of border edges incident to it.
func CutEdges(g *core.Graph, p *Plan) map[District]int {
	out := make(map[District]int)
	for _, e := range Borders(g, p) {
		out[p.assign[e.From]]++
		out[p.assign[e.To]]++
	}
	return out
}

// Populations returns the total population of every district in p.
func Populations(g *core.Graph, p *Plan) (map[District]int64, error) {
	out := make(map[District]int64)
	for id, d := range p.assign {
		pop, err := g.Population(id)
		if err != nil {
			return nil, err
		}
		out[d] += pop
	}
	return out, nil
}
