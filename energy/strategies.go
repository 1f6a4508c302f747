package energy

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/redistrict/core"
	"github.com/katalvlaran/redistrict/plan"
)

// ErrUnknownStrategy is returned by the name lookups for an unregistered name.
var ErrUnknownStrategy = errors.New("energy: unknown strategy")

// Strategy names accepted by CompactnessByName and PopulationByName.
const (
	NameNone      = "none"
	NameCutEdges  = "cut_edges"
	NamePerimeter = "perimeter"
	NameDeviation = "deviation"
)

// Zero scores every plan 0. Use it to switch one term off explicitly.
func Zero(*plan.Plan) (float64, error) { return 0, nil }

// PopulationDeviation scores population balance over k districts as
//
//	−Σ_d ((pop_d − ideal) / ideal)²,   ideal = total / k
//
// so a perfectly balanced plan scores 0 and every imbalance lowers the score.
// A graph with zero total population scores 0.
func PopulationDeviation(g *core.Graph, k int) Func {
	return func(p *plan.Plan) (float64, error) {
		pops, err := plan.Populations(g, p)
		if err != nil {
			return 0, fmt.Errorf("PopulationDeviation: %w", err)
		}
		var total int64
		for _, v := range pops {
			total += v
		}
		if total == 0 || k < 1 {
			return 0, nil
		}
		ideal := float64(total) / float64(k)
		score := 0.0
		for d := plan.District(1); int(d) <= k; d++ {
			dev := (float64(pops[d]) - ideal) / ideal
			score -= dev * dev
		}
		return score, nil
	}
}

// CutEdges scores compactness as the negated number of border edges.
func CutEdges(g *core.Graph) Func {
	return func(p *plan.Plan) (float64, error) {
		return -float64(len(plan.Borders(g, p))), nil
	}
}

// Perimeter scores compactness as −Σ_d perimeter_d² / area_d, a discrete
// isoperimetric ratio. The perimeter of a district counts its incident border
// edges plus its precincts on the outer state boundary; the area is its
// precinct count.
func Perimeter(g *core.Graph, boundary map[string]bool) Func {
	return func(p *plan.Plan) (float64, error) {
		perim := plan.CutEdges(g, p)
		for id, on := range boundary {
			if !on {
				continue
			}
			if d, ok := p.District(id); ok {
				perim[d]++
			}
		}
		score := 0.0
		for d, area := range p.Sizes() {
			per := float64(perim[d])
			score -= per * per / float64(area)
		}
		return score, nil
	}
}

// CompactnessByName resolves a compactness strategy for configuration files.
func CompactnessByName(name string, g *core.Graph, boundary map[string]bool) (Func, error) {
	switch name {
	case NameNone:
		return Zero, nil
	case NameCutEdges, "":
		return CutEdges(g), nil
	case NamePerimeter:
		return Perimeter(g, boundary), nil
	default:
		return nil, fmt.Errorf("CompactnessByName(%q): %w", name, ErrUnknownStrategy)
	}
}

// PopulationByName resolves a population strategy for configuration files.
func PopulationByName(name string, g *core.Graph, k int) (Func, error) {
	switch name {
	case NameNone:
		return Zero, nil
	case NameDeviation, "":
		return PopulationDeviation(g, k), nil
	default:
		return nil, fmt.Errorf("PopulationByName(%q): %w", name, ErrUnknownStrategy)
	}
}
