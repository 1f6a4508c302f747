// Package plan defines a redistricting Plan: a total assignment of precincts
// to district labels 1..k, plus the Border Tracker and the validity checks
// that every plan in a chain must pass.
//
// A Plan is immutable. WithFlip returns a modified copy and never touches the
// receiver, so a plan accepted into a chain can be shared freely.
package plan

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for plan construction and validation.
var (
	// ErrNilPlan is returned when a nil *Plan is supplied.
	ErrNilPlan = errors.New("plan: plan is nil")

	// ErrIncomplete indicates a graph precinct without a district.
	ErrIncomplete = errors.New("plan: precinct is unassigned")

	// ErrUnknownPrecinct indicates an assignment for a precinct missing from the graph.
	ErrUnknownPrecinct = errors.New("plan: precinct not in graph")

	// ErrLabelOutOfRange indicates a district label outside 1..k.
	ErrLabelOutOfRange = errors.New("plan: district label out of range")

	// ErrEmptyDistrict indicates a label in 1..k that no precinct carries.
	ErrEmptyDistrict = errors.New("plan: district is empty")

	// ErrDisconnectedDistrict indicates a district whose precincts form more than one component.
	ErrDisconnectedDistrict = errors.New("plan: district is not connected")

	// ErrBadFlip indicates a Flip that does not match the plan.
	ErrBadFlip = errors.New("plan: flip does not apply")
)

// District is a district label. Valid labels are 1..k for a k-district plan.
type District int

// String renders the label as its decimal value.
func (d District) String() string { return fmt.Sprintf("%d", int(d)) }

// Flip moves one precinct from one district to another.
type Flip struct {
	Precinct string
	From     District
	To       District
}

// Plan is an immutable precinct → district mapping.
type Plan struct {
	assign map[string]District
}

// FromMap returns a Plan holding a copy of assign. No validation is performed;
// call Validate against the graph before using the plan in a chain.
func FromMap(assign map[string]District) *Plan {
	cp := make(map[string]District, len(assign))
	for id, d := range assign {
		cp[id] = d
	}
	return &Plan{assign: cp}
}

// District returns the label of precinct id and whether it is assigned.
func (p *Plan) District(id string) (District, bool) {
	d, ok := p.assign[id]
	return d, ok
}

// Len returns the number of assigned precincts.
func (p *Plan) Len() int { return len(p.assign) }

// Map returns a copy of the underlying assignment.
func (p *Plan) Map() map[string]District {
	cp := make(map[string]District, len(p.assign))
	for id, d := range p.assign {
		cp[id] = d
	}
	return cp
}

// Precincts returns the assigned precinct IDs in ascending order.
func (p *Plan) Precincts() []string {
	ids := make([]string, 0, len(p.assign))
	for id := range p.assign {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Districts returns the distinct labels in use, ascending.
func (p *Plan) Districts() []District {
	seen := make(map[District]struct{})
	for _, d := range p.assign {
		seen[d] = struct{}{}
	}
	out := make([]District, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Members returns the precincts labelled d, ascending.
func (p *Plan) Members(d District) []string {
	var ids []string
	for id, l := range p.assign {
		if l == d {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// MemberSet returns the precincts labelled d as a set.
func (p *Plan) MemberSet(d District) map[string]bool {
	set := make(map[string]bool)
	for id, l := range p.assign {
		if l == d {
			set[id] = true
		}
	}
	return set
}

// Sizes returns the precinct count of every label in use.
func (p *Plan) Sizes() map[District]int {
	out := make(map[District]int)
	for _, d := range p.assign {
		out[d]++
	}
	return out
}

// WithFlip returns a copy of p with f applied. The receiver is not modified.
//
// Errors:
//   - ErrBadFlip if f.Precinct is unassigned, currently not labelled f.From,
//     or f.From == f.To.
//
// Complexity: O(V) for the copy.
func (p *Plan) WithFlip(f Flip) (*Plan, error) {
	cur, ok := p.assign[f.Precinct]
	if !ok || cur != f.From || f.From == f.To {
		return nil, fmt.Errorf("%w: %s %d→%d", ErrBadFlip, f.Precinct, f.From, f.To)
	}
	next := FromMap(p.assign)
	next.assign[f.Precinct] = f.To
	return next, nil
}

// Equal reports whether p and q assign every precinct identically.
func (p *Plan) Equal(q *Plan) bool {
	if p == nil || q == nil {
		return p == q
	}
	if len(p.assign) != len(q.assign) {
		return false
	}
	for id, d := range p.assign {
		if e, ok := q.assign[id]; !ok || e != d {
			return false
		}
	}
	return true
}

// Diff returns the precincts whose label differs between p and q (or that only
// one of them assigns), ascending.
func (p *Plan) Diff(q *Plan) []string {
	var out []string
	for id, d := range p.assign {
		if e, ok := q.assign[id]; !ok || e != d {
			out = append(out, id)
		}
	}
	for id := range q.assign {
		if _, ok := p.assign[id]; !ok {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
