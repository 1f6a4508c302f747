// Package proposal implements the single-precinct flip proposal used by the
// redistricting chain.
//
// A proposal samples one border edge uniformly, flips one of its endpoints
// (fair coin) to the other endpoint's district on a copy of the plan, and
// re-verifies every district: the sum over labels of the precincts reachable
// inside each district must equal the number of precincts, and no district
// may be emptied. Invalid candidates are discarded and sampling restarts from
// the unchanged plan, up to MaxAttempts times.
package proposal

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/redistrict/bfs"
	"github.com/katalvlaran/redistrict/core"
	"github.com/katalvlaran/redistrict/plan"
	"github.com/katalvlaran/redistrict/rng"
)

// Sentinel errors.
var (
	// ErrNoValidProposal is returned when every attempt produced an invalid plan.
	ErrNoValidProposal = errors.New("proposal: no valid flip within attempt limit")

	// ErrNoBorder is returned when the plan has no border edge to flip across.
	ErrNoBorder = errors.New("proposal: plan has no border edges")

	// ErrInvalidDistrictCount is returned by New when k < 1.
	ErrInvalidDistrictCount = errors.New("proposal: district count must be at least 1")
)

// DefaultMaxAttempts bounds the flip attempts of a single Propose call.
const DefaultMaxAttempts = 10000

// Proposal is an accepted-for-consideration candidate.
type Proposal struct {
	Plan     *plan.Plan
	Flip     plan.Flip
	Attempts int // attempts consumed, including the successful one
}

// Generator proposes valid neighbors of a plan. It owns its random source
// and is not safe for concurrent use; give every chain its own Generator.
type Generator struct {
	g           *core.Graph
	k           int
	rng         *rand.Rand
	maxAttempts int
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("proposal: WithRand(nil)")
	}
	return func(gen *Generator) { gen.rng = r }
}

// WithSeed seeds a fresh random source (seed 0 ⇒ rng.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(gen *Generator) { gen.rng = rng.New(seed) }
}

// WithMaxAttempts bounds the attempts per Propose. Panics when n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("proposal: WithMaxAttempts(n < 1)")
	}
	return func(gen *Generator) { gen.maxAttempts = n }
}

// New returns a Generator for k-district plans over g.
func New(g *core.Graph, k int, opts ...Option) (*Generator, error) {
	if g == nil {
		return nil, bfs.ErrGraphNil
	}
	if k < 1 {
		return nil, fmt.Errorf("New: k=%d: %w", k, ErrInvalidDistrictCount)
	}
	gen := &Generator{g: g, k: k, maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(gen)
	}
	gen.rng = rng.OrDefault(gen.rng)
	return gen, nil
}

// Propose returns a valid plan differing from current in exactly one precinct.
// current must be a valid k-district plan of the generator's graph; it is
// never modified.
//
// Implementation:
//   - Stage 1: Compute the border set of current (sorted by edge ID).
//   - Stage 2: Pick a border edge uniformly; a fair coin picks which endpoint
//     takes the other's district.
//   - Stage 3: Reject the flip if it would empty the donor district, else
//     apply it to a copy and accept iff plan.CountConnected equals the
//     precinct count.
//   - Stage 4: Repeat from Stage 2 with current until MaxAttempts.
//
// Errors:
//   - plan.ErrNilPlan, plan.ErrIncomplete (size mismatch with the graph),
//     ErrNoBorder, ErrNoValidProposal, ctx.Err().
//
// Complexity: O(E log E + MaxAttempts·k·(V + E)) worst case.
func (gen *Generator) Propose(ctx context.Context, current *plan.Plan) (Proposal, error) {
	if current == nil {
		return Proposal{}, plan.ErrNilPlan
	}
	if ctx == nil {
		ctx = context.Background()
	}
	total := gen.g.VertexCount()
	if current.Len() != total {
		return Proposal{}, fmt.Errorf("Propose: plan has %d precincts, graph %d: %w",
			current.Len(), total, plan.ErrIncomplete)
	}

	borders := plan.Borders(gen.g, current)
	if len(borders) == 0 {
		return Proposal{}, ErrNoBorder
	}
	sizes := current.Sizes()

	for attempt := 1; attempt <= gen.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return Proposal{}, fmt.Errorf("Propose: attempt %d: %w", attempt, err)
		}

		e := rng.Pick(gen.rng, borders)
		moved, anchor := e.From, e.To
		if !rng.Coin(gen.rng) {
			moved, anchor = e.To, e.From
		}
		from, _ := current.District(moved)
		to, _ := current.District(anchor)
		if sizes[from] == 1 {
			continue
		}

		f := plan.Flip{Precinct: moved, From: from, To: to}
		cand, err := current.WithFlip(f)
		if err != nil {
			return Proposal{}, fmt.Errorf("Propose: %w", err)
		}
		n, err := plan.CountConnected(gen.g, cand, gen.k, gen.rng)
		if err != nil {
			return Proposal{}, fmt.Errorf("Propose: %w", err)
		}
		if n == total {
			return Proposal{Plan: cand, Flip: f, Attempts: attempt}, nil
		}
	}

	return Proposal{}, fmt.Errorf("Propose: %d attempts: %w", gen.maxAttempts, ErrNoValidProposal)
}
