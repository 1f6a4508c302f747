// Package chain drives the redistricting Markov chain: propose a single
// precinct flip, weigh it with the Metropolis-Hastings rule, and either move
// to the candidate plan or keep the current one.
//
// A Chain owns its plan and random source and is not safe for concurrent
// use. Ensemble runs independent chains in parallel over one shared,
// read-only graph.
package chain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/redistrict/bfs"
	"github.com/katalvlaran/redistrict/core"
	"github.com/katalvlaran/redistrict/energy"
	"github.com/katalvlaran/redistrict/plan"
	"github.com/katalvlaran/redistrict/proposal"
	"github.com/katalvlaran/redistrict/rng"
)

// ErrInvalidIterations is returned by Run for a negative iteration count.
var ErrInvalidIterations = errors.New("chain: iterations must be non-negative")

// StepResult describes one chain step.
type StepResult struct {
	RunID    uuid.UUID
	Step     int // 1-based
	Flip     plan.Flip
	Attempts int
	Ratio    float64
	Accepted bool
	Energy   float64 // energy of the plan held after the step
	Plan     *plan.Plan
}

// Result summarizes a finished run.
type Result struct {
	RunID    uuid.UUID
	Plan     *plan.Plan
	Steps    int
	Accepted int
	Rejected int
	Energy   float64
}

// Chain is a single Metropolis-Hastings random walk over valid plans.
type Chain struct {
	id      uuid.UUID
	g       *core.Graph
	k       int
	eval    energy.Evaluator
	gen     *proposal.Generator
	rng     *rand.Rand
	logger  *slog.Logger
	metrics *Metrics
	onStep  func(StepResult)

	maxAttempts int
	current     *plan.Plan
	energy      float64
	steps       int
	accepted    int
	rejected    int
}

// Option configures a Chain.
type Option func(*Chain)

// WithRand sets the random source shared by proposals and acceptance draws.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("chain: WithRand(nil)")
	}
	return func(c *Chain) { c.rng = r }
}

// WithSeed seeds a fresh random source (seed 0 ⇒ rng.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(c *Chain) { c.rng = rng.New(seed) }
}

// WithMaxAttempts bounds the flip attempts per proposal. Panics when n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("chain: WithMaxAttempts(n < 1)")
	}
	return func(c *Chain) { c.maxAttempts = n }
}

// WithLogger sets the logger. The chain logs run boundaries at Info and
// every step at Debug. Without it the chain is silent.
func WithLogger(l *slog.Logger) Option {
	return func(c *Chain) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics records steps into m.
func WithMetrics(m *Metrics) Option {
	return func(c *Chain) { c.metrics = m }
}

// WithOnStep registers a callback invoked after every step.
func WithOnStep(fn func(StepResult)) Option {
	return func(c *Chain) { c.onStep = fn }
}

// WithRunID overrides the generated run ID.
func WithRunID(id uuid.UUID) Option {
	return func(c *Chain) { c.id = id }
}

// New starts a chain at initial, which must be a valid plan of g. The
// district count is the number of labels initial uses and stays fixed.
//
// Errors:
//   - bfs.ErrGraphNil, plan.ErrNilPlan, any plan.Validate error.
//   - energy.ErrNotConfigured or a strategy error from scoring initial.
func New(g *core.Graph, initial *plan.Plan, eval energy.Evaluator, opts ...Option) (*Chain, error) {
	if g == nil {
		return nil, bfs.ErrGraphNil
	}
	if initial == nil {
		return nil, plan.ErrNilPlan
	}
	k := len(initial.Districts())
	if err := plan.Validate(g, initial, k); err != nil {
		return nil, fmt.Errorf("New: initial plan: %w", err)
	}
	e, err := eval.Energy(initial)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	c := &Chain{
		id:          uuid.New(),
		g:           g,
		k:           k,
		eval:        eval,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxAttempts: proposal.DefaultMaxAttempts,
		current:     initial,
		energy:      e,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.rng = rng.OrDefault(c.rng)
	c.logger = c.logger.With("run_id", c.id.String())

	c.gen, err = proposal.New(g, k, proposal.WithRand(c.rng), proposal.WithMaxAttempts(c.maxAttempts))
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	return c, nil
}

// RunID identifies this chain in logs and results.
func (c *Chain) RunID() uuid.UUID { return c.id }

// Plan returns the current plan.
func (c *Chain) Plan() *plan.Plan { return c.current }

// Districts returns the fixed district count.
func (c *Chain) Districts() int { return c.k }

// Energy returns the weighted energy of the current plan.
func (c *Chain) Energy() float64 { return c.energy }

// Step proposes one flip and applies the Metropolis rule. The current plan
// is replaced wholesale on acceptance and left untouched otherwise.
//
// Errors: proposal errors (ErrNoBorder, ErrNoValidProposal, ctx.Err()) and
// energy strategy errors. The chain state and metrics are unchanged on error.
func (c *Chain) Step(ctx context.Context) (StepResult, error) {
	prop, err := c.gen.Propose(ctx, c.current)
	if err != nil {
		return StepResult{}, fmt.Errorf("Step %d: %w", c.steps+1, err)
	}

	candEnergy, err := c.eval.Energy(prop.Plan)
	if err != nil {
		return StepResult{}, fmt.Errorf("Step %d: %w", c.steps+1, err)
	}
	c.metrics.observeProposal(prop.Attempts)
	ratio := math.Exp(candEnergy - c.energy)
	accepted := energy.Accept(ratio, c.rng.Float64())

	c.steps++
	if accepted {
		c.current = prop.Plan
		c.energy = candEnergy
		c.accepted++
	} else {
		c.rejected++
	}
	c.metrics.observeStep(accepted, c.energy)

	res := StepResult{
		RunID:    c.id,
		Step:     c.steps,
		Flip:     prop.Flip,
		Attempts: prop.Attempts,
		Ratio:    ratio,
		Accepted: accepted,
		Energy:   c.energy,
		Plan:     c.current,
	}
	c.logger.Debug("step",
		"step", res.Step,
		"precinct", res.Flip.Precinct,
		"from", int(res.Flip.From),
		"to", int(res.Flip.To),
		"attempts", res.Attempts,
		"ratio", res.Ratio,
		"accepted", res.Accepted,
	)
	if c.onStep != nil {
		c.onStep(res)
	}
	return res, nil
}

// Run performs iterations steps and returns the final plan and counts.
//
// Errors: ErrInvalidIterations, any Step error (wrapped).
func (c *Chain) Run(ctx context.Context, iterations int) (*Result, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("Run: %d: %w", iterations, ErrInvalidIterations)
	}
	c.logger.Info("chain started", "iterations", iterations, "districts", c.k, "energy", c.energy)

	for i := 0; i < iterations; i++ {
		if _, err := c.Step(ctx); err != nil {
			c.logger.Error("chain stopped", "step", c.steps+1, "error", err)
			return nil, fmt.Errorf("Run: %w", err)
		}
	}

	res := c.result()
	c.logger.Info("chain finished",
		"steps", res.Steps,
		"accepted", res.Accepted,
		"rejected", res.Rejected,
		"energy", res.Energy,
	)
	return res, nil
}

func (c *Chain) result() *Result {
	return &Result{
		RunID:    c.id,
		Plan:     c.current,
		Steps:    c.steps,
		Accepted: c.accepted,
		Rejected: c.rejected,
		Energy:   c.energy,
	}
}
