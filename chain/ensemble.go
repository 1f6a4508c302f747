package chain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/redistrict/core"
	"github.com/katalvlaran/redistrict/energy"
	"github.com/katalvlaran/redistrict/partition"
	"github.com/katalvlaran/redistrict/plan"
	"github.com/katalvlaran/redistrict/rng"
)

// ErrInvalidChains is returned by Ensemble when n < 1.
var ErrInvalidChains = errors.New("chain: ensemble needs at least one chain")

// EnsembleConfig parameterizes Ensemble.
type EnsembleConfig struct {
	Districts  int
	Iterations int
	Seed       int64
	Evaluator  energy.Evaluator

	// Initial, when set, starts every chain from the same plan. Otherwise
	// each chain draws its own initial plan with partition.Initial.
	Initial *plan.Plan

	MaxSplitAttempts    int // 0 ⇒ partition.DefaultMaxAttempts
	MaxProposalAttempts int // 0 ⇒ proposal.DefaultMaxAttempts
	Parallelism         int // 0 ⇒ one goroutine per chain

	Logger  *slog.Logger
	Metrics *Metrics
}

// Ensemble runs n independent chains in parallel over g and returns their
// results in chain order. Chain i uses the random stream
// rng.Derive(rng.New(Seed), i), so results are reproducible for a fixed seed
// regardless of scheduling. The first failing chain cancels the others.
func Ensemble(ctx context.Context, g *core.Graph, cfg EnsembleConfig, n int) ([]*Result, error) {
	if n < 1 {
		return nil, fmt.Errorf("Ensemble: n=%d: %w", n, ErrInvalidChains)
	}

	base := rng.New(cfg.Seed)
	streams := make([]int64, n)
	for i := range streams {
		streams[i] = rng.Derive(base, uint64(i)).Int63()
	}

	results := make([]*Result, n)
	eg, egCtx := errgroup.WithContext(ctx)
	if cfg.Parallelism > 0 {
		eg.SetLimit(cfg.Parallelism)
	}
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			res, err := runOne(egCtx, g, cfg, streams[i])
			if err != nil {
				return fmt.Errorf("Ensemble: chain %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(ctx context.Context, g *core.Graph, cfg EnsembleConfig, seed int64) (*Result, error) {
	r := rng.New(seed)

	initial := cfg.Initial
	if initial == nil {
		opts := []partition.Option{partition.WithRand(r)}
		if cfg.MaxSplitAttempts > 0 {
			opts = append(opts, partition.WithMaxAttempts(cfg.MaxSplitAttempts))
		}
		var err error
		initial, err = partition.Initial(ctx, g, cfg.Districts, opts...)
		if err != nil {
			return nil, err
		}
	}

	opts := []Option{WithRand(r), WithMetrics(cfg.Metrics), WithLogger(cfg.Logger)}
	if cfg.MaxProposalAttempts > 0 {
		opts = append(opts, WithMaxAttempts(cfg.MaxProposalAttempts))
	}
	c, err := New(g, initial, cfg.Evaluator, opts...)
	if err != nil {
		return nil, err
	}
	if cfg.Initial != nil && c.Districts() != cfg.Districts && cfg.Districts > 0 {
		return nil, fmt.Errorf("initial plan has %d districts, want %d: %w",
			c.Districts(), cfg.Districts, plan.ErrLabelOutOfRange)
	}
	return c.Run(ctx, cfg.Iterations)
}
