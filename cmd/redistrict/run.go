package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/redistrict/builder"
	"github.com/katalvlaran/redistrict/chain"
	"github.com/katalvlaran/redistrict/config"
	"github.com/katalvlaran/redistrict/core"
	"github.com/katalvlaran/redistrict/energy"
	"github.com/katalvlaran/redistrict/graphio"
	"github.com/katalvlaran/redistrict/plan"
)

const shutdownGracePeriod = 2 * time.Second

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("redistrict", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file")
	out := fs.String("out", "", "output path for the final plan (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadConfig(*configPath, func(c *config.Config) {
		if *out != "" {
			c.Output = *out
		}
	})
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}

	g, err := loadGraph(cfg)
	if err != nil {
		return err
	}
	logger.Info("graph loaded", "precincts", g.VertexCount(), "adjacencies", g.EdgeCount(),
		"population", g.TotalPopulation())

	eval, err := newEvaluator(cfg, g)
	if err != nil {
		return err
	}

	var initial *plan.Plan
	if cfg.Inputs.Initial != "" {
		if initial, err = graphio.LoadPlan(cfg.Inputs.Initial); err != nil {
			return err
		}
	}

	var metrics *chain.Metrics
	if cfg.Metrics.Addr != "" {
		metrics = chain.NewMetrics()
		stopMetrics, err := serveMetrics(cfg.Metrics.Addr, metrics, logger)
		if err != nil {
			return err
		}
		defer stopMetrics()
	}

	results, err := chain.Ensemble(ctx, g, chain.EnsembleConfig{
		Districts:           cfg.Districts,
		Iterations:          cfg.Iterations,
		Seed:                cfg.Seed,
		Evaluator:           eval,
		Initial:             initial,
		MaxSplitAttempts:    cfg.MaxSplitAttempts,
		MaxProposalAttempts: cfg.MaxProposalAttempts,
		Parallelism:         cfg.Parallel,
		Logger:              logger,
		Metrics:             metrics,
	}, cfg.Chains)
	if err != nil {
		return err
	}

	return writeResults(cfg.Output, results, stdout, logger)
}

func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func loadGraph(cfg *config.Config) (*core.Graph, error) {
	if cfg.Inputs.Adjacency != "" {
		return graphio.LoadGraph(cfg.Inputs.Adjacency, cfg.Inputs.Population)
	}
	return builder.BuildGraph(nil,
		[]builder.BuilderOption{
			builder.WithSeed(cfg.Seed),
			builder.WithUniformPopulation(cfg.Grid.MinPop, cfg.Grid.MaxPop),
		},
		builder.Grid(cfg.Grid.Rows, cfg.Grid.Cols))
}

func newEvaluator(cfg *config.Config, g *core.Graph) (energy.Evaluator, error) {
	var boundary map[string]bool
	if cfg.Inputs.Boundary != "" {
		var err error
		if boundary, err = graphio.LoadBoundary(cfg.Inputs.Boundary); err != nil {
			return energy.Evaluator{}, err
		}
	}
	compactness, err := energy.CompactnessByName(cfg.Energy.Compactness, g, boundary)
	if err != nil {
		return energy.Evaluator{}, err
	}
	population, err := energy.PopulationByName(cfg.Energy.Population, g, cfg.Districts)
	if err != nil {
		return energy.Evaluator{}, err
	}
	return energy.Evaluator{
		Alpha:       cfg.Alpha,
		Beta:        cfg.Beta,
		Compactness: compactness,
		Population:  population,
	}, nil
}

// serveMetrics exposes m on addr under /metrics and returns a shutdown func.
func serveMetrics(addr string, m *chain.Metrics, logger *slog.Logger) (func(), error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if err := m.Register(reg); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "addr", addr, "error", err)
		}
	}()
	logger.Info("serving metrics", "addr", addr)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("metrics server shutdown", "error", err)
		}
	}, nil
}

// writeResults prints the plan to stdout when output is empty, which config
// validation allows only for a single chain. With several chains each plan
// goes to its own file, named by inserting the chain index before the
// extension of output.
func writeResults(output string, results []*chain.Result, stdout io.Writer, logger *slog.Logger) error {
	for i, res := range results {
		logger.Info("chain result", "chain", i, "run_id", res.RunID.String(),
			"accepted", res.Accepted, "rejected", res.Rejected, "energy", res.Energy)
	}

	if output == "" {
		return graphio.WritePlan(stdout, results[0].Plan)
	}
	if len(results) == 1 {
		return graphio.SavePlan(output, results[0].Plan)
	}
	ext := filepath.Ext(output)
	base := strings.TrimSuffix(output, ext)
	for i, res := range results {
		if err := graphio.SavePlan(fmt.Sprintf("%s.%d%s", base, i, ext), res.Plan); err != nil {
			return err
		}
	}
	return nil
}
