package main

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jamesainslie/gamescan/pkg/gamescan/advisor"
	"github.com/jamesainslie/gamescan/pkg/gamescan/bench"
	"github.com/jamesainslie/gamescan/pkg/gamescan/bench/glsurface"
	"github.com/jamesainslie/gamescan/pkg/gamescan/config"
	"github.com/jamesainslie/gamescan/pkg/gamescan/games"
	"github.com/jamesainslie/gamescan/pkg/gamescan/specs"
	"github.com/jamesainslie/gamescan/pkg/gamescan/types"
)

// app implements menu.Actions over the real inspectors.
type app struct {
	inspector *specs.Inspector
	locator   *games.Locator
	benchmark *bench.Benchmark
	duration  time.Duration
	now       func() time.Time
}

// newApp wires the operations from cfg. A nil cfg uses defaults.
func newApp(cfg *config.Config) *app {
	if cfg == nil {
		cfg = config.Default()
	}

	locator := games.NewDefault()
	if len(cfg.Games.Candidates) > 0 {
		candidates := make([]games.Candidate, len(cfg.Games.Candidates))
		for i, c := range cfg.Games.Candidates {
			candidates[i] = games.Candidate{Path: c.Path, Label: c.Label}
		}
		locator = games.New(candidates)
	}

	win := bench.DefaultWindow()
	win.Width = cfg.Benchmark.Width
	win.Height = cfg.Benchmark.Height

	return &app{
		inspector: specs.New(),
		locator:   locator,
		benchmark: bench.New(glsurface.Open, win, cfg.Benchmark.Triangles),
		duration:  cfg.Benchmark.Duration,
		now:       time.Now,
	}
}

func (a *app) Specs(ctx context.Context) types.SystemSpecs {
	return a.inspector.Inspect(ctx)
}

func (a *app) Games(ctx context.Context) []string {
	return a.locator.Detect(ctx)
}

func (a *app) Benchmark(ctx context.Context) (types.BenchmarkResult, error) {
	return a.benchmark.Run(ctx, a.duration)
}

// buildReport runs every operation once and assembles a report. A
// benchmark abort or failure is recorded as a warning, not an error.
func buildReport(ctx context.Context, a *app) *types.Report {
	r := &types.Report{
		ID:          uuid.NewString(),
		GeneratedAt: a.now(),
	}

	r.Specs = a.Specs(ctx)
	r.Games = a.Games(ctx)
	r.Recommendations = []types.Recommendation{}

	res, err := a.Benchmark(ctx)
	switch {
	case errors.Is(err, bench.ErrAborted):
		r.Aborted = true
		r.Warnings = append(r.Warnings, "benchmark aborted; no recommendations")
	case err != nil:
		r.Warnings = append(r.Warnings, "benchmark failed: "+err.Error())
	default:
		r.Benchmark = &res
		r.Recommendations = advisor.RecommendAll(r.Specs, res.FPS, r.Games)
	}

	return r
}
