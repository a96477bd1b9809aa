package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jamesainslie/gamescan/pkg/gamescan/bench"
	"github.com/jamesainslie/gamescan/pkg/gamescan/config"
	"github.com/jamesainslie/gamescan/pkg/gamescan/games"
	"github.com/jamesainslie/gamescan/pkg/gamescan/specs"
	"github.com/jamesainslie/gamescan/pkg/gamescan/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSurface struct{ quit bool }

func (s *stubSurface) ShouldQuit() bool       { return s.quit }
func (s *stubSurface) Clear()                 {}
func (s *stubSurface) Draw(bench.Scene) error { return nil }
func (s *stubSurface) Present()               {}
func (s *stubSurface) Close() error           { return nil }

func testApp(t *testing.T, open bench.Opener) *app {
	t.Helper()

	library := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(library, "Celeste"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(library, "Hades"), 0o755))

	return &app{
		inspector: &specs.Inspector{
			GOOS:        "linux",
			CPUName:     func(context.Context) (string, error) { return "Test CPU", nil },
			TotalMemory: func(context.Context) (uint64, error) { return 32 * uint64(types.GiB), nil },
			GPUProbes: []specs.GPUProbe{{
				Name:  "stub",
				Probe: func(context.Context) (string, error) { return "Test GPU", nil },
			}},
		},
		locator:   games.New([]games.Candidate{{Path: library}}),
		benchmark: bench.New(open, bench.DefaultWindow(), 10),
		duration:  0,
		now:       func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
	}
}

func TestBuildReport(t *testing.T) {
	a := testApp(t, func(bench.Window) (bench.Surface, error) { return &stubSurface{}, nil })

	r := buildReport(context.Background(), a)

	_, err := uuid.Parse(r.ID)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), r.GeneratedAt)
	assert.Equal(t, "Test CPU", r.Specs.CPU)
	assert.Equal(t, "Test GPU", r.Specs.GPU)
	assert.Equal(t, []string{"Celeste", "Hades"}, r.Games)
	require.NotNil(t, r.Benchmark)
	assert.GreaterOrEqual(t, r.Benchmark.Frames, 1)
	assert.False(t, r.Aborted)
	assert.Len(t, r.Recommendations, 2)
	assert.Empty(t, r.Warnings)
}

func TestBuildReport_Aborted(t *testing.T) {
	a := testApp(t, func(bench.Window) (bench.Surface, error) { return &stubSurface{quit: true}, nil })

	r := buildReport(context.Background(), a)

	assert.True(t, r.Aborted)
	assert.Nil(t, r.Benchmark)
	assert.Empty(t, r.Recommendations)
	assert.NotNil(t, r.Recommendations)
	assert.Len(t, r.Warnings, 1)
}

func TestBuildReport_WindowFailure(t *testing.T) {
	a := testApp(t, func(bench.Window) (bench.Surface, error) { return nil, errors.New("no display") })

	r := buildReport(context.Background(), a)

	assert.False(t, r.Aborted)
	assert.Nil(t, r.Benchmark)
	require.Len(t, r.Warnings, 1)
	assert.Contains(t, r.Warnings[0], "no display")
}

func TestNewApp_UsesConfiguredCandidates(t *testing.T) {
	cfg := config.Default()
	cfg.Benchmark.Duration = 2 * time.Second
	cfg.Benchmark.Triangles = 42
	cfg.Benchmark.Width = 320
	cfg.Benchmark.Height = 240
	cfg.Games.Candidates = []config.CandidateConfig{
		{Path: "/games/minecraft", Label: "Minecraft"},
		{Path: "/games/library"},
	}

	a := newApp(cfg)

	assert.Equal(t, []games.Candidate{
		{Path: "/games/minecraft", Label: "Minecraft"},
		{Path: "/games/library"},
	}, a.locator.Candidates)
	assert.Equal(t, 2*time.Second, a.duration)
	assert.Equal(t, 42, a.benchmark.Scene.Triangles())
	assert.Equal(t, 320, a.benchmark.Window.Width)
	assert.Equal(t, 240, a.benchmark.Window.Height)
}

func TestNewApp_NilConfigUsesDefaults(t *testing.T) {
	a := newApp(nil)
	assert.Equal(t, config.DefaultBenchmarkDuration, a.duration)
	assert.Equal(t, config.DefaultTriangles, a.benchmark.Scene.Triangles())
	assert.Len(t, a.locator.Candidates, 3)
}
