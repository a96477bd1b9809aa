// Package bench runs a fixed-geometry render loop for a fixed wall-clock
// duration and reports the achieved frames per second.
//
// The loop is backend-agnostic: it drives a Surface obtained from an
// Opener. The OpenGL window lives in the glsurface subpackage.
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jamesainslie/gamescan/pkg/gamescan/logging"
	"github.com/jamesainslie/gamescan/pkg/gamescan/types"
)

var logger = logging.Get("bench")

// ErrAborted is returned when the user closes the window or the context is
// cancelled before the benchmark completes. No result is produced.
var ErrAborted = errors.New("benchmark aborted")

// ErrNoOpener is returned by Run when the Benchmark has no Opener.
var ErrNoOpener = errors.New("no surface opener configured")

// Default window and scene parameters.
const (
	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultTitle     = "Benchmark"
	DefaultFOV       = 45.0
	DefaultNear      = 0.1
	DefaultFar       = 50.0
	DefaultDistance  = 5.0
	DefaultTriangles = 10000
)

// Window describes the surface to open.
type Window struct {
	Width, Height int
	Title         string

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Near and Far are the clip plane distances.
	Near, Far float32

	// Distance is how far the camera sits back from the scene.
	Distance float32
}

// DefaultWindow returns an 800x600 window with a 45 degree perspective.
func DefaultWindow() Window {
	return Window{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Title:    DefaultTitle,
		FOV:      DefaultFOV,
		Near:     DefaultNear,
		Far:      DefaultFar,
		Distance: DefaultDistance,
	}
}

// Surface is a window that can be drawn into.
type Surface interface {
	// ShouldQuit reports whether the user asked to close the window.
	// Implementations process pending window events here.
	ShouldQuit() bool

	Clear()
	Draw(Scene) error
	Present()
	Close() error
}

// Opener creates a Surface for the given window.
type Opener func(Window) (Surface, error)

// Benchmark renders Scene to a surface from Open.
type Benchmark struct {
	Window Window
	Scene  Scene
	Open   Opener

	// Now and Since default to time.Now and time.Since.
	Now   func() time.Time
	Since func(time.Time) time.Duration
}

// New returns a Benchmark drawing n triangles per frame into surfaces
// created by open.
func New(open Opener, win Window, n int) *Benchmark {
	return &Benchmark{
		Window: win,
		Scene:  NewScene(n),
		Open:   open,
	}
}

// Run renders frames until more than d has elapsed and returns the frame
// rate. It returns ErrAborted when the surface asks to quit or ctx is
// cancelled. The surface is closed on every path.
func (b *Benchmark) Run(ctx context.Context, d time.Duration) (result types.BenchmarkResult, err error) {
	if b.Open == nil {
		return types.BenchmarkResult{}, ErrNoOpener
	}

	now, since := b.Now, b.Since
	if now == nil {
		now = time.Now
	}
	if since == nil {
		since = time.Since
	}

	surface, err := b.Open(b.Window)
	if err != nil {
		return types.BenchmarkResult{}, fmt.Errorf("opening benchmark window: %w", err)
	}
	defer func() {
		if closeErr := surface.Close(); closeErr != nil {
			logger.Warn("closing benchmark window failed", "err", closeErr)
		}
	}()

	logger.Info("benchmark started", "duration", d, "triangles", b.Scene.Triangles())

	start := now()
	frames := 0

	for {
		if surface.ShouldQuit() || ctx.Err() != nil {
			logger.Info("benchmark aborted", "frames", frames)
			return types.BenchmarkResult{}, ErrAborted
		}

		surface.Clear()
		if err := surface.Draw(b.Scene); err != nil {
			return types.BenchmarkResult{}, fmt.Errorf("drawing frame %d: %w", frames, err)
		}
		surface.Present()
		frames++

		if elapsed := since(start); elapsed > d && elapsed > 0 {
			result = types.BenchmarkResult{
				Frames:  frames,
				Elapsed: elapsed,
				FPS:     float64(frames) / elapsed.Seconds(),
			}
			logger.Info("benchmark finished", "frames", frames, "elapsed", elapsed, "fps", result.FPS)
			return result, nil
		}
	}
}
