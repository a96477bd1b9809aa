// Package menu runs the interactive numbered menu that dispatches to the
// hardware, game, benchmark and recommendation operations.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/jamesainslie/gamescan/pkg/gamescan/advisor"
	"github.com/jamesainslie/gamescan/pkg/gamescan/bench"
	"github.com/jamesainslie/gamescan/pkg/gamescan/logging"
	"github.com/jamesainslie/gamescan/pkg/gamescan/types"
)

var logger = logging.Get("menu")

// Title is the banner printed above the options.
const Title = "=== Game & System Scan & Benchmark ==="

// Prompt is printed before each choice is read.
const Prompt = "Choose an option: "

var options = []string{
	"1. Show system specs",
	"2. Detect installed games",
	"3. Run OpenGL benchmark",
	"4. Show game recommendations",
	"5. Exit",
}

// Actions are the operations the menu dispatches to.
type Actions interface {
	Specs(ctx context.Context) types.SystemSpecs
	Games(ctx context.Context) []string
	Benchmark(ctx context.Context) (types.BenchmarkResult, error)
}

// Loop reads choices from In and writes results to Out.
type Loop struct {
	In      io.Reader
	Out     io.Writer
	Actions Actions
}

// New returns a Loop over in and out.
func New(in io.Reader, out io.Writer, actions Actions) *Loop {
	return &Loop{In: in, Out: out, Actions: actions}
}

// Run shows the menu until the user exits or input ends. It returns
// ctx.Err() if the context is cancelled, including while waiting for
// input, or the first write error.
func (l *Loop) Run(ctx context.Context) error {
	w := &errWriter{w: l.Out}
	title := lipgloss.NewRenderer(l.Out).NewStyle().Bold(true)

	done := make(chan struct{})
	defer close(done)
	lines, readErr := readLines(l.In, done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		w.printf("\n%s\n", title.Render(Title))
		for _, opt := range options {
			w.printf("%s\n", opt)
		}
		w.printf("%s", Prompt)
		if w.err != nil {
			return w.err
		}

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok = <-lines:
		}

		if !ok {
			if err := <-readErr; err != nil {
				return fmt.Errorf("reading menu choice: %w", err)
			}
			logger.Debug("input closed")
			w.printf("\n")
			return w.err
		}

		choice := strings.TrimSpace(line)
		if choice == "5" {
			w.printf("Exiting...\n")
			return w.err
		}

		l.dispatch(ctx, w, choice)
		if w.err != nil {
			return w.err
		}
	}
}

// readLines scans r on its own goroutine so a blocked read does not hold
// up cancellation. The lines channel is closed at end of input, after
// the scan error (or nil) has been sent on the error channel.
func readLines(r io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
		errc <- sc.Err()
	}()

	return lines, errc
}

func (l *Loop) dispatch(ctx context.Context, w *errWriter, choice string) {
	log := logger.With("action", choice, "action_id", uuid.NewString())

	switch choice {
	case "1":
		log.Debug("showing specs")
		l.showSpecs(ctx, w)
	case "2":
		log.Debug("detecting games")
		l.showGames(ctx, w)
	case "3":
		log.Debug("running benchmark")
		if res, ok := l.runBenchmark(ctx, w); ok {
			w.printf("Benchmark FPS: %.2f\n", res.FPS)
		}
	case "4":
		log.Debug("building recommendations")
		l.showRecommendations(ctx, w)
	default:
		log.Debug("invalid choice")
		w.printf("Invalid choice. Try again.\n")
	}
}

func (l *Loop) showSpecs(ctx context.Context, w *errWriter) {
	w.printf("Detecting system specs...\n")
	specs := l.Actions.Specs(ctx)
	w.printf("\nCPU: %s\n", specs.CPU)
	w.printf("RAM: %.2f GB\n", specs.RAMGB)
	w.printf("GPU: %s\n", specs.GPU)
}

func (l *Loop) showGames(ctx context.Context, w *errWriter) {
	found := l.Actions.Games(ctx)
	w.printf("\nDetected games:\n")
	if len(found) == 0 {
		w.printf(" (none)\n")
	}
	for _, g := range found {
		w.printf(" - %s\n", g)
	}
}

// runBenchmark reports an abort or failure itself and returns ok=false.
func (l *Loop) runBenchmark(ctx context.Context, w *errWriter) (types.BenchmarkResult, bool) {
	res, err := l.Actions.Benchmark(ctx)
	switch {
	case errors.Is(err, bench.ErrAborted):
		w.printf("Benchmark aborted.\n")
		return res, false
	case err != nil:
		logger.Error("benchmark failed", "err", err)
		w.printf("Benchmark failed: %v\n", err)
		return res, false
	}
	return res, true
}

// showRecommendations gathers specs, games and a benchmark without
// echoing them, then prints one line per game.
func (l *Loop) showRecommendations(ctx context.Context, w *errWriter) {
	w.printf("Detecting system specs...\n")
	specs := l.Actions.Specs(ctx)
	found := l.Actions.Games(ctx)

	res, ok := l.runBenchmark(ctx, w)
	if !ok {
		return
	}

	w.printf("\nRecommendations:\n")
	for _, rec := range advisor.RecommendAll(specs, res.FPS, found) {
		w.printf("%s: Recommended settings -> %s\n", rec.Game, rec.Tier)
	}
}

// errWriter remembers the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
