package menu

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/jamesainslie/gamescan/pkg/gamescan/bench"
	"github.com/jamesainslie/gamescan/pkg/gamescan/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeActions struct {
	specs    types.SystemSpecs
	games    []string
	result   types.BenchmarkResult
	benchErr error

	specCalls, gameCalls, benchCalls int
}

func (f *fakeActions) Specs(context.Context) types.SystemSpecs {
	f.specCalls++
	return f.specs
}

func (f *fakeActions) Games(context.Context) []string {
	f.gameCalls++
	return f.games
}

func (f *fakeActions) Benchmark(context.Context) (types.BenchmarkResult, error) {
	f.benchCalls++
	return f.result, f.benchErr
}

func defaultActions() *fakeActions {
	return &fakeActions{
		specs:  types.SystemSpecs{CPU: "Intel Core i7", RAMGB: 15.88, GPU: "NVIDIA GeForce GTX 1080"},
		games:  []string{"Minecraft", "Portal 2"},
		result: types.BenchmarkResult{Frames: 400, FPS: 80.0},
	}
}

func run(t *testing.T, input string, actions Actions) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := New(strings.NewReader(input), &out, actions).Run(context.Background())
	return out.String(), err
}

func TestRun_ExitImmediately(t *testing.T) {
	out, err := run(t, "5\n", defaultActions())
	require.NoError(t, err)

	assert.Contains(t, out, Title)
	assert.Contains(t, out, "1. Show system specs")
	assert.Contains(t, out, "5. Exit")
	assert.Contains(t, out, Prompt)
	assert.True(t, strings.HasSuffix(out, "Exiting...\n"))
}

func TestRun_ShowSpecs(t *testing.T) {
	actions := defaultActions()
	out, err := run(t, "1\n5\n", actions)
	require.NoError(t, err)

	assert.Contains(t, out, "Detecting system specs...\n")
	assert.Contains(t, out, "CPU: Intel Core i7\n")
	assert.Contains(t, out, "RAM: 15.88 GB\n")
	assert.Contains(t, out, "GPU: NVIDIA GeForce GTX 1080\n")
	assert.Equal(t, 1, actions.specCalls)
}

func TestRun_ShowGames(t *testing.T) {
	out, err := run(t, "2\n5\n", defaultActions())
	require.NoError(t, err)

	assert.Contains(t, out, "Detected games:\n - Minecraft\n - Portal 2\n")
}

func TestRun_ShowGamesNone(t *testing.T) {
	actions := defaultActions()
	actions.games = []string{}

	out, err := run(t, "2\n5\n", actions)
	require.NoError(t, err)
	assert.Contains(t, out, "Detected games:\n (none)\n")
}

func TestRun_Benchmark(t *testing.T) {
	actions := defaultActions()
	actions.result.FPS = 123.456

	out, err := run(t, "3\n5\n", actions)
	require.NoError(t, err)
	assert.Contains(t, out, "Benchmark FPS: 123.46\n")
	assert.Equal(t, 1, actions.benchCalls)
}

func TestRun_BenchmarkAborted(t *testing.T) {
	actions := defaultActions()
	actions.benchErr = bench.ErrAborted

	out, err := run(t, "3\n5\n", actions)
	require.NoError(t, err)
	assert.Contains(t, out, "Benchmark aborted.\n")
	assert.NotContains(t, out, "Benchmark FPS")
	assert.True(t, strings.HasSuffix(out, "Exiting...\n"), "menu continues after an abort")
}

func TestRun_BenchmarkFailed(t *testing.T) {
	actions := defaultActions()
	actions.benchErr = fmt.Errorf("opening benchmark window: %w", errors.New("no display"))

	out, err := run(t, "3\n5\n", actions)
	require.NoError(t, err)
	assert.Contains(t, out, "Benchmark failed: opening benchmark window: no display\n")
}

func TestRun_Recommendations(t *testing.T) {
	actions := defaultActions()

	out, err := run(t, "4\n5\n", actions)
	require.NoError(t, err)

	assert.Equal(t, 1, actions.specCalls)
	assert.Equal(t, 1, actions.gameCalls)
	assert.Equal(t, 1, actions.benchCalls)
	// 80 fps with 15.88 GB is High.
	assert.Contains(t, out, "Detecting system specs...\n\nRecommendations:\n"+
		"Minecraft: Recommended settings -> High\n"+
		"Portal 2: Recommended settings -> High\n")
	assert.NotContains(t, out, "CPU:")
	assert.NotContains(t, out, "Detected games:")
	assert.NotContains(t, out, "Benchmark FPS")
}

func TestRun_RecommendationsAfterAbort(t *testing.T) {
	actions := defaultActions()
	actions.benchErr = bench.ErrAborted

	out, err := run(t, "4\n5\n", actions)
	require.NoError(t, err)

	assert.Contains(t, out, "Benchmark aborted.\n")
	assert.NotContains(t, out, "Recommendations:")
}

func TestRun_RecommendationsNoGames(t *testing.T) {
	actions := defaultActions()
	actions.games = nil

	out, err := run(t, "4\n5\n", actions)
	require.NoError(t, err)
	assert.Contains(t, out, "Recommendations:\n")
	assert.NotContains(t, out, "Recommended settings ->")
}

func TestRun_InvalidChoices(t *testing.T) {
	inputs := []string{"", "0", "6", "abc", "1 2", "exit"}
	for _, in := range inputs {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			actions := defaultActions()
			out, err := run(t, in+"\n5\n", actions)
			require.NoError(t, err)

			assert.Contains(t, out, "Invalid choice. Try again.\n")
			assert.Equal(t, 2, strings.Count(out, Prompt), "menu must re-prompt")
			assert.Zero(t, actions.specCalls+actions.gameCalls+actions.benchCalls)
		})
	}
}

func TestRun_TrimsInput(t *testing.T) {
	out, err := run(t, "  1  \n\t5\t\n", defaultActions())
	require.NoError(t, err)
	assert.Contains(t, out, "CPU: Intel Core i7")
	assert.NotContains(t, out, "Invalid choice")
	assert.Contains(t, out, "Exiting...")
}

func TestRun_EOFEndsLoop(t *testing.T) {
	out, err := run(t, "1\n", defaultActions())
	require.NoError(t, err)
	assert.NotContains(t, out, "Exiting...")
	assert.Equal(t, 2, strings.Count(out, Prompt))
}

func TestRun_EmptyInput(t *testing.T) {
	out, err := run(t, "", defaultActions())
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, Prompt))
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := New(strings.NewReader("1\n"), &out, defaultActions()).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRun_WriteError(t *testing.T) {
	err := New(strings.NewReader("1\n5\n"), failingWriter{}, defaultActions()).Run(context.Background())
	assert.EqualError(t, err, "broken pipe")
}

func TestRun_CancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		errc <- New(pr, io.Discard, defaultActions()).Run(ctx)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("menu did not return after cancellation")
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestRun_ReadError(t *testing.T) {
	var out bytes.Buffer
	err := New(errReader{}, &out, defaultActions()).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading menu choice: device gone")
}
