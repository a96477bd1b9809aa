// Package games detects installed games by checking a short list of
// well-known install locations.
package games

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/jamesainslie/gamescan/pkg/gamescan/logging"
)

var logger = logging.Get("games")

// Locator finds installed games under a set of candidate locations.
type Locator struct {
	Candidates []Candidate
}

// New returns a Locator over the given candidates.
func New(candidates []Candidate) *Locator {
	return &Locator{Candidates: candidates}
}

// NewDefault returns a Locator over the platform's well-known locations.
func NewDefault() *Locator {
	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warn("home directory unavailable", "err", err)
	}
	return New(DefaultCandidates(runtime.GOOS, home, os.Getenv))
}

// Detect returns the names of installed games, deduplicated and sorted.
// Missing or unreadable locations are skipped. The result is never nil.
func (l *Locator) Detect(ctx context.Context) []string {
	seen := make(map[string]struct{})

	for _, cand := range l.Candidates {
		if ctx.Err() != nil {
			break
		}

		info, err := os.Stat(cand.Path)
		if err != nil {
			logger.Debug("candidate missing", "path", cand.Path)
			continue
		}

		if cand.Label != "" {
			seen[cand.Label] = struct{}{}
			continue
		}

		if !info.IsDir() {
			continue
		}

		names, err := listSubdirs(ctx, cand.Path)
		if err != nil {
			logger.Warn("listing games failed", "path", cand.Path, "err", err)
		}
		for _, name := range names {
			seen[name] = struct{}{}
		}
	}

	found := make([]string, 0, len(seen))
	for name := range seen {
		found = append(found, name)
	}
	sort.Strings(found)

	logger.Info("detected games", "count", len(found))
	return found
}

// listSubdirs returns the names of the immediate subdirectories of root.
// Partial results are returned alongside any walk error.
func listSubdirs(ctx context.Context, root string) ([]string, error) {
	conf := fastwalk.Config{
		Follow: false,
	}

	root = filepath.Clean(root)

	var (
		mu    sync.Mutex
		names []string
	)

	err := fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			return nil
		}
		if filepath.Clean(path) == root {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			// Linked game folders are listed but not followed.
			if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
				mu.Lock()
				names = append(names, filepath.Base(path))
				mu.Unlock()
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}

		mu.Lock()
		names = append(names, filepath.Base(path))
		mu.Unlock()

		return fastwalk.SkipDir
	})

	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return names, err
	}
	return names, nil
}
