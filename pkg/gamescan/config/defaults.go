// Package config provides configuration management for gamescan.
package config

import "time"

// Default configuration values for gamescan.
const (
	// DefaultBenchmarkDuration is how long the render benchmark runs.
	DefaultBenchmarkDuration = 5 * time.Second

	// DefaultTriangles is the number of triangles drawn per frame.
	DefaultTriangles = 10000

	// DefaultWindowWidth and DefaultWindowHeight size the benchmark window.
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600

	// DefaultLogLevel is the file log level.
	DefaultLogLevel = "info"

	// DefaultLogMaxSize is the size at which the log file rotates.
	DefaultLogMaxSize = "10MB"

	// DefaultLogMaxAge is the number of days rotated logs are kept.
	DefaultLogMaxAge = 30

	// DefaultLogMaxBackups is the number of rotated logs kept.
	DefaultLogMaxBackups = 5

	// appName names the config, state and log directories.
	appName = "gamescan"

	// envPrefix prefixes environment overrides (GAMESCAN_BENCHMARK_DURATION).
	envPrefix = "GAMESCAN"
)

// DefaultComponentLevels holds per-component log levels.
var DefaultComponentLevels = map[string]string{
	"specs": "info",
	"games": "info",
	"bench": "info",
	"menu":  "info",
}
