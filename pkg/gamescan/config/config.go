package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// RotationConfig configures log file rotation.
type RotationConfig struct {
	MaxSize    string `mapstructure:"max_size"`
	MaxAge     int    `mapstructure:"max_age"`
	MaxBackups int    `mapstructure:"max_backups"`
	Daily      bool   `mapstructure:"daily"`
}

// LoggingConfig configures application logging.
type LoggingConfig struct {
	Level      string            `mapstructure:"level"`
	Path       string            `mapstructure:"path"`
	Rotation   RotationConfig    `mapstructure:"rotation"`
	Components map[string]string `mapstructure:"components"`
}

// BenchmarkConfig configures the render benchmark.
type BenchmarkConfig struct {
	Duration  time.Duration `mapstructure:"duration"`
	Triangles int           `mapstructure:"triangles"`
	Width     int           `mapstructure:"width"`
	Height    int           `mapstructure:"height"`
}

// CandidateConfig is a user-supplied game location.
// A non-empty Label is reported when Path exists; otherwise each
// subdirectory of Path is reported.
type CandidateConfig struct {
	Path  string `mapstructure:"path"`
	Label string `mapstructure:"label"`
}

// GamesConfig configures game detection.
type GamesConfig struct {
	// Candidates replaces the platform defaults when non-empty.
	Candidates []CandidateConfig `mapstructure:"candidates"`
}

// Config represents the application configuration.
type Config struct {
	Benchmark BenchmarkConfig `mapstructure:"benchmark"`
	Games     GamesConfig     `mapstructure:"games"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Load loads configuration from file and environment variables.
// Config file locations (in order of precedence):
//   - $XDG_CONFIG_HOME/gamescan/config.yaml
//   - $HOME/.config/gamescan/config.yaml
//
// Environment variables are prefixed with GAMESCAN_ (e.g. GAMESCAN_BENCHMARK_DURATION).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	v.AddConfigPath(dir)

	return LoadFrom(v)
}

// LoadFrom reads configuration through an existing viper instance. The
// caller decides where the config file lives and may have bound flags;
// LoadFrom adds defaults and environment handling.
func LoadFrom(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	for i, c := range cfg.Games.Candidates {
		expanded, err := ExpandPath(os.ExpandEnv(c.Path))
		if err != nil {
			return nil, err
		}
		cfg.Games.Candidates[i].Path = expanded
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("benchmark.duration", DefaultBenchmarkDuration)
	v.SetDefault("benchmark.triangles", DefaultTriangles)
	v.SetDefault("benchmark.width", DefaultWindowWidth)
	v.SetDefault("benchmark.height", DefaultWindowHeight)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.path", "")
	v.SetDefault("logging.rotation.max_size", DefaultLogMaxSize)
	v.SetDefault("logging.rotation.max_age", DefaultLogMaxAge)
	v.SetDefault("logging.rotation.max_backups", DefaultLogMaxBackups)
	v.SetDefault("logging.rotation.daily", true)
	v.SetDefault("logging.components", DefaultComponentLevels)
}

// Default returns the configuration used when nothing is loaded.
func Default() *Config {
	components := make(map[string]string, len(DefaultComponentLevels))
	for k, v := range DefaultComponentLevels {
		components[k] = v
	}

	return &Config{
		Benchmark: BenchmarkConfig{
			Duration:  DefaultBenchmarkDuration,
			Triangles: DefaultTriangles,
			Width:     DefaultWindowWidth,
			Height:    DefaultWindowHeight,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
			Rotation: RotationConfig{
				MaxSize:    DefaultLogMaxSize,
				MaxAge:     DefaultLogMaxAge,
				MaxBackups: DefaultLogMaxBackups,
				Daily:      true,
			},
			Components: components,
		},
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Benchmark.Duration < 0 {
		return fmt.Errorf("%w: benchmark.duration must not be negative, got %s", ErrInvalidConfig, c.Benchmark.Duration)
	}
	if c.Benchmark.Triangles < 1 {
		return fmt.Errorf("%w: benchmark.triangles must be positive, got %d", ErrInvalidConfig, c.Benchmark.Triangles)
	}
	if c.Benchmark.Width < 1 || c.Benchmark.Height < 1 {
		return fmt.Errorf("%w: benchmark window must be at least 1x1, got %dx%d",
			ErrInvalidConfig, c.Benchmark.Width, c.Benchmark.Height)
	}
	for i, cand := range c.Games.Candidates {
		if strings.TrimSpace(cand.Path) == "" {
			return fmt.Errorf("%w: games.candidates[%d].path is empty", ErrInvalidConfig, i)
		}
	}
	return nil
}

// ConfigDir returns the configuration directory path.
func ConfigDir() (string, error) {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, appName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", appName), nil
}

// ConfigPath returns the path of the default config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// WriteDefault writes a default config file if none exists.
// It returns the file path and whether a new file was created.
func WriteDefault() (string, bool, error) {
	if err := EnsureConfigDir(); err != nil {
		return "", false, err
	}

	configPath, err := ConfigPath()
	if err != nil {
		return "", false, err
	}

	if _, err := os.Stat(configPath); err == nil {
		return configPath, false, nil
	} else if !os.IsNotExist(err) {
		return "", false, fmt.Errorf("failed to check config file: %w", err)
	}

	defaultConfig := fmt.Sprintf(`# gamescan configuration

# Render benchmark settings
benchmark:
  duration: %s
  triangles: %d
  width: %d
  height: %d

# Game detection. Leave candidates empty to use the platform defaults
# (Minecraft, Ubisoft Connect and Steam library folders).
# A candidate with a label reports the label when the path exists;
# without a label every subfolder of the path is reported.
games:
  candidates: []
  # candidates:
  #   - path: ~/Games
  #   - path: ~/.minecraft
  #     label: Minecraft

# Logging configuration
logging:
  # Log level: debug, info, warn, error
  level: %s
  # Log file path (empty means $XDG_STATE_HOME/gamescan/gamescan.log)
  path: ""
  rotation:
    max_size: %s
    max_age: %d       # days
    max_backups: %d
    daily: true
  components:
    specs: info
    games: info
    bench: info
    menu: info
`, DefaultBenchmarkDuration, DefaultTriangles, DefaultWindowWidth, DefaultWindowHeight,
		DefaultLogLevel, DefaultLogMaxSize, DefaultLogMaxAge, DefaultLogMaxBackups)

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write default config: %w", err)
	}

	return configPath, true, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, path[1:]), nil
}

// StateDir returns $XDG_STATE_HOME/gamescan/ for log files.
func StateDir() string {
	return filepath.Join(xdg.StateHome, appName)
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	return filepath.Join(StateDir(), appName+".log")
}
