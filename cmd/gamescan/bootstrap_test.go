package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/jamesainslie/gamescan/pkg/gamescan/config"
	"github.com/jamesainslie/gamescan/pkg/gamescan/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRotationConfig(t *testing.T) {
	tests := []struct {
		name     string
		input    config.RotationConfig
		expected logging.RotationConfig
	}{
		{
			name: "default values",
			input: config.RotationConfig{
				MaxSize:    "10MB",
				MaxAge:     30,
				MaxBackups: 5,
				Daily:      true,
			},
			expected: logging.RotationConfig{
				MaxSize:    10 * 1024 * 1024,
				MaxAge:     30,
				MaxBackups: 5,
				Daily:      true,
			},
		},
		{
			name: "custom size in gigabytes",
			input: config.RotationConfig{
				MaxSize:    "1G",
				MaxAge:     7,
				MaxBackups: 3,
			},
			expected: logging.RotationConfig{
				MaxSize:    1024 * 1024 * 1024,
				MaxAge:     7,
				MaxBackups: 3,
			},
		},
		{
			name: "empty max_size uses default",
			input: config.RotationConfig{
				MaxAge:     14,
				MaxBackups: 2,
				Daily:      true,
			},
			expected: logging.RotationConfig{
				MaxSize:    10 * 1024 * 1024,
				MaxAge:     14,
				MaxBackups: 2,
				Daily:      true,
			},
		},
		{
			name: "invalid max_size uses default",
			input: config.RotationConfig{
				MaxSize:    "invalid",
				MaxAge:     21,
				MaxBackups: 4,
			},
			expected: logging.RotationConfig{
				MaxSize:    10 * 1024 * 1024,
				MaxAge:     21,
				MaxBackups: 4,
			},
		},
		{
			name:     "zero max_size uses default",
			input:    config.RotationConfig{MaxSize: "0"},
			expected: logging.RotationConfig{MaxSize: 10 * 1024 * 1024},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseRotationConfig(tt.input))
		})
	}
}

func TestInitializeLoggingEnsuresDirectories(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	t.Cleanup(func() {
		_ = logging.Close()
		appConfig, configErr = nil, nil
	})

	require.NoError(t, initializeLogging(nil, nil))

	configDir, err := config.ConfigDir()
	require.NoError(t, err)
	assert.DirExists(t, configDir)
	assert.DirExists(t, config.StateDir())

	require.NotNil(t, appConfig)
	assert.NoError(t, configErr)
	assert.Equal(t, config.DefaultTriangles, appConfig.Benchmark.Triangles)

	logging.Get("cli").Info("hello")
	_, err = os.Stat(config.DefaultLogPath())
	assert.NoError(t, err)
}

func TestInitializeLoggingFallsBackOnBadConfig(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	t.Setenv("GAMESCAN_BENCHMARK_TRIANGLES", "0")
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	t.Cleanup(func() {
		_ = logging.Close()
		appConfig, configErr = nil, nil
	})

	require.NoError(t, initializeLogging(nil, nil))

	assert.ErrorIs(t, configErr, config.ErrInvalidConfig)
	require.NotNil(t, appConfig)
	assert.Equal(t, config.DefaultTriangles, appConfig.Benchmark.Triangles)
	assert.ErrorIs(t, runMenu(rootCmd, nil), config.ErrInvalidConfig)
}
