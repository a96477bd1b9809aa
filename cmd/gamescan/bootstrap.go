package main

import (
	"fmt"
	"os"

	"github.com/jamesainslie/gamescan/pkg/gamescan/config"
	"github.com/jamesainslie/gamescan/pkg/gamescan/logging"
	"github.com/jamesainslie/gamescan/pkg/gamescan/types"
	"github.com/spf13/cobra"
)

// defaultRotationSize is used when logging.rotation.max_size is empty or invalid.
const defaultRotationSize = 10 * types.MiB

// configErr holds the load failure when appConfig fell back to defaults.
// Commands that act on the configuration return it; config show reports it.
var configErr error

// initializeLogging loads configuration, creates the config and state
// directories, and starts file logging. It runs before every command.
func initializeLogging(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		configErr = err
		cfg = config.Default()
	}
	appConfig = cfg

	if err := config.EnsureConfigDir(); err != nil {
		return err
	}
	if err := os.MkdirAll(config.StateDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	logCfg := logging.Config{
		Level:      cfg.Logging.Level,
		Path:       cfg.Logging.Path,
		Rotation:   parseRotationConfig(cfg.Logging.Rotation),
		Components: cfg.Logging.Components,
	}
	if logCfg.Path == "" {
		logCfg.Path = config.DefaultLogPath()
	}
	if getVerbose() {
		logCfg.ConsoleLevel = "debug"
	}

	if err := logging.Init(logCfg); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}

	logging.Get("cli").Debug("starting", "command", commandPath(cmd), "version", version)
	return nil
}

// parseRotationConfig converts the config file's rotation settings.
func parseRotationConfig(rc config.RotationConfig) logging.RotationConfig {
	maxSize, err := types.ParseSize(rc.MaxSize)
	if err != nil || maxSize <= 0 {
		maxSize = defaultRotationSize
	}

	return logging.RotationConfig{
		MaxSize:    maxSize,
		MaxAge:     rc.MaxAge,
		MaxBackups: rc.MaxBackups,
		Daily:      rc.Daily,
	}
}

func commandPath(cmd *cobra.Command) string {
	if cmd == nil {
		return rootCmd.Name()
	}
	return cmd.CommandPath()
}
