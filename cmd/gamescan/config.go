package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jamesainslie/gamescan/pkg/gamescan/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage gamescan configuration settings.

Configuration is loaded from:
  1. $XDG_CONFIG_HOME/gamescan/config.yaml (if set)
  2. ~/.config/gamescan/config.yaml

Environment variables can override config file settings using the GAMESCAN_ prefix:
  GAMESCAN_BENCHMARK_DURATION=10s
  GAMESCAN_BENCHMARK_TRIANGLES=20000
  GAMESCAN_LOGGING_LEVEL=debug`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration settings from all sources.`,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	Long:  `Create a default configuration file if one doesn't exist.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	Long:  `Display the path to the configuration file.`,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// envOverrides lists the environment variables config show reports.
var envOverrides = []string{
	"GAMESCAN_BENCHMARK_DURATION",
	"GAMESCAN_BENCHMARK_TRIANGLES",
	"GAMESCAN_BENCHMARK_WIDTH",
	"GAMESCAN_BENCHMARK_HEIGHT",
	"GAMESCAN_LOGGING_LEVEL",
	"GAMESCAN_LOGGING_PATH",
}

// runConfigShow displays the current configuration.
func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg := appConfig
	if cfg == nil {
		cfg = config.Default()
	}
	if configErr != nil {
		printError("Failed to load configuration: %v", configErr)
		fmt.Fprintln(out, "(showing defaults)")
	}

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		fmt.Fprintf(out, "Config file: %s\n\n", configFile)
	} else {
		fmt.Fprintln(out, "Config file: (using defaults, no file found)")
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "Current Configuration:")
	fmt.Fprintln(out, "----------------------")
	fmt.Fprintf(out, "benchmark.duration:    %s\n", cfg.Benchmark.Duration)
	fmt.Fprintf(out, "benchmark.triangles:   %d\n", cfg.Benchmark.Triangles)
	fmt.Fprintf(out, "benchmark.window:      %dx%d\n", cfg.Benchmark.Width, cfg.Benchmark.Height)
	if len(cfg.Games.Candidates) == 0 {
		fmt.Fprintln(out, "games.candidates:      (platform defaults)")
	} else {
		fmt.Fprintln(out, "games.candidates:")
		for _, c := range cfg.Games.Candidates {
			if c.Label != "" {
				fmt.Fprintf(out, "  - %s (%s)\n", c.Path, c.Label)
			} else {
				fmt.Fprintf(out, "  - %s\n", c.Path)
			}
		}
	}
	fmt.Fprintf(out, "logging.level:         %s\n", cfg.Logging.Level)
	logPath := cfg.Logging.Path
	if logPath == "" {
		logPath = config.DefaultLogPath()
	}
	fmt.Fprintf(out, "logging.path:          %s\n", logPath)
	fmt.Fprintf(out, "logging.rotation:      max_size=%s max_age=%dd max_backups=%d daily=%t\n",
		cfg.Logging.Rotation.MaxSize, cfg.Logging.Rotation.MaxAge,
		cfg.Logging.Rotation.MaxBackups, cfg.Logging.Rotation.Daily)

	if len(cfg.Logging.Components) > 0 {
		names := make([]string, 0, len(cfg.Logging.Components))
		for name := range cfg.Logging.Components {
			names = append(names, name)
		}
		sort.Strings(names)
		parts := make([]string, len(names))
		for i, name := range names {
			parts[i] = name + "=" + cfg.Logging.Components[name]
		}
		fmt.Fprintf(out, "logging.components:    %s\n", strings.Join(parts, " "))
	}

	fmt.Fprintln(out, "\nEnvironment Overrides:")
	fmt.Fprintln(out, "----------------------")
	anyOverrides := false
	for _, name := range envOverrides {
		if val := os.Getenv(name); val != "" {
			fmt.Fprintf(out, "%s=%s\n", name, val)
			anyOverrides = true
		}
	}
	if !anyOverrides {
		fmt.Fprintln(out, "(none)")
	}

	return nil
}

// runConfigInit creates a default config file.
func runConfigInit(cmd *cobra.Command, args []string) error {
	path, created, err := config.WriteDefault()
	if err != nil {
		return err
	}

	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Config file already exists: %s\n", path)
	}
	return nil
}

// runConfigPath prints the config file path.
func runConfigPath(cmd *cobra.Command, args []string) error {
	if cfgFile != "" {
		fmt.Fprintln(cmd.OutOrStdout(), cfgFile)
		return nil
	}

	path, err := config.ConfigPath()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
