package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jamesainslie/gamescan/pkg/gamescan/config"
	"github.com/jamesainslie/gamescan/pkg/gamescan/menu"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string

	// appConfig is loaded by the PersistentPreRunE hook.
	appConfig *config.Config

	rootCmd = &cobra.Command{
		Use:   "gamescan",
		Short: "Check system specs, installed games and rendering speed",
		Long: `Gamescan reports your CPU, RAM and GPU, looks for installed games,
runs a short OpenGL benchmark and recommends a quality preset per game.

Running gamescan with no arguments opens an interactive menu.

Examples:
  gamescan                   # Interactive menu
  gamescan report            # One-shot report with recommendations
  gamescan report -o json    # Machine-readable report
  gamescan -d 10s report     # Longer benchmark
  gamescan config show       # Show configuration`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: initializeLogging,
		RunE:              runMenu,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/gamescan/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output on stderr")
	rootCmd.PersistentFlags().DurationP("duration", "d", config.DefaultBenchmarkDuration, "benchmark duration")
	rootCmd.PersistentFlags().Int("triangles", config.DefaultTriangles, "triangles drawn per benchmark frame")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("benchmark.duration", rootCmd.PersistentFlags().Lookup("duration"))
	_ = viper.BindPFlag("benchmark.triangles", rootCmd.PersistentFlags().Lookup("triangles"))
}

// initConfig points viper at the config file.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		return
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if dir, err := config.ConfigDir(); err == nil {
		viper.AddConfigPath(dir)
	}
}

// loadConfig reads configuration through the global viper instance so
// bound flags take precedence over the file and environment.
func loadConfig() (*config.Config, error) {
	return config.LoadFrom(viper.GetViper())
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command
// context, which aborts a running benchmark and ends the menu.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		printError("%v", err)
	}
	return err
}

// runMenu runs the interactive menu on stdin/stdout.
func runMenu(cmd *cobra.Command, args []string) error {
	if configErr != nil {
		return configErr
	}
	app := newApp(appConfig)
	return menu.New(cmd.InOrStdin(), cmd.OutOrStdout(), app).Run(cmd.Context())
}

// getVerbose returns true if verbose mode is enabled.
func getVerbose() bool {
	return viper.GetBool("verbose")
}

// printError prints an error message to stderr.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
