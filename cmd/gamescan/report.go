package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jamesainslie/gamescan/pkg/gamescan/logging"
	"github.com/jamesainslie/gamescan/pkg/gamescan/output"
	"github.com/spf13/cobra"
)

var reportFormat string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run every check once and print a report",
	Long: `Inspect the hardware, detect installed games, run the benchmark and
print recommended settings for each game without the interactive menu.

Output formats: ` + strings.Join(output.Available(), ", "),
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportFormat, "output", "o", "pretty", "output format ("+strings.Join(output.Available(), "|")+")")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	if configErr != nil {
		return configErr
	}

	formatter, err := output.Get(reportFormat)
	if err != nil {
		return err
	}

	report := buildReport(cmd.Context(), newApp(appConfig))
	logging.Get("cli").Info("report built", "id", report.ID, "games", len(report.Games), "aborted", report.Aborted)

	var buf bytes.Buffer
	if err := formatter.Format(&buf, report); err != nil {
		return fmt.Errorf("formatting report: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return err
}
