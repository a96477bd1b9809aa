package output

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jamesainslie/gamescan/pkg/gamescan/types"
)

// PrettyFormatter formats the report with colors and boxes using lipgloss.
type PrettyFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PrettyFormatter) Format(w *bytes.Buffer, r *types.Report) error {
	w.WriteString(f.formatHeader(r))
	w.WriteString("\n")
	w.WriteString(f.formatGames(r))
	w.WriteString(f.formatFooter(r))
	w.WriteString("\n")

	if len(r.Warnings) > 0 {
		w.WriteString(f.formatWarnings(r.Warnings))
	}

	return nil
}

func (f *PrettyFormatter) formatHeader(r *types.Report) string {
	row := func(label, value string) string {
		return fmt.Sprintf("%s %s", LabelStyle.Render(label), ValueStyle.Render(value))
	}

	lines := []string{
		TitleStyle.Render("System"),
		row("CPU:", r.Specs.CPU),
		row("RAM:", fmt.Sprintf("%.2f GB (%s)", r.Specs.RAMGB, r.Specs.HumanRAM())),
		row("GPU:", r.Specs.GPU),
	}

	switch {
	case r.Benchmark != nil:
		fps := FPSStyle.Render(fmt.Sprintf("%.2f", r.Benchmark.FPS))
		detail := MutedStyle.Render(fmt.Sprintf("(%s frames in %s)",
			humanize.Comma(int64(r.Benchmark.Frames)), r.Benchmark.Elapsed.Round(time.Millisecond)))
		lines = append(lines, fmt.Sprintf("%s %s %s", LabelStyle.Render("FPS:"), fps, detail))
	case r.Aborted:
		lines = append(lines, fmt.Sprintf("%s %s", LabelStyle.Render("FPS:"),
			WarningStyle.Bold(true).Render("benchmark aborted")))
	default:
		lines = append(lines, fmt.Sprintf("%s %s", LabelStyle.Render("FPS:"), MutedStyle.Render("not measured")))
	}

	return HeaderBox.Render(strings.Join(lines, "\n"))
}

func (f *PrettyFormatter) formatGames(r *types.Report) string {
	if len(r.Games) == 0 {
		return MutedStyle.Render("  No games detected") + "\n"
	}

	tiers := make(map[string]types.Tier, len(r.Recommendations))
	for _, rec := range r.Recommendations {
		tiers[rec.Game] = rec.Tier
	}

	width := len("GAME")
	for _, g := range r.Games {
		if len(g) > width {
			width = len(g)
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  %s  %s\n",
		TableHeaderStyle.Render(padRight("GAME", width)), TableHeaderStyle.Render("SETTINGS")))

	for _, g := range r.Games {
		tier := MutedStyle.Render("-")
		if t, ok := tiers[g]; ok {
			tier = TierStyle(t).Render(t.String())
		}
		sb.WriteString(fmt.Sprintf("  %s  %s\n", ValueStyle.Render(padRight(g, width)), tier))
	}

	return sb.String()
}

func (f *PrettyFormatter) formatFooter(r *types.Report) string {
	parts := []string{
		fmt.Sprintf("%s %s", LabelStyle.Render("Games:"), ValueStyle.Render(fmt.Sprintf("%d", len(r.Games)))),
	}
	if !r.GeneratedAt.IsZero() {
		parts = append(parts, fmt.Sprintf("%s %s", LabelStyle.Render("Run:"),
			MutedStyle.Render(r.GeneratedAt.Format("2006-01-02 15:04:05"))))
	}
	if r.ID != "" {
		parts = append(parts, MutedStyle.Render(r.ID))
	}
	parts = append(parts, MutedStyle.Render("Use -o plain for unformatted output"))

	return FooterBox.Render(strings.Join(parts, "  "))
}

func (f *PrettyFormatter) formatWarnings(warnings []string) string {
	var sb strings.Builder

	sb.WriteString(WarningStyle.Bold(true).Render("Warnings:"))
	sb.WriteString("\n")
	for _, warning := range warnings {
		sb.WriteString(WarningStyle.Render("  " + warning))
		sb.WriteString("\n")
	}

	return sb.String()
}

// padRight pads s with spaces on the right to width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func init() {
	Register("pretty", func() Formatter {
		return &PrettyFormatter{}
	})
}

// Ensure PrettyFormatter implements Formatter.
var _ Formatter = (*PrettyFormatter)(nil)
