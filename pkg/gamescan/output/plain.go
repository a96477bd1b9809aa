package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/jamesainslie/gamescan/pkg/gamescan/types"
)

// PlainFormatter formats the report as aligned key/value and table rows.
// No colors or styling are applied.
type PlainFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PlainFormatter) Format(w *bytes.Buffer, r *types.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)

	fmt.Fprintf(tw, "CPU:\t%s\n", r.Specs.CPU)
	fmt.Fprintf(tw, "RAM:\t%.2f GB (%s)\n", r.Specs.RAMGB, r.Specs.HumanRAM())
	fmt.Fprintf(tw, "GPU:\t%s\n", r.Specs.GPU)

	switch {
	case r.Benchmark != nil:
		fmt.Fprintf(tw, "FPS:\t%.2f\n", r.Benchmark.FPS)
	case r.Aborted:
		fmt.Fprintf(tw, "FPS:\taborted\n")
	default:
		fmt.Fprintf(tw, "FPS:\t-\n")
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	w.WriteString("\n")
	tw = tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "GAME\tTIER\n")

	tiers := make(map[string]types.Tier, len(r.Recommendations))
	for _, rec := range r.Recommendations {
		tiers[rec.Game] = rec.Tier
	}
	for _, game := range r.Games {
		tier := "-"
		if t, ok := tiers[game]; ok {
			tier = t.String()
		}
		fmt.Fprintf(tw, "%s\t%s\n", game, tier)
	}

	return tw.Flush()
}

func init() {
	Register("plain", func() Formatter {
		return &PlainFormatter{}
	})
}

// Ensure PlainFormatter implements Formatter.
var _ Formatter = (*PlainFormatter)(nil)
