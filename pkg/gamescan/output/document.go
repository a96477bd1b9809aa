package output

import (
	"time"

	"github.com/jamesainslie/gamescan/pkg/gamescan/types"
)

// document is the structure shared by the json and yaml formatters.
type document struct {
	ID              string           `json:"id" yaml:"id"`
	GeneratedAt     time.Time        `json:"generated_at" yaml:"generated_at"`
	Specs           docSpecs         `json:"specs" yaml:"specs"`
	Games           []string         `json:"games" yaml:"games"`
	Benchmark       *docBenchmark    `json:"benchmark,omitempty" yaml:"benchmark,omitempty"`
	Recommendations []docRecommended `json:"recommendations" yaml:"recommendations"`
	Meta            docMeta          `json:"meta" yaml:"meta"`
}

type docSpecs struct {
	CPU      string  `json:"cpu" yaml:"cpu"`
	GPU      string  `json:"gpu" yaml:"gpu"`
	RAMGB    float64 `json:"ram_gb" yaml:"ram_gb"`
	RAMBytes uint64  `json:"ram_bytes" yaml:"ram_bytes"`
	RAMHuman string  `json:"ram_human" yaml:"ram_human"`
}

type docBenchmark struct {
	Frames  int     `json:"frames" yaml:"frames"`
	Elapsed string  `json:"elapsed" yaml:"elapsed"`
	FPS     float64 `json:"fps" yaml:"fps"`
}

type docRecommended struct {
	Game string `json:"game" yaml:"game"`
	Tier string `json:"tier" yaml:"tier"`
}

type docMeta struct {
	Aborted  bool     `json:"aborted" yaml:"aborted"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// buildDocument converts a Report into the serialized structure.
func buildDocument(r *types.Report) document {
	games := r.Games
	if games == nil {
		games = []string{}
	}

	recs := make([]docRecommended, len(r.Recommendations))
	for i, rec := range r.Recommendations {
		recs[i] = docRecommended{Game: rec.Game, Tier: rec.Tier.String()}
	}

	doc := document{
		ID:          r.ID,
		GeneratedAt: r.GeneratedAt,
		Specs: docSpecs{
			CPU:      r.Specs.CPU,
			GPU:      r.Specs.GPU,
			RAMGB:    r.Specs.RAMGB,
			RAMBytes: r.Specs.RAMBytes,
			RAMHuman: r.Specs.HumanRAM(),
		},
		Games:           games,
		Recommendations: recs,
		Meta: docMeta{
			Aborted:  r.Aborted,
			Warnings: r.Warnings,
		},
	}

	if r.Benchmark != nil {
		doc.Benchmark = &docBenchmark{
			Frames:  r.Benchmark.Frames,
			Elapsed: r.Benchmark.Elapsed.String(),
			FPS:     r.Benchmark.FPS,
		}
	}

	return doc
}
