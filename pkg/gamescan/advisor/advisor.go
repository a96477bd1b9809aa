// Package advisor maps benchmark frame rate and installed memory to a
// quality tier.
package advisor

import "github.com/jamesainslie/gamescan/pkg/gamescan/types"

// Thresholds for each tier. Frame rate comparisons are strict, memory
// comparisons are inclusive.
const (
	UltraMinFPS   = 100.0
	UltraMinRAMGB = 16.0
	HighMinFPS    = 60.0
	HighMinRAMGB  = 8.0
	MediumMinFPS  = 30.0
)

// Recommend returns the tier for a game given the host specs and the
// measured frame rate. The game name does not affect the result.
func Recommend(specs types.SystemSpecs, fps float64, game string) types.Tier {
	switch {
	case fps > UltraMinFPS && specs.RAMGB >= UltraMinRAMGB:
		return types.TierUltra
	case fps > HighMinFPS && specs.RAMGB >= HighMinRAMGB:
		return types.TierHigh
	case fps > MediumMinFPS:
		return types.TierMedium
	default:
		return types.TierLow
	}
}

// RecommendAll applies Recommend to each game, preserving order.
func RecommendAll(specs types.SystemSpecs, fps float64, games []string) []types.Recommendation {
	recs := make([]types.Recommendation, 0, len(games))
	for _, g := range games {
		recs = append(recs, types.Recommendation{
			Game: g,
			Tier: Recommend(specs, fps, g),
		})
	}
	return recs
}
