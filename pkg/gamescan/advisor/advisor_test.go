package advisor

import (
	"math"
	"testing"

	"github.com/jamesainslie/gamescan/pkg/gamescan/types"
	"github.com/stretchr/testify/assert"
)

func specsWithRAM(gb float64) types.SystemSpecs {
	return types.SystemSpecs{CPU: "cpu", GPU: "gpu", RAMGB: gb}
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name string
		fps  float64
		ram  float64
		want types.Tier
	}{
		{"fast with lots of ram", 144, 32, types.TierUltra},
		{"just over ultra fps", 101, 16, types.TierUltra},
		{"ultra fps is strict", 100, 16, types.TierHigh},
		{"ultra needs 16GB", 120, 15.99, types.TierHigh},
		{"high fps with 8GB", 61, 8, types.TierHigh},
		{"high fps is strict", 60, 8, types.TierMedium},
		{"high needs 8GB", 90, 7.99, types.TierMedium},
		{"very fast but little ram", 500, 4, types.TierMedium},
		{"medium", 31, 0, types.TierMedium},
		{"medium fps is strict", 30, 64, types.TierLow},
		{"nothing", 0, 0, types.TierLow},
		{"negative fps", -1, 16, types.TierLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Recommend(specsWithRAM(tt.ram), tt.fps, "Game"))
		})
	}
}

func TestRecommend_IgnoresGameName(t *testing.T) {
	specs := specsWithRAM(16)
	for _, game := range []string{"", "Minecraft", "Portal 2"} {
		assert.Equal(t, types.TierHigh, Recommend(specs, 75, game))
	}
}

func TestRecommend_TotalAndMonotonic(t *testing.T) {
	fpsValues := []float64{math.Inf(-1), -10, 0, 29.99, 30, 30.01, 60, 60.01, 100, 100.01, 1e6, math.Inf(1)}
	ramValues := []float64{0, 4, 7.99, 8, 15.99, 16, 128}

	for _, ram := range ramValues {
		prev := types.TierLow
		for _, fps := range fpsValues {
			got := Recommend(specsWithRAM(ram), fps, "g")
			assert.Contains(t, types.Tiers, got)
			assert.GreaterOrEqual(t, int(got), int(prev), "fps=%v ram=%v", fps, ram)
			assert.Equal(t, got, Recommend(specsWithRAM(ram), fps, "g"))
			prev = got
		}
	}
}

func TestRecommend_NaN(t *testing.T) {
	assert.Equal(t, types.TierLow, Recommend(specsWithRAM(32), math.NaN(), "g"))
}

func TestRecommendAll(t *testing.T) {
	got := RecommendAll(specsWithRAM(16), 120, []string{"Minecraft", "Celeste"})

	assert.Equal(t, []types.Recommendation{
		{Game: "Minecraft", Tier: types.TierUltra},
		{Game: "Celeste", Tier: types.TierUltra},
	}, got)
}

func TestRecommendAll_NoGames(t *testing.T) {
	got := RecommendAll(specsWithRAM(16), 120, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
