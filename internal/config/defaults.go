package config

import (
	_ "embed"
)

//go:embed defaults/bugtap.yaml
var defaultBugTapYAML []byte

// DefaultBugTapConfig returns the default bug tap configuration. It mirrors
// defaults/bugtap.yaml and exists as a hardcoded fallback.
func DefaultBugTapConfig() BugTapConfig {
	return BugTapConfig{
		Spawn: SpawnConfig{
			MinBugsPerWave: 1,
			MaxBugsPerWave: 3,
			MinIntervalMs:  800,
			MaxIntervalMs:  1500,
		},
		Food: FoodConfig{
			Count:  3,
			Spread: 6,
		},
		Species: []SpeciesConfig{
			{Name: "ant", Glyph: "∙∙", Points: 1, Speed: 7.0, Color: "bright-white"},
			{Name: "beetle", Glyph: "●●", Points: 2, Speed: 4.5, Color: "green"},
			{Name: "ladybug", Glyph: "◉◉", Points: 3, Speed: 2.5, Color: "bright-red"},
		},
	}
}
