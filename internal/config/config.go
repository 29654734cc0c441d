// Package config provides YAML-based game configuration loading for the
// bug tap game.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-bugtap/internal/core"
)

// BugTapConfig contains all tunable parameters for a bug tap session.
type BugTapConfig struct {
	Spawn   SpawnConfig     `yaml:"spawn"`
	Food    FoodConfig      `yaml:"food"`
	Species []SpeciesConfig `yaml:"bugs"`
}

// SpawnConfig bounds the randomized spawn waves. Each spawn cycle adds
// between MinBugsPerWave and MaxBugsPerWave bugs (inclusive) and schedules
// the next cycle between MinIntervalMs and MaxIntervalMs milliseconds out.
type SpawnConfig struct {
	MinBugsPerWave int `yaml:"min_bugs_per_wave"`
	MaxBugsPerWave int `yaml:"max_bugs_per_wave"`
	MinIntervalMs  int `yaml:"min_interval_ms"`
	MaxIntervalMs  int `yaml:"max_interval_ms"`
}

// FoodConfig defines the food crumbs scattered when a session starts.
// Spread is the maximum distance in cells from the surface center.
type FoodConfig struct {
	Count  int `yaml:"count"`
	Spread int `yaml:"spread"`
}

// SpeciesConfig describes one bug species. Speed is in cells per second.
type SpeciesConfig struct {
	Name   string  `yaml:"name"`
	Glyph  string  `yaml:"glyph"`
	Points int     `yaml:"points"`
	Speed  float64 `yaml:"speed"`
	Color  string  `yaml:"color"`
}

// Validate checks the config for values the game cannot run with.
func (c BugTapConfig) Validate() error {
	s := c.Spawn
	if s.MinBugsPerWave < 1 {
		return fmt.Errorf("config: spawn.min_bugs_per_wave must be >= 1, got %d", s.MinBugsPerWave)
	}
	if s.MaxBugsPerWave < s.MinBugsPerWave {
		return fmt.Errorf("config: spawn.max_bugs_per_wave %d < min_bugs_per_wave %d", s.MaxBugsPerWave, s.MinBugsPerWave)
	}
	if s.MinIntervalMs < 1 {
		return fmt.Errorf("config: spawn.min_interval_ms must be >= 1, got %d", s.MinIntervalMs)
	}
	if s.MaxIntervalMs < s.MinIntervalMs {
		return fmt.Errorf("config: spawn.max_interval_ms %d < min_interval_ms %d", s.MaxIntervalMs, s.MinIntervalMs)
	}
	if c.Food.Count < 1 {
		return fmt.Errorf("config: food.count must be >= 1, got %d", c.Food.Count)
	}
	if c.Food.Spread < 0 {
		return fmt.Errorf("config: food.spread must be >= 0, got %d", c.Food.Spread)
	}
	if len(c.Species) == 0 {
		return fmt.Errorf("config: at least one bug species is required")
	}
	for i, sp := range c.Species {
		if sp.Glyph == "" {
			return fmt.Errorf("config: bugs[%d] (%s): glyph must not be empty", i, sp.Name)
		}
		if sp.Points < 0 {
			return fmt.Errorf("config: bugs[%d] (%s): points must be >= 0, got %d", i, sp.Name, sp.Points)
		}
		if sp.Speed <= 0 {
			return fmt.Errorf("config: bugs[%d] (%s): speed must be > 0, got %g", i, sp.Name, sp.Speed)
		}
		if _, ok := core.ParseColor(sp.Color); !ok {
			return fmt.Errorf("config: bugs[%d] (%s): unknown color %q", i, sp.Name, sp.Color)
		}
	}
	return nil
}
