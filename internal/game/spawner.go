package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-bugtap/internal/config"
	"github.com/vovakirdan/tui-bugtap/internal/core"
)

// SpawnScheduler drives the randomized bug waves. The platform arms a
// one-shot timer with whatever Cycle returns and calls Cycle again when it
// fires, forever; the loop itself never stops. Whether a cycle actually
// spawns anything is decided here: the session must be running and food
// must exist. A paused or foodless cycle is a silent no-op that still
// schedules the next one.
type SpawnScheduler struct {
	world *World
	bugs  *BugManager
	cfg   config.SpawnConfig
	rng   *rand.Rand
}

// NewSpawnScheduler wires a scheduler to the world it spawns into.
func NewSpawnScheduler(world *World, bugs *BugManager, cfg config.SpawnConfig, rng *rand.Rand) *SpawnScheduler {
	return &SpawnScheduler{
		world: world,
		bugs:  bugs,
		cfg:   cfg,
		rng:   rng,
	}
}

// Cycle runs one spawn cycle and returns the delay until the next one.
// When the guard passes, a wave of 1..N bugs (bounds from config, both
// inclusive) is added to the world. The returned delay is re-randomized
// every cycle whether or not anything spawned.
func (s *SpawnScheduler) Cycle() time.Duration {
	if s.world.IsRunning() && s.bugs.HasFood() {
		n := core.RandRange(s.rng, s.cfg.MinBugsPerWave, s.cfg.MaxBugsPerWave)
		wave := make([]Entity, n)
		for i := range wave {
			wave[i] = s.bugs.Spawn(s.world.Surface())
		}
		s.world.AddEntities(wave...)
	}
	return s.NextDelay()
}

// NextDelay returns a fresh random delay within the configured interval
// bounds. Start uses this for the very first cycle as well.
func (s *SpawnScheduler) NextDelay() time.Duration {
	ms := core.RandRange(s.rng, s.cfg.MinIntervalMs, s.cfg.MaxIntervalMs)
	return time.Duration(ms) * time.Millisecond
}
