package game

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
)

// TimeTracker counts elapsed play time in whole seconds. The platform
// re-arms a one-second timer unconditionally for the life of the session
// and calls Tick each time it fires; pausing never stops that timer, it
// only makes Tick skip the increment, so the clock freezes and then picks
// up where it left off.
type TimeTracker struct {
	world   *World
	state   *GameState
	display Display
	store   Store
	log     *log.Logger
}

// NewTimeTracker wires a tracker to the session's world, state and ports.
func NewTimeTracker(world *World, state *GameState, display Display, store Store, logger *log.Logger) *TimeTracker {
	return &TimeTracker{
		world:   world,
		state:   state,
		display: display,
		store:   store,
		log:     logger,
	}
}

// Tick advances the clock by one second unless the session is paused,
// pushes the new time to the display and persists it as raw seconds.
func (t *TimeTracker) Tick() {
	if t.world.IsPaused() {
		return
	}

	t.state.ElapsedSeconds++
	t.display.SetTimeText(TimeText(t.state.ElapsedSeconds))
	if err := t.store.Put(KeyTime, strconv.Itoa(t.state.ElapsedSeconds)); err != nil {
		t.log.Warn("failed to persist time", "err", err)
	}
}

// FormatElapsed renders whole seconds as m:ss with zero-padded seconds,
// e.g. 65 -> "1:05".
func FormatElapsed(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}

// TimeText renders the HUD time line for a given elapsed-seconds count.
func TimeText(totalSeconds int) string {
	return "Time: " + FormatElapsed(totalSeconds)
}
