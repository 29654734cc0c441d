package game

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
)

// TapResolver turns pointer presses into scoring events. One resolver per
// session, invoked from the platform's mouse handler.
type TapResolver struct {
	world      *World
	state      *GameState
	display    Display
	sound      Sound
	store      Store
	log        *log.Logger
	markerTTL  int // score marker lifetime in frames
	markerRise int // frames between marker drifts
}

// NewTapResolver wires a resolver to the session's world, state and ports.
func NewTapResolver(world *World, state *GameState, display Display, sound Sound, store Store, logger *log.Logger, markerTTL, markerRise int) *TapResolver {
	return &TapResolver{
		world:      world,
		state:      state,
		display:    display,
		sound:      sound,
		store:      store,
		log:        logger,
		markerTTL:  markerTTL,
		markerRise: markerRise,
	}
}

// Resolve scores every alive bug whose hitbox contains (x, y) and returns
// the points awarded. Taps while the session is paused or not started are
// ignored.
//
// The scan walks the whole active collection in insertion order and keeps
// going after a hit: two bugs overlapping the tapped cell are both
// squashed by the one tap. That is deliberate. Each bug's alive flag flips
// before the scan continues, so no bug can ever be scored twice.
func (t *TapResolver) Resolve(x, y int) int {
	if !t.world.IsRunning() {
		return 0
	}

	awarded := 0
	for _, e := range t.world.ActiveEntities() {
		bug, ok := e.(*Bug)
		if !ok || !bug.Alive() || !bug.Bounds().Contains(x, y) {
			continue
		}

		pts := bug.Species().Points
		t.sound.PointScored()
		t.state.Score += pts
		awarded += pts

		b := bug.Bounds()
		t.world.AddEntity(NewScoreMarker(pts, b.X, b.Y, t.markerTTL, t.markerRise))

		t.display.SetScoreText(FormatScore(t.state.Score))
		if err := t.store.Put(KeyScore, strconv.Itoa(t.state.Score)); err != nil {
			t.log.Warn("failed to persist score", "err", err)
		}

		bug.Kill()
		t.log.Debug("bug squashed",
			"species", bug.Species().Name,
			"points", pts,
			"score", t.state.Score,
		)
	}
	return awarded
}

// FormatScore renders the HUD score line for a given score.
func FormatScore(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
