package game

import (
	"github.com/vovakirdan/tui-bugtap/internal/core"
)

// RunMode is the session's lifecycle state. A session starts in
// ModeNotStarted, moves to ModeRunning exactly once, and then toggles
// between ModeRunning and ModePaused. There is no terminal state; a session
// ends only by being abandoned.
type RunMode int

const (
	ModeNotStarted RunMode = iota
	ModeRunning
	ModePaused
)

// String returns a human-readable name for the mode.
func (m RunMode) String() string {
	switch m {
	case ModeNotStarted:
		return "not-started"
	case ModeRunning:
		return "running"
	case ModePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// World is the game host: it owns the play surface, the ordered collection
// of active entities and the run mode. Spawning, tap resolution and the
// clock all consult the world's mode instead of stopping their own loops;
// pause is a predicate here, never a cancellation.
type World struct {
	surface  core.Rect
	entities []Entity
	mode     RunMode
	tickRate int
}

// NewWorld creates an empty world over the given surface.
// tickRate is the platform's frame rate, used to scale per-frame movement.
func NewWorld(surface core.Rect, tickRate int) *World {
	if tickRate < 1 {
		tickRate = 1
	}
	return &World{
		surface:  surface,
		entities: make([]Entity, 0, 32),
		tickRate: tickRate,
	}
}

// Surface returns the playfield rectangle.
func (w *World) Surface() core.Rect {
	return w.surface
}

// Mode returns the current run mode.
func (w *World) Mode() RunMode {
	return w.mode
}

// IsRunning reports whether the session is live and unpaused.
func (w *World) IsRunning() bool {
	return w.mode == ModeRunning
}

// IsPaused reports whether the session is paused.
func (w *World) IsPaused() bool {
	return w.mode == ModePaused
}

// Start moves the world from not-started to running. Any other transition
// is ignored; a session cannot start twice.
func (w *World) Start() {
	if w.mode == ModeNotStarted {
		w.mode = ModeRunning
	}
}

// Pause suspends a running session. Before the session has started there
// is nothing to pause, so the call is ignored.
func (w *World) Pause() {
	if w.mode == ModeRunning {
		w.mode = ModePaused
	}
}

// Resume continues a paused session. Ignored in any other mode.
func (w *World) Resume() {
	if w.mode == ModePaused {
		w.mode = ModeRunning
	}
}

// TogglePause flips between running and paused.
func (w *World) TogglePause() {
	switch w.mode {
	case ModeRunning:
		w.Pause()
	case ModePaused:
		w.Resume()
	}
}

// AddEntity appends an entity to the active collection.
func (w *World) AddEntity(e Entity) {
	w.entities = append(w.entities, e)
}

// AddEntities appends several entities, preserving argument order.
func (w *World) AddEntities(es ...Entity) {
	w.entities = append(w.entities, es...)
}

// ActiveEntities returns the active collection in insertion order. Dead
// bugs remain in the collection; only expired score markers are ever
// removed. Callers must not mutate the returned slice.
func (w *World) ActiveEntities() []Entity {
	return w.entities
}

// Advance runs one frame of world time: alive bugs crawl toward their
// crumbs and score markers drift and expire. While the session is paused
// (or not yet started) the whole surface is frozen and Advance does
// nothing.
func (w *World) Advance() {
	if w.mode != ModeRunning {
		return
	}

	dt := 1.0 / float64(w.tickRate)
	keep := w.entities[:0]
	for _, e := range w.entities {
		switch v := e.(type) {
		case *Bug:
			v.advance(dt, w.surface)
		case *ScoreMarker:
			v.step(w.surface)
			if v.Expired() {
				continue
			}
		}
		keep = append(keep, e)
	}
	w.entities = keep
}
