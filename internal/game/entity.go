// Package game implements the bug tap game: bugs spawn in randomized waves
// at the edges of the play surface and crawl toward food crumbs; the player
// squashes them by tapping. All logic runs on the platform's single event
// loop, so nothing in this package takes locks.
package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-bugtap/internal/core"
)

// Entity is anything that lives in the world's active collection. The world
// keeps entities in insertion order; tap resolution and rendering both walk
// that order.
type Entity interface {
	Bounds() core.Rect
}

// Species describes one kind of bug: how it looks, how fast it crawls and
// how many points squashing it is worth. Speed is in cells per second.
type Species struct {
	Name   string
	Glyph  []rune
	Points int
	Speed  float64
	Color  core.Color
}

// Width returns the species' hitbox width in cells.
func (sp Species) Width() int {
	return len(sp.Glyph)
}

// Bug is a tappable crawler. Position is tracked in floats so slow species
// move smoothly across cell boundaries; Bounds truncates to cells. A bug
// dies at most once: Kill is one-way, and dead bugs stay in the world's
// collection (they are skipped by tap matching and movement, and rendered
// as husks).
type Bug struct {
	species Species
	fx, fy  float64
	target  *Food
	alive   bool
}

// NewBug creates an alive bug of the given species at (x, y), crawling
// toward target. A nil target leaves the bug idling in place.
func NewBug(sp Species, x, y int, target *Food) *Bug {
	return &Bug{
		species: sp,
		fx:      float64(x),
		fy:      float64(y),
		target:  target,
		alive:   true,
	}
}

// Species returns the bug's species.
func (b *Bug) Species() Species {
	return b.species
}

// Alive reports whether the bug can still be scored.
func (b *Bug) Alive() bool {
	return b.alive
}

// Kill marks the bug dead. There is no way back.
func (b *Bug) Kill() {
	b.alive = false
}

// Bounds returns the bug's hitbox: one row of glyph cells.
func (b *Bug) Bounds() core.Rect {
	return core.NewRect(int(b.fx), int(b.fy), b.species.Width(), 1)
}

// advance crawls the bug toward its target crumb by one frame of dt
// seconds. Dead bugs hold still. Bugs that have reached their crumb stay
// next to it.
func (b *Bug) advance(dt float64, surface core.Rect) {
	if !b.alive || b.target == nil {
		return
	}

	// Steer the bug's center onto the crumb's cell center.
	cx := b.fx + float64(b.species.Width())/2
	cy := b.fy + 0.5
	dx := float64(b.target.X) + 0.5 - cx
	dy := float64(b.target.Y) + 0.5 - cy

	dist := math.Hypot(dx, dy)
	if dist < 0.75 {
		return // arrived at the crumb
	}

	step := b.species.Speed * dt
	if step > dist {
		step = dist
	}
	b.fx += dx / dist * step
	b.fy += dy / dist * step

	w := float64(b.species.Width())
	b.fx = core.ClampF(b.fx, float64(surface.X), float64(surface.Right())-w)
	b.fy = core.ClampF(b.fy, float64(surface.Y), float64(surface.Bottom()-1))
}

// Food is a crumb on the surface. Its position never changes once placed
// and the game never removes or consumes it; crumbs exist to give bugs
// somewhere to crawl.
type Food struct {
	X, Y int
}

// NewFood places a crumb at (x, y).
func NewFood(x, y int) *Food {
	return &Food{X: x, Y: y}
}

// Bounds returns the crumb's single cell.
func (f *Food) Bounds() core.Rect {
	return core.NewRect(f.X, f.Y, 1, 1)
}

// Cursor marks the last known pointer position on the surface. It is part
// of the active collection like everything else, but never matches taps.
type Cursor struct {
	X, Y int
}

// NewCursor creates the cursor at the center of the surface.
func NewCursor(surface core.Rect) *Cursor {
	cx, cy := surface.Center()
	return &Cursor{X: cx, Y: cy}
}

// MoveTo moves the cursor, clamped to the surface.
func (c *Cursor) MoveTo(x, y int, surface core.Rect) {
	c.X = core.Clamp(x, surface.X, surface.Right()-1)
	c.Y = core.Clamp(y, surface.Y, surface.Bottom()-1)
}

// Bounds returns the cursor's single cell.
func (c *Cursor) Bounds() core.Rect {
	return core.NewRect(c.X, c.Y, 1, 1)
}

// ScoreMarker is the transient "+N" that pops out of a squashed bug. It
// drifts upward on the frame clock and expires after its TTL; the world
// removes expired markers during Advance.
type ScoreMarker struct {
	Text string
	x, y int
	age  int
	ttl  int // lifetime in frames
	rise int // frames between one-cell upward drifts
}

// NewScoreMarker creates a marker showing +points at (x, y).
func NewScoreMarker(points, x, y, ttlFrames, riseEveryFrames int) *ScoreMarker {
	if riseEveryFrames < 1 {
		riseEveryFrames = 1
	}
	return &ScoreMarker{
		Text: fmt.Sprintf("+%d", points),
		x:    x,
		y:    y,
		ttl:  ttlFrames,
		rise: riseEveryFrames,
	}
}

// Bounds returns the marker's text row.
func (m *ScoreMarker) Bounds() core.Rect {
	return core.NewRect(m.x, m.y, len(m.Text), 1)
}

// step ages the marker by one frame, drifting it upward.
func (m *ScoreMarker) step(surface core.Rect) {
	m.age++
	if m.age%m.rise == 0 {
		m.y = core.Clamp(m.y-1, surface.Y, surface.Bottom()-1)
	}
}

// Expired reports whether the marker has outlived its TTL.
func (m *ScoreMarker) Expired() bool {
	return m.age >= m.ttl
}
