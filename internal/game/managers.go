package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-bugtap/internal/config"
	"github.com/vovakirdan/tui-bugtap/internal/core"
)

// FoodManager places the food crumbs a session starts with.
type FoodManager struct {
	rng    *rand.Rand
	spread int
}

// NewFoodManager creates a food manager drawing from the shared session RNG.
func NewFoodManager(rng *rand.Rand, cfg config.FoodConfig) *FoodManager {
	return &FoodManager{rng: rng, spread: cfg.Spread}
}

// Generate scatters count crumbs around the surface center. Crumbs avoid
// stacking on the same cell where space allows.
func (fm *FoodManager) Generate(surface core.Rect, count int) []*Food {
	cx, cy := surface.Center()
	spread := fm.spread

	crumbs := make([]*Food, 0, count)
	for len(crumbs) < count {
		var crumb *Food
		for attempt := 0; attempt < 20; attempt++ {
			x := core.Clamp(core.RandRange(fm.rng, cx-spread, cx+spread), surface.X, surface.Right()-1)
			y := core.Clamp(core.RandRange(fm.rng, cy-spread/2, cy+spread/2), surface.Y, surface.Bottom()-1)
			candidate := NewFood(x, y)

			if !overlapsFood(candidate, crumbs) {
				crumb = candidate
				break
			}
			crumb = candidate // tiny surfaces may have to stack
		}
		crumbs = append(crumbs, crumb)
	}
	return crumbs
}

func overlapsFood(candidate *Food, crumbs []*Food) bool {
	for _, f := range crumbs {
		if candidate.Bounds().Intersects(f.Bounds()) {
			return true
		}
	}
	return false
}

// BugManager creates bugs. It must be handed the session's food before the
// first Spawn; the spawn scheduler never calls Spawn while the manager has
// no food.
type BugManager struct {
	rng     *rand.Rand
	species []Species
	food    []*Food
}

// NewBugManager creates a bug manager for the given species table.
func NewBugManager(rng *rand.Rand, species []Species) *BugManager {
	return &BugManager{rng: rng, species: species}
}

// ReceiveFood hands the manager the crumbs bugs will crawl toward.
// Called once when the session starts.
func (bm *BugManager) ReceiveFood(food []*Food) {
	bm.food = food
}

// HasFood reports whether the manager has been given any crumbs yet.
// The spawn scheduler's guard: no food, no spawning.
func (bm *BugManager) HasFood() bool {
	return len(bm.food) > 0
}

// Spawn creates one bug at a random point on a random edge of the surface,
// headed for a random crumb.
func (bm *BugManager) Spawn(surface core.Rect) *Bug {
	sp := bm.species[bm.rng.Intn(len(bm.species))]
	w := sp.Width()

	var x, y int
	switch bm.rng.Intn(4) {
	case 0: // top edge
		x = core.RandRange(bm.rng, surface.X, surface.Right()-w)
		y = surface.Y
	case 1: // bottom edge
		x = core.RandRange(bm.rng, surface.X, surface.Right()-w)
		y = surface.Bottom() - 1
	case 2: // left edge
		x = surface.X
		y = core.RandRange(bm.rng, surface.Y, surface.Bottom()-1)
	default: // right edge
		x = surface.Right() - w
		y = core.RandRange(bm.rng, surface.Y, surface.Bottom()-1)
	}

	var target *Food
	if len(bm.food) > 0 {
		target = bm.food[bm.rng.Intn(len(bm.food))]
	}

	return NewBug(sp, x, y, target)
}

// CursorManager builds the crosshair for a session.
type CursorManager struct {
	surface core.Rect
}

// NewCursorManager creates a cursor manager for the given play surface.
func NewCursorManager(surface core.Rect) *CursorManager {
	return &CursorManager{surface: surface}
}

// Create places a fresh crosshair at the surface center.
func (cm *CursorManager) Create() *Cursor {
	return NewCursor(cm.surface)
}
