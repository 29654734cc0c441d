package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bugtap/internal/config"
	"github.com/vovakirdan/tui-bugtap/internal/core"
)

// GameState is the session's mutable score and clock. Both values are
// monotonically non-decreasing and are mutated only by the tap resolver
// and the time tracker.
type GameState struct {
	Score          int
	ElapsedSeconds int
}

// Deps bundles everything a session needs from the outside world. Display,
// Sound and Store are required; handing a nil port to NewSession is a
// wiring bug and fails construction rather than degrading silently.
type Deps struct {
	Runtime core.RuntimeConfig
	Config  config.BugTapConfig
	Display Display
	Sound   Sound
	Store   Store
	Logger  *log.Logger
}

// Session owns one full game: the world, the managers, the three
// components driving it (spawn scheduler, tap resolver, time tracker) and
// the score/clock state. Restarting means building a fresh Session; there
// is no reset.
type Session struct {
	world     *World
	state     GameState
	foods     *FoodManager
	foodCount int
	bugs      *BugManager
	cursors   *CursorManager
	scheduler *SpawnScheduler
	tracker   *TimeTracker
	taps      *TapResolver
	cursor    *Cursor
	display   Display
	store     Store
	log       *log.Logger
	seed      int64
}

// NewSession builds an unstarted session over the given play surface.
// The surface is in screen coordinates; entities live inside it.
func NewSession(surface core.Rect, deps Deps) (*Session, error) {
	if deps.Display == nil {
		return nil, fmt.Errorf("game: display port is required")
	}
	if deps.Sound == nil {
		return nil, fmt.Errorf("game: sound port is required")
	}
	if deps.Store == nil {
		return nil, fmt.Errorf("game: store port is required")
	}
	if len(deps.Config.Species) == 0 {
		return nil, fmt.Errorf("game: no bug species configured")
	}
	if deps.Runtime.TickRate < 1 {
		return nil, fmt.Errorf("game: tick rate must be >= 1, got %d", deps.Runtime.TickRate)
	}

	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}

	species := make([]Species, 0, len(deps.Config.Species))
	for _, sc := range deps.Config.Species {
		color, _ := core.ParseColor(sc.Color)
		species = append(species, Species{
			Name:   sc.Name,
			Glyph:  []rune(sc.Glyph),
			Points: sc.Points,
			Speed:  sc.Speed,
			Color:  color,
		})
	}

	rng := rand.New(rand.NewSource(deps.Runtime.Seed))
	world := NewWorld(surface, deps.Runtime.TickRate)

	s := &Session{
		world:     world,
		foods:     NewFoodManager(rng, deps.Config.Food),
		foodCount: deps.Config.Food.Count,
		bugs:      NewBugManager(rng, species),
		cursors:   NewCursorManager(surface),
		display:   deps.Display,
		store:     deps.Store,
		log:       logger,
		seed:      deps.Runtime.Seed,
	}
	s.scheduler = NewSpawnScheduler(world, s.bugs, deps.Config.Spawn, rng)
	s.tracker = NewTimeTracker(world, &s.state, deps.Display, deps.Store, logger)

	// Markers live about a second and drift up a few times over it.
	markerTTL := deps.Runtime.TickRate
	markerRise := core.Max(1, deps.Runtime.TickRate/4)
	s.taps = NewTapResolver(world, &s.state, deps.Display, deps.Sound, deps.Store, logger, markerTTL, markerRise)

	return s, nil
}

// Start begins the hunt: wipes the persistent session state, scatters the
// food, hands it to the bug manager, places the cursor and flips the world
// to running. It returns the delay before the first spawn cycle so the
// platform can arm the spawn loop.
//
// Start is effective exactly once. A second call is a logged no-op
// returning ok=false, which keeps a session from ever driving two spawn or
// clock loops.
func (s *Session) Start() (firstSpawn time.Duration, ok bool) {
	if s.world.Mode() != ModeNotStarted {
		s.log.Warn("start ignored: session already started", "mode", s.world.Mode())
		return 0, false
	}

	if err := s.store.Clear(); err != nil {
		s.log.Warn("failed to clear session store", "err", err)
	}

	crumbs := s.foods.Generate(s.world.Surface(), s.foodCount)
	s.bugs.ReceiveFood(crumbs)
	for _, f := range crumbs {
		s.world.AddEntity(f)
	}

	s.cursor = s.cursors.Create()
	s.world.AddEntity(s.cursor)

	s.world.Start()
	s.display.SetScoreText(FormatScore(0))
	s.display.SetTimeText(TimeText(0))

	s.log.Info("session started", "seed", s.seed, "food", len(crumbs))
	return s.scheduler.NextDelay(), true
}

// TogglePause flips between running and paused. No-op before Start.
func (s *Session) TogglePause() {
	s.world.TogglePause()
}

// SpawnCycle runs one spawn cycle and returns the delay until the next.
// The platform calls this from its spawn timer and re-arms with the result.
func (s *Session) SpawnCycle() time.Duration {
	return s.scheduler.Cycle()
}

// ClockTick advances the session clock by one second (unless paused).
// The platform calls this from its one-second timer.
func (s *Session) ClockTick() {
	s.tracker.Tick()
}

// Advance runs one frame of world time. The platform calls this from its
// frame timer before rendering.
func (s *Session) Advance() {
	s.world.Advance()
}

// Pointer feeds a pointer event into the session. Motion moves the cursor
// in every mode; a press additionally resolves a tap when running.
// Returns the points the event scored.
func (s *Session) Pointer(ev core.PointerEvent) int {
	if s.cursor != nil {
		s.cursor.MoveTo(ev.X, ev.Y, s.world.Surface())
	}
	if ev.Press {
		return s.taps.Resolve(ev.X, ev.Y)
	}
	return 0
}

// Mode returns the current run mode.
func (s *Session) Mode() RunMode {
	return s.world.Mode()
}

// State returns a copy of the current score and clock.
func (s *Session) State() GameState {
	return s.state
}
