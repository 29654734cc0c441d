package game

import (
	"testing"

	"github.com/vovakirdan/tui-bugtap/internal/core"
)

type tapFixture struct {
	world   *World
	state   *GameState
	display *recordDisplay
	sound   *countSound
	store   *memStore
	tap     *TapResolver
}

func newTapFixture() *tapFixture {
	f := &tapFixture{
		world:   NewWorld(testSurface(), 30),
		state:   &GameState{},
		display: &recordDisplay{},
		sound:   &countSound{},
		store:   newMemStore(),
	}
	f.tap = NewTapResolver(f.world, f.state, f.display, f.sound, f.store, testLogger(), 30, 7)
	return f
}

func (f *tapFixture) addBug(points, x, y int) *Bug {
	sp := testSpecies()
	sp.Points = points
	bug := NewBug(sp, x, y, nil)
	f.world.AddEntity(bug)
	return bug
}

func (f *tapFixture) markerCount() int {
	n := 0
	for _, e := range f.world.ActiveEntities() {
		if _, ok := e.(*ScoreMarker); ok {
			n++
		}
	}
	return n
}

func TestTapSquashesBug(t *testing.T) {
	f := newTapFixture()
	bug := f.addBug(2, 10, 5)
	f.world.Start()

	got := f.tap.Resolve(10, 5)
	if got != 2 {
		t.Fatalf("Resolve() = %d points, expected 2", got)
	}
	if bug.Alive() {
		t.Error("tapped bug should be dead")
	}
	if f.state.Score != 2 {
		t.Errorf("score = %d, expected 2", f.state.Score)
	}
	if f.sound.cues != 1 {
		t.Errorf("sound cues = %d, expected 1", f.sound.cues)
	}
	if f.display.lastScore() != "Score: 2" {
		t.Errorf("score text = %q, expected \"Score: 2\"", f.display.lastScore())
	}
	if f.store.values[KeyScore] != "2" {
		t.Errorf("persisted score = %q, expected \"2\"", f.store.values[KeyScore])
	}
	if f.markerCount() != 1 {
		t.Errorf("marker count = %d, expected 1", f.markerCount())
	}
}

func TestTapScoresBugAtMostOnce(t *testing.T) {
	f := newTapFixture()
	f.addBug(3, 10, 5)
	f.world.Start()

	if got := f.tap.Resolve(10, 5); got != 3 {
		t.Fatalf("first tap = %d points, expected 3", got)
	}

	// The husk still sits on the same cell; tapping it again is worthless
	if got := f.tap.Resolve(10, 5); got != 0 {
		t.Errorf("second tap = %d points, expected 0", got)
	}
	if f.state.Score != 3 {
		t.Errorf("score after double tap = %d, expected 3", f.state.Score)
	}
	if f.sound.cues != 1 {
		t.Errorf("sound cues after double tap = %d, expected 1", f.sound.cues)
	}
	if f.markerCount() != 1 {
		t.Errorf("marker count after double tap = %d, expected 1", f.markerCount())
	}
}

// Overlapping bugs are all squashed by one tap: the resolver keeps
// scanning after a hit instead of stopping at the first match.
func TestTapSquashesOverlappingBugs(t *testing.T) {
	f := newTapFixture()
	b1 := f.addBug(2, 10, 5)
	b2 := f.addBug(3, 10, 5) // same cell, one tap hits both
	f.world.Start()

	got := f.tap.Resolve(10, 5)
	if got != 5 {
		t.Fatalf("overlap tap = %d points, expected 5", got)
	}
	if b1.Alive() || b2.Alive() {
		t.Error("both overlapping bugs should be dead")
	}
	if f.sound.cues != 2 {
		t.Errorf("sound cues = %d, expected one per squashed bug (2)", f.sound.cues)
	}
	if f.markerCount() != 2 {
		t.Errorf("marker count = %d, expected 2", f.markerCount())
	}
	if f.display.lastScore() != "Score: 5" {
		t.Errorf("score text = %q, expected \"Score: 5\"", f.display.lastScore())
	}
	if f.store.values[KeyScore] != "5" {
		t.Errorf("persisted score = %q, expected \"5\"", f.store.values[KeyScore])
	}
}

func TestTapPartialOverlapHitsWideGlyph(t *testing.T) {
	f := newTapFixture()
	// A two-cell glyph at x=10 covers cells 10 and 11
	bug := f.addBug(1, 10, 5)
	f.world.Start()

	if got := f.tap.Resolve(11, 5); got != 1 {
		t.Errorf("tap on second glyph cell = %d points, expected 1", got)
	}
	if bug.Alive() {
		t.Error("bug hit on its second cell should be dead")
	}
}

func TestTapMisses(t *testing.T) {
	f := newTapFixture()
	bug := f.addBug(2, 10, 5)
	f.world.Start()

	tests := []struct {
		name string
		x, y int
	}{
		{"empty cell", 40, 12},
		{"adjacent left", 9, 5},
		{"adjacent right", 12, 5},
		{"row above", 10, 4},
		{"row below", 10, 6},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.tap.Resolve(tc.x, tc.y); got != 0 {
				t.Errorf("Resolve(%d, %d) = %d points, expected 0", tc.x, tc.y, got)
			}
		})
	}

	if !bug.Alive() {
		t.Error("missed bug should still be alive")
	}
	if f.state.Score != 0 {
		t.Errorf("score after misses = %d, expected 0", f.state.Score)
	}
	if f.sound.cues != 0 {
		t.Errorf("sound cues after misses = %d, expected 0", f.sound.cues)
	}
	if f.store.puts != 0 {
		t.Errorf("store writes after misses = %d, expected 0", f.store.puts)
	}
}

func TestTapIgnoredUnlessRunning(t *testing.T) {
	f := newTapFixture()
	bug := f.addBug(2, 10, 5)

	// Session not started yet
	if got := f.tap.Resolve(10, 5); got != 0 {
		t.Errorf("tap before start = %d points, expected 0", got)
	}

	// Paused
	f.world.Start()
	f.world.TogglePause()
	if got := f.tap.Resolve(10, 5); got != 0 {
		t.Errorf("tap while paused = %d points, expected 0", got)
	}
	if !bug.Alive() {
		t.Error("bug should survive taps made outside the running mode")
	}

	// Resumed taps land again
	f.world.TogglePause()
	if got := f.tap.Resolve(10, 5); got != 2 {
		t.Errorf("tap after resume = %d points, expected 2", got)
	}
}

func TestTapIgnoresFoodAndMarkers(t *testing.T) {
	f := newTapFixture()
	f.world.AddEntity(NewFood(10, 5))
	f.world.AddEntity(NewScoreMarker(2, 12, 5, 30, 7))
	f.world.Start()

	if got := f.tap.Resolve(10, 5); got != 0 {
		t.Errorf("tap on crumb = %d points, expected 0", got)
	}
	if got := f.tap.Resolve(12, 5); got != 0 {
		t.Errorf("tap on marker = %d points, expected 0", got)
	}
}

func TestTapScoreAccumulates(t *testing.T) {
	f := newTapFixture()
	f.addBug(1, 5, 5)
	f.addBug(2, 20, 5)
	f.addBug(3, 35, 5)
	f.world.Start()

	f.tap.Resolve(5, 5)
	f.tap.Resolve(20, 5)
	f.tap.Resolve(35, 5)

	if f.state.Score != 6 {
		t.Errorf("score = %d, expected 6", f.state.Score)
	}
	if f.display.lastScore() != "Score: 6" {
		t.Errorf("score text = %q, expected \"Score: 6\"", f.display.lastScore())
	}
	if f.store.values[KeyScore] != "6" {
		t.Errorf("persisted score = %q, expected \"6\"", f.store.values[KeyScore])
	}
}

func TestTapSurvivesStoreFailure(t *testing.T) {
	f := newTapFixture()
	f.addBug(2, 10, 5)
	f.world.Start()
	f.store.failPut = true

	// A broken store must not block scoring
	if got := f.tap.Resolve(10, 5); got != 2 {
		t.Errorf("Resolve() with failing store = %d points, expected 2", got)
	}
	if f.state.Score != 2 {
		t.Errorf("score = %d, expected 2", f.state.Score)
	}
	if f.display.lastScore() != "Score: 2" {
		t.Errorf("score text = %q, expected \"Score: 2\"", f.display.lastScore())
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Score: 0"},
		{7, "Score: 7"},
		{123, "Score: 123"},
	}
	for _, tc := range tests {
		if got := FormatScore(tc.score); got != tc.want {
			t.Errorf("FormatScore(%d) = %q, expected %q", tc.score, got, tc.want)
		}
	}
}
