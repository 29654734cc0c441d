package game

import (
	"strconv"
	"testing"
)

type clockFixture struct {
	world   *World
	state   *GameState
	display *recordDisplay
	store   *memStore
	clock   *TimeTracker
}

func newClockFixture() *clockFixture {
	f := &clockFixture{
		world:   NewWorld(testSurface(), 30),
		state:   &GameState{},
		display: &recordDisplay{},
		store:   newMemStore(),
	}
	f.clock = NewTimeTracker(f.world, f.state, f.display, f.store, testLogger())
	return f
}

func TestClockCountsSeconds(t *testing.T) {
	f := newClockFixture()
	f.world.Start()

	for i := 0; i < 65; i++ {
		f.clock.Tick()
	}

	if f.state.ElapsedSeconds != 65 {
		t.Errorf("elapsed = %d, expected 65", f.state.ElapsedSeconds)
	}
	if f.display.lastTime() != "Time: 1:05" {
		t.Errorf("time text = %q, expected \"Time: 1:05\"", f.display.lastTime())
	}
	if f.store.values[KeyTime] != "65" {
		t.Errorf("persisted time = %q, expected \"65\"", f.store.values[KeyTime])
	}
}

func TestClockFrozenWhilePaused(t *testing.T) {
	f := newClockFixture()
	f.world.Start()

	for i := 0; i < 5; i++ {
		f.clock.Tick()
	}

	// Paused ticks keep arriving from the timer loop but count nothing
	f.world.TogglePause()
	for i := 0; i < 10; i++ {
		f.clock.Tick()
	}
	if f.state.ElapsedSeconds != 5 {
		t.Errorf("elapsed after paused ticks = %d, expected 5", f.state.ElapsedSeconds)
	}
	if f.display.lastTime() != "Time: 0:05" {
		t.Errorf("time text while paused = %q, expected \"Time: 0:05\"", f.display.lastTime())
	}

	// Resume continues from where the clock stopped
	f.world.TogglePause()
	f.clock.Tick()
	if f.state.ElapsedSeconds != 6 {
		t.Errorf("elapsed after resume = %d, expected 6", f.state.ElapsedSeconds)
	}
	if f.store.values[KeyTime] != "6" {
		t.Errorf("persisted time = %q, expected \"6\"", f.store.values[KeyTime])
	}
}

func TestClockPersistsEveryTick(t *testing.T) {
	f := newClockFixture()
	f.world.Start()

	for i := 1; i <= 4; i++ {
		f.clock.Tick()
		if got := f.store.values[KeyTime]; got != strconv.Itoa(i) {
			t.Errorf("tick %d persisted %q, expected %q", i, got, strconv.Itoa(i))
		}
	}
	if f.store.puts != 4 {
		t.Errorf("store writes = %d, expected 4", f.store.puts)
	}
}

func TestClockSurvivesStoreFailure(t *testing.T) {
	f := newClockFixture()
	f.world.Start()
	f.store.failPut = true

	f.clock.Tick()
	if f.state.ElapsedSeconds != 1 {
		t.Errorf("elapsed with failing store = %d, expected 1", f.state.ElapsedSeconds)
	}
	if f.display.lastTime() != "Time: 0:01" {
		t.Errorf("time text with failing store = %q, expected \"Time: 0:01\"", f.display.lastTime())
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{59, "0:59"},
		{60, "1:00"},
		{65, "1:05"},
		{125, "2:05"},
		{600, "10:00"},
		{3599, "59:59"},
		{3661, "61:01"},
		{-5, "0:00"},
	}
	for _, tc := range tests {
		if got := FormatElapsed(tc.seconds); got != tc.want {
			t.Errorf("FormatElapsed(%d) = %q, expected %q", tc.seconds, got, tc.want)
		}
	}
}

func TestTimeText(t *testing.T) {
	if got := TimeText(65); got != "Time: 1:05" {
		t.Errorf("TimeText(65) = %q, expected \"Time: 1:05\"", got)
	}
}
