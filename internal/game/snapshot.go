package game

// BugSnapshot captures one bug's externally visible state.
type BugSnapshot struct {
	X, Y    int
	Species string
	Alive   bool
}

// Snapshot captures the complete session state for determinism testing.
// Two sessions built with the same seed and driven through the same call
// sequence must produce identical snapshots.
type Snapshot struct {
	Mode           RunMode
	Score          int
	ElapsedSeconds int
	Bugs           []BugSnapshot
	Food           [][2]int
	Markers        int
	CursorX        int
	CursorY        int
}

// Snapshot returns the session's current snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:           s.world.Mode(),
		Score:          s.state.Score,
		ElapsedSeconds: s.state.ElapsedSeconds,
	}

	for _, e := range s.world.ActiveEntities() {
		switch v := e.(type) {
		case *Bug:
			b := v.Bounds()
			snap.Bugs = append(snap.Bugs, BugSnapshot{
				X:       b.X,
				Y:       b.Y,
				Species: v.Species().Name,
				Alive:   v.Alive(),
			})
		case *Food:
			snap.Food = append(snap.Food, [2]int{v.X, v.Y})
		case *ScoreMarker:
			snap.Markers++
		}
	}

	if s.cursor != nil {
		snap.CursorX = s.cursor.X
		snap.CursorY = s.cursor.Y
	}
	return snap
}
