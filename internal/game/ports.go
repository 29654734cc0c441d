package game

// Session state keys written to the persistent store.
const (
	KeyScore = "score"
	KeyTime  = "time"
)

// Display is the write-only sink for HUD text. The game pushes fully
// formatted strings ("Score: 12", "Time: 1:05"); the platform decides where
// and how they appear.
type Display interface {
	SetScoreText(text string)
	SetTimeText(text string)
}

// Sound plays fire-and-forget audio cues. Implementations must not block
// the caller; a cue that cannot play is simply dropped.
type Sound interface {
	// PointScored fires once per squashed bug. A tap that hits two
	// overlapping bugs fires it twice.
	PointScored()
}

// Store is the session's persistent key/value state. Writes happen on
// every scoring event and clock tick, so implementations should be cheap;
// failures are logged by the game and never abort the session.
type Store interface {
	Put(key, value string) error
	Clear() error
}

// NopDisplay discards HUD text. Useful in tests.
type NopDisplay struct{}

func (NopDisplay) SetScoreText(string) {}
func (NopDisplay) SetTimeText(string)  {}

// NopSound drops all cues. Used when audio is disabled or unavailable.
type NopSound struct{}

func (NopSound) PointScored() {}

// NopStore persists nothing. Used when the database cannot be opened.
type NopStore struct{}

func (NopStore) Put(string, string) error { return nil }
func (NopStore) Clear() error             { return nil }
