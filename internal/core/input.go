package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps terminal keys to Actions; the game never sees
// raw key events.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Enter, Space - start the hunt from the splash screen
	ActionPause          // P, Escape - pause/unpause the session
	ActionRestart        // R - abandon the session and start a fresh one
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerEvent is a pointer (mouse) event in screen-cell coordinates,
// already translated by the platform into the game's coordinate space.
// Press reports a primary-button press; a false Press is plain motion.
type PointerEvent struct {
	X, Y  int
	Press bool
}
