// Package tui provides the Bubble Tea integration for the bug tap game.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg drives rendering and world movement at the configured frame rate.
type frameMsg time.Time

// clockMsg is the once-a-second wall clock tick. The gen field ties the
// message to the session that armed it, so a loop armed before a restart
// dies quietly instead of double-ticking the new session.
type clockMsg struct {
	gen int
	at  time.Time
}

// spawnMsg asks the current session to run one spawn wave. Tagged with the
// arming session's generation for the same reason as clockMsg.
type spawnMsg struct {
	gen int
	at  time.Time
}

// frameCmd schedules the next frame at the given rate.
func frameCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// clockCmd schedules the next wall-clock second for the given generation.
func clockCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockMsg{gen: gen, at: t}
	})
}

// spawnCmd schedules the next spawn wave after the delay the scheduler chose.
func spawnCmd(gen int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return spawnMsg{gen: gen, at: t}
	})
}
