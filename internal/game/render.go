package game

import (
	"github.com/vovakirdan/tui-bugtap/internal/core"
)

// Visual characters for rendering
const (
	FoodChar    = '◆'
	CursorChar  = '┼'
	DeadBugChar = '×'
)

// Render draws the session into the screen buffer: border, crumbs, bugs,
// score markers, cursor, and the splash or pause overlay when appropriate.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	surface := s.world.Surface()
	dst.DrawBox(surface.Inset(-1))

	// Entities draw in collection order; later entities overdraw earlier
	// ones. The cursor is drawn after everything so it stays visible.
	for _, e := range s.world.ActiveEntities() {
		switch v := e.(type) {
		case *Food:
			dst.SetCell(v.X, v.Y, FoodChar, core.ColorYellow)
		case *Bug:
			s.drawBug(dst, v)
		case *ScoreMarker:
			b := v.Bounds()
			dst.DrawTextColored(b.X, b.Y, v.Text, core.ColorBrightYellow)
		}
	}

	if s.cursor != nil {
		dst.SetCell(s.cursor.X, s.cursor.Y, CursorChar, core.ColorBrightCyan)
	}

	switch s.world.Mode() {
	case ModeNotStarted:
		drawCenteredMessage(dst, "BUG TAP", "Press Enter to start the hunt")
	case ModePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawBug renders one bug. Alive bugs show their species glyph; squashed
// ones stay on the surface as gray husks.
func (s *Session) drawBug(dst *core.Screen, b *Bug) {
	bounds := b.Bounds()
	if !b.Alive() {
		for i := 0; i < bounds.W; i++ {
			dst.SetCell(bounds.X+i, bounds.Y, DeadBugChar, core.ColorGray)
		}
		return
	}
	for i, r := range b.Species().Glyph {
		dst.SetCell(bounds.X+i, bounds.Y, r, b.Species().Color)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
