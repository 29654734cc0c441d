package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bugtap/internal/config"
	"github.com/vovakirdan/tui-bugtap/internal/core"
	"github.com/vovakirdan/tui-bugtap/internal/game"
	"github.com/vovakirdan/tui-bugtap/internal/storage"
)

// Deps bundles everything a Model needs. KV is the live score/time store
// the session writes through as it plays; History records finished runs.
// Either may be absent: a nil KV plays without persistence and a nil
// History skips the scoreboard.
type Deps struct {
	Config  config.BugTapConfig
	Runtime core.RuntimeConfig
	KV      game.Store
	History *storage.Store
	Sound   game.Sound
	Logger  *log.Logger
}

// hud receives the session's score and time lines. It is shared by pointer
// between the session and the model so Bubble Tea's value-copied updates
// all see the same text.
type hud struct {
	score string
	time  string
}

func (h *hud) SetScoreText(s string) { h.score = s }
func (h *hud) SetTimeText(s string)  { h.time = s }

// Model is the Bubble Tea model for a bug tap session.
type Model struct {
	session *game.Session
	screen  *core.Screen
	hud     *hud
	keys    *KeyMapper
	log     *log.Logger

	config  config.BugTapConfig
	runtime core.RuntimeConfig
	kv      game.Store
	history *storage.Store
	sound   game.Sound

	// gen ties the clock and spawn loops to the session that armed them.
	// Bumped on every restart so loops from an abandoned session die off.
	gen      int
	best     int
	quitting bool
}

// NewModel creates a Bubble Tea model wired to a fresh session.
func NewModel(deps Deps) (Model, error) {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	if deps.KV == nil {
		deps.KV = game.NopStore{}
	}
	if deps.Sound == nil {
		deps.Sound = game.NopSound{}
	}
	// Use time-based seed if not specified
	if deps.Runtime.Seed == 0 {
		deps.Runtime.Seed = time.Now().UnixNano()
	}

	m := Model{
		screen:  core.NewScreen(deps.Runtime.ScreenW, deps.Runtime.ScreenH),
		hud:     &hud{},
		keys:    NewKeyMapper(),
		log:     deps.Logger,
		config:  deps.Config,
		runtime: deps.Runtime,
		kv:      deps.KV,
		history: deps.History,
		sound:   deps.Sound,
	}
	if err := m.rebuild(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// rebuild replaces the session with a fresh one sized to the current
// runtime config. The caller is responsible for flushing the old run.
func (m *Model) rebuild() error {
	session, err := game.NewSession(playfieldFor(m.runtime.ScreenW, m.runtime.ScreenH), game.Deps{
		Runtime: m.runtime,
		Config:  m.config,
		Display: m.hud,
		Sound:   m.sound,
		Store:   m.kv,
		Logger:  m.log,
	})
	if err != nil {
		return err
	}
	m.session = session
	m.hud.score = game.FormatScore(0)
	m.hud.time = game.TimeText(0)

	if m.history != nil {
		best, err := m.history.HighScore()
		if err != nil {
			m.log.Warn("could not read high score", "err", err)
		} else {
			m.best = best
		}
	}
	return nil
}

// playfieldFor carves the playfield out of the terminal: one row of HUD
// above, one row of help below, and the border box around it.
func playfieldFor(w, h int) core.Rect {
	return core.NewRect(2, 2, core.Max(1, w-4), core.Max(1, h-4))
}

// Init starts the frame loop. The clock and spawn loops are armed when the
// player starts the hunt.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case frameMsg:
		m.session.Advance()
		return m, frameCmd(m.runtime.TickRate)

	case clockMsg:
		if msg.gen != m.gen {
			return m, nil // stale loop from a finished session
		}
		m.session.ClockTick()
		return m, clockCmd(m.gen)

	case spawnMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		delay := m.session.SpawnCycle()
		return m, spawnCmd(m.gen, delay)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.flushHistory()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionStart:
		return m.handleStart()
	case core.ActionPause:
		m.session.TogglePause()
	case core.ActionRestart:
		return m.handleRestart()
	}

	return m, nil
}

// handleStart arms the clock and spawn loops for a fresh session. Starting
// an already-started session does nothing.
func (m Model) handleStart() (tea.Model, tea.Cmd) {
	delay, ok := m.session.Start()
	if !ok {
		return m, nil
	}
	if jingle, ok := m.sound.(interface{ SessionStarted() }); ok {
		jingle.SessionStarted()
	}
	return m, tea.Batch(spawnCmd(m.gen, delay), clockCmd(m.gen))
}

// handleRestart abandons the current run and waits at the splash screen
// for a new one. The finished run's score goes to the history first.
func (m Model) handleRestart() (tea.Model, tea.Cmd) {
	if m.session.Mode() == game.ModeNotStarted {
		return m, nil
	}

	m.flushHistory()
	m.gen++
	m.runtime.Seed = time.Now().UnixNano()
	if err := m.rebuild(); err != nil {
		m.log.Error("could not restart session", "err", err)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse feeds pointer motion and left presses into the session.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	if msg.Action != tea.MouseActionMotion && !press {
		return m, nil
	}
	m.session.Pointer(core.PointerEvent{X: msg.X, Y: msg.Y, Press: press})
	return m, nil
}

// handleResize processes window resize events. A session waiting at the
// splash screen adopts the new playfield size; a live one keeps its
// surface and only the outer chrome reflows.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.session.Mode() == game.ModeNotStarted {
		if err := m.rebuild(); err != nil {
			m.log.Error("could not resize session", "err", err)
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// flushHistory records the current run in the scores table. Runs that
// never scored are not worth remembering.
func (m Model) flushHistory() {
	if m.history == nil {
		return
	}
	st := m.session.State()
	if st.Score <= 0 {
		return
	}
	if _, err := m.history.SaveScore(st.Score, st.ElapsedSeconds); err != nil {
		m.log.Warn("failed to record finished run", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)
	m.drawChrome()

	dir := filepath.Join(os.Getenv("HOME"), ".bugtap", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("bugtap_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	m.drawChrome()
	return RenderScreen(m.screen)
}

// drawChrome paints the HUD row and the help line around the playfield.
func (m Model) drawChrome() {
	m.screen.DrawTextColored(1, 0, m.hud.score, core.ColorBrightWhite)

	timeText := m.hud.time
	x := core.Max(0, m.screen.Width()-len([]rune(timeText))-1)
	m.screen.DrawTextColored(x, 0, timeText, core.ColorBrightWhite)

	if m.session.Mode() == game.ModeNotStarted && m.best > 0 {
		best := fmt.Sprintf("Best so far: %d", m.best)
		bx := core.Max(0, (m.screen.Width()-len(best))/2)
		m.screen.DrawTextColored(bx, 0, best, core.ColorBrightYellow)
	}

	help := helpFor(m.session.Mode())
	m.screen.DrawTextColored(1, m.screen.Height()-1, help, core.ColorGray)
}

func helpFor(mode game.RunMode) string {
	switch mode {
	case game.ModeNotStarted:
		return "Enter: Start  |  Q: Quit"
	case game.ModePaused:
		return "P: Resume  |  R: Restart  |  Q: Quit"
	default:
		return "Click: Squash  |  P: Pause  |  R: Restart  |  Q: Quit"
	}
}

// Run starts the Bubble Tea program with the given dependencies.
func Run(deps Deps) error {
	model, err := NewModel(deps)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseAllMotion(),  // Track the pointer even between presses
	)

	_, err = p.Run()
	return err
}
