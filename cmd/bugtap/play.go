package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bugtap/internal/audio"
	"github.com/vovakirdan/tui-bugtap/internal/config"
	"github.com/vovakirdan/tui-bugtap/internal/core"
	"github.com/vovakirdan/tui-bugtap/internal/platform/tui"
	"github.com/vovakirdan/tui-bugtap/internal/storage"
)

var (
	flagConfig string
	flagMute   bool
	flagDebug  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play bug tap in your terminal",
	Long: `Start a bug tap session in the current terminal.

Controls:
  Enter/Space  - Start the hunt
  Mouse        - Move the cursor, click to squash
  P/Esc        - Pause / resume
  R            - Restart
  Q/Ctrl+C     - Quit

Examples:
  bugtap play
  bugtap play --mute
  bugtap play --seed 42
  bugtap play --config ./my-bugs.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Write debug logs to ~/.bugtap/bugtap.log")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog := newLogger(flagDebug)
	defer closeLog()

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Size the session from the terminal
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	deps := tui.Deps{
		Config:  gameCfg,
		Runtime: cfg,
		Logger:  logger,
	}
	if store != nil {
		deps.KV = store
		deps.History = store
	}

	if !flagMute {
		beeper := audio.NewBeeper(logger)
		if audioErr := beeper.Enable(); audioErr != nil {
			logger.Warn("audio unavailable, playing silent", "error", audioErr)
		} else {
			deps.Sound = beeper
			defer beeper.Close()
		}
	}

	runErr := tui.Run(deps)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newLogger returns the session logger. The TUI owns the terminal, so logs
// go to a file when --debug is set and nowhere otherwise.
func newLogger(debug bool) (*log.Logger, func()) {
	if !debug {
		return log.New(io.Discard), func() {}
	}

	dir := filepath.Join(os.Getenv("HOME"), ".bugtap")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}

	f, err := os.OpenFile(filepath.Join(dir, "bugtap.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "bugtap",
	})
	logger.SetLevel(log.DebugLevel)
	return logger, func() { f.Close() }
}
