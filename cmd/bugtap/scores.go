package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bugtap/internal/game"
	"github.com/vovakirdan/tui-bugtap/internal/platform/tui"
	"github.com/vovakirdan/tui-bugtap/internal/storage"
)

var flagBoard bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 recorded runs.

Examples:
  bugtap scores
  bugtap scores --board    # Interactive scoreboard`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive scoreboard")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBoard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if boardErr := tui.RunScoreboard(store, width, height); boardErr != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", boardErr)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Bug Tap High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bugtap play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-8s  %s\n",
			i+1,
			entry.Score,
			game.FormatElapsed(entry.DurationSecs),
			entry.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	fmt.Println()
	if stats, statsErr := store.GetStats(); statsErr == nil && stats.GamesCount > 0 {
		fmt.Printf("Best: %d over %d runs (avg %.1f)\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}
