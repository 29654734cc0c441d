// bugtap is a terminal arcade game about squashing bugs before they
// swarm your picnic.
//
// Usage:
//
//	bugtap play      - Play in the current terminal
//	bugtap scores    - Show recorded high scores
//	bugtap serve     - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible sessions
//	--db <path>     - Set database path (default: ~/.bugtap/bugtap.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bugtap",
	Short: "Bug Tap - Squash bugs in your terminal",
	Long: `Bug Tap is a casual terminal game. Bugs crawl out of the edges toward
the food in the middle; tap them with the mouse before the picnic is lost.

Available commands:
  play     - Play in the current terminal
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  bugtap play
  bugtap play --seed 42
  bugtap scores
  bugtap serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bugtap/bugtap.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
