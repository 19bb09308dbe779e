// neonpong is a terminal pong game with an AI opponent, power-ups, and
// persistent high scores.
//
// Usage:
//
//	neonpong play             - Start a match
//	neonpong scores           - Show the high score table
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.neonpong/scores.db)
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
	Use:   "neonpong",
	Short: "Neon Pong - terminal pong with power-ups",
	Long: `Neon Pong is a terminal pong game: play against a scripted AI
opponent (or a friend on the same keyboard), collect floating power-ups,
and race to the winning score.

Available commands:
  play     - Start a match
  scores   - View the high score table

Examples:
  neonpong play
  neonpong play --difficulty hard
  neonpong play --two-player
  neonpong scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.neonpong/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}
