package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pongworks/neonpong/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the top 10 recorded matches, ordered by player score.

Examples:
  neonpong scores
  neonpong scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Neon Pong")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'neonpong play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-7s  %-10s  %s\n", "Rank", "Name", "Score", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-16s  %-7s  %-10s  %s\n", "----", "----", "-----", "----------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		scoreStr := fmt.Sprintf("%d-%d", entry.PlayerScore, entry.CPUScore)
		fmt.Printf("  %-4d  %-16s  %-7s  %-10s  %s\n", i+1, entry.Name, scoreStr, entry.Difficulty, dateStr)
	}

	fmt.Println()
	if high, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}
