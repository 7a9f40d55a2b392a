package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okarpov/cowherd/internal/platform/tui"
	"github.com/okarpov/cowherd/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the high score table.

In a terminal this opens an interactive scoreboard; when output is piped,
a plain table is printed instead.

Examples:
  cowherd scores
  cowherd scores | head -5`,
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

	if term.IsTerminal(int(os.Stdout.Fd())) {
		if err := tui.RunScoreboard(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printScores(store)
}

func printScores(store *storage.Store) {
	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Cowherd")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'cowherd play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "Rank", "Score", "Survived", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "----", "-----", "--------", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-10s  %s\n", i+1, entry.Score, fmt.Sprintf("%.0fs", entry.Duration), dateStr)
	}

	fmt.Println()
	highScore, err := store.HighScore()
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
