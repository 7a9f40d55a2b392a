// cowherd is a terminal arcade game about keeping cows out of a ditch.
//
// Usage:
//
//	cowherd play             - Play in the current terminal
//	cowherd scores           - Show the high score table
//	cowherd serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.cowherd/scores.db)
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
	Use:   "cowherd",
	Short: "Cowherd - keep your cows out of the ditch",
	Long: `Cowherd is a terminal arcade game. Cows wander toward a water-filled
ditch at the bottom of the field; drag the farmer around to herd them back
toward the gate in the fence, and lasso any cow that falls in before it
drowns. Lose all your lives and the round is over.

Available commands:
  play     - Play in the current terminal
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  cowherd play
  cowherd play --seed 42
  cowherd serve --ssh :2222
  cowherd scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cowherd/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
