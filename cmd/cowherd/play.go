package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okarpov/cowherd/internal/config"
	"github.com/okarpov/cowherd/internal/platform/tui"
	"github.com/okarpov/cowherd/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a round in the current terminal.

Controls:
  Mouse drag        - Grab and move the farmer
  Arrows/WASD/HJKL  - Nudge the farmer
  Space             - Throw the lasso at the farmer's position
  P/Esc             - Pause
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Examples:
  cowherd play
  cowherd play --seed 42
  cowherd play --config ./my-cowherd.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config:   cfg,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Store:    store,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
