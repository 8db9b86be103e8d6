package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/games/runner"
	"github.com/vovakirdan/lane-runner/internal/platform/tui"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run right away.

Controls:
  Left/Right, A/D  - Switch lane
  Space/Up/W       - Jump
  P/Esc            - Pause
  R                - Restart (after game over)
  B                - Back (when paused or after game over)
  Ctrl+S           - Save a screenshot to ~/.lane-runner/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Fewer obstacles, half damage, longer combo window
  normal - The default configuration
  hard   - Faster world, more obstacles, shorter combo window
  fixed  - Levels still count, but the world never speeds up

Examples:
  runner play
  runner play --difficulty hard
  runner play --seed 42
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, preset, err := loadConfig(flagDifficulty)
	if err != nil {
		fail("%v", err)
	}

	game, err := runner.New(cfg, runner.WithPreset(preset))
	if err != nil {
		fail("creating game: %v", err)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
