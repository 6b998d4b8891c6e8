package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akovalov/tui-aimtrainer/internal/core"
	"github.com/akovalov/tui-aimtrainer/internal/game"
	"github.com/akovalov/tui-aimtrainer/internal/leaderboard"
	"github.com/akovalov/tui-aimtrainer/internal/platform/tui"
	"github.com/akovalov/tui-aimtrainer/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the trainer",
	Long: `Start an aim training session.

Controls:
  Mouse       - Aim and click targets
  Enter       - Start a session from the home screen
  1/2/3       - Select Easy / Medium / Hard
  L           - Open the leaderboard
  Esc         - Back (quits from the home screen)
  Q/Ctrl+C    - Quit

Examples:
  aimtrainer play
  aimtrainer play --difficulty hard
  aimtrainer play --seed 42 --fps 30
  aimtrainer play --config ./my-trainer.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Starting difficulty: easy, medium, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	// Get terminal size, with defaults for non-terminal stdout
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	board := leaderboard.Open(cfg.Leaderboard.Path, cfg.Leaderboard.Capacity, cfg.TierNames())

	machine := game.New(cfg, board)

	if flagDifficulty != "" {
		tier, ok := normalizeTier(cfg, flagDifficulty)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
			fmt.Fprintf(os.Stderr, "Available: %v\n", cfg.TierNames())
			os.Exit(1)
		}
		machine.SelectTier(tier)
	}

	// Open session history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		// Continue without history - the game still works
		store = nil
	}

	rc := core.RuntimeConfig{
		CanvasW:  cfg.Canvas.Width,
		CanvasH:  cfg.Canvas.Height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	runErr := tui.Run(machine, store, rc, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running trainer: %v\n", runErr)
		os.Exit(1)
	}
}
