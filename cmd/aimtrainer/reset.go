package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akovalov/tui-aimtrainer/internal/leaderboard"
	"github.com/akovalov/tui-aimtrainer/internal/storage"
)

var (
	flagResetYes   bool
	flagResetBoard bool
)

var resetCmd = &cobra.Command{
	Use:   "reset [tier]",
	Short: "Clear recorded data",
	Long: `Delete recorded sessions for one difficulty, or all of them.
Pass --board to also wipe the matching leaderboard entries.

The command refuses to run without --yes.

Examples:
  aimtrainer reset --yes
  aimtrainer reset Easy --yes
  aimtrainer reset --board --yes`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetYes, "yes", false, "Confirm the deletion")
	resetCmd.Flags().BoolVar(&flagResetBoard, "board", false, "Also clear the leaderboard")
}

func runReset(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	tier := ""
	if len(args) == 1 {
		t, ok := normalizeTier(cfg, args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", args[0])
			fmt.Fprintf(os.Stderr, "Available: %v\n", cfg.TierNames())
			os.Exit(1)
		}
		tier = t
	}

	if !flagResetYes {
		fmt.Fprintln(os.Stderr, "Refusing to delete without --yes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.ClearSessions(tier); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing sessions: %v\n", err)
		os.Exit(1)
	}

	if flagResetBoard {
		board := leaderboard.Open(cfg.Leaderboard.Path, cfg.Leaderboard.Capacity, cfg.TierNames())
		board.Clear(tier)
	}

	what := "all sessions"
	if tier != "" {
		what = fmt.Sprintf("%s sessions", tier)
	}
	if flagResetBoard {
		what += " and leaderboard entries"
	}
	fmt.Printf("Cleared %s.\n", what)
}
