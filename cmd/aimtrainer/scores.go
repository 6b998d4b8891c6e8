package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akovalov/tui-aimtrainer/internal/leaderboard"
	"github.com/akovalov/tui-aimtrainer/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [tier]",
	Short: "Show the leaderboard",
	Long: `Display the top 10 leaderboard scores, for one difficulty or all of them.

Examples:
  aimtrainer scores
  aimtrainer scores Medium`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	tiers := cfg.TierNames()
	if len(args) == 1 {
		tier, ok := normalizeTier(cfg, args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", args[0])
			fmt.Fprintf(os.Stderr, "Available: %v\n", tiers)
			os.Exit(1)
		}
		tiers = []string{tier}
	}

	board := leaderboard.Open(cfg.Leaderboard.Path, cfg.Leaderboard.Capacity, cfg.TierNames())

	// Session history adds a play count per tier when available
	store, err := storage.Open(flagDBPath)
	if err != nil {
		store = nil
	} else {
		defer store.Close()
	}

	for i, tier := range tiers {
		if i > 0 {
			fmt.Println()
		}
		printTier(board, store, tier, cfg.Leaderboard.Capacity)
	}
}

// printTier prints one difficulty's leaderboard and play stats.
func printTier(board *leaderboard.Board, store *storage.Store, tier string, capacity int) {
	fmt.Printf("Leaderboard - %s\n", tier)
	fmt.Println()

	scores := board.TopScores(tier, capacity)
	if len(scores) == 0 {
		fmt.Println("  No scores recorded yet.")
		fmt.Println()
		fmt.Println("  Play 'aimtrainer play' to set the first one!")
		return
	}

	fmt.Printf("  %-4s  %s\n", "Rank", "Score")
	fmt.Printf("  %-4s  %s\n", "----", "-----")
	for i, score := range scores {
		fmt.Printf("  %-4d  %d\n", i+1, score)
	}

	if store == nil {
		return
	}
	if stats, err := store.GetTierStats(tier); err == nil && stats.SessionCount > 0 {
		fmt.Println()
		fmt.Printf("  Sessions: %d   Accuracy: %.0f%%\n", stats.SessionCount, stats.Accuracy()*100)
	}
}
