package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akovalov/tui-aimtrainer/internal/platform/tui"
	"github.com/akovalov/tui-aimtrainer/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded sessions",
	Long: `Open an interactive browser over every recorded training session,
grouped by difficulty, with hits, misses and accuracy per session.

Examples:
  aimtrainer history
  aimtrainer history --db ./history.db`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, cfg.TierNames(), width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running history browser: %v\n", err)
		os.Exit(1)
	}
}
