// aimtrainer is a terminal aim and reflex trainer: timed sessions of
// click-the-target with a per-difficulty leaderboard.
//
// Usage:
//
//	aimtrainer play              - Start the trainer
//	aimtrainer scores [tier]     - Show the leaderboard
//	aimtrainer history           - Browse recorded sessions
//	aimtrainer reset [tier]      - Clear recorded data
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible target placement
//	--db <path>            - Session history database (default: ~/.aimtrainer/history.db)
//	--leaderboard <path>   - Leaderboard JSON file (overrides config)
//	--config <path>        - Custom config YAML
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akovalov/tui-aimtrainer/internal/config"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagLeaderboard string
	flagConfig      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "aimtrainer",
	Short: "Aim Trainer - sharpen your mouse aim in the terminal",
	Long: `Aim Trainer is a terminal reflex game: targets pop up on the field,
you click them before the clock runs out. Hits score a point, misses
cost one. Three difficulties, a persistent top-10 leaderboard per
difficulty, and a session history with accuracy stats.

Available commands:
  play     - Start the trainer
  scores   - View the leaderboard
  history  - Browse recorded sessions interactively
  reset    - Clear recorded data

Examples:
  aimtrainer play
  aimtrainer play --difficulty hard
  aimtrainer scores Medium
  aimtrainer history
  aimtrainer reset Easy --yes`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.aimtrainer/history.db", "Path to session history database")
	rootCmd.PersistentFlags().StringVar(&flagLeaderboard, "leaderboard", "", "Path to leaderboard JSON (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
}

// loadConfig loads the effective configuration, applying the --leaderboard
// override.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagLeaderboard != "" {
		cfg.Leaderboard.Path = flagLeaderboard
	}
	return cfg
}

// normalizeTier resolves a case-insensitive tier name against the config.
func normalizeTier(cfg config.Config, name string) (string, bool) {
	for _, t := range cfg.TierNames() {
		if strings.EqualFold(t, name) {
			return t, true
		}
	}
	return "", false
}
