// Package leaderboard persists per-difficulty high scores as a JSON file.
//
// The file maps tier names to score lists sorted descending and capped at the
// configured capacity, e.g. {"Easy":[12,9],"Medium":[],"Hard":[4]}. Storage
// failures never interrupt play: loads fall back to an empty board and saves
// log a warning and move on.
package leaderboard

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// Board holds the per-tier score lists and writes them through to disk on
// every AddScore. It implements the game package's Scoreboard interface.
type Board struct {
	path     string
	capacity int
	logger   *log.Logger
	scores   map[string][]int
}

// Open loads the board at path, creating an empty one for the given tiers if
// the file is missing or unreadable. Capacity bounds how many scores each tier
// keeps. The returned board is always usable.
func Open(path string, capacity int, tiers []string) *Board {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "leaderboard",
	})

	b := &Board{
		path:     expandHome(path),
		capacity: capacity,
		logger:   logger,
		scores:   emptyScores(tiers),
	}
	b.load(tiers)
	return b
}

// emptyScores builds the default score table: every tier present, no entries.
func emptyScores(tiers []string) map[string][]int {
	m := make(map[string][]int, len(tiers))
	for _, t := range tiers {
		m[t] = []int{}
	}
	return m
}

// load reads the JSON file into the board. A missing file is the normal first
// run; a corrupt one is logged and replaced with the empty table so a damaged
// file never blocks play.
func (b *Board) load(tiers []string) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if !os.IsNotExist(err) {
			b.logger.Warn("could not read leaderboard file", "path", b.path, "error", err)
		}
		return
	}

	var stored map[string][]int
	if err := json.Unmarshal(data, &stored); err != nil {
		b.logger.Warn("leaderboard file is corrupt, starting fresh", "path", b.path, "error", err)
		b.scores = emptyScores(tiers)
		return
	}

	// Merge over the defaults so every configured tier has an entry even if
	// the file predates it.
	for tier, list := range stored {
		sort.Sort(sort.Reverse(sort.IntSlice(list)))
		if len(list) > b.capacity {
			list = list[:b.capacity]
		}
		b.scores[tier] = list
	}
}

// AddScore records a finished session's score for the tier and saves the file
// synchronously. The tier list stays sorted descending and capped at capacity.
func (b *Board) AddScore(tier string, score int) {
	list := append(b.scores[tier], score)
	sort.Sort(sort.Reverse(sort.IntSlice(list)))
	if len(list) > b.capacity {
		list = list[:b.capacity]
	}
	b.scores[tier] = list

	b.save()
}

// TopScores returns up to n scores for the tier, highest first. Unknown tiers
// yield an empty list.
func (b *Board) TopScores(tier string, n int) []int {
	list := b.scores[tier]
	if len(list) > n {
		list = list[:n]
	}
	out := make([]int, len(list))
	copy(out, list)
	return out
}

// Rank returns the 1-based position a score earns on the tier's board: one
// plus the number of stored scores strictly greater. Ties share the higher
// rank.
func (b *Board) Rank(tier string, score int) int {
	rank := 1
	for _, s := range b.scores[tier] {
		if s > score {
			rank++
		}
	}
	return rank
}

// Clear empties one tier's scores, or every tier when tier is empty, and
// saves the file.
func (b *Board) Clear(tier string) {
	if tier == "" {
		for k := range b.scores {
			b.scores[k] = []int{}
		}
	} else if _, ok := b.scores[tier]; ok {
		b.scores[tier] = []int{}
	}
	b.save()
}

// save writes the score table to disk, creating parent directories as needed.
// Failures are logged, never returned; losing a save must not end the game.
func (b *Board) save() {
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		b.logger.Warn("could not create leaderboard directory", "path", b.path, "error", err)
		return
	}

	data, err := json.MarshalIndent(b.scores, "", "  ")
	if err != nil {
		b.logger.Warn("could not encode leaderboard", "error", err)
		return
	}

	if err := os.WriteFile(b.path, data, 0o644); err != nil {
		b.logger.Warn("could not write leaderboard file", "path", b.path, "error", err)
	}
}

// Path returns the resolved file path the board persists to.
func (b *Board) Path() string {
	return b.path
}

// expandHome resolves a leading ~/ against the user's home directory.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
