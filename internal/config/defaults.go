package config

import (
	_ "embed"
)

//go:embed defaults/aimtrainer.yaml
var defaultYAML []byte

// Default returns the built-in configuration: a 30 second session on an
// 800x600 canvas with the three standard tiers.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Session: SessionConfig{
			DurationSeconds:     30,
			HitAnimationSeconds: 0.3,
			TrailLength:         20,
		},
		Tiers: []TierConfig{
			{Name: TierEasy, TargetSize: 40, SpawnIntervalSeconds: 1.5, MaxTargets: 4},
			{Name: TierMedium, TargetSize: 30, SpawnIntervalSeconds: 1.0, MaxTargets: 6},
			{Name: TierHard, TargetSize: 20, SpawnIntervalSeconds: 0.7, MaxTargets: 8},
		},
		Leaderboard: LeaderboardConfig{
			Path:       "~/.aimtrainer/leaderboard.json",
			Capacity:   10,
			TopDisplay: 5,
		},
	}
}
