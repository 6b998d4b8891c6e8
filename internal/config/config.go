// Package config provides YAML-based settings loading and the difficulty
// tier table for the aim trainer.
package config

import "time"

// Tier names are fixed strings; they key the leaderboard file and the
// session history, so renaming them would orphan stored scores.
const (
	TierEasy   = "Easy"
	TierMedium = "Medium"
	TierHard   = "Hard"
)

// Config is the complete application configuration.
type Config struct {
	Canvas      CanvasConfig      `yaml:"canvas"`
	Session     SessionConfig     `yaml:"session"`
	Tiers       []TierConfig      `yaml:"tiers"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
}

// CanvasConfig defines the virtual canvas the session plays on.
// Virtual units keep target sizes independent of terminal dimensions.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SessionConfig defines session timing parameters.
type SessionConfig struct {
	DurationSeconds     float64 `yaml:"duration_seconds"`
	HitAnimationSeconds float64 `yaml:"hit_animation_seconds"`
	TrailLength         int     `yaml:"trail_length"`
}

// Duration returns the session length as a time.Duration.
func (s SessionConfig) Duration() time.Duration {
	return time.Duration(s.DurationSeconds * float64(time.Second))
}

// HitAnimation returns the hit animation window as a time.Duration.
func (s SessionConfig) HitAnimation() time.Duration {
	return time.Duration(s.HitAnimationSeconds * float64(time.Second))
}

// TierConfig is one difficulty preset: target size, spawn cadence and the
// alive-target cap.
type TierConfig struct {
	Name                 string  `yaml:"name"`
	TargetSize           float64 `yaml:"target_size"`
	SpawnIntervalSeconds float64 `yaml:"spawn_interval_seconds"`
	MaxTargets           int     `yaml:"max_targets"`
}

// SpawnInterval returns the spawn cadence as a time.Duration.
func (t TierConfig) SpawnInterval() time.Duration {
	return time.Duration(t.SpawnIntervalSeconds * float64(time.Second))
}

// LeaderboardConfig defines leaderboard persistence parameters.
type LeaderboardConfig struct {
	Path       string `yaml:"path"`        // JSON file location, ~ expands to home
	Capacity   int    `yaml:"capacity"`    // Scores kept per tier
	TopDisplay int    `yaml:"top_display"` // Scores shown on the in-game page
}

// Tier returns the preset with the given name.
func (c Config) Tier(name string) (TierConfig, bool) {
	for _, t := range c.Tiers {
		if t.Name == name {
			return t, true
		}
	}
	return TierConfig{}, false
}

// TierNames returns the configured tier names in order.
func (c Config) TierNames() []string {
	names := make([]string, len(c.Tiers))
	for i, t := range c.Tiers {
		names[i] = t.Name
	}
	return names
}
