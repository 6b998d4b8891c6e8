package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the application configuration.
// Search order: customPath -> ~/.aimtrainer/config.yaml -> ./configs/aimtrainer.yaml -> embedded default
//
// An explicit customPath that cannot be read or parsed is an error; the
// fallback locations degrade silently to the next candidate.
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/aimtrainer.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".aimtrainer", filename)
}

// normalize fills in anything a partial user config left at zero so the
// session never runs with a degenerate canvas or an empty tier table.
func normalize(cfg Config) Config {
	def := Default()

	if cfg.Canvas.Width <= 0 {
		cfg.Canvas.Width = def.Canvas.Width
	}
	if cfg.Canvas.Height <= 0 {
		cfg.Canvas.Height = def.Canvas.Height
	}
	if cfg.Session.DurationSeconds <= 0 {
		cfg.Session.DurationSeconds = def.Session.DurationSeconds
	}
	if cfg.Session.HitAnimationSeconds <= 0 {
		cfg.Session.HitAnimationSeconds = def.Session.HitAnimationSeconds
	}
	if cfg.Session.TrailLength <= 0 {
		cfg.Session.TrailLength = def.Session.TrailLength
	}
	if len(cfg.Tiers) == 0 {
		cfg.Tiers = def.Tiers
	}
	if cfg.Leaderboard.Path == "" {
		cfg.Leaderboard.Path = def.Leaderboard.Path
	}
	if cfg.Leaderboard.Capacity <= 0 {
		cfg.Leaderboard.Capacity = def.Leaderboard.Capacity
	}
	if cfg.Leaderboard.TopDisplay <= 0 {
		cfg.Leaderboard.TopDisplay = def.Leaderboard.TopDisplay
	}
	return cfg
}
