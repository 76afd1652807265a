package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by Validate failures.
var ErrInvalidConfig = errors.New("invalid runner config")

// LoadRunner loads Coin Runner configuration.
// Search order: customPath -> ~/.arcade/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files only need to set the fields they change; the rest keep default values.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseRunner(data)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRunner(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		if cfg, err := parseRunner(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseRunner(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseRunner decodes YAML over the defaults and validates the result.
func parseRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable game.
func (c RunnerConfig) Validate() error {
	switch {
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive", ErrInvalidConfig)
	case c.Physics.JumpStrength >= 0:
		return fmt.Errorf("%w: jump_strength must be negative (upward)", ErrInvalidConfig)
	case c.Physics.BaseSpeed <= 0:
		return fmt.Errorf("%w: base_speed must be positive", ErrInvalidConfig)
	case c.Physics.SpeedIncrement < 0:
		return fmt.Errorf("%w: speed_increment must not be negative", ErrInvalidConfig)
	case c.Physics.ScoreStep <= 0:
		return fmt.Errorf("%w: score_step must be positive", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Player.GroundOffset < 0:
		return fmt.Errorf("%w: ground_offset must not be negative", ErrInvalidConfig)
	case c.Obstacles.MinWidth <= 0 || c.Obstacles.MaxWidth < c.Obstacles.MinWidth:
		return fmt.Errorf("%w: obstacle width range [%d, %d]", ErrInvalidConfig, c.Obstacles.MinWidth, c.Obstacles.MaxWidth)
	case c.Obstacles.MinHeight <= 0 || c.Obstacles.MaxHeight < c.Obstacles.MinHeight:
		return fmt.Errorf("%w: obstacle height range [%d, %d]", ErrInvalidConfig, c.Obstacles.MinHeight, c.Obstacles.MaxHeight)
	case c.Obstacles.Cooldown < 0:
		return fmt.Errorf("%w: obstacle cooldown must not be negative", ErrInvalidConfig)
	case c.Coins.Value <= 0:
		return fmt.Errorf("%w: coin value must be positive", ErrInvalidConfig)
	case c.Coins.Radius <= 0:
		return fmt.Errorf("%w: coin radius must be positive", ErrInvalidConfig)
	case c.Coins.MaxRise < c.Coins.MinRise:
		return fmt.Errorf("%w: coin rise range [%g, %g]", ErrInvalidConfig, c.Coins.MinRise, c.Coins.MaxRise)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.BaseSpeed *= 0.8
		cfg.Obstacles.SpawnChance *= 0.75
		cfg.Coins.SpawnChance *= 1.5
	case DifficultyHard:
		cfg.Physics.BaseSpeed *= 1.4
		cfg.Physics.SpeedIncrement *= 1.5
		cfg.Obstacles.SpawnChance *= 1.5
		cfg.Obstacles.Cooldown = cfg.Obstacles.Cooldown * 2 / 3
	case DifficultyFixed:
		cfg.Physics.SpeedIncrement = 0
	}
}
