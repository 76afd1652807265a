package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default Coin Runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:        0.15,
			JumpStrength:   -1.5,
			BaseSpeed:      0.5,
			SpeedIncrement: 0.1,
			ScoreStep:      50,
		},
		Player: RunnerPlayer{
			X:            8,
			Width:        3,
			Height:       3,
			GroundOffset: 2,
		},
		Obstacles: RunnerObstacles{
			SpawnChance: 0.02,
			Cooldown:    45,
			MinWidth:    1,
			MaxWidth:    3,
			MinHeight:   2,
			MaxHeight:   4,
		},
		Coins: RunnerCoins{
			SpawnChance: 0.01,
			Radius:      0.5,
			Value:       10,
			MinRise:     1,
			MaxRise:     9,
		},
	}
}
