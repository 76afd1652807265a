// Package config provides YAML-based game configuration loading and
// difficulty management for the runner.
package config

// RunnerConfig contains all configuration for the Coin Runner game.
// Distances are in terminal cells, times in ticks.
type RunnerConfig struct {
	Physics   RunnerPhysics   `yaml:"physics"`
	Player    RunnerPlayer    `yaml:"player"`
	Obstacles RunnerObstacles `yaml:"obstacles"`
	Coins     RunnerCoins     `yaml:"coins"`
}

// RunnerPhysics defines gravity, jumping and scrolling.
type RunnerPhysics struct {
	Gravity        float64 `yaml:"gravity"`
	JumpStrength   float64 `yaml:"jump_strength"` // Negative = up
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`
	ScoreStep      int     `yaml:"score_step"` // Speed increases each time score crosses a multiple of this
}

// RunnerPlayer defines the player's hitbox and placement.
type RunnerPlayer struct {
	X            float64 `yaml:"x"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset int     `yaml:"ground_offset"` // Rows kept below the ground line
}

// RunnerObstacles defines obstacle spawning.
type RunnerObstacles struct {
	SpawnChance float64 `yaml:"spawn_chance"` // Per-tick probability once cooldown expired
	Cooldown    int     `yaml:"cooldown"`     // Minimum ticks between obstacles
	MinWidth    int     `yaml:"min_width"`
	MaxWidth    int     `yaml:"max_width"`
	MinHeight   int     `yaml:"min_height"`
	MaxHeight   int     `yaml:"max_height"`
}

// RunnerCoins defines coin spawning and value.
type RunnerCoins struct {
	SpawnChance float64 `yaml:"spawn_chance"`
	Radius      float64 `yaml:"radius"`
	Value       int     `yaml:"value"`
	MinRise     float64 `yaml:"min_rise"` // Coin center height above ground
	MaxRise     float64 `yaml:"max_rise"`
}

// JumpApex returns how far above its resting position the player rises on a jump.
func (p RunnerPhysics) JumpApex() float64 {
	if p.Gravity <= 0 {
		return 0
	}
	return p.JumpStrength * p.JumpStrength / (2 * p.Gravity)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
