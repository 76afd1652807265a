package config

// SpeedRamp tracks the scroll speed as the score grows.
// The speed rises by a fixed increment each time the score crosses a
// multiple of the score step. Sitting on a multiple does not compound.
type SpeedRamp struct {
	base      float64
	increment float64
	step      int
	speed     float64
	milestone int // Highest multiple of step already rewarded
}

// NewSpeedRamp creates a ramp starting at the configured base speed.
func NewSpeedRamp(p RunnerPhysics) *SpeedRamp {
	step := p.ScoreStep
	if step <= 0 {
		step = 1 // Prevent division by zero
	}
	r := &SpeedRamp{
		base:      p.BaseSpeed,
		increment: p.SpeedIncrement,
		step:      step,
	}
	r.Reset()
	return r
}

// Reset returns the ramp to the base speed.
func (r *SpeedRamp) Reset() {
	r.speed = r.base
	r.milestone = 0
}

// Speed returns the current scroll speed.
func (r *SpeedRamp) Speed() float64 {
	return r.speed
}

// Observe updates the speed for the given score and reports whether it changed.
// At most one increment is applied per call.
func (r *SpeedRamp) Observe(score int) bool {
	if score <= 0 {
		return false
	}
	m := score / r.step
	if m <= r.milestone {
		return false
	}
	r.milestone = m
	if r.increment == 0 {
		return false
	}
	r.speed += r.increment
	return true
}

// IsEnabled reports whether the speed ever changes.
func (r *SpeedRamp) IsEnabled() bool {
	return r.increment != 0
}
