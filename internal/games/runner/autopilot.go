package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Autopilot decides when to jump so that the nearest obstacle passes under
// the middle of the jump. It ignores coins.
type Autopilot struct {
	airtime float64 // Ticks from takeoff to landing
}

// NewAutopilot creates an autopilot for the given physics.
func NewAutopilot(p config.RunnerPhysics) *Autopilot {
	return &Autopilot{airtime: 2 * math.Abs(p.JumpStrength) / p.Gravity}
}

// Decide reports whether the player should jump this tick.
func (a *Autopilot) Decide(s *Session) bool {
	p := s.Player()
	if !p.Grounded {
		return false
	}
	speed := s.Speed()
	front := p.X + p.W

	for _, o := range s.Obstacles() {
		if o.X+o.W <= p.X {
			continue // Already behind
		}
		gap := o.X - front
		if gap < 0 {
			return false // Too late
		}
		// Center the time spent above the obstacle within the airtime.
		trigger := (a.airtime*speed - (o.W + p.W)) / 2
		return gap <= math.Max(trigger, speed)
	}
	return false
}

// TraceSample is the state of a session after one tick.
type TraceSample struct {
	Tick   int
	Height float64 // Player bottom above the ground line
	Speed  float64
	Score  int
}

// Trace runs the session for up to frames ticks on a fixed viewport and
// records every tick. A nil pilot never jumps. Tracing stops at game over.
func Trace(s *Session, vp core.Viewport, frames int, pilot *Autopilot) []TraceSample {
	samples := make([]TraceSample, 0, frames)
	for i := 0; i < frames && !s.GameOver(); i++ {
		if pilot != nil && pilot.Decide(s) {
			s.RequestJump()
		}
		s.Tick(vp)

		p := s.Player()
		samples = append(samples, TraceSample{
			Tick:   s.Ticks(),
			Height: s.GroundY() - (p.Y + p.H),
			Speed:  s.Speed(),
			Score:  s.Score(),
		})
	}
	return samples
}
