package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Player is the runner's character. Y grows downward; the ground is a
// horizontal line and the player rests on it when Y+H == groundY.
type Player struct {
	X, Y     float64
	W, H     float64
	VY       float64 // Vertical velocity, negative = up
	Grounded bool
}

// newPlayer places a player at rest on the ground.
func newPlayer(x, w, h, groundY float64) Player {
	return Player{
		X:        x,
		Y:        groundY - h,
		W:        w,
		H:        h,
		Grounded: true,
	}
}

// Rect returns the player's collision box.
func (p Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// Step advances the player by one tick under constant gravity.
// Landing is the only way to become grounded.
func (p *Player) Step(gravity, groundY float64) {
	if !p.Grounded {
		p.VY += gravity
	} else {
		p.VY = 0
	}
	p.Y += p.VY

	if p.Y+p.H >= groundY {
		p.Y = groundY - p.H
		p.VY = 0
		p.Grounded = true
	}
}

// Jump launches the player if it is standing on the ground.
// Returns false, changing nothing, while airborne.
func (p *Player) Jump(strength float64) bool {
	if !p.Grounded {
		return false
	}
	p.VY = strength
	p.Grounded = false
	return true
}
