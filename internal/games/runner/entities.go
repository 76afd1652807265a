package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Obstacle is a block standing on the ground that ends the run on contact.
type Obstacle struct {
	X    float64 // Left edge
	W, H float64
}

// Rect returns the collision box for the current ground line.
func (o Obstacle) Rect(groundY float64) core.RectF {
	return core.NewRectF(o.X, groundY-o.H, o.W, o.H)
}

// offscreen reports whether the trailing edge has passed the left border.
func (o Obstacle) offscreen() bool {
	return o.X+o.W < 0
}

// Coin is a pickup floating above the ground.
type Coin struct {
	X         float64 // Center
	Rise      float64 // Center height above the ground line
	R         float64
	Collected bool
}

// Circle returns the coin's collision circle for the current ground line.
func (c Coin) Circle(groundY float64) core.Circle {
	return core.Circle{X: c.X, Y: groundY - c.Rise, R: c.R}
}

// offscreen reports whether the trailing edge has passed the left border.
func (c Coin) offscreen() bool {
	return c.X+c.R < 0
}

// scrollObstacles moves every obstacle left by speed.
func scrollObstacles(obs []Obstacle, speed float64) {
	for i := range obs {
		obs[i].X -= speed
	}
}

// scrollCoins moves every coin left by speed.
func scrollCoins(coins []Coin, speed float64) {
	for i := range coins {
		coins[i].X -= speed
	}
}

// cullObstacles drops obstacles that left the screen, reusing the backing array.
func cullObstacles(obs []Obstacle) []Obstacle {
	kept := obs[:0]
	for _, o := range obs {
		if !o.offscreen() {
			kept = append(kept, o)
		}
	}
	return kept
}

// cullCoins drops collected coins and coins that left the screen.
func cullCoins(coins []Coin) []Coin {
	kept := coins[:0]
	for _, c := range coins {
		if !c.Collected && !c.offscreen() {
			kept = append(kept, c)
		}
	}
	return kept
}
