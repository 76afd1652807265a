// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an integer rectangle in screen cells, used for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// RectF is an axis-aligned bounding box in world units used for collision detection.
type RectF struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRectF creates a new world rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r RectF) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects reports whether the two boxes overlap.
// Edges are open: boxes that only touch do not intersect.
func (r RectF) Intersects(other RectF) bool {
	return r.X < other.X+other.W &&
		r.X+r.W > other.X &&
		r.Y < other.Y+other.H &&
		r.Y+r.H > other.Y
}

// IntersectsCircle reports whether the circle overlaps the rectangle.
// The corner test is inclusive: a circle whose edge exactly reaches a corner collides.
func (r RectF) IntersectsCircle(c Circle) bool {
	halfW, halfH := r.W/2, r.H/2
	cx, cy := r.Center()
	distX := math.Abs(c.X - cx)
	distY := math.Abs(c.Y - cy)

	if distX > halfW+c.R || distY > halfH+c.R {
		return false
	}
	// Circle center projects into the rectangle's band on one axis
	if distX <= halfW || distY <= halfH {
		return true
	}

	dx := distX - halfW
	dy := distY - halfH
	return dx*dx+dy*dy <= c.R*c.R
}

// Cells converts the box to the screen cells it covers.
func (r RectF) Cells() Rect {
	x0 := int(math.Floor(r.X))
	y0 := int(math.Floor(r.Y))
	x1 := int(math.Ceil(r.X + r.W))
	y1 := int(math.Ceil(r.Y + r.H))
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Circle is a circle in world units.
type Circle struct {
	X, Y float64 // Center
	R    float64 // Radius
}

// Bounds returns the bounding box of the circle.
func (c Circle) Bounds() RectF {
	return NewRectF(c.X-c.R, c.Y-c.R, 2*c.R, 2*c.R)
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
