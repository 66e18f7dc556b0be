// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an integer cell rectangle on a Screen.
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

// Box is an axis-aligned rectangle in world (pixel) coordinates.
// Y grows downward, matching the screen.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BoxAt returns the box of a w×h rectangle whose top-left corner is (x, y).
func BoxAt(x, y, w, h float64) Box {
	return Box{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.MaxY - b.MinY
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2
}

// Floor snaps every edge down to the nearest whole pixel.
func (b Box) Floor() Box {
	return Box{
		MinX: math.Floor(b.MinX),
		MinY: math.Floor(b.MinY),
		MaxX: math.Floor(b.MaxX),
		MaxY: math.Floor(b.MaxY),
	}
}

// Intersects reports whether two boxes overlap with positive area.
func (b Box) Intersects(other Box) bool {
	if b.MinX >= other.MaxX || other.MinX >= b.MaxX {
		return false
	}
	if b.MinY >= other.MaxY || other.MinY >= b.MaxY {
		return false
	}
	return true
}

// RotatedBounds returns the axis-aligned bounds of a w×h rectangle centered
// at (cx, cy) and rotated by angleDeg degrees.
func RotatedBounds(cx, cy, w, h, angleDeg float64) Box {
	rad := angleDeg * math.Pi / 180
	cos := math.Abs(math.Cos(rad))
	sin := math.Abs(math.Sin(rad))
	halfW := (w*cos + h*sin) / 2
	halfH := (w*sin + h*cos) / 2
	return Box{MinX: cx - halfW, MinY: cy - halfH, MaxX: cx + halfW, MaxY: cy + halfH}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
