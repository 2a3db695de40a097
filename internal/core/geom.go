// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Bounds is an axis-aligned rectangle in field units.
type Bounds struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// NewBounds creates bounds anchored at the origin with the given size.
func NewBounds(w, h float32) Bounds {
	return Bounds{MaxX: w, MaxY: h}
}

// Width returns the horizontal extent.
func (b Bounds) Width() float32 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent.
func (b Bounds) Height() float32 {
	return b.MaxY - b.MinY
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Vec2 {
	return Vec2{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Contains returns true if p lies inside the bounds (edges inclusive).
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// ContainsCircle returns true if any part of the circle overlaps the bounds
// along both axes. A circle fully past an edge is outside.
func (b Bounds) ContainsCircle(p Vec2, r float32) bool {
	if p.X+r < b.MinX || p.X-r > b.MaxX {
		return false
	}
	if p.Y+r < b.MinY || p.Y-r > b.MaxY {
		return false
	}
	return true
}

// Clamp restricts p to the bounds inset by margin.
func (b Bounds) Clamp(p Vec2, margin float32) Vec2 {
	return Vec2{
		X: ClampF32(p.X, b.MinX+margin, b.MaxX-margin),
		Y: ClampF32(p.Y, b.MinY+margin, b.MaxY-margin),
	}
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

// ClampF32 restricts a float32 value to be within [min, max].
func ClampF32(val, min, max float32) float32 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
