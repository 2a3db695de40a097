package core

import "math"

// Vec2 is a 2D vector in field units.
type Vec2 struct {
	X, Y float32
}

// V creates a vector.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns a unit vector pointing at angle radians.
func FromAngle(angle float32) Vec2 {
	s, c := math.Sincos(float64(angle))
	return Vec2{X: float32(c), Y: float32(s)}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div returns v / s. The caller guards s != 0.
func (v Vec2) Div(s float32) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Magnitude returns the Euclidean length of v.
func (v Vec2) Magnitude() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float32 {
	return v.Sub(o).Magnitude()
}

// Normalize returns the unit vector along v.
// ok is false for the zero vector, which has no direction.
func (v Vec2) Normalize() (n Vec2, ok bool) {
	m := v.Magnitude()
	if m == 0 {
		return Vec2{}, false
	}
	return v.Div(m), true
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
