package core

import (
	platformcore "github.com/vovakirdan/colorbang/internal/core"
)

// Collide reports whether a and b touch. The layer/mask test runs first so
// pairs that ignore each other never reach the distance check.
func Collide(a, b Entity) bool {
	return Overlaps(a.Collider(), b.Collider())
}

// Overlaps is Collide over plain collider values.
func Overlaps(c1, c2 Collider) bool {
	if (c1.Layer&c2.Mask)|(c1.Mask&c2.Layer) == 0 {
		return false
	}
	return c1.Pos.Distance(c2.Pos) <= c1.Radius+c2.Radius
}

// Impulse blends body 1's velocity toward body 2's, weighted by mass:
//
//	(v1*m1 + (v2-v1)*m2) / (m1+m2)
//
// It returns ErrZeroMass when m1+m2 is zero.
func Impulse(v1 platformcore.Vec2, m1 float32, v2 platformcore.Vec2, m2 float32) (platformcore.Vec2, error) {
	total := m1 + m2
	if total == 0 {
		return platformcore.Vec2{}, ErrZeroMass
	}
	return v1.Scale(m1).Add(v2.Sub(v1).Scale(m2)).Div(total), nil
}
