package core

import (
	platformcore "github.com/vovakirdan/colorbang/internal/core"
)

const (
	PlayerDefaultRadius = 15
	PlayerDefaultDrag   = 50
	PlayerShrink        = 1

	headingThickness = 8
	headingOverhang  = 6
)

// Player is the ship. Its velocity is derived from Angle and Speed every
// update; Speed is signed so reversing works the same way as thrusting.
type Player struct {
	Pos    platformcore.Vec2
	Vel    platformcore.Vec2
	Radius float32
	Color  platformcore.Color
	Layer  uint8
	Mask   uint8

	Angle float32 // heading in radians
	Rot   float32 // angular velocity in radians per second
	Speed float32 // signed speed along the heading
	Drag  float32 // speed lost per second

	Field platformcore.Bounds
}

// NewPlayer returns a white player that reacts to enemies only.
func NewPlayer(pos platformcore.Vec2, radius float32, field platformcore.Bounds) *Player {
	return &Player{
		Pos:    pos,
		Radius: radius,
		Color:  platformcore.ColorWhite,
		Layer:  LayerPlayer,
		Mask:   LayerEnemy,
		Drag:   PlayerDefaultDrag,
		Field:  field,
	}
}

// Accelerate changes Speed by accel*dt, keeping it within ±limit.
func (p *Player) Accelerate(accel, limit, dt float32) {
	p.Speed = platformcore.ClampF32(p.Speed+accel*dt, -limit, limit)
}

// Alive reports whether the player still has size left.
func (p *Player) Alive() bool {
	return p.Radius > 0
}

func (p *Player) Update(dt float32) bool {
	p.Angle += p.Rot * dt
	p.Vel = platformcore.FromAngle(p.Angle).Scale(p.Speed)
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	if p.Field.Width() > 0 && p.Field.Height() > 0 {
		p.Pos = p.Field.Clamp(p.Pos, 0)
	}

	// Drag bleeds magnitude toward zero without flipping the sign.
	mag := p.Speed
	if mag < 0 {
		mag = -mag
	}
	mag = max(mag-p.Drag*dt, 0)
	if p.Speed < 0 {
		p.Speed = -mag
	} else {
		p.Speed = mag
	}
	return true
}

func (p *Player) Collider() Collider {
	return Collider{Layer: p.Layer, Mask: p.Mask, Pos: p.Pos, Radius: p.Radius}
}

// DealDamage shrinks the player by PlayerShrink, never below zero.
func (p *Player) DealDamage(_ platformcore.Vec2, _ float32) error {
	p.Radius = max(p.Radius-PlayerShrink, 0)
	return nil
}

func (p *Player) Draw(dst platformcore.Surface) {
	tip := p.Pos.Add(platformcore.FromAngle(p.Angle).Scale(p.Radius + headingOverhang))
	dst.Line(p.Pos, tip, headingThickness, platformcore.ColorCyan)
	dst.FillCircle(p.Pos, p.Radius, p.Color)
}
