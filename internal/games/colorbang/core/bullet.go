package core

import (
	platformcore "github.com/vovakirdan/colorbang/internal/core"
)

const (
	BulletSpeed  = 200
	BulletRadius = 5
	BulletHealth = 600

	SuperBangRadius    = 2
	SuperBangHealth    = 200
	superBangMinSpeed  = 100
	superBangSpeedSpan = 200
	superBangAlpha     = 0.3
)

// Bullet flies in a straight line until its health runs out, it leaves the
// field, or it hits an enemy.
type Bullet struct {
	Pos    platformcore.Vec2
	Vel    platformcore.Vec2
	Radius float32
	Color  platformcore.Color
	Health int32 // frames left
	Layer  uint8
	Mask   uint8
	Field  platformcore.Bounds
}

// NewBullet returns a white bullet with the standard lifetime.
func NewBullet(pos, vel platformcore.Vec2, field platformcore.Bounds) Bullet {
	return Bullet{
		Pos:    pos,
		Vel:    vel,
		Radius: BulletRadius,
		Color:  platformcore.ColorWhite,
		Health: BulletHealth,
		Layer:  LayerBullet,
		Mask:   LayerEnemy,
		Field:  field,
	}
}

// FireAt returns a bullet leaving from toward target. It fails with
// ErrDegenerateDirection when the two points coincide.
func FireAt(from, target platformcore.Vec2, field platformcore.Bounds) (Bullet, error) {
	dir, ok := target.Sub(from).Normalize()
	if !ok {
		return Bullet{}, ErrDegenerateDirection
	}
	return NewBullet(from, dir.Scale(BulletSpeed), field), nil
}

// FireAlong returns a bullet leaving from along the heading angle.
func FireAlong(from platformcore.Vec2, angle float32, field platformcore.Bounds) Bullet {
	return NewBullet(from, platformcore.FromAngle(angle).Scale(BulletSpeed), field)
}

// SuperBang appends n faint, short-lived bullets scattered in every
// direction from pos.
func SuperBang(dst []Bullet, rng Rand, n int, pos platformcore.Vec2, field platformcore.Bounds) []Bullet {
	for i := 0; i < n; i++ {
		angle := randomAngle(rng)
		speed := randomRange(rng, superBangMinSpeed, superBangSpeedSpan)
		b := NewBullet(pos, platformcore.FromAngle(angle).Scale(speed), field)
		b.Radius = SuperBangRadius
		b.Color = platformcore.RGBA(1, 1, 1, superBangAlpha)
		b.Health = SuperBangHealth
		dst = append(dst, b)
	}
	return dst
}

func (b *Bullet) Update(dt float32) bool {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	b.Health--
	if b.Health <= 0 {
		return false
	}
	if b.Field.Width() > 0 && b.Field.Height() > 0 {
		return b.Field.ContainsCircle(b.Pos, b.Radius)
	}
	return true
}

func (b *Bullet) Collider() Collider {
	return Collider{Layer: b.Layer, Mask: b.Mask, Pos: b.Pos, Radius: b.Radius}
}

// DealDamage spends the bullet.
func (b *Bullet) DealDamage(_ platformcore.Vec2, _ float32) error {
	b.Health = 0
	return nil
}

func (b *Bullet) Draw(dst platformcore.Surface) {
	dst.FillCircle(b.Pos, b.Radius, b.Color)
}
