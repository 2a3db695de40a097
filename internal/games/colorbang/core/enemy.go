package core

import (
	"fmt"

	platformcore "github.com/vovakirdan/colorbang/internal/core"
)

const (
	// EnemyMinRadius is the size at or below which an enemy is removed.
	EnemyMinRadius = 3
	EnemyShrink    = 5

	enemySpawnMinDist   = 300
	enemySpawnDistSpan  = 100
	enemySpawnMinRadius = 10
	enemySpawnRadSpan   = 20
	enemySpawnMinSpeed  = 20
	enemySpawnSpeedSpan = 30
)

// Enemy drifts across the field, wrapping at the edges, and shrinks each
// time something hits it.
type Enemy struct {
	Pos    platformcore.Vec2
	Vel    platformcore.Vec2
	Radius float32
	Color  platformcore.Color
	Layer  uint8
	Mask   uint8
	Field  platformcore.Bounds
}

// EnemyMask returns the mask a spawned enemy gets.
func EnemyMask(selfCollide bool) uint8 {
	mask := LayerPlayer | LayerBullet
	if selfCollide {
		mask |= LayerEnemy
	}
	return mask
}

// SpawnEnemy places an enemy 300 to 400 units from target in a random
// direction, heading back toward target at 20 to 50 units per second.
func SpawnEnemy(rng Rand, target platformcore.Vec2, field platformcore.Bounds, selfCollide bool) (Enemy, error) {
	angle := randomAngle(rng)
	dist := randomRange(rng, enemySpawnMinDist, enemySpawnDistSpan)
	radius := randomRange(rng, enemySpawnMinRadius, enemySpawnRadSpan)
	color := randomColor(rng)

	pos := target.Add(platformcore.FromAngle(angle).Scale(dist))
	dir, ok := target.Sub(pos).Normalize()
	if !ok {
		return Enemy{}, ErrDegenerateDirection
	}
	speed := randomRange(rng, enemySpawnMinSpeed, enemySpawnSpeedSpan)

	return Enemy{
		Pos:    pos,
		Vel:    dir.Scale(speed),
		Radius: radius,
		Color:  color,
		Layer:  LayerEnemy,
		Mask:   EnemyMask(selfCollide),
		Field:  field,
	}, nil
}

// SpawnEnemies appends n enemies aimed at target to dst.
func SpawnEnemies(dst []Enemy, n int, rng Rand, target platformcore.Vec2, field platformcore.Bounds, selfCollide bool) ([]Enemy, error) {
	for i := 0; i < n; i++ {
		e, err := SpawnEnemy(rng, target, field, selfCollide)
		if err != nil {
			return dst, fmt.Errorf("spawn enemy %d of %d: %w", i+1, n, err)
		}
		dst = append(dst, e)
	}
	return dst, nil
}

// Update moves the enemy and wraps it once it has fully left the field.
func (e *Enemy) Update(dt float32) bool {
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))

	f := e.Field
	if f.Width() > 0 && f.Height() > 0 {
		switch {
		case e.Pos.X+e.Radius < f.MinX:
			e.Pos.X = f.MaxX - e.Radius
		case e.Pos.X-e.Radius > f.MaxX:
			e.Pos.X = f.MinX + e.Radius
		}
		switch {
		case e.Pos.Y+e.Radius < f.MinY:
			e.Pos.Y = f.MaxY - e.Radius
		case e.Pos.Y-e.Radius > f.MaxY:
			e.Pos.Y = f.MinY + e.Radius
		}
	}
	return e.Radius > EnemyMinRadius
}

func (e *Enemy) Collider() Collider {
	return Collider{Layer: e.Layer, Mask: e.Mask, Pos: e.Pos, Radius: e.Radius}
}

// DealDamage shrinks the enemy and then pushes it with the striker's
// momentum, using the shrunken radius as its own mass. A zero combined mass
// leaves the velocity untouched.
func (e *Enemy) DealDamage(vel platformcore.Vec2, mass float32) error {
	e.Radius = max(e.Radius-EnemyShrink, 0)
	v, err := Impulse(e.Vel, e.Radius, vel, mass)
	if err != nil {
		return fmt.Errorf("enemy at (%.1f, %.1f): %w", e.Pos.X, e.Pos.Y, err)
	}
	e.Vel = v
	return nil
}

func (e *Enemy) Draw(dst platformcore.Surface) {
	dst.FillCircle(e.Pos, e.Radius, e.Color)
}
