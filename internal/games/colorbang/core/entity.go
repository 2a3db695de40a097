// Package core is the Color Bang simulation: entities, the layer/mask
// collision predicate, impulse response, spawn routines and the per-frame
// World orchestrator. It draws through platformcore.Surface and never
// touches a terminal, window or audio device.
package core

import (
	"errors"

	platformcore "github.com/vovakirdan/colorbang/internal/core"
)

// Collision layers. An entity broadcasts its Layer and reacts to the layers
// in its Mask.
const (
	LayerNone   uint8 = 0
	LayerPlayer uint8 = 1 << 0
	LayerEnemy  uint8 = 1 << 1
	LayerBullet uint8 = 1 << 2
)

var (
	// ErrZeroMass is returned when an impulse is requested for two massless bodies.
	ErrZeroMass = errors.New("colorbang: combined mass is zero")

	// ErrDegenerateDirection is returned when a spawn routine is asked to aim
	// along a zero-length vector.
	ErrDegenerateDirection = errors.New("colorbang: zero-length direction")
)

// Collider is a value copy of the fields the collision predicate reads.
type Collider struct {
	Layer  uint8
	Mask   uint8
	Pos    platformcore.Vec2
	Radius float32
}

// Entity is the capability set shared by Player, Enemy, Bullet and Particle.
type Entity interface {
	// Draw renders the entity. It must not mutate state.
	Draw(dst platformcore.Surface)

	// Update advances the entity by dt seconds and reports whether it
	// should be kept for the next frame.
	Update(dt float32) bool

	// Collider returns a copy of the entity's collision attributes.
	Collider() Collider

	// DealDamage applies a hit from a body moving at vel with the given mass.
	DealDamage(vel platformcore.Vec2, mass float32) error
}

var (
	_ Entity = (*Player)(nil)
	_ Entity = (*Enemy)(nil)
	_ Entity = (*Bullet)(nil)
	_ Entity = (*Particle)(nil)
)
