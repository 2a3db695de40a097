package core

import (
	platformcore "github.com/vovakirdan/colorbang/internal/core"
)

// MinParticleAlpha is the opacity at or below which a fading particle is dropped.
const MinParticleAlpha = 0.01

// RetainFunc decides whether a particle survives the frame.
type RetainFunc func(p *Particle) bool

// RetainVisible keeps particles that are still perceptibly opaque.
func RetainVisible(p *Particle) bool {
	return p.Color.A > MinParticleAlpha
}

// RetainLarger keeps particles whose radius is above min.
func RetainLarger(min float32) RetainFunc {
	return func(p *Particle) bool {
		return p.Radius > min
	}
}

// RetainBoth keeps particles that are visible and larger than min.
func RetainBoth(min float32) RetainFunc {
	return func(p *Particle) bool {
		return RetainVisible(p) && p.Radius > min
	}
}

// Particle is a purely visual fragment. It never collides.
//
// Decay factors below 1 are applied once per update, independent of dt.
// A factor of 1 or more disables that decay.
type Particle struct {
	Pos         platformcore.Vec2
	Vel         platformcore.Vec2
	Radius      float32
	Color       platformcore.Color
	Drag        float32
	AlphaDecay  float32
	RadiusDecay float32
	Retain      RetainFunc
}

func (p *Particle) Update(dt float32) bool {
	if p.AlphaDecay < 1 {
		p.Color.A *= p.AlphaDecay
	}
	if p.RadiusDecay < 1 {
		p.Radius *= p.RadiusDecay
	}
	p.Vel = p.Vel.Scale(p.Drag)
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	if p.Retain == nil {
		return RetainVisible(p)
	}
	return p.Retain(p)
}

func (p *Particle) Collider() Collider {
	return Collider{Layer: LayerNone, Mask: LayerNone, Pos: p.Pos, Radius: p.Radius}
}

func (p *Particle) DealDamage(_ platformcore.Vec2, _ float32) error {
	return nil
}

func (p *Particle) Draw(dst platformcore.Surface) {
	dst.FillCircle(p.Pos, p.Radius, p.Color)
}

// BurstParams shapes a particle burst.
type BurstParams struct {
	Count       int
	MinSpeed    float32
	MaxSpeed    float32
	Radius      float32
	Drag        float32
	AlphaDecay  float32
	RadiusDecay float32
	MinRadius   float32 // used when RadiusDecay is active
}

// Retain picks the retention rule matching the decays that are enabled.
func (b BurstParams) Retain() RetainFunc {
	switch {
	case b.RadiusDecay < 1 && b.AlphaDecay < 1:
		return RetainBoth(b.MinRadius)
	case b.RadiusDecay < 1:
		return RetainLarger(b.MinRadius)
	default:
		return RetainVisible
	}
}

// SpawnBurst appends b.Count particles of color c flying outward from at.
func SpawnBurst(dst []Particle, rng Rand, at platformcore.Vec2, c platformcore.Color, b BurstParams) []Particle {
	retain := b.Retain()
	span := b.MaxSpeed - b.MinSpeed
	for i := 0; i < b.Count; i++ {
		angle := randomAngle(rng)
		speed := randomRange(rng, b.MinSpeed, span)
		dst = append(dst, Particle{
			Pos:         at,
			Vel:         platformcore.FromAngle(angle).Scale(speed),
			Radius:      b.Radius,
			Color:       c,
			Drag:        b.Drag,
			AlphaDecay:  b.AlphaDecay,
			RadiusDecay: b.RadiusDecay,
			Retain:      retain,
		})
	}
	return dst
}
