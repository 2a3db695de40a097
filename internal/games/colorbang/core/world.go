package core

import (
	platformcore "github.com/vovakirdan/colorbang/internal/core"
)

// WorldConfig holds the tunables the orchestrator needs each frame.
type WorldConfig struct {
	Field         platformcore.Bounds
	SelfCollision bool

	PlayerBurst BurstParams // on player contact, player color
	BulletBurst BurstParams // on bullet hit, enemy color
	EnemyBurst  BurstParams // on enemy contact, enemy color
}

// DefaultWorldConfig returns the stock bursts over the given field.
func DefaultWorldConfig(field platformcore.Bounds) WorldConfig {
	burst := BurstParams{
		MinSpeed:    40,
		MaxSpeed:    220,
		Radius:      3,
		Drag:        0.96,
		AlphaDecay:  0.94,
		RadiusDecay: 0.98,
		MinRadius:   0.5,
	}
	player, bullet, enemy := burst, burst, burst
	player.Count = 20
	bullet.Count = 40
	enemy.Count = 10
	enemy.Radius = 2
	enemy.AlphaDecay = 1
	enemy.RadiusDecay = 0.95
	return WorldConfig{
		Field:       field,
		PlayerBurst: player,
		BulletBurst: bullet,
		EnemyBurst:  enemy,
	}
}

// Burst describes one particle burst spawned during a frame.
type Burst struct {
	At    platformcore.Vec2
	Count int
	Color platformcore.Color
}

// FrameReport summarizes what happened during one Step.
type FrameReport struct {
	PlayerHits       int
	BulletHits       int
	EnemyContacts    int
	EnemiesDestroyed int
	BulletsExpired   int
	Bursts           []Burst
	Sounds           []platformcore.Sound
	Violations       []error
}

// World owns every entity collection and the super-bang charge state.
type World struct {
	cfg WorldConfig
	rng Rand

	Player    *Player
	Enemies   []Enemy
	Bullets   []Bullet
	Particles []Particle
	Charge    ChargeState

	pending []platformcore.Sound
}

// NewWorld creates an empty world around player.
func NewWorld(cfg WorldConfig, rng Rand, player *Player) *World {
	return &World{cfg: cfg, rng: rng, Player: player}
}

// Config returns the world's configuration.
func (w *World) Config() WorldConfig {
	return w.cfg
}

// SpawnWave adds n enemies aimed at the player.
func (w *World) SpawnWave(n int) error {
	var err error
	w.Enemies, err = SpawnEnemies(w.Enemies, n, w.rng, w.Player.Pos, w.cfg.Field, w.cfg.SelfCollision)
	return err
}

// Fire shoots one bullet from the player toward target.
func (w *World) Fire(target platformcore.Vec2) error {
	b, err := FireAt(w.Player.Pos, target, w.cfg.Field)
	if err != nil {
		return err
	}
	w.Bullets = append(w.Bullets, b)
	w.pending = append(w.pending, platformcore.SoundFire)
	return nil
}

// FireForward shoots one bullet along the player's heading.
func (w *World) FireForward() {
	w.Bullets = append(w.Bullets, FireAlong(w.Player.Pos, w.Player.Angle, w.cfg.Field))
	w.pending = append(w.pending, platformcore.SoundFire)
}

// UpdateCharge feeds the charge button into the charge machine and releases
// a super bang from the player's position when the hold ends. It returns the
// number of bullets released, zero if none.
func (w *World) UpdateCharge(held bool) uint32 {
	n, released := StepCharge(&w.Charge, held)
	if !released {
		return 0
	}
	w.Bullets = SuperBang(w.Bullets, w.rng, int(n), w.Player.Pos, w.cfg.Field)
	w.pending = append(w.pending, platformcore.SoundSuperBang)
	return n
}

// Cleared reports whether the current wave has no enemies left.
func (w *World) Cleared() bool {
	return len(w.Enemies) == 0
}

type bulletHit struct {
	enemy, bullet int
}

type enemyContact struct {
	a, b int
}

// hits is the detection result for one frame. Indices refer to the
// collections as they were when detection ran.
type hits struct {
	player   []int
	bullets  []bulletHit
	contacts []enemyContact
}

// detect tests every pair against frozen collider copies. A bullet is
// claimed by the first enemy in iteration order that overlaps it.
func (w *World) detect() hits {
	var h hits
	player := w.Player.Collider()

	enemies := make([]Collider, len(w.Enemies))
	for i := range w.Enemies {
		enemies[i] = w.Enemies[i].Collider()
	}
	bullets := make([]Collider, len(w.Bullets))
	for i := range w.Bullets {
		bullets[i] = w.Bullets[i].Collider()
	}
	claimed := make([]bool, len(bullets))

	for i, e := range enemies {
		if w.Player.Alive() && Overlaps(e, player) {
			h.player = append(h.player, i)
		}
		for j, b := range bullets {
			if claimed[j] || !Overlaps(e, b) {
				continue
			}
			claimed[j] = true
			h.bullets = append(h.bullets, bulletHit{enemy: i, bullet: j})
		}
	}

	if w.cfg.SelfCollision {
		for i := range enemies {
			for j := i + 1; j < len(enemies); j++ {
				if Overlaps(enemies[i], enemies[j]) {
					h.contacts = append(h.contacts, enemyContact{a: i, b: j})
				}
			}
		}
	}
	return h
}

// Step advances the world by dt seconds.
//
// Collisions are detected on a snapshot of every collider before any damage
// is applied, so the outcome does not depend on the order in which damage
// lands. Enemies, bullets and particles are then advanced and filtered in
// that order.
func (w *World) Step(dt float32) FrameReport {
	var rep FrameReport
	rep.Sounds = append(rep.Sounds, w.pending...)
	w.pending = w.pending[:0]

	w.Player.Update(dt)

	h := w.detect()
	w.apply(h, &rep)

	kept := w.Enemies[:0]
	for i := range w.Enemies {
		e := w.Enemies[i]
		if e.Update(dt) {
			kept = append(kept, e)
			continue
		}
		rep.EnemiesDestroyed++
		rep.Sounds = append(rep.Sounds, platformcore.SoundExplode)
	}
	w.Enemies = kept

	bullets := w.Bullets[:0]
	for i := range w.Bullets {
		b := w.Bullets[i]
		if b.Update(dt) {
			bullets = append(bullets, b)
			continue
		}
		rep.BulletsExpired++
	}
	w.Bullets = bullets

	particles := w.Particles[:0]
	for i := range w.Particles {
		p := w.Particles[i]
		if p.Update(dt) {
			particles = append(particles, p)
		}
	}
	w.Particles = particles

	return rep
}

func (w *World) apply(h hits, rep *FrameReport) {
	for _, i := range h.player {
		e := &w.Enemies[i]
		pv, pm := w.Player.Vel, w.Player.Radius
		ev, em := e.Vel, e.Radius
		w.damage(rep, e, pv, pm)
		w.damage(rep, w.Player, ev, em)
		w.burst(rep, e.Pos, w.Player.Color, w.cfg.PlayerBurst)
		rep.PlayerHits++
		rep.Sounds = append(rep.Sounds, platformcore.SoundBlip)
	}

	for _, hit := range h.bullets {
		e := &w.Enemies[hit.enemy]
		b := &w.Bullets[hit.bullet]
		bv, bm := b.Vel, b.Radius
		ev, em := e.Vel, e.Radius
		w.damage(rep, e, bv, bm)
		w.damage(rep, b, ev, em)
		w.burst(rep, e.Pos, e.Color, w.cfg.BulletBurst)
		rep.BulletHits++
		rep.Sounds = append(rep.Sounds, platformcore.SoundBlip)
	}

	for _, c := range h.contacts {
		a, b := &w.Enemies[c.a], &w.Enemies[c.b]
		av, am := a.Vel, a.Radius
		bv, bm := b.Vel, b.Radius
		w.damage(rep, a, bv, bm)
		w.damage(rep, b, av, am)
		w.burst(rep, a.Pos, a.Color, w.cfg.EnemyBurst)
		rep.EnemyContacts++
	}
}

func (w *World) damage(rep *FrameReport, target Entity, vel platformcore.Vec2, mass float32) {
	if err := target.DealDamage(vel, mass); err != nil {
		rep.Violations = append(rep.Violations, err)
	}
}

func (w *World) burst(rep *FrameReport, at platformcore.Vec2, c platformcore.Color, p BurstParams) {
	if p.Count <= 0 {
		return
	}
	w.Particles = SpawnBurst(w.Particles, w.rng, at, c, p)
	rep.Bursts = append(rep.Bursts, Burst{At: at, Count: p.Count, Color: c})
}

// Draw renders particles beneath bullets, enemies and the player.
func (w *World) Draw(dst platformcore.Surface) {
	for i := range w.Particles {
		w.Particles[i].Draw(dst)
	}
	for i := range w.Bullets {
		w.Bullets[i].Draw(dst)
	}
	for i := range w.Enemies {
		w.Enemies[i].Draw(dst)
	}
	w.Player.Draw(dst)
}
