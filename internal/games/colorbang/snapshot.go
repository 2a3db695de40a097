package colorbang

import "math"

// fixedScale converts float positions to integers for stable snapshots.
const fixedScale = 1000

// Snapshot contains the game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick     uint64
	Score    int
	Wave     int
	GameOver bool
	Paused   bool

	// Player (fixed-point): X, Y, Radius, Angle, Speed
	Player [5]int

	// Charge state
	Banked      uint32
	Accumulator uint32
	Charging    bool

	// Each enemy is 5 ints: X, Y, VX, VY, Radius (fixed-point)
	EnemyCount int
	EnemyData  []int

	// Each bullet is 3 ints: X, Y, Health
	BulletCount int
	BulletData  []int

	ParticleCount int
}

func fixed(v float32) int {
	return int(math.Round(float64(v) * fixedScale))
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	p := w.Player

	enemyData := make([]int, 0, len(w.Enemies)*5)
	for _, e := range w.Enemies {
		enemyData = append(enemyData, fixed(e.Pos.X), fixed(e.Pos.Y), fixed(e.Vel.X), fixed(e.Vel.Y), fixed(e.Radius))
	}
	bulletData := make([]int, 0, len(w.Bullets)*3)
	for _, b := range w.Bullets {
		bulletData = append(bulletData, fixed(b.Pos.X), fixed(b.Pos.Y), int(b.Health))
	}

	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Wave:     g.wave,
		GameOver: g.gameOver,
		Paused:   g.paused,

		Player: [5]int{fixed(p.Pos.X), fixed(p.Pos.Y), fixed(p.Radius), fixed(p.Angle), fixed(p.Speed)},

		Banked:      w.Charge.Banked,
		Accumulator: w.Charge.Accumulator,
		Charging:    w.Charge.Charging,

		EnemyCount:  len(w.Enemies),
		EnemyData:   enemyData,
		BulletCount: len(w.Bullets),
		BulletData:  bulletData,

		ParticleCount: len(w.Particles),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)  //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.GameOver)
	h = h*31 + boolBit(snap.Paused)
	for _, v := range snap.Player {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Banked)
	h = h*31 + uint64(snap.Accumulator)
	h = h*31 + boolBit(snap.Charging)
	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BulletData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.ParticleCount) //#nosec G115 -- hash computation
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
