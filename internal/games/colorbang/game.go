// Package colorbang implements Color Bang, a top-down shooter where the
// player fends off waves of drifting colored orbs. Enemies shrink with
// every hit and burst into particles; cleared waves bank charges for the
// super bang, an omnidirectional spray of bullets.
package colorbang

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorbang/internal/config"
	platformcore "github.com/vovakirdan/colorbang/internal/core"
	"github.com/vovakirdan/colorbang/internal/games/colorbang/core"
	"github.com/vovakirdan/colorbang/internal/registry"
)

// Mode selects the enemy rule set.
type Mode int

const (
	ModeClassic Mode = iota // enemies pass through each other
	ModeChaos               // enemies collide with each other
)

// HUDRows is the number of screen rows the terminal HUD occupies.
const HUDRows = 1

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

func init() {
	registry.Register("colorbang", func() registry.Game {
		return New()
	})
	registry.Register("colorbang_chaos", func() registry.Game {
		return NewChaos()
	})
}

// Game implements the Color Bang game logic.
type Game struct {
	mode Mode

	// Configuration
	runtime    platformcore.RuntimeConfig
	cfg        config.ColorBangConfig
	difficulty *config.DifficultyManager

	// Simulation
	rng   *rand.Rand
	world *core.World
	field platformcore.Bounds

	// Game state
	score        int
	wave         int
	tick         uint64
	gameOver     bool
	paused       bool
	fireCooldown int
	lastReport   core.FrameReport

	sounds platformcore.SoundPlayer
	logger *log.Logger
}

// New creates a new Color Bang game instance.
func New() *Game {
	return &Game{mode: ModeClassic, sounds: platformcore.SilentPlayer{}}
}

// NewChaos creates a Color Bang instance where enemies also collide with
// each other.
func NewChaos() *Game {
	return &Game{mode: ModeChaos, sounds: platformcore.SilentPlayer{}}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeChaos {
		return "colorbang_chaos"
	}
	return "colorbang"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeChaos {
		return "Color Bang (Chaos)"
	}
	return "Color Bang"
}

// SetSoundPlayer routes sound events to p. A nil p silences the game.
func (g *Game) SetSoundPlayer(p platformcore.SoundPlayer) {
	if p == nil {
		p = platformcore.SilentPlayer{}
	}
	g.sounds = p
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	g.runtime = runtime
	g.logger = log.WithPrefix(g.ID())

	// Load game config
	cfg, err := config.LoadColorBang(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultColorBangConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyColorBangPreset(&cfg, difficultyPreset)
	}
	if g.mode == ModeChaos {
		cfg.Enemies.SelfCollision = true
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.field = platformcore.NewBounds(float32(cfg.Field.Width), float32(cfg.Field.Height))
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	player := core.NewPlayer(g.field.Center(), float32(cfg.Player.Radius), g.field)
	player.Drag = float32(cfg.Player.Drag)
	g.world = core.NewWorld(worldConfig(cfg, g.field), g.rng, player)

	g.score = 0
	g.wave = 0
	g.tick = 0
	g.gameOver = false
	g.paused = false
	g.fireCooldown = 0
	g.lastReport = core.FrameReport{}

	g.nextWave()
}

// worldConfig translates the YAML config into simulation parameters.
func worldConfig(cfg config.ColorBangConfig, field platformcore.Bounds) core.WorldConfig {
	return core.WorldConfig{
		Field:         field,
		SelfCollision: cfg.Enemies.SelfCollision,
		PlayerBurst:   burstParams(cfg.Particles.PlayerHit),
		BulletBurst:   burstParams(cfg.Particles.BulletHit),
		EnemyBurst:    burstParams(cfg.Particles.EnemyContact),
	}
}

func burstParams(b config.BurstConfig) core.BurstParams {
	return core.BurstParams{
		Count:       b.Count,
		MinSpeed:    float32(b.MinSpeed),
		MaxSpeed:    float32(b.MaxSpeed),
		Radius:      float32(b.Radius),
		Drag:        float32(b.Drag),
		AlphaDecay:  float32(b.AlphaDecay),
		RadiusDecay: float32(b.RadiusDecay),
		MinRadius:   float32(b.MinRadius),
	}
}

// nextWave spawns the next batch of enemies and banks its charges.
func (g *Game) nextWave() {
	g.wave++

	n := g.cfg.Waves.Initial + (g.wave-1)*g.cfg.Waves.PerWave
	n = g.difficulty.EnemyCount(n, g.score, g.wave)
	if g.cfg.Waves.Max > 0 {
		n = min(n, g.cfg.Waves.Max)
	}

	first := len(g.world.Enemies)
	if err := g.world.SpawnWave(n); err != nil {
		g.logger.Warn("wave spawn incomplete", "wave", g.wave, "err", err)
	}
	speed := float32(g.difficulty.EnemySpeed(g.score, g.wave))
	for i := first; i < len(g.world.Enemies); i++ {
		g.world.Enemies[i].Vel = g.world.Enemies[i].Vel.Scale(speed)
	}

	charges := g.wave * g.cfg.Weapon.ChargesPerWave
	g.world.Charge.Bank(uint32(max(charges, 0))) //#nosec G115 -- clamped non-negative
	g.logger.Debug("wave started", "wave", g.wave, "enemies", n, "banked", g.world.Charge.Banked)
}

// Step advances the game by one fixed tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	return g.StepDelta(in, g.runtime.TickDelta())
}

// StepDelta advances the game by dt seconds. Frontends with a variable
// frame rate call this directly.
func (g *Game) StepDelta(in platformcore.InputFrame, dt float32) platformcore.StepResult {
	if in.Has(platformcore.ActionRestart) {
		g.Reset(g.runtime)
		return platformcore.StepResult{State: g.State()}
	}

	if g.gameOver {
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	g.tick++
	g.steer(in, dt)
	g.shoot(in)

	if n := g.world.UpdateCharge(in.Has(platformcore.ActionCharge)); n > 0 {
		g.logger.Debug("super bang", "bullets", n, "banked", g.world.Charge.Banked)
	}

	rep := g.world.Step(dt)
	g.lastReport = rep
	g.score += rep.BulletHits + 10*rep.EnemiesDestroyed

	for _, err := range rep.Violations {
		g.logger.Warn("collision response skipped", "err", err)
	}
	for _, s := range rep.Sounds {
		g.sounds.Play(s)
	}

	if !g.world.Player.Alive() {
		g.gameOver = true
		g.logger.Info("game over", "score", g.score, "wave", g.wave)
	} else if g.world.Cleared() {
		g.logger.Debug("wave cleared", "wave", g.wave, "score", g.score)
		g.nextWave()
	}

	return platformcore.StepResult{State: g.State(), Sounds: rep.Sounds}
}

func (g *Game) steer(in platformcore.InputFrame, dt float32) {
	p := g.world.Player
	pc := g.cfg.Player

	p.Rot = 0
	if in.Has(platformcore.ActionRotateLeft) {
		p.Rot -= float32(pc.RotSpeed)
	}
	if in.Has(platformcore.ActionRotateRight) {
		p.Rot += float32(pc.RotSpeed)
	}
	if in.Has(platformcore.ActionThrust) {
		p.Accelerate(float32(pc.Accel), float32(pc.MaxSpeed), dt)
	}
	if in.Has(platformcore.ActionReverse) {
		p.Accelerate(-float32(pc.Accel), float32(pc.MaxSpeed), dt)
	}
}

func (g *Game) shoot(in platformcore.InputFrame) {
	if g.fireCooldown > 0 {
		g.fireCooldown--
	}
	if !in.Has(platformcore.ActionFire) || g.fireCooldown > 0 {
		return
	}
	g.fireCooldown = g.cfg.Weapon.FireCooldown

	if in.HasAim {
		if err := g.world.Fire(in.Aim); err == nil {
			return
		}
	}
	g.world.FireForward()
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		Wave:     g.wave,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Field returns the play field in world units.
func (g *Game) Field() platformcore.Bounds {
	return g.field
}

// Charging reports whether the super bang is being charged.
func (g *Game) Charging() bool {
	return g.world != nil && g.world.Charge.Charging
}

// LastReport returns the frame report of the most recent simulated tick.
func (g *Game) LastReport() core.FrameReport {
	return g.lastReport
}
