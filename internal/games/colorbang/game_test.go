package colorbang

import (
	"strings"
	"testing"

	platformcore "github.com/vovakirdan/colorbang/internal/core"
	"github.com/vovakirdan/colorbang/internal/registry"
)

func testRuntime(seed int64) platformcore.RuntimeConfig {
	return platformcore.RuntimeConfig{
		ScreenW:  100,
		ScreenH:  40,
		TickRate: 60,
		Seed:     seed,
	}
}

type recordingPlayer struct {
	played []platformcore.Sound
}

func (r *recordingPlayer) Play(s platformcore.Sound) {
	r.played = append(r.played, s)
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New()
		g.Reset(testRuntime(42))
		for i := 0; i < 600; i++ {
			in := platformcore.NewInputFrame()
			if i%3 == 0 {
				in.Set(platformcore.ActionRotateRight)
			}
			if i%7 == 0 {
				in.Set(platformcore.ActionFire)
			}
			if i%120 < 10 {
				in.Set(platformcore.ActionCharge)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: (%d, %d) vs (%d, %d)", snap1.Score, snap1.Tick, snap2.Score, snap2.Tick)
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	state := g.State()
	if state.Score != 0 || state.Wave != 1 || state.GameOver || state.Paused {
		t.Errorf("unexpected initial state %+v", state)
	}
	if len(g.world.Enemies) != g.cfg.Waves.Initial {
		t.Errorf("expected %d enemies in wave 1, got %d", g.cfg.Waves.Initial, len(g.world.Enemies))
	}
	if g.world.Charge.Banked != uint32(g.cfg.Weapon.ChargesPerWave) {
		t.Errorf("expected %d banked charges, got %d", g.cfg.Weapon.ChargesPerWave, g.world.Charge.Banked)
	}
	if g.world.Player.Pos != g.Field().Center() {
		t.Errorf("player should start centered, got %v", g.world.Player.Pos)
	}
}

func TestPauseToggle(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	pause := platformcore.NewInputFrame()
	pause.Set(platformcore.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	before := g.Snapshot()
	g.Step(platformcore.NewInputFrame())
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("paused game should not advance")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("expected unpaused")
	}
}

func TestWaveProgression(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))
	banked := g.world.Charge.Banked

	g.world.Enemies = g.world.Enemies[:0]
	g.Step(platformcore.NewInputFrame())

	if g.State().Wave != 2 {
		t.Fatalf("expected wave 2, got %d", g.State().Wave)
	}
	want := g.difficulty.EnemyCount(g.cfg.Waves.Initial+g.cfg.Waves.PerWave, g.score, 2)
	if len(g.world.Enemies) != want {
		t.Errorf("expected %d enemies, got %d", want, len(g.world.Enemies))
	}
	if g.world.Charge.Banked != banked+uint32(2*g.cfg.Weapon.ChargesPerWave) {
		t.Errorf("expected %d banked, got %d", banked+uint32(2*g.cfg.Weapon.ChargesPerWave), g.world.Charge.Banked)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := New()
	g.Reset(testRuntime(4))
	g.world.Player.Radius = 0

	g.Step(platformcore.NewInputFrame())
	if !g.State().GameOver {
		t.Fatal("a player with no radius should end the game")
	}

	tick := g.tick
	g.Step(platformcore.NewInputFrame())
	if g.tick != tick {
		t.Error("game over should freeze the simulation")
	}

	restart := platformcore.NewInputFrame()
	restart.Set(platformcore.ActionRestart)
	g.Step(restart)
	if g.State().GameOver || g.State().Score != 0 || g.world.Player.Radius <= 0 {
		t.Errorf("restart did not reset: %+v", g.State())
	}
}

func TestScoringAndSounds(t *testing.T) {
	g := New()
	g.Reset(testRuntime(5))
	rec := &recordingPlayer{}
	g.SetSoundPlayer(rec)

	// Park a small enemy on top of a stationary bullet.
	g.world.Enemies = g.world.Enemies[:1]
	e := &g.world.Enemies[0]
	e.Pos = platformcore.V(100, 100)
	e.Vel = platformcore.Vec2{}
	e.Radius = 8
	if err := g.world.Fire(platformcore.V(100, 100)); err != nil {
		t.Fatalf("Fire: %v", err)
	}
	g.world.Bullets[len(g.world.Bullets)-1].Pos = platformcore.V(100, 100)

	res := g.Step(platformcore.NewInputFrame())
	if g.State().Score != 11 {
		t.Errorf("expected score 11 (hit plus kill), got %d", g.State().Score)
	}
	want := []platformcore.Sound{platformcore.SoundFire, platformcore.SoundBlip, platformcore.SoundExplode}
	if len(rec.played) != len(want) || len(res.Sounds) != len(want) {
		t.Fatalf("expected sounds %v, got %v", want, rec.played)
	}
	for i := range want {
		if rec.played[i] != want[i] {
			t.Errorf("sound %d: expected %v, got %v", i, want[i], rec.played[i])
		}
	}
	if g.State().Wave != 2 {
		t.Errorf("clearing the last enemy should start wave 2, got %d", g.State().Wave)
	}
}

func TestSteering(t *testing.T) {
	g := New()
	g.Reset(testRuntime(6))
	start := g.world.Player.Pos

	in := platformcore.NewInputFrame()
	in.Set(platformcore.ActionThrust)
	for i := 0; i < 30; i++ {
		g.Step(in)
	}
	p := g.world.Player
	if p.Speed <= 0 || p.Pos.X <= start.X {
		t.Errorf("thrust should move the player along +x, speed %v pos %v", p.Speed, p.Pos)
	}

	in = platformcore.NewInputFrame()
	in.Set(platformcore.ActionRotateLeft)
	g.Step(in)
	if p.Angle >= 0 {
		t.Errorf("rotating left should decrease the angle, got %v", p.Angle)
	}
}

func TestFireCooldown(t *testing.T) {
	g := New()
	g.Reset(testRuntime(7))

	in := platformcore.NewInputFrame()
	in.Set(platformcore.ActionFire)
	for i := 0; i < g.cfg.Weapon.FireCooldown; i++ {
		g.Step(in)
	}
	if len(g.world.Bullets) != 1 {
		t.Errorf("expected one bullet within the cooldown, got %d", len(g.world.Bullets))
	}
	g.Step(in)
	if len(g.world.Bullets) != 2 {
		t.Errorf("expected a second bullet after the cooldown, got %d", len(g.world.Bullets))
	}
}

func TestSuperBangRelease(t *testing.T) {
	g := New()
	g.Reset(testRuntime(8))
	g.world.Enemies = g.world.Enemies[:1]
	g.world.Enemies[0].Pos = platformcore.V(5000, 5000)
	g.world.Enemies[0].Field = platformcore.Bounds{}

	hold := platformcore.NewInputFrame()
	hold.Set(platformcore.ActionCharge)
	for i := 0; i < 3; i++ {
		g.Step(hold)
	}
	if !g.Charging() {
		t.Fatal("expected charging")
	}
	g.Step(platformcore.NewInputFrame())
	if len(g.world.Bullets) != 30 {
		t.Errorf("expected 30 super bang bullets, got %d", len(g.world.Bullets))
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(9))
	screen := platformcore.NewScreen(100, 40)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Wave 1") {
		t.Errorf("HUD missing wave: %q", screen.Row(0))
	}
	cx, cy := platformcore.NewScreenSurface(screen, g.Field(), HUDRows).ToCell(g.world.Player.Pos)
	if screen.Get(cx, cy) == ' ' {
		t.Error("player not drawn at the field center")
	}

	g.world.Player.Radius = 0
	g.Step(platformcore.NewInputFrame())
	screen.Clear()
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over banner missing")
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"colorbang", "colorbang_chaos"} {
		game, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if game.ID() != id {
			t.Errorf("expected id %q, got %q", id, game.ID())
		}
	}

	chaos := NewChaos()
	chaos.Reset(testRuntime(1))
	if !chaos.world.Config().SelfCollision {
		t.Error("chaos mode should enable enemy self collision")
	}
}
