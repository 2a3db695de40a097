// Package window runs Color Bang in a desktop window through Ebitengine.
// Shapes are drawn with anti-aliased vector primitives at field resolution
// and the simulation advances by the measured frame time.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/colorbang/internal/core"
	"github.com/vovakirdan/colorbang/internal/registry"
	"github.com/vovakirdan/colorbang/internal/storage"
)

// maxFrameDelta caps a single step so a stalled frame cannot launch
// entities across the field.
const maxFrameDelta = 0.1

var background = color.NRGBA{A: 0xff}

// Options tune a window session.
type Options struct {
	Player    string           // Name stored with saved scores
	FixedStep bool             // Step by 1/TickRate instead of the measured frame time
	Scale     float64          // Window size relative to the field
	Sounds    core.SoundPlayer // Sound sink; nil means silent
	Logger    *log.Logger      // nil means log.Default()
}

// Game adapts a realtime game to ebiten.Game.
type Game struct {
	game       registry.Realtime
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	input      inputSource
	watch      *core.Stopwatch
	state      core.GameState
	scoreSaved bool
}

// New creates the window adapter and resets the game.
func New(game registry.Realtime, store *storage.Store, cfg core.RuntimeConfig, opts Options) *Game {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Player == "" {
		opts.Player = "anonymous"
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if a, ok := game.(registry.Audible); ok && opts.Sounds != nil {
		a.SetSoundPlayer(opts.Sounds)
	}

	game.Reset(cfg)
	return &Game{
		game:   game,
		store:  store,
		config: cfg,
		opts:   opts,
		input:  ebitenInput{},
		watch:  core.NewStopwatch(),
		state:  game.State(),
	}
}

// Update advances the simulation by one frame.
func (g *Game) Update() error {
	frame := readFrame(g.input, g.game.Field())
	if frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	dt := g.config.TickDelta()
	if !g.opts.FixedStep {
		dt = g.watch.Delta(maxFrameDelta)
	}

	wasOver := g.state.GameOver
	g.state = g.game.StepDelta(frame, dt).State
	if wasOver && !g.state.GameOver {
		g.scoreSaved = false
	}
	if g.state.GameOver && !g.scoreSaved {
		g.saveScore()
		g.scoreSaved = true
	}
	return nil
}

func (g *Game) saveScore() {
	if g.store == nil || g.state.Score <= 0 {
		return
	}
	if _, err := g.store.SaveScore(g.game.ID(), g.opts.Player, g.state.Score, g.state.Wave); err != nil {
		g.opts.Logger.Error("saving score", "game", g.game.ID(), "err", err)
		return
	}
	g.opts.Logger.Info("score saved", "game", g.game.ID(), "score", g.state.Score, "wave", g.state.Wave)
}

// Draw renders the world and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.game.Draw(imageSurface{dst: screen, field: g.game.Field()})

	text := g.game.HUD()
	switch {
	case g.state.GameOver:
		text += fmt.Sprintf("\nGAME OVER  score %d, wave %d.  R to restart, Q to quit", g.state.Score, g.state.Wave)
	case g.state.Paused:
		text += "\nPAUSED"
	}
	ebitenutil.DebugPrint(screen, text)
}

// Layout returns the field size; the window scales it to fit.
func (g *Game) Layout(_, _ int) (int, int) {
	f := g.game.Field()
	return int(f.Width()), int(f.Height())
}

// Run opens a window and plays game until it is closed or the player quits.
func Run(game registry.Realtime, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	g := New(game, store, cfg, opts)
	w, h := g.Layout(0, 0)

	ebiten.SetWindowSize(int(float64(w)*g.opts.Scale), int(float64(h)*g.opts.Scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
