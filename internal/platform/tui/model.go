package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorbang/internal/config"
	"github.com/vovakirdan/colorbang/internal/core"
	"github.com/vovakirdan/colorbang/internal/registry"
	"github.com/vovakirdan/colorbang/internal/storage"
)

// Options tune a terminal session.
type Options struct {
	Player    string           // Name stored with saved scores
	HoldTicks int              // Steering latch length, see KeyMapper
	HUDRows   int              // Screen rows above the field
	Sounds    core.SoundPlayer // Sound sink; nil means silent
	Logger    *log.Logger      // Session logger; nil means log.Default()
}

func (o Options) withDefaults() Options {
	if o.Player == "" {
		o.Player = "anonymous"
	}
	if o.HUDRows <= 0 {
		o.HUDRows = 1
	}
	if o.Sounds == nil {
		o.Sounds = core.SilentPlayer{}
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// Model is the Bubble Tea model for running a game in the terminal.
// The simulated field has a fixed size; resizing only changes how many
// cells it is rasterized onto.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	opts       Options
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	opts = opts.withDefaults()

	if a, ok := game.(registry.Audible); ok {
		a.SetSoundPlayer(opts.Sounds)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(opts.HoldTicks),
		opts:   opts,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "err", err)
		} else {
			m.opts.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keys.HandleKey(msg) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse turns a left click into a shot aimed at the clicked cell.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	rt, ok := m.game.(registry.Realtime)
	if !ok || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	surface := core.NewScreenSurface(m.screen, rt.Field(), m.opts.HUDRows)
	m.keys.Aim(surface.ToField(msg.X, msg.Y))
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.keys.Frame()
	wasOver := m.gameState.GameOver

	result := m.game.Step(frame)
	m.gameState = result.State

	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
		m.keys.Reset()
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished run. Failures are logged and the
// session continues.
func (m Model) saveScore() {
	st := m.gameState
	if m.store == nil || st.Score <= 0 {
		return
	}
	id, err := m.store.SaveScore(m.game.ID(), m.opts.Player, st.Score, st.Wave)
	if err != nil {
		m.opts.Logger.Error("saving score", "game", m.game.ID(), "err", err)
		return
	}
	m.opts.Logger.Info("score saved", "id", id, "game", m.game.ID(), "player", m.opts.Player, "score", st.Score, "wave", st.Wave)
}

// saveScreenshot writes the current screen as plain text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(config.UserDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for game on the local terminal.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
