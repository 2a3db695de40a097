package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/colorbang/internal/audio"
	"github.com/vovakirdan/colorbang/internal/config"
	"github.com/vovakirdan/colorbang/internal/core"
	"github.com/vovakirdan/colorbang/internal/platform/tui"
	"github.com/vovakirdan/colorbang/internal/registry"
)

var flagHoldTicks int

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The mode defaults to "colorbang".

Controls:
  A/D, Left/Right  - Rotate
  W/S, Up/Down     - Thrust forward/back
  Space/F          - Fire forward
  Left click       - Fire toward the clicked cell
  C                - Toggle charging; toggle again to release the super bang
  P/Esc            - Pause
  R                - Restart
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Terminals report key presses but not releases, so steering keys stay down
for a few ticks after each press (see --hold-ticks).

Difficulty options:
  easy   - Bigger player, smaller waves, more charges
  normal - Default settings
  hard   - Smaller player, bigger waves, fewer charges
  fixed  - No difficulty progression

Examples:
  colorbang play
  colorbang play colorbang_chaos
  colorbang play --difficulty hard
  colorbang play --config ./my-colorbang.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", tui.DefaultHoldTicks, "Ticks a steering key stays down after a press")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	// The alternate screen owns stderr while playing.
	closeLog, err := setupLogging(filepath.Join(config.UserDir(), "colorbang.log"))
	if err != nil {
		return err
	}
	defer closeLog()

	if err := configureGames(); err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	log.Info("starting terminal session", "game", gameID, "size", fmt.Sprintf("%dx%d", width, height), "fps", flagFPS)
	sounds := audio.Open(flagVolume)
	if err := tui.Run(game, store, cfg, tui.Options{
		Player:    playerName(),
		HoldTicks: flagHoldTicks,
		Sounds:    sounds,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
