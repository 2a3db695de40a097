package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorbang/internal/audio"
	"github.com/vovakirdan/colorbang/internal/core"
	"github.com/vovakirdan/colorbang/internal/platform/window"
	"github.com/vovakirdan/colorbang/internal/registry"
)

var (
	flagFixedStep bool
	flagScale     float64
)

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Open a window and play with anti-aliased graphics. The mode defaults
to "colorbang".

Controls:
  A/D, Left/Right  - Rotate
  W/S, Up/Down     - Thrust forward/back
  Left mouse       - Fire toward the cursor
  Space            - Fire forward
  Right mouse/C    - Hold to charge, release for the super bang
  P/Esc            - Pause
  R                - Restart
  Q                - Quit

Examples:
  colorbang window
  colorbang window colorbang_chaos --scale 0.75
  colorbang window --fixed-step --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagFixedStep, "fixed-step", false, "Advance by 1/fps per frame instead of measured time")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the play field")
}

func runWindow(cmd *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging("")
	if err != nil {
		return err
	}
	defer closeLog()

	if err := configureGames(); err != nil {
		return err
	}

	game, err := registry.CreateRealtime(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	log.Info("opening window", "game", gameID, "fps", flagFPS, "fixed_step", flagFixedStep)
	return window.Run(game, store, cfg, window.Options{
		Player:    playerName(),
		FixedStep: flagFixedStep,
		Scale:     flagScale,
		Sounds:    audio.Open(flagVolume),
		Logger:    log.Default(),
	})
}
