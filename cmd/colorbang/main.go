// colorbang is a 2D arcade shooter: steer a white circle, shoot the
// coloured ones, and release a super bang when surrounded.
//
// Usage:
//
//	colorbang list              - List available modes
//	colorbang play [mode]       - Play in the terminal
//	colorbang window [mode]     - Play in a desktop window
//	colorbang serve             - Start SSH server for remote play
//	colorbang scores [mode]     - Show high scores
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.colorbang/scores.db)
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorbang/internal/config"
	"github.com/vovakirdan/colorbang/internal/games/colorbang"
	"github.com/vovakirdan/colorbang/internal/registry"
	"github.com/vovakirdan/colorbang/internal/storage"
)

const defaultGame = "colorbang"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagVolume     float64
	flagPlayer     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colorbang",
	Short: "Color Bang - shoot the circles before they shrink you",
	Long: `Color Bang is a small arcade shooter. Enemies drift in from the edges
of the field; every touch shrinks you, every hit shrinks them. Clear a wave
to bank charges, then hold charge and let go for a super bang.

Available commands:
  list     - Show all available modes
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  colorbang play
  colorbang play colorbang_chaos --difficulty hard
  colorbang window --volume 0.8
  colorbang serve --ssh :2222
  colorbang scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultDBPath(), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (terminal play defaults to ~/.colorbang/colorbang.log)")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume, 0 disables audio")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Name stored with your scores (default: $USER)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupLogging installs the default logger. Logs go to --log-file, or to
// fallback when that is empty, or to stderr when both are. The returned
// func closes the log file.
func setupLogging(fallback string) (func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}

	path := flagLogFile
	if path == "" {
		path = fallback
	}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	log.SetDefault(log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	}))
	return closeFn, nil
}

// configureGames applies --config and --difficulty before any game is created.
func configureGames() error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	colorbang.SetConfigPath(flagConfig)
	colorbang.SetDifficultyPreset(flagDifficulty)
	return nil
}

// gameArg returns the requested mode, checking that it exists.
func gameArg(args []string) (string, error) {
	id := defaultGame
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown game %q, run 'colorbang list' to see available modes", id)
	}
	return id, nil
}

func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "anonymous"
}

// openStore opens the score database. A failure is logged and play
// continues without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
