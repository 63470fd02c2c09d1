// flappy is a Flappy-style arcade game for the terminal, SSH and desktop.
//
// Usage:
//
//	flappy play              - Play in this terminal
//	flappy serve             - Start SSH server for remote play
//	flappy scores            - Show the top runs
//	flappy desktop           - Play in a window (needs -tags ebiten)
//	flappy config            - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/flappy.db)
//	--config <path>       - Load game config from a YAML file
//	--difficulty <preset> - easy, normal or hard
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/scene"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - tap to fly between the pipes",
	Long: `Flappy is a terminal arcade game. Tap to keep the bird in the air,
fly through the gaps between pipes and grab items on the way.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the best runs
  desktop  - Play in a desktop window
  config   - Print the effective game config

Examples:
  flappy play
  flappy play --difficulty hard
  flappy serve --addr :2222
  flappy scores -i`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/flappy.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(desktopCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the game config from flags.
func loadGameConfig() (config.FlappyConfig, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyFlappyPreset(&cfg, preset)
	return cfg, nil
}

// newRegistry builds the scene registry for one game config.
func newRegistry(cfg config.FlappyConfig) *scene.Registry {
	reg := scene.NewRegistry()
	flappy.Register(reg, cfg)
	return reg
}

// newLogger returns a logger writing to --log-file, or to fallback when the
// flag is empty. The returned closer must be called on exit.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          prefix,
	})
	return logger, closer, nil
}
