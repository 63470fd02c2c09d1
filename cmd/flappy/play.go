package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in the current terminal.

Controls:
  Space/Up/W - Flap (or tap with the mouse)
  Enter      - Start / back from the game over screen
  P          - Pause
  B/Esc      - Back
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Wider gaps, slower pipes
  normal - Config values as loaded
  hard   - Narrower gaps, faster pipes

Examples:
  flappy play
  flappy play --difficulty easy
  flappy play --config ./my-flappy.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	// Logs would corrupt the alt screen, so they go to --log-file or nowhere.
	logger, closeLog, err := newLogger("flappy", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("playing without persistence", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(tui.Options{
		Registry: newRegistry(gameCfg),
		Store:    store,
		Player:   localPlayer(),
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger: logger,
	})
}

// localPlayer names runs recorded from this machine.
func localPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return storage.LocalPlayer
}
