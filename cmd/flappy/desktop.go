package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/desktop"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagCols int
	flagRows int
)

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Play in a desktop window",
	Long: `Open the game in a window. Mouse clicks and touches count as taps.

The window is only available in binaries built with:
  go build -tags ebiten ./cmd/flappy`,
	Args: cobra.NoArgs,
	RunE: runDesktop,
}

func init() {
	desktopCmd.Flags().IntVar(&flagCols, "cols", 80, "Grid width in cells")
	desktopCmd.Flags().IntVar(&flagRows, "rows", 30, "Grid height in cells")
}

func runDesktop(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("flappy", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("playing without persistence", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	err = desktop.Run(desktop.Options{
		Registry: newRegistry(gameCfg),
		Store:    store,
		Player:   localPlayer(),
		Config: core.RuntimeConfig{
			ScreenW:  flagCols,
			ScreenH:  flagRows,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger: logger,
	})
	if errors.Is(err, desktop.ErrUnavailable) {
		return fmt.Errorf("%w; rebuild with: go build -tags ebiten ./cmd/flappy", err)
	}
	return err
}
