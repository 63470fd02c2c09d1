// Package platform holds pieces shared by the terminal and desktop frontends.
package platform

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/scene"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// RunRecorder returns a game-over hook that saves each finished run for
// player and fills in the best stored score. Storage failures are logged and
// never stop the game. A nil store records nothing.
func RunRecorder(store *storage.Store, player string, logger *log.Logger) func(scene.Outcome) scene.Outcome {
	return func(o scene.Outcome) scene.Outcome {
		if store == nil {
			return o
		}
		if _, err := store.SaveRun(player, o.Score, o.Items); err != nil {
			logger.Warn("could not save run", "player", player, "error", err)
		}
		best, err := store.HighScore()
		if err != nil {
			logger.Warn("could not read high score", "error", err)
			return o
		}
		o.Best = best
		return o
	}
}
