package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/scene"
)

// Register adds the title, play and end scenes to reg. Every play scene is
// built from cfg.
func Register(reg *scene.Registry, cfg config.FlappyConfig) {
	reg.Register(scene.Start, func(scene.Outcome) scene.Scene {
		return NewStartScene()
	})
	reg.Register(scene.Play, func(scene.Outcome) scene.Scene {
		return NewPlayScene(cfg)
	})
	reg.Register(scene.End, func(o scene.Outcome) scene.Scene {
		return NewEndScene(o)
	})
}
