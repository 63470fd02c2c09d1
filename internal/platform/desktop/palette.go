// Package desktop runs the scenes in an ebiten window. The window build needs
// the ebiten build tag; without it Run reports that the tag is missing.
package desktop

import (
	"errors"
	"image/color"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/scene"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// ErrUnavailable is returned by Run when the binary was built without the
// ebiten tag.
var ErrUnavailable = errors.New("desktop: requires building with the 'ebiten' tag")

// Default cell size in pixels. DebugPrint glyphs are 6x16.
const (
	DefaultCellW = 8
	DefaultCellH = 16
)

// Options configures a desktop window.
type Options struct {
	Registry *scene.Registry
	Store    *storage.Store
	Player   string
	Config   core.RuntimeConfig
	Logger   *log.Logger
	CellW    int
	CellH    int
	Title    string
}

func (o Options) withDefaults() Options {
	if o.CellW <= 0 {
		o.CellW = DefaultCellW
	}
	if o.CellH <= 0 {
		o.CellH = DefaultCellH
	}
	if o.Title == "" {
		o.Title = "Flappy"
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {20, 20, 30, 255},
	core.ColorRed:          {255, 0, 0, 255},
	core.ColorGreen:        {83, 160, 60, 255},
	core.ColorYellow:       {230, 200, 40, 255},
	core.ColorBlue:         {60, 90, 200, 255},
	core.ColorMagenta:      {190, 70, 190, 255},
	core.ColorCyan:         {60, 190, 200, 255},
	core.ColorWhite:        {220, 220, 220, 255},
	core.ColorBlack:        {0, 0, 0, 255},
	core.ColorBrightRed:    {255, 90, 90, 255},
	core.ColorBrightGreen:  {120, 230, 90, 255},
	core.ColorBrightYellow: {255, 240, 90, 255},
	core.ColorBrightWhite:  {255, 255, 255, 255},
	core.ColorOrange:       {255, 140, 0, 255},
	core.ColorGray:         {128, 128, 128, 255},
	core.ColorSky:          {81, 192, 201, 255},
	core.ColorSand:         {222, 216, 149, 255},
}

// RGBA returns the window colour for a palette entry.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// cellAt maps a pixel position to a screen cell. ok is false outside the
// w x h grid.
func cellAt(px, py, cellW, cellH, w, h int) (x, y int, ok bool) {
	if px < 0 || py < 0 || cellW <= 0 || cellH <= 0 {
		return 0, 0, false
	}
	x, y = px/cellW, py/cellH
	if x >= w || y >= h {
		return 0, 0, false
	}
	return x, y, true
}

// isASCII reports whether r can be drawn by the debug font.
func isASCII(r rune) bool {
	return r > ' ' && r < 0x7f
}
