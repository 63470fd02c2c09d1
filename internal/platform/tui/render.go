package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// palette maps core.Color to terminal colors. ColorDefault has no entry and
// leaves the terminal's own color in place.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:          lipgloss.Color("1"),
	core.ColorGreen:        lipgloss.Color("2"),
	core.ColorYellow:       lipgloss.Color("3"),
	core.ColorBlue:         lipgloss.Color("4"),
	core.ColorMagenta:      lipgloss.Color("5"),
	core.ColorCyan:         lipgloss.Color("6"),
	core.ColorWhite:        lipgloss.Color("7"),
	core.ColorBlack:        lipgloss.Color("0"),
	core.ColorBrightRed:    lipgloss.Color("9"),
	core.ColorBrightGreen:  lipgloss.Color("10"),
	core.ColorBrightYellow: lipgloss.Color("11"),
	core.ColorBrightWhite:  lipgloss.Color("15"),
	core.ColorOrange:       lipgloss.Color("208"),
	core.ColorGray:         lipgloss.Color("245"),
	core.ColorSky:          lipgloss.Color("73"),
	core.ColorSand:         lipgloss.Color("180"),
}

type cellStyle struct {
	fg, bg core.Color
}

// styleFor builds the lipgloss style for a foreground/background pair.
func styleFor(cs cellStyle) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := palette[cs.fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := palette[cs.bg]; ok {
		style = style.Background(c)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[cellStyle]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := cellStyle{fg: cell.Fg, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != key.fg || cell.Bg != key.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[key]
			if !ok {
				style = styleFor(key)
				styles[key] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
