package core

import "strings"

// Cell is one character position: a rune plus palette colors.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// Screen is the cell buffer scenes render into. The terminal and window
// frontends translate it to ANSI styles or filled rectangles.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
	bg     Color
}

// NewScreen returns a blank w x h screen.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: width, height: height}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in cells.
func (s *Screen) Height() int { return s.height }

// Resize changes the dimensions. The overlapping top-left region keeps its
// content.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	old := s.cells
	keepW, keepH := min(s.width, width), min(s.height, height)

	s.width, s.height = width, height
	s.allocate()
	s.Clear()
	for y := 0; y < keepH; y++ {
		copy(s.cells[y][:keepW], old[y][:keepW])
	}
}

// Clear blanks every cell and resets the background.
func (s *Screen) Clear() {
	s.FillBackground(ColorDefault)
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x].Rune = ' '
			s.cells[y][x].Fg = ColorDefault
		}
	}
}

// Background returns the color last passed to FillBackground.
func (s *Screen) Background() Color {
	return s.bg
}

// FillBackground paints every cell's background, leaving runes alone.
func (s *Screen) FillBackground(c Color) {
	s.bg = c
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x].Bg = c
		}
	}
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set places r at (x, y) in the default foreground. Off-screen writes are
// dropped.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places r with a foreground color over the existing background.
func (s *Screen) SetColored(x, y int, r rune, fg Color) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x].Rune = r
	s.cells[y][x].Fg = fg
}

// GetCell returns the cell at (x, y), or a blank cell off-screen.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes text left to right from (x, y), clipping at the edges.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes text in the given foreground.
func (s *Screen) DrawTextColored(x, y int, text string, fg Color) {
	for i, r := range []rune(text) {
		s.SetColored(x+i, y, r, fg)
	}
}

// DrawTextCenteredColored writes text horizontally centered on row y.
func (s *Screen) DrawTextCenteredColored(y int, text string, fg Color) {
	s.DrawTextColored((s.width-len([]rune(text)))/2, y, text, fg)
}

// FillRect overwrites every cell of r, background included.
func (s *Screen) FillRect(r Rect, c Cell) {
	for y := max(r.Y, 0); y < min(r.Bottom(), s.height); y++ {
		for x := max(r.X, 0); x < min(r.Right(), s.width); x++ {
			s.cells[y][x] = c
		}
	}
}

// DrawBox outlines r with box-drawing runes.
func (s *Screen) DrawBox(r Rect) {
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, bottom, '─')
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.Set(r.X, y, '│')
		s.Set(right, y, '│')
	}
	s.Set(r.X, r.Y, '┌')
	s.Set(right, r.Y, '┐')
	s.Set(r.X, bottom, '└')
	s.Set(right, bottom, '┘')
}

// Row returns row y as plain text. Rows off-screen read as spaces.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the whole screen as plain text, rows joined by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
