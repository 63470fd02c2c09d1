// Package core holds the cell buffer, input frame and small geometry helpers
// shared by the scenes and the platform layers. It imports neither Bubble
// Tea nor Ebiten so scenes stay testable without a terminal or window.
package core

// Rect is an axis-aligned box in screen cells, top-left origin.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the rect at (x, y) with size w x h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rect.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rect.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether cell (x, y) lies inside r. Right and bottom edges
// are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// ClampF limits v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
