package desktop

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{81, 192, 201, 255}, RGBA(core.ColorSky))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, RGBA(core.ColorRed))
	assert.Equal(t, RGBA(core.ColorDefault), RGBA(core.Color(200)))

	for c := core.ColorDefault; c <= core.ColorSand; c++ {
		_, ok := palette[c]
		assert.True(t, ok, "missing palette entry for %s", c)
	}
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		name   string
		px, py int
		x, y   int
		ok     bool
	}{
		{"origin", 0, 0, 0, 0, true},
		{"inside cell", 15, 31, 1, 1, true},
		{"last cell", 79*8 + 7, 23*16 + 15, 79, 23, true},
		{"right edge", 80 * 8, 0, 0, 0, false},
		{"below", 0, 24 * 16, 0, 0, false},
		{"negative", -1, 5, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := cellAt(tt.px, tt.py, 8, 16, 80, 24)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.x, x)
				assert.Equal(t, tt.y, y)
			}
		})
	}
}

func TestOptionsDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	assert.Equal(t, DefaultCellW, o.CellW)
	assert.Equal(t, DefaultCellH, o.CellH)
	assert.Equal(t, "Flappy", o.Title)
	assert.NotNil(t, o.Logger)

	o = Options{CellW: 10, Title: "x"}.withDefaults()
	assert.Equal(t, 10, o.CellW)
	assert.Equal(t, "x", o.Title)
}

func TestIsASCII(t *testing.T) {
	assert.True(t, isASCII('a'))
	assert.False(t, isASCII(' '))
	assert.False(t, isASCII('●'))
}
