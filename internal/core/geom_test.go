package core

import "testing"

func TestRectContains(t *testing.T) {
	button := NewRect(35, 17, 10, 3)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left cell", 35, 17, true},
		{"last cell", 44, 19, true},
		{"middle", 40, 18, true},
		{"right edge is exclusive", 45, 18, false},
		{"bottom edge is exclusive", 40, 20, false},
		{"left of button", 34, 18, false},
		{"above button", 40, 16, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := button.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectEmptyContainsNothing(t *testing.T) {
	r := NewRect(3, 3, 0, 2)
	if r.Contains(3, 3) {
		t.Error("zero-width rect should contain no cells")
	}
	if r.Right() != 3 || r.Bottom() != 5 {
		t.Errorf("edges = (%d, %d), want (3, 5)", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{2, 1, 3, 2},
		{0, 1, 3, 1},
		{9, 1, 3, 3},
		{5, 5, 5, 5},
	}

	for _, tc := range tests {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{-2.5, -1, 0.5, -1},
		{0.9, -1, 0.5, 0.5},
		{0.1, -1, 0.5, 0.1},
	}

	for _, tc := range tests {
		if got := ClampF(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Errorf("ClampF(%v, %v, %v) = %v, want %v", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestTickDuration(t *testing.T) {
	tests := []struct {
		name     string
		tickRate int
		want     float64
	}{
		{"60 ticks", 60, 1.0 / 60.0},
		{"30 ticks", 30, 1.0 / 30.0},
		{"zero falls back to 60", 0, 1.0 / 60.0},
		{"negative falls back to 60", -5, 1.0 / 60.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := RuntimeConfig{TickRate: tc.tickRate}
			if got := cfg.TickDuration(); got != tc.want {
				t.Errorf("TickDuration() = %v, want %v", got, tc.want)
			}
		})
	}
}
