package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left", 2, 3, true},
		{"bottom-right cell", 5, 4, true},
		{"right edge", 6, 3, false},
		{"bottom edge", 2, 5, false},
		{"left of box", 1, 3, false},
		{"above box", 3, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	if r.Right() != 6 || r.Bottom() != 5 {
		t.Errorf("edges = (%d, %d), want (6, 5)", r.Right(), r.Bottom())
	}
}

func TestRectFContains(t *testing.T) {
	r := RectF{X: 1.5, Y: 2, W: 4, H: 3}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 3, 3, true},
		{"top-left corner", 1.5, 2, true},
		{"right edge", 5.5, 3, false},
		{"bottom edge", 3, 5, false},
		{"left of box", 1.4, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectFCells(t *testing.T) {
	tests := []struct {
		in   RectF
		want Rect
	}{
		{RectF{X: 2.4, Y: 3.6, W: 10.5, H: 0.2}, Rect{X: 2, Y: 4, W: 11, H: 1}},
		{RectF{X: -0.6, Y: 0, W: 0, H: 7.49}, Rect{X: -1, Y: 0, W: 1, H: 7}},
		{RectF{X: 10, Y: 20, W: 3, H: 3}, Rect{X: 10, Y: 20, W: 3, H: 3}},
	}

	for _, tt := range tests {
		if got := tt.in.Cells(); got != tt.want {
			t.Errorf("%+v.Cells() = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0.25, 0.25, 0.5, 0.25},
	}

	for _, tt := range tests {
		if got := ClampF(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("ClampF(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
