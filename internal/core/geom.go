// Package core holds the frontend-neutral pieces every game shares: the
// cell screen, per-frame input, runtime config and box geometry.
package core

import "math"

// Rect is a box of whole screen cells. Right and Bottom are exclusive.
type Rect struct {
	X, Y, W, H int
}

// NewRect returns the w by h box at (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether cell (x, y) lies in r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// RectF is a box in playfield units. Positions stay fractional while a
// balloon rises and are snapped to cells only for drawing.
type RectF struct {
	X, Y, W, H float64
}

func (r RectF) Right() float64  { return r.X + r.W }
func (r RectF) Bottom() float64 { return r.Y + r.H }

// Contains reports whether (x, y) lies in r.
func (r RectF) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Cells snaps r to the nearest cell box, at least one cell in each direction.
func (r RectF) Cells() Rect {
	round := func(v float64) int { return int(math.Round(v)) }
	return Rect{
		X: round(r.X),
		Y: round(r.Y),
		W: max(round(r.W), 1),
		H: max(round(r.H), 1),
	}
}

// ClampF limits v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
