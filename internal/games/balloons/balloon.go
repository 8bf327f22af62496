package balloons

import (
	"unicode/utf8"

	"github.com/vovakirdan/credit-balloons/internal/config"
	"github.com/vovakirdan/credit-balloons/internal/core"
)

// Balloon is a rising target carrying one credit event.
// Positions are in playfield units with y growing downward.
type Balloon struct {
	ID     int
	Event  CreditEvent
	X, Y   float64 // Top-left corner
	Width  float64
	Height float64
	Speed  float64 // Upward units per second
	Drift  float64 // Horizontal units per second, sign is direction
	Color  string  // Palette color name
}

// Bounds returns the balloon's box.
func (b Balloon) Bounds() core.RectF {
	return core.RectF{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// Playfield is the visible area balloons move through.
type Playfield struct {
	W, H float64
}

// balloonSize derives a balloon's size from its label length.
func balloonSize(label string, g config.BalloonGeometry) (width, height float64) {
	width = core.ClampF(float64(utf8.RuneCountInString(label))*g.WidthPerChar, g.MinWidth, g.MaxWidth)
	return width, width * g.HeightRatio
}
