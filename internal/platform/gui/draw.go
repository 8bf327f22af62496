package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/credit-balloons/internal/games/balloons"
)

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

var (
	skyTop      = color.RGBA{R: 0xbf, G: 0xe3, B: 0xf7, A: 0xff}
	panelColor  = color.RGBA{R: 0x1d, G: 0x2b, B: 0x3a, A: 0xc8}
	overlayTint = color.RGBA{R: 0x0b, G: 0x14, B: 0x1e, A: 0xa0}
	buttonOn    = color.RGBA{R: 0x3d, G: 0x9a, B: 0x6b, A: 0xff}
	buttonOff   = color.RGBA{R: 0x55, G: 0x5d, B: 0x66, A: 0xff}
)

// Draw renders background, balloons, HUD and the win overlay.
func (a *App) Draw(screen *ebiten.Image) {
	a.art.load()

	a.drawBackground(screen)
	for _, b := range a.session.Active() {
		a.drawBalloon(screen, b)
	}
	a.drawHUD(screen)
	if a.session.Won() {
		a.drawWin(screen)
	}
}

func (a *App) drawBackground(screen *ebiten.Image) {
	if a.art.background == nil {
		screen.Fill(skyTop)
		return
	}
	bounds := a.art.background.Bounds()
	op := &ebiten.DrawImageOptions{}
	// Cover the window, cropping the longer side.
	sx := float64(a.width) / float64(bounds.Dx())
	sy := float64(a.height) / float64(bounds.Dy())
	scale := max(sx, sy)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		(float64(a.width)-float64(bounds.Dx())*scale)/2,
		(float64(a.height)-float64(bounds.Dy())*scale)/2,
	)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(a.art.background, op)
}

func (a *App) drawBalloon(screen *ebiten.Image, b balloons.Balloon) {
	if img := a.art.balloon(b.Color); img != nil {
		bounds := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(b.Width/float64(bounds.Dx()), b.Height/float64(bounds.Dy()))
		op.GeoM.Translate(b.X, b.Y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}

	// Label sits in the upper body of the balloon.
	cols := int(b.Width*0.7) / glyphW
	rows := int(b.Height*0.55) / glyphH
	lines := balloons.WrapLabel(b.Event.Label, cols, rows)
	top := b.Y + b.Height*0.4 - float64(len(lines)*glyphH)/2
	for i, line := range lines {
		x := b.X + (b.Width-float64(len([]rune(line))*glyphW))/2
		ebitenutil.DebugPrintAt(screen, line, int(x), int(top)+i*glyphH)
	}
}

func (a *App) drawHUD(screen *ebiten.Image) {
	gp := a.opts.Config.Gameplay

	vector.DrawFilledRect(screen, 16, 14, 260, 48, panelColor, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", a.session.Score()), 26, 18)
	if gp.WinScore > 0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Goal: %d", gp.WinScore), 26, 38)
	} else {
		ebitenutil.DebugPrintAt(screen, "Endless", 26, 38)
	}

	if a.feedback.remaining > 0 {
		sign := ""
		if a.feedback.applied >= 0 {
			sign = "+"
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s%d", sign, a.feedback.applied), 150, 18)
		ebitenutil.DebugPrintAt(screen, a.feedback.label, 26, 66)
	}

	btn := a.audioButton()
	fill, label := buttonOff, "Audio: Off"
	if a.audioEnabled() {
		fill, label = buttonOn, "Audio: On"
	}
	vector.DrawFilledRect(screen, float32(btn.Min.X), float32(btn.Min.Y), float32(btn.Dx()), float32(btn.Dy()), fill, false)
	vector.StrokeRect(screen, float32(btn.Min.X), float32(btn.Min.Y), float32(btn.Dx()), float32(btn.Dy()), 1, color.White, false)
	tx := btn.Min.X + (btn.Dx()-len(label)*glyphW)/2
	ebitenutil.DebugPrintAt(screen, label, tx, btn.Min.Y+(btn.Dy()-glyphH)/2)
}

func (a *App) drawWin(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(a.width), float32(a.height), overlayTint, false)

	lines := []string{
		"You reached a great credit score!",
		fmt.Sprintf("Final score: %d", a.session.Score()),
		"",
		"Press R to play again, Esc to quit",
	}
	top := a.height/2 - len(lines)*glyphH/2
	for i, line := range lines {
		x := (a.width - len(line)*glyphW) / 2
		ebitenutil.DebugPrintAt(screen, line, x, top+i*glyphH)
	}
}
