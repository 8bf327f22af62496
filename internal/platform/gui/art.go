package gui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/credit-balloons/internal/assets"
	"github.com/vovakirdan/credit-balloons/internal/config"
)

// Placeholder artwork size. It is scaled to each balloon when drawn.
const (
	placeholderW = 140
	placeholderH = 200
)

// artwork holds the background and one balloon image per palette color.
// Images are resolved once, on the first draw.
type artwork struct {
	resolver *assets.Resolver
	palette  []config.PaletteColor
	logger   *log.Logger

	loaded     bool
	background *ebiten.Image
	balloons   map[string]*ebiten.Image
}

func newArtwork(resolver *assets.Resolver, palette []config.PaletteColor, logger *log.Logger) *artwork {
	return &artwork{
		resolver: resolver,
		palette:  palette,
		logger:   logger,
		balloons: make(map[string]*ebiten.Image, len(palette)),
	}
}

func (a *artwork) load() {
	if a.loaded {
		return
	}
	a.loaded = true

	if bg, ok := a.resolveImage(assets.NewChain("background", assets.BackgroundCandidates()...)); ok {
		a.background = ebiten.NewImageFromImage(bg)
	}
	for _, src := range a.balloonSources() {
		a.balloons[src.name] = ebiten.NewImageFromImage(src.img)
	}
}

type balloonSource struct {
	name string
	img  image.Image
}

// balloonSources resolves artwork for every palette color, generating a
// placeholder where no candidate decodes.
func (a *artwork) balloonSources() []balloonSource {
	out := make([]balloonSource, 0, len(a.palette))
	for _, pc := range a.palette {
		img, ok := a.resolveImage(assets.NewChain("balloon-"+pc.Name, assets.BalloonCandidates(pc.Name)...))
		if !ok {
			img = placeholderBalloon(parseHex(pc.Fill), parseHex(pc.Stroke), placeholderW, placeholderH)
		}
		out = append(out, balloonSource{name: pc.Name, img: img})
	}
	return out
}

func (a *artwork) resolveImage(c *assets.Chain) (image.Image, bool) {
	if a.resolver == nil {
		return nil, false
	}
	img, _, err := a.resolver.Image(c)
	if err != nil {
		return nil, false
	}
	return img, true
}

// balloon returns the image for a color, or nil if none was loaded.
func (a *artwork) balloon(name string) *ebiten.Image {
	if img, ok := a.balloons[name]; ok {
		return img
	}
	for _, img := range a.balloons {
		return img
	}
	return nil
}

// placeholderBalloon draws an outlined oval body with a knot and a short
// string. The body fills the top 80% of the image.
func placeholderBalloon(fill, stroke color.RGBA, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	bodyH := float64(h) * 0.8
	cx, cy := float64(w)/2, bodyH/2
	rx, ry := float64(w)/2-1, bodyH/2-1
	edge := 3.0 / math.Min(rx, ry)

	for y := 0; y < int(bodyH); y++ {
		for x := 0; x < w; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			d := dx*dx + dy*dy
			switch {
			case d > 1:
			case d > (1-edge)*(1-edge):
				img.SetRGBA(x, y, stroke)
			default:
				img.SetRGBA(x, y, fill)
			}
		}
	}

	// Knot and string.
	knotTop := int(bodyH) - 2
	for y := knotTop; y < knotTop+6 && y < h; y++ {
		half := (y - knotTop) / 2
		for x := int(cx) - half; x <= int(cx)+half; x++ {
			img.SetRGBA(x, y, stroke)
		}
	}
	for y := knotTop + 6; y < h; y++ {
		sway := int(math.Round(2 * math.Sin(float64(y)/6)))
		img.SetRGBA(int(cx)+sway, y, stroke)
	}
	return img
}

// parseHex reads "#rrggbb" or "#rgb". Anything else is opaque gray.
func parseHex(s string) color.RGBA {
	fallback := color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = fmt.Sprintf("%c%c%c%c%c%c", s[0], s[0], s[1], s[1], s[2], s[2])
	}
	if len(s) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
