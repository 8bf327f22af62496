package balloons

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/credit-balloons/internal/core"
)

const (
	minScreenW = 30
	minScreenH = 10
)

// paletteColors maps palette names to terminal colors.
var paletteColors = map[string]core.Color{
	"mint":     core.ColorBrightGreen,
	"sky":      core.ColorBrightBlue,
	"peach":    core.ColorOrange,
	"lemon":    core.ColorBrightYellow,
	"rose":     core.ColorPink,
	"aqua":     core.ColorBrightCyan,
	"lavender": core.ColorLavender,
}

func colorFor(name string) core.Color {
	if c, ok := paletteColors[name]; ok {
		return c
	}
	return core.ColorWhite
}

// Render draws the balloons, HUD and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		g.renderTooSmall(dst)
		return
	}

	slots := make(map[int]int, maxSlots)
	for i, id := range g.visibleSlots() {
		slots[id] = i + 1
	}
	for _, b := range g.session.active {
		g.drawBalloon(dst, b, slots[b.ID])
	}

	g.renderHUD(dst)

	switch {
	case g.session.Won():
		g.drawCenteredMessage(dst, "YOU WIN!",
			fmt.Sprintf("Credit score %d  |  R to play again", g.session.Score()))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// drawBalloon draws a rounded box with the wrapped label inside and the slot
// number on the top border.
func (g *Game) drawBalloon(dst *core.Screen, b Balloon, slot int) {
	r := b.Bounds().Cells()
	r.Y += hudRows
	c := colorFor(b.Color)

	if r.W < 3 || r.H < 3 {
		dst.DrawRectColor(r, '●', c)
		return
	}

	// Blank the interior so balloons underneath do not show through
	dst.DrawRectColor(core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2), ' ', core.ColorDefault)
	dst.DrawBoxStyle(r, core.BoxRounded, c)

	if slot > 0 {
		dst.SetColor(r.X+1, r.Y, rune('0'+slot), core.ColorBrightWhite)
	}

	lines := WrapLabel(b.Event.Label, r.W-2, r.H-2)
	top := r.Y + 1 + (r.H-2-len(lines))/2
	for i, line := range lines {
		x := r.X + 1 + (r.W-2-utf8.RuneCountInString(line))/2
		dst.DrawTextColor(x, top+i, line, core.ColorBrightWhite)
	}
}

// renderHUD draws the score line over row 0.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), ' ')

	score := fmt.Sprintf(" Credit score: %d ", g.session.Score())
	dst.DrawTextColor(1, 0, score, core.ColorBrightWhite)

	if g.feedback.remaining > 0 {
		fb := fmt.Sprintf("%+d %s", g.feedback.applied, g.feedback.label)
		c := core.ColorBrightGreen
		if g.feedback.applied < 0 {
			c = core.ColorBrightRed
		} else if g.feedback.applied == 0 {
			c = core.ColorGray
		}
		maxW := dst.Width() - len(score) - 4
		dst.DrawTextColor(len(score)+2, 0, truncate(fb, maxW), c)
	}

	var goal string
	if win := g.cfg.Gameplay.WinScore; win > 0 {
		goal = fmt.Sprintf("Goal %d ", win)
	} else {
		goal = "Endless "
	}
	dst.DrawTextColor(dst.Width()-len(goal)-1, 0, goal, core.ColorGray)
}

func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := max(utf8.RuneCountInString(subtitle), utf8.RuneCountInString(title)) + 6
	h := 5
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	box := core.NewRect(x, y, w, h)
	dst.DrawRectColor(box, ' ', core.ColorDefault)
	dst.DrawBoxStyle(box, core.BoxDouble, core.ColorBrightYellow)
	dst.DrawTextCentered(y+1, title)
	dst.DrawTextCentered(y+3, subtitle)
}

// WrapLabel splits text into at most maxLines lines of at most width runes.
// Words longer than width are cut; overflow on the last line is truncated.
func WrapLabel(text string, width, maxLines int) []string {
	if width <= 0 || maxLines <= 0 {
		return nil
	}
	var lines []string
	var cur strings.Builder
	curLen := 0

	flush := func() {
		if curLen > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			curLen = 0
		}
	}

	for _, word := range strings.Fields(text) {
		word = truncate(word, width)
		n := utf8.RuneCountInString(word)
		if curLen > 0 && curLen+1+n > width {
			flush()
		}
		if curLen > 0 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(word)
		curLen += n
	}
	flush()

	if len(lines) > maxLines {
		lines = lines[:maxLines]
		last := []rune(lines[maxLines-1])
		if len(last) >= width {
			last = last[:width-1]
		}
		lines[maxLines-1] = string(last) + "…"
	}
	return lines
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
