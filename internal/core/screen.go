package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a 2D cell buffer that games draw into. The platform layer turns it
// into styled terminal output, so games never touch Bubble Tea directly.
type Screen struct {
	width  int
	height int
	cells  []Cell // row-major, width*height
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, keeping the top-left content that
// still fits.
func (s *Screen) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	if s.cells != nil && width == s.width && height == s.height {
		return
	}

	next := make([]Cell, width*height)
	for i := range next {
		next[i] = blankCell
	}
	copyW := min(s.width, width)
	copyH := min(s.height, height)
	for y := 0; y < copyH; y++ {
		copy(next[y*width:y*width+copyW], s.cells[y*s.width:y*s.width+copyW])
	}

	s.width = width
	s.height = height
	s.cells = next
}

// Clear resets every cell to a blank with the default color.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// SetCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y*s.width+x] = c
}

// SetColor places a rune with a foreground color.
func (s *Screen) SetColor(x, y int, r rune, c Color) {
	s.SetCell(x, y, Cell{Rune: r, Color: c})
}

// GetCell returns the cell at the given position, or a blank cell when out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blankCell
	}
	return s.cells[y*s.width+x]
}

// Get returns the rune at the given position.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// DrawText writes a string horizontally starting at (x, y), clipped to the screen.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColor(x, y, text, ColorDefault)
}

// DrawTextColor writes text from (x, y) in color c. Cells past the edge are
// dropped.
func (s *Screen) DrawTextColor(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColor(x, y, r, c)
		x++
	}
}

// DrawTextCentered writes text on row y, centered by rune count.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.width-utf8.RuneCountInString(text))/2, y, text)
}

// DrawRectColor fills a rectangular area with a colored rune.
func (s *Screen) DrawRectColor(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetColor(x, y, fill, c)
		}
	}
}

// BoxStyle is a set of box-drawing runes.
type BoxStyle struct {
	TopLeft, TopRight, BottomLeft, BottomRight rune
	Horizontal, Vertical                       rune
}

// Box outlines.
var (
	BoxRounded = BoxStyle{'╭', '╮', '╰', '╯', '─', '│'}
	BoxDouble  = BoxStyle{'╔', '╗', '╚', '╝', '═', '║'}
)

// DrawBoxStyle draws a box outline with the given style and color.
func (s *Screen) DrawBoxStyle(r Rect, st BoxStyle, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1

	s.SetColor(r.X, r.Y, st.TopLeft, c)
	s.SetColor(right, r.Y, st.TopRight, c)
	s.SetColor(r.X, bottom, st.BottomLeft, c)
	s.SetColor(right, bottom, st.BottomRight, c)

	for x := r.X + 1; x < right; x++ {
		s.SetColor(x, r.Y, st.Horizontal, c)
		s.SetColor(x, bottom, st.Horizontal, c)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetColor(r.X, y, st.Vertical, c)
		s.SetColor(right, y, st.Vertical, c)
	}
}

// DrawHLine repeats r for length cells rightward from (x, y).
func (s *Screen) DrawHLine(x, y, length int, r rune) {
	for i := range length {
		s.SetColor(x+i, y, r, ColorDefault)
	}
}

// String returns the screen runes without color, rows joined by newlines.
// Used for screenshots and tests.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	row := make([]rune, s.width)
	for x := range row {
		row[x] = s.cells[y*s.width+x].Rune
	}
	return string(row)
}
