package core

import "strconv"

// Color is a cell foreground. Terminal frontends resolve it with ANSI.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPink
	ColorLavender

	colorCount
)

// Basic colors map onto ANSI 1-7 and 9-15. Bright black (8) is unused.
var extendedANSI = map[Color]string{
	ColorOrange:   "208",
	ColorGray:     "245",
	ColorPink:     "218",
	ColorLavender: "183",
}

// ANSI returns the 256-color code for c, or "" for the terminal default.
func (c Color) ANSI() string {
	switch {
	case c == ColorDefault || c >= colorCount:
		return ""
	case c <= ColorWhite:
		return strconv.Itoa(int(c))
	case c <= ColorBrightWhite:
		return strconv.Itoa(int(c) + 1)
	}
	return extendedANSI[c]
}
