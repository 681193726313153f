package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to a terminal style.
type Color uint8

// Predefined colors for game elements. The Shade colors follow the four
// green tones of the original handheld display, lightest first.
const (
	ColorDefault Color = iota
	ColorShade0
	ColorShade1
	ColorShade2
	ColorShade3
	ColorRed
	ColorYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorGray
)
