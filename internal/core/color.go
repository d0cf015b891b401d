package core

// Color is a foreground color for a screen cell. Game logic deals only in
// Color values; the platform layer maps them to terminal colors, so games
// stay free of ANSI concerns.
type Color uint8

const (
	ColorDefault Color = iota

	// Standard palette. Red, green, blue and yellow double as the ink
	// colors in the color-word exercise, so they must stay visually
	// distinct in any terminal theme.
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite

	// Bright variants for highlights: cursors, revealed cards, headers.
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite

	ColorOrange
	ColorGray
)
