package core

// Color is the foreground color of a screen cell. The platform maps each
// value to a terminal color; games only pick from this palette.
type Color uint8

// Palette shared by both games. The first entries follow the ANSI order.
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
	ColorOrange // kitty fur, locomotive
	ColorGray   // smoke, steps, rails
	ColorBrown  // platforms, wagons, coal

	NumColors
)
