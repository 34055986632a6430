package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
	ColorSalmon
	ColorPink
	ColorNavy
)

// RGB returns an approximate 24-bit value for the color, used by hosts
// that draw with real colors instead of terminal palette indices.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 0xC0, 0x39, 0x2B
	case ColorGreen:
		return 0x2E, 0xCC, 0x71
	case ColorYellow:
		return 0xF4, 0xD0, 0x3F
	case ColorBlue:
		return 0x34, 0x98, 0xDB
	case ColorMagenta:
		return 0x8E, 0x44, 0xAD
	case ColorCyan:
		return 0x1A, 0xBC, 0x9C
	case ColorWhite:
		return 0xEC, 0xF0, 0xF1
	case ColorBrightRed:
		return 0xFF, 0x55, 0x55
	case ColorBrightGreen:
		return 0x55, 0xFF, 0x55
	case ColorBrightYellow:
		return 0xFF, 0xFF, 0x55
	case ColorBrightBlue:
		return 0x55, 0x55, 0xFF
	case ColorBrightMagenta:
		return 0xFE, 0x2E, 0xF7
	case ColorBrightCyan:
		return 0x55, 0xFF, 0xFF
	case ColorBrightWhite:
		return 0xFF, 0xFF, 0xFF
	case ColorOrange:
		return 0xE6, 0x7E, 0x22
	case ColorGray:
		return 0x8A, 0x8A, 0x8A
	case ColorSalmon:
		return 0xFA, 0x80, 0x72
	case ColorPink:
		return 0xFF, 0x87, 0xD7
	case ColorNavy:
		return 0x2C, 0x3E, 0x50
	default:
		return 0xDD, 0xDD, 0xDD
	}
}
