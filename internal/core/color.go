package core

// Color represents a foreground color for a screen cell.
// Drivers translate it to their own palette (lipgloss, tcell, ANSI).
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBrightGreen
)

// ANSI returns the SGR foreground code for the color, or 0 for the default.
func (c Color) ANSI() int {
	switch c {
	case ColorRed:
		return 31
	case ColorGreen:
		return 32
	case ColorBrightGreen:
		return 92
	default:
		return 0
	}
}
