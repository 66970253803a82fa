package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI 256-color codes.
type Color uint8

// Predefined colors for duel elements.
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
	ColorOrange
	ColorGray
)

// HealthColor picks a bar color from the remaining health fraction.
func HealthColor(hp, maxHP int) Color {
	if maxHP <= 0 || hp <= 0 {
		return ColorGray
	}
	switch pct := hp * 100 / maxHP; {
	case pct > 60:
		return ColorBrightGreen
	case pct > 30:
		return ColorBrightYellow
	default:
		return ColorBrightRed
	}
}
