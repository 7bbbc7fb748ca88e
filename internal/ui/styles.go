package ui

import "github.com/charmbracelet/lipgloss"

// Note: Warp terminal fix is in internal/termfix package, imported first in main.go

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorMagenta  = lipgloss.Color("#FF00FF")
	ColorPurple   = lipgloss.Color("#AA55FF")
	ColorOrange   = lipgloss.Color("#FFA500")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8")
)

// StatusColor maps a git status letter to a display color
func StatusColor(status string) lipgloss.Color {
	switch status {
	case "A":
		return ColorGreen
	case "M":
		return ColorYellow
	case "D":
		return ColorRed
	case "R", "C":
		return ColorMagenta
	default:
		return ColorWhite
	}
}
