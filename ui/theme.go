package ui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette
// https://catppuccin.com/palette
var (
	// Base tones
	ColorBase    = lipgloss.Color("#1e1e2e")
	ColorSurface = lipgloss.Color("#313244")
	ColorOverlay = lipgloss.Color("#45475a")
	ColorMuted   = lipgloss.Color("#6c7086")
	ColorSubtle  = lipgloss.Color("#a6adc8")
	ColorText    = lipgloss.Color("#cdd6f4")

	// Semantic colors
	ColorRed    = lipgloss.Color("#f38ba8") // error, danger
	ColorYellow = lipgloss.Color("#f9e2af") // warning
	ColorPeach  = lipgloss.Color("#fab387") // accent, secondary
	ColorBlue   = lipgloss.Color("#89b4fa") // link
	ColorTeal   = lipgloss.Color("#94e2d5") // info, active
	ColorMauve  = lipgloss.Color("#cba6f7") // highlight, primary
)
