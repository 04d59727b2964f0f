package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// StatusBarData holds the contextual information displayed in the status bar.
type StatusBarData struct {
	ActiveApp    string
	FocusedGroup string // empty = no group drilled into
	Docked       bool
	LinkCount    int
}

// StatusBar is the top status bar component.
type StatusBar struct {
	width int
	data  StatusBarData
}

// NewStatusBar creates a new StatusBar.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetSize sets the terminal width for the status bar.
func (s *StatusBar) SetSize(width int) {
	s.width = width
}

// SetData updates the status bar content.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

var statusBarStyle = lipgloss.NewStyle().
	Background(ColorSurface).
	Foreground(ColorText).
	Padding(0, 1)

var statusBarAppNameStyle = lipgloss.NewStyle().
	Foreground(ColorMauve).
	Background(ColorSurface).
	Bold(true)

var statusBarSepStyle = lipgloss.NewStyle().
	Foreground(ColorOverlay).
	Background(ColorSurface)

var statusBarActiveStyle = lipgloss.NewStyle().
	Foreground(ColorTeal).
	Background(ColorSurface)

var statusBarGroupStyle = lipgloss.NewStyle().
	Foreground(ColorPeach).
	Background(ColorSurface)

var statusBarMutedStyle = lipgloss.NewStyle().
	Foreground(ColorMuted).
	Background(ColorSurface)

func (s *StatusBar) String() string {
	parts := []string{statusBarAppNameStyle.Render("deckhand")}

	if s.data.ActiveApp != "" {
		parts = append(parts, statusBarActiveStyle.Render("● "+s.data.ActiveApp))
	}
	if s.data.FocusedGroup != "" {
		parts = append(parts, statusBarGroupStyle.Render("» "+s.data.FocusedGroup))
	}

	dock := "undocked"
	if s.data.Docked {
		dock = "docked"
	}
	parts = append(parts, zone.Mark(ZoneDockToggle, statusBarMutedStyle.Render(dock)))

	sep := statusBarSepStyle.Render(" │ ")
	line := strings.Join(parts, sep)
	return statusBarStyle.Width(s.width).Render(line)
}
