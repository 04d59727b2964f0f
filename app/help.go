package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sablehq/deckhand/keys"
	"github.com/sablehq/deckhand/ui"
)

var helpTitleStyle = lipgloss.NewStyle().Foreground(ui.ColorMauve).Bold(true)
var helpKeyStyle = lipgloss.NewStyle().Foreground(ui.ColorPeach)
var helpDescStyle = lipgloss.NewStyle().Foreground(ui.ColorText)

// helpOrder fixes the display order of the keybinding list.
var helpOrder = []keys.KeyName{
	keys.KeyUp,
	keys.KeyDown,
	keys.KeyArrowLeft,
	keys.KeyArrowRight,
	keys.KeyEnter,
	keys.KeySpace,
	keys.KeyTab,
	keys.KeySearch,
	keys.KeyClearSearch,
	keys.KeyDock,
	keys.KeyShrink,
	keys.KeyTogglePanel,
	keys.KeyCopyURL,
	keys.KeyHelp,
	keys.KeyQuit,
}

func (m *home) helpView() string {
	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("deckhand keybindings"))
	b.WriteString("\n\n")
	for _, name := range helpOrder {
		binding, ok := keys.GlobalkeyBindings[name]
		if !ok {
			continue
		}
		help := binding.Help()
		b.WriteString(helpKeyStyle.Width(12).Render(help.Key))
		b.WriteString(helpDescStyle.Render(help.Desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpDescStyle.Render("press any key to close"))

	return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, b.String())
}
