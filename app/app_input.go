package app

import (
	"github.com/sablehq/deckhand/keys"
	"github.com/sablehq/deckhand/ui"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == stateHelp {
		m.state = stateDefault
		return m, nil
	}
	if m.state == stateSearch {
		return m.handleSearchKey(msg)
	}

	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}

	switch name {
	case keys.KeyQuit:
		return m, tea.Quit
	case keys.KeyHelp:
		m.state = stateHelp
		return m, nil
	case keys.KeySearch:
		m.setFocus(panelPrimary)
		m.navPanel.ActivateSearch()
		m.state = stateSearch
		return m, nil
	case keys.KeyUp:
		if m.focusedPanel == panelSecondary {
			m.groupPanel.Up()
		} else {
			m.navPanel.Up()
		}
		return m, nil
	case keys.KeyDown:
		if m.focusedPanel == panelSecondary {
			m.groupPanel.Down()
		} else {
			m.navPanel.Down()
		}
		return m, nil
	case keys.KeyArrowLeft:
		if m.focusedPanel == panelPrimary {
			m.navPanel.Left()
		}
		return m, nil
	case keys.KeyArrowRight:
		if m.focusedPanel == panelPrimary {
			m.navPanel.Right()
		}
		return m, nil
	case keys.KeySpace:
		if m.focusedPanel == panelPrimary {
			m.navPanel.ToggleSelectedExpand()
		}
		return m, nil
	case keys.KeyEnter:
		m.activateSelected()
		return m, nil
	case keys.KeyTab:
		if m.focusedPanel == panelPrimary {
			m.setFocus(panelSecondary)
		} else {
			m.setFocus(panelPrimary)
		}
		return m, nil
	case keys.KeyDock:
		m.toggleDock()
		return m, nil
	case keys.KeyShrink:
		m.toggleShrink()
		return m, nil
	case keys.KeyCopyURL:
		m.copySelectedURL()
		return m, nil
	case keys.KeyTogglePanel:
		m.togglePanel()
		return m, nil
	case keys.KeyClearSearch:
		if m.navPanel.IsSearchActive() {
			m.navPanel.DeactivateSearch()
		}
		return m, nil
	}
	return m, nil
}

// handleSearchKey edits the nav search query while the search box is active.
func (m *home) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.navPanel.DeactivateSearch()
		m.state = stateDefault
		return m, nil
	case tea.KeyEnter:
		// Keep the filter applied, hand keys back to navigation.
		m.state = stateDefault
		return m, nil
	case tea.KeyBackspace:
		q := m.navPanel.GetSearchQuery()
		if len(q) > 0 {
			r := []rune(q)
			m.navPanel.SetSearchQuery(string(r[:len(r)-1]))
		}
		return m, nil
	case tea.KeyUp:
		m.navPanel.Up()
		return m, nil
	case tea.KeyDown:
		m.navPanel.Down()
		return m, nil
	case tea.KeySpace:
		m.navPanel.SetSearchQuery(m.navPanel.GetSearchQuery() + " ")
		return m, nil
	case tea.KeyRunes:
		m.navPanel.SetSearchQuery(m.navPanel.GetSearchQuery() + string(msg.Runes))
		return m, nil
	}
	return m, nil
}

// activateSelected applies enter semantics to the focused panel's selection:
// links open, groups drill in, category headers toggle.
func (m *home) activateSelected() {
	if m.focusedPanel == panelSecondary {
		if link, ok := m.groupPanel.SelectedLink(); ok {
			m.openLink(link)
		}
		return
	}

	if id := m.navPanel.SelectedGroupID(); id != "" {
		m.focusGroup(id)
		return
	}
	if m.navPanel.IsSelectedCategoryHeader() {
		m.navPanel.ToggleSelectedExpand()
		return
	}
	if link, ok := m.navPanel.SelectedLink(); ok {
		m.openLink(link)
	}
}

// handleMouse processes mouse events for click and scroll interactions.
func (m *home) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	// Scroll wheel moves the selection in the hovered panel.
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		panel := panelPrimary
		if m.secondaryOpen() && zone.Get(ui.ZoneGroupPanel).InBounds(msg) {
			panel = panelSecondary
		}
		switch {
		case msg.Button == tea.MouseButtonWheelUp && panel == panelSecondary:
			m.groupPanel.Up()
		case msg.Button == tea.MouseButtonWheelDown && panel == panelSecondary:
			m.groupPanel.Down()
		case msg.Button == tea.MouseButtonWheelUp:
			m.navPanel.Up()
		default:
			m.navPanel.Down()
		}
		return m, nil
	}

	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.state == stateHelp {
		m.state = stateDefault
		return m, nil
	}

	if zone.Get(ui.ZoneDockToggle).InBounds(msg) {
		m.toggleDock()
		return m, nil
	}
	if zone.Get(ui.ZoneShrink).InBounds(msg) {
		m.toggleShrink()
		return m, nil
	}
	if zone.Get(ui.ZoneNavSearch).InBounds(msg) {
		m.setFocus(panelPrimary)
		m.navPanel.ActivateSearch()
		m.state = stateSearch
		return m, nil
	}

	for i := 0; i < m.navPanel.NumRows(); i++ {
		if !zone.Get(ui.NavRowZoneID(i)).InBounds(msg) {
			continue
		}
		m.setFocus(panelPrimary)
		m.navPanel.ClickItem(i)
		m.activateSelected()
		return m, nil
	}

	if m.secondaryOpen() {
		for i := 0; i < m.groupPanel.NumRows(); i++ {
			if !zone.Get(ui.GroupRowZoneID(i)).InBounds(msg) {
				continue
			}
			m.setFocus(panelSecondary)
			m.groupPanel.ClickItem(i)
			if link, ok := m.groupPanel.SelectedLink(); ok {
				m.openLink(link)
			}
			return m, nil
		}
	}

	return m, nil
}
