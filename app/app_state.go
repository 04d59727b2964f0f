package app

import (
	"github.com/atotto/clipboard"
	"github.com/sablehq/deckhand/config"
	"github.com/sablehq/deckhand/log"
	"github.com/sablehq/deckhand/nav"
	"github.com/sablehq/deckhand/registry"
)

// Navigator receives navigation requests from the shell: every link the
// user opens, whether by click, keyboard, or the simulated first-link click
// that follows a manual group focus.
type Navigator interface {
	Navigate(id, url string) error
}

// logNavigator is the default Navigator: it records each request in the
// log. The hosted-app layer swaps in a real implementation.
type logNavigator struct{}

func newLogNavigator() *logNavigator { return &logNavigator{} }

func (n *logNavigator) Navigate(id, url string) error {
	log.InfoLog.Printf("navigate to %s (%s)", id, url)
	return nil
}

// applySnapshot pushes a fresh manifest snapshot into the nav core and the
// panels. Focus recomputes from the new group map; the secondary panel
// follows whatever focus resolves to.
func (m *home) applySnapshot(snap *registry.Snapshot) {
	m.links = snap.Links

	m.focus.SetLinks(snap.Links)
	m.focus.SetGroups(snap.Groups)

	m.navPanel.SetLinks(snap.Links)
	m.navPanel.SetGroups(snap.Groups)
	m.navPanel.SetCustomLink(snap.Custom)

	m.syncFocus()
}

// setActiveApp records the active link id and recomputes focus from it.
func (m *home) setActiveApp(id string) {
	m.activeApp = id
	m.focus.SetActiveApp(id)
	m.navPanel.SetActiveApp(id)
	m.syncFocus()
}

// syncFocus mirrors the focus controller's decision into the panels. When
// focus clears, the secondary panel closes and its shrink toggle resets.
func (m *home) syncFocus() {
	g, ok := m.focus.Focused()
	if !ok {
		m.navPanel.SetFocusedGroup("")
		m.groupPanel.Clear()
		if m.shrunk {
			m.shrunk = false
			m.groupPanel.SetShrunk(false)
		}
		m.setFocus(panelPrimary)
		m.resizePanels()
		return
	}

	m.navPanel.SetFocusedGroup(g.ID)
	m.groupPanel.SetGroup(g, m.links, m.activeApp)
	m.resizePanels()
}

// onNavigate is the focus controller's navigate hook, also used for every
// direct link activation.
func (m *home) onNavigate(id, url string) {
	if err := m.navigator.Navigate(id, url); err != nil {
		log.ErrorLog.Printf("navigation to %s failed: %v", id, err)
		return
	}
	m.setActiveApp(id)
}

// openLink routes a user link activation through the navigator.
func (m *home) openLink(link nav.NavLink) {
	m.onNavigate(link.ID, link.URL)
}

// focusGroup handles a user click on a group row: toggle focus, then sync
// the panels. The controller issues the simulated first-link click itself.
func (m *home) focusGroup(id string) {
	m.focus.ToggleFocus(id)
	m.syncFocus()
}

// setFocus moves keyboard focus between the primary and secondary panels.
func (m *home) setFocus(panel int) {
	if panel == panelSecondary && !m.secondaryOpen() {
		panel = panelPrimary
	}
	m.focusedPanel = panel
	m.navPanel.SetFocused(panel == panelPrimary)
	m.groupPanel.SetFocused(panel == panelSecondary)
}

// toggleDock flips the panel's locked state and persists it.
func (m *home) toggleDock() {
	m.docked = !m.docked
	m.panelVisible = true
	m.appConfig.PanelLocked = m.docked
	if err := config.SaveConfig(m.appConfig); err != nil {
		log.WarningLog.Printf("failed to save config: %v", err)
	}
	m.resizePanels()
}

// toggleShrink narrows or restores the secondary panel. No-op while the
// secondary panel is closed.
func (m *home) toggleShrink() {
	if !m.secondaryOpen() {
		return
	}
	m.shrunk = !m.shrunk
	m.groupPanel.SetShrunk(m.shrunk)
	m.resizePanels()
}

// togglePanel shows or hides an undocked panel. A docked panel stays put.
func (m *home) togglePanel() {
	if m.docked {
		return
	}
	m.panelVisible = !m.panelVisible
	m.resizePanels()
}

// copySelectedURL copies the focused panel's selected link URL to the
// system clipboard.
func (m *home) copySelectedURL() {
	var link nav.NavLink
	var ok bool
	if m.focusedPanel == panelSecondary {
		link, ok = m.groupPanel.SelectedLink()
	} else {
		link, ok = m.navPanel.SelectedLink()
	}
	if !ok || link.URL == "" {
		return
	}
	if err := clipboard.WriteAll(link.URL); err != nil {
		log.WarningLog.Printf("failed to copy url: %v", err)
	}
}
