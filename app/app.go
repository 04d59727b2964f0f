package app

import (
	"context"
	"time"

	"github.com/sablehq/deckhand/config"
	"github.com/sablehq/deckhand/log"
	"github.com/sablehq/deckhand/nav"
	"github.com/sablehq/deckhand/registry"
	"github.com/sablehq/deckhand/ui"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// Run is the main entrypoint into the application.
func Run(ctx context.Context, appConfig *config.Config, collapse *config.CollapseStore) error {
	zone.NewGlobal()
	p := tea.NewProgram(
		newHome(ctx, appConfig, collapse, newLogNavigator()),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Full mouse tracking for hover + scroll + click
	)
	_, err := p.Run()
	return err
}

type state int

const (
	stateDefault state = iota
	// stateSearch is the state when the user is typing into the nav search box.
	stateSearch
	// stateHelp is the state when the help screen is displayed.
	stateHelp
)

const (
	panelPrimary = iota
	panelSecondary
)

type home struct {
	ctx context.Context

	// -- Storage and Configuration --

	// appConfig stores persistent application configuration
	appConfig *config.Config
	// watcher polls the app manifest for link/group changes
	watcher *registry.Watcher
	// navigator receives navigation requests for links the user opens
	navigator Navigator

	// -- State --

	// state is the current discrete state of the application
	state state
	// links is the live link set from the last manifest snapshot
	links []nav.NavLink
	// activeApp is the id of the link the hosted-app layer reports as active
	activeApp string
	// focus decides which group (if any) is drilled into
	focus *nav.FocusController
	// shrunk narrows the secondary panel to a rail. Cleared when the
	// secondary panel closes.
	shrunk bool
	// docked pins the navigation panel open; mirrors appConfig.PanelLocked
	docked bool
	// panelVisible tracks whether an undocked panel is currently shown
	panelVisible bool
	// focusedPanel tracks which panel has keyboard focus
	focusedPanel int

	// -- UI Components --

	// navPanel is the primary navigation panel
	navPanel *ui.NavigationPanel
	// groupPanel is the secondary drill-down panel
	groupPanel *ui.GroupPanel
	// statusBar is the top status bar
	statusBar *ui.StatusBar
	// global spinner instance. we plumb this down to where it's needed
	spinner spinner.Model

	// Terminal dimensions for layout and mouse hit-testing
	termWidth     int
	termHeight    int
	primaryWidth  int
	secondWidth   int
	contentHeight int
}

func newHome(ctx context.Context, appConfig *config.Config, collapse *config.CollapseStore, navigator Navigator) *home {
	if collapse == nil {
		collapse = config.NewCollapseStore(nil)
	}
	h := &home{
		ctx:          ctx,
		appConfig:    appConfig,
		watcher:      registry.NewWatcher(appConfig.Manifest()),
		navigator:    navigator,
		state:        stateDefault,
		docked:       appConfig.PanelLocked,
		panelVisible: true,
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		groupPanel:   ui.NewGroupPanel(),
		statusBar:    ui.NewStatusBar(),
	}
	h.navPanel = ui.NewNavigationPanel(&h.spinner, collapse)
	h.focus = nav.NewFocusController(h.onNavigate)
	h.setFocus(panelPrimary)
	return h
}

// manifestPolledMsg carries the result of one manifest poll. snap is nil
// when the manifest has not changed.
type manifestPolledMsg struct {
	snap *registry.Snapshot
	err  error
}

// activeAppMsg is how the hosted-app layer reports the currently active
// link id. An empty id means no app is active.
type activeAppMsg struct {
	id string
}

func (m *home) pollManifestCmd(delay time.Duration) tea.Cmd {
	return func() tea.Msg {
		time.Sleep(delay)
		snap, err := m.watcher.Poll()
		return manifestPolledMsg{snap: snap, err: err}
	}
}

func (m *home) pollInterval() time.Duration {
	return time.Duration(m.appConfig.ManifestPollInterval) * time.Millisecond
}

func (m *home) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.pollManifestCmd(0),
	)
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case manifestPolledMsg:
		if msg.err != nil {
			log.WarningLog.Printf("manifest poll failed: %v", msg.err)
		} else if msg.snap != nil {
			m.applySnapshot(msg.snap)
		}
		return m, m.pollManifestCmd(m.pollInterval())
	case activeAppMsg:
		m.setActiveApp(msg.id)
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateHandleWindowSizeEvent sets the sizes of the components.
// The components will try to render inside their bounds.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.termWidth = msg.Width
	m.termHeight = msg.Height
	m.resizePanels()
}

// resizePanels recomputes the panel layout. Called on window resize and
// whenever focus or the shrink toggle changes the secondary panel width.
func (m *home) resizePanels() {
	statusHeight := 1
	if m.termHeight < 2 {
		statusHeight = 0
	}
	contentHeight := m.termHeight - statusHeight
	if contentHeight < 1 {
		contentHeight = 1
	}
	m.contentHeight = contentHeight

	primary, secondary := nav.PanelWidths(m.secondaryOpen(), m.shrunk).Cells()
	if !m.panelShown() {
		primary, secondary = 0, 0
	}
	m.primaryWidth = primary
	m.secondWidth = secondary

	m.statusBar.SetSize(m.termWidth)
	m.navPanel.SetSize(primary, contentHeight)
	m.groupPanel.SetSize(secondary, contentHeight)
}

// secondaryOpen reports whether a group is drilled into.
func (m *home) secondaryOpen() bool {
	_, ok := m.focus.Focused()
	return ok
}

// panelShown reports whether the navigation panel is on screen at all. A
// docked panel is always shown; an undocked one can be dismissed.
func (m *home) panelShown() bool {
	return m.docked || m.panelVisible
}

func (m *home) View() string {
	if m.state == stateHelp {
		return zone.Scan(m.helpView())
	}

	focusedGroup := ""
	if g, ok := m.focus.Focused(); ok {
		focusedGroup = g.Title
	}
	m.statusBar.SetData(ui.StatusBarData{
		ActiveApp:    m.activeApp,
		FocusedGroup: focusedGroup,
		Docked:       m.docked,
		LinkCount:    len(m.links),
	})

	cols := make([]string, 0, 3)
	if m.panelShown() {
		cols = append(cols, zone.Mark(ui.ZoneNavPanel, m.navPanel.String()))
		if m.secondaryOpen() {
			cols = append(cols, zone.Mark(ui.ZoneGroupPanel, m.groupPanel.String()))
		}
	}
	cols = append(cols, m.contentView())

	mainView := lipgloss.JoinVertical(
		lipgloss.Left,
		m.statusBar.String(),
		lipgloss.JoinHorizontal(lipgloss.Top, cols...),
	)

	// Process bubblezone markers before rendering is complete
	// (zone markers inflate lipgloss.Width if left in place).
	return zone.Scan(mainView)
}

var contentTitleStyle = lipgloss.NewStyle().Foreground(ui.ColorMauve).Bold(true)
var contentHintStyle = lipgloss.NewStyle().Foreground(ui.ColorMuted)

// contentView renders the hosted-app area. The shell itself only shows a
// placeholder naming the active app; real content comes from the app layer.
func (m *home) contentView() string {
	width := m.termWidth - m.primaryWidth - m.secondWidth
	if width < 1 {
		width = 1
	}

	body := contentHintStyle.Render("select a link to open an app")
	if m.activeApp != "" {
		body = contentTitleStyle.Render(m.activeApp)
	}
	return lipgloss.Place(width, m.contentHeight, lipgloss.Center, lipgloss.Center, body)
}
