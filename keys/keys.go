package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyUp KeyName = iota
	KeyDown
	KeyEnter
	KeyQuit
	KeyHelp

	KeySearch     // Key for activating search
	KeyArrowLeft  // Key for in-panel horizontal navigation left (collapse, jump to header)
	KeyArrowRight // Key for in-panel horizontal navigation right (expand, descend)

	KeySpace // Key for toggling expand/collapse on the selected category

	KeyTab         // Tab cycles focus between the primary and secondary panels.
	KeyDock        // Key for toggling the panel's locked (docked) state
	KeyShrink      // Key for shrinking/restoring the secondary panel
	KeyCopyURL     // Key for copying the selected link's URL to the clipboard
	KeyTogglePanel // Key for showing/hiding an undocked panel
	KeyClearSearch // Esc clears an active search
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"up":     KeyUp,
	"k":      KeyUp,
	"down":   KeyDown,
	"j":      KeyDown,
	"enter":  KeyEnter,
	"q":      KeyQuit,
	"?":      KeyHelp,
	"/":      KeySearch,
	"left":   KeyArrowLeft,
	"h":      KeyArrowLeft,
	"right":  KeyArrowRight,
	"l":      KeyArrowRight,
	" ":      KeySpace,
	"tab":    KeyTab,
	"ctrl+s": KeyDock,
	"m":      KeyShrink,
	"y":      KeyCopyURL,
	"ctrl+n": KeyTogglePanel,
	"esc":    KeyClearSearch,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyEnter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("↵", "open"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeySearch: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	KeyArrowLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	KeyArrowRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	KeySpace: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "expand/collapse"),
	),
	KeyTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "cycle panes"),
	),
	KeyDock: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "dock/undock"),
	),
	KeyShrink: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "shrink panel"),
	),
	KeyCopyURL: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy url"),
	),
	KeyTogglePanel: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("ctrl+n", "show/hide panel"),
	),
	KeyClearSearch: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear search"),
	),
}
