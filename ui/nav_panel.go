package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
	"github.com/sablehq/deckhand/nav"
)

const (
	NavCustomPrefix   = "__custom__"
	NavGroupPrefix    = "__group__"
	NavCategoryPrefix = "__category__"
	NavLinkPrefix     = "__link__"
)

// CollapseState is the injected persistence boundary for per-category
// expand/collapse flags. Implemented by config.CollapseStore; tests use an
// in-memory double.
type CollapseState interface {
	IsOpen(categoryID string) bool
	SetOpen(categoryID string, open bool)
}

type navRowKind int

const (
	navRowCustom navRowKind = iota
	navRowGroup
	navRowCategoryHeader
	navRowLink
)

type navRow struct {
	Kind       navRowKind
	ID         string
	Label      string
	Link       nav.NavLink // navRowCustom, navRowLink
	GroupID    string      // navRowGroup
	CategoryID string      // navRowCategoryHeader
	Collapsed  bool
	Active     bool // link is the active app
	Focused    bool // group is the drilled-into group
	Indent     int
}

// NavigationPanel is the primary navigation panel: the custom link, the
// registered groups, then the ordered categories/links. Rows are rebuilt
// from scratch on every data change; selection survives rebuilds by id.
type NavigationPanel struct {
	spinner  *spinner.Model
	collapse CollapseState

	rows         []navRow
	selectedIdx  int
	scrollOffset int

	links        []nav.NavLink
	groups       []nav.NavGroup
	custom       *nav.NavLink
	activeApp    string
	focusedGroup string
	loading      bool

	searchActive bool
	searchQuery  string

	width, height int
	focused       bool
}

func NewNavigationPanel(sp *spinner.Model, collapse CollapseState) *NavigationPanel {
	return &NavigationPanel{
		spinner:  sp,
		collapse: collapse,
		loading:  true,
		focused:  true,
	}
}

// SetLinks replaces the live link set (already filtered of hidden links).
func (n *NavigationPanel) SetLinks(links []nav.NavLink) {
	n.links = links
	n.loading = false
	n.rebuildRows()
}

// SetGroups replaces the group map. Groups render sorted by order, ties by id.
func (n *NavigationPanel) SetGroups(groups map[string]nav.NavGroup) {
	sorted := make([]nav.NavGroup, 0, len(groups))
	for _, g := range groups {
		sorted = append(sorted, g)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Order != sorted[j].Order {
			return sorted[i].Order < sorted[j].Order
		}
		return sorted[i].ID < sorted[j].ID
	})
	n.groups = sorted
	n.rebuildRows()
}

// SetCustomLink sets the single link rendered outside the grouping system.
func (n *NavigationPanel) SetCustomLink(link *nav.NavLink) {
	n.custom = link
	n.rebuildRows()
}

// SetActiveApp highlights the active link.
func (n *NavigationPanel) SetActiveApp(id string) {
	n.activeApp = id
	n.rebuildRows()
}

// SetFocusedGroup marks the drilled-into group row.
func (n *NavigationPanel) SetFocusedGroup(id string) {
	n.focusedGroup = id
	n.rebuildRows()
}

func (n *NavigationPanel) rebuildRows() {
	prevID := ""
	if n.selectedIdx >= 0 && n.selectedIdx < len(n.rows) {
		prevID = n.rows[n.selectedIdx].ID
	}

	rows := make([]navRow, 0, len(n.links)+len(n.groups)+2)

	if n.custom != nil {
		rows = append(rows, navRow{
			Kind:   navRowCustom,
			ID:     NavCustomPrefix + n.custom.ID,
			Label:  n.custom.Title,
			Link:   *n.custom,
			Active: n.custom.ID == n.activeApp,
		})
	}

	for _, g := range n.groups {
		rows = append(rows, navRow{
			Kind:    navRowGroup,
			ID:      NavGroupPrefix + g.ID,
			Label:   g.Title,
			GroupID: g.ID,
			Focused: g.ID == n.focusedGroup,
		})
	}

	for _, item := range nav.Order(n.links) {
		switch item.Kind {
		case nav.ItemLink:
			rows = append(rows, navRow{
				Kind:   navRowLink,
				ID:     NavLinkPrefix + item.Link.ID,
				Label:  item.Link.Title,
				Link:   item.Link,
				Active: item.Link.ID == n.activeApp,
			})
		case nav.ItemCategory:
			open := n.collapse == nil || n.collapse.IsOpen(item.Category.ID)
			rows = append(rows, navRow{
				Kind:       navRowCategoryHeader,
				ID:         NavCategoryPrefix + item.Category.ID,
				Label:      item.Category.Label,
				CategoryID: item.Category.ID,
				Collapsed:  !open,
			})
			if !open {
				continue
			}
			for _, link := range item.Links {
				rows = append(rows, navRow{
					Kind:   navRowLink,
					ID:     NavLinkPrefix + link.ID,
					Label:  link.Title,
					Link:   link,
					Active: link.ID == n.activeApp,
					Indent: 2,
				})
			}
		}
	}

	n.rows = rows
	if len(rows) == 0 {
		n.selectedIdx = 0
		n.scrollOffset = 0
		return
	}
	if prevID != "" {
		for i, row := range rows {
			if row.ID == prevID {
				n.selectedIdx = i
				n.clampScroll()
				return
			}
		}
	}
	if n.selectedIdx >= len(rows) {
		n.selectedIdx = len(rows) - 1
	}
	if n.selectedIdx < 0 {
		n.selectedIdx = 0
	}
	n.clampScroll()
}

func (n *NavigationPanel) SetSize(width, height int) {
	n.width, n.height = width, height
	n.clampScroll()
}
func (n *NavigationPanel) SetFocused(focused bool) { n.focused = focused }
func (n *NavigationPanel) IsFocused() bool         { return n.focused }

func (n *NavigationPanel) ActivateSearch()         { n.searchActive = true; n.searchQuery = "" }
func (n *NavigationPanel) DeactivateSearch()       { n.searchActive = false; n.searchQuery = "" }
func (n *NavigationPanel) IsSearchActive() bool    { return n.searchActive }
func (n *NavigationPanel) GetSearchQuery() string  { return n.searchQuery }
func (n *NavigationPanel) SetSearchQuery(q string) { n.searchQuery = q }

// ToggleSelectedExpand flips the collapse flag of the selected category
// header and persists it. Returns false for rows that cannot collapse.
func (n *NavigationPanel) ToggleSelectedExpand() bool {
	if n.selectedIdx < 0 || n.selectedIdx >= len(n.rows) {
		return false
	}
	row := n.rows[n.selectedIdx]
	if row.Kind != navRowCategoryHeader {
		return false
	}
	if n.collapse != nil {
		n.collapse.SetOpen(row.CategoryID, row.Collapsed)
	}
	n.rebuildRows()
	return true
}

func (n *NavigationPanel) Up() {
	if n.selectedIdx > 0 {
		n.selectedIdx--
		n.clampScroll()
	}
}

func (n *NavigationPanel) Down() {
	if n.selectedIdx+1 < len(n.rows) {
		n.selectedIdx++
		n.clampScroll()
	}
}

func (n *NavigationPanel) Left() {
	if n.selectedIdx < 0 || n.selectedIdx >= len(n.rows) {
		return
	}
	row := n.rows[n.selectedIdx]
	switch row.Kind {
	case navRowCategoryHeader:
		if !row.Collapsed {
			n.ToggleSelectedExpand()
		}
	case navRowLink:
		if row.Indent == 0 {
			return
		}
		for i := n.selectedIdx - 1; i >= 0; i-- {
			if n.rows[i].Kind == navRowCategoryHeader {
				n.selectedIdx = i
				n.clampScroll()
				return
			}
		}
	}
}

func (n *NavigationPanel) Right() {
	if n.selectedIdx < 0 || n.selectedIdx >= len(n.rows) {
		return
	}
	row := n.rows[n.selectedIdx]
	if row.Kind != navRowCategoryHeader {
		return
	}
	if row.Collapsed {
		n.ToggleSelectedExpand()
	} else {
		n.Down()
	}
}

// SelectedLink returns the link under the cursor, if the cursor is on a
// link or the custom link.
func (n *NavigationPanel) SelectedLink() (nav.NavLink, bool) {
	if n.selectedIdx < 0 || n.selectedIdx >= len(n.rows) {
		return nav.NavLink{}, false
	}
	row := n.rows[n.selectedIdx]
	if row.Kind != navRowLink && row.Kind != navRowCustom {
		return nav.NavLink{}, false
	}
	return row.Link, true
}

// SelectedGroupID returns the group id under the cursor, or "".
func (n *NavigationPanel) SelectedGroupID() string {
	if n.selectedIdx < 0 || n.selectedIdx >= len(n.rows) {
		return ""
	}
	return n.rows[n.selectedIdx].GroupID
}

func (n *NavigationPanel) IsSelectedCategoryHeader() bool {
	if n.selectedIdx < 0 || n.selectedIdx >= len(n.rows) {
		return false
	}
	return n.rows[n.selectedIdx].Kind == navRowCategoryHeader
}

func (n *NavigationPanel) GetSelectedID() string {
	if n.selectedIdx < 0 || n.selectedIdx >= len(n.rows) {
		return ""
	}
	return n.rows[n.selectedIdx].ID
}

func (n *NavigationPanel) GetSelectedIdx() int  { return n.selectedIdx }
func (n *NavigationPanel) GetScrollOffset() int { return n.scrollOffset }
func (n *NavigationPanel) NumRows() int         { return len(n.rows) }

func (n *NavigationPanel) ClickItem(row int) {
	if row >= 0 && row < len(n.rows) {
		n.selectedIdx = row
		n.clampScroll()
	}
}

func (n *NavigationPanel) SelectByID(id string) bool {
	for i, row := range n.rows {
		if row.ID == id {
			n.selectedIdx = i
			n.clampScroll()
			return true
		}
	}
	return false
}

func (n *NavigationPanel) SelectFirst() {
	if len(n.rows) > 0 {
		n.selectedIdx = 0
		n.clampScroll()
	}
}

// SelectedSpaceAction returns the label for the space keybinding given the
// selected row ("expand", "collapse", or "open").
func (n *NavigationPanel) SelectedSpaceAction() string {
	if n.selectedIdx < 0 || n.selectedIdx >= len(n.rows) {
		return "open"
	}
	row := n.rows[n.selectedIdx]
	if row.Kind != navRowCategoryHeader {
		return "open"
	}
	if row.Collapsed {
		return "expand"
	}
	return "collapse"
}

func (n *NavigationPanel) availRows() int {
	avail := n.height - 6
	if avail < 1 {
		return 1
	}
	return avail
}

func (n *NavigationPanel) clampScroll() {
	if len(n.rows) == 0 {
		n.scrollOffset = 0
		return
	}
	avail := n.availRows()
	if n.selectedIdx < n.scrollOffset {
		n.scrollOffset = n.selectedIdx
	}
	if n.selectedIdx >= n.scrollOffset+avail {
		n.scrollOffset = n.selectedIdx - avail + 1
	}
	if n.scrollOffset < 0 {
		n.scrollOffset = 0
	}
}

var (
	navGroupStyle = lipgloss.NewStyle().Foreground(ColorPeach)

	navFocusedGroupStyle = lipgloss.NewStyle().
				Foreground(ColorBase).
				Background(ColorMauve)

	navCategoryStyle = lipgloss.NewStyle().Foreground(ColorSubtle)

	navActiveLinkStyle = lipgloss.NewStyle().Foreground(ColorTeal)

	navLinkStyle = lipgloss.NewStyle().Foreground(ColorText)
)

func (n *NavigationPanel) rowLine(row navRow, selected bool) string {
	prefix := "  "
	if selected {
		prefix = "▸ "
	}

	line := row.Label
	switch row.Kind {
	case navRowCategoryHeader:
		ch := "▸"
		if !row.Collapsed {
			ch = "▾"
		}
		line = navCategoryStyle.Render(ch + " " + row.Label)
	case navRowGroup:
		label := "» " + row.Label
		if row.Focused {
			line = navFocusedGroupStyle.Render(label)
		} else {
			line = navGroupStyle.Render(label)
		}
	case navRowLink, navRowCustom:
		style := navLinkStyle
		marker := "  "
		if row.Active {
			style = navActiveLinkStyle
			marker = "● "
		}
		line = strings.Repeat(" ", row.Indent) + style.Render(marker+row.Label)
	}
	return prefix + line
}

func (n *NavigationPanel) String() string {
	border := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorOverlay).Padding(0, 1)
	if n.focused {
		border = border.Border(lipgloss.DoubleBorder()).BorderForeground(ColorMauve)
	}
	innerWidth := n.width - 4
	if innerWidth < 8 {
		innerWidth = 8
	}
	height := n.height - 2
	if height < 4 {
		height = 4
	}

	search := "search"
	if n.searchActive {
		search = n.searchQuery
		if search == "" {
			search = " "
		}
	}
	searchBox := zone.Mark(ZoneNavSearch,
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorOverlay).Padding(0, 1).Width(innerWidth-4).Render(search))

	if n.loading && n.spinner != nil {
		content := searchBox + "\n\n" + n.spinner.View() + " loading apps"
		return lipgloss.Place(n.width, n.height, lipgloss.Left, lipgloss.Top, border.Width(innerWidth).Height(height).Render(content))
	}

	visible := make([]string, 0, len(n.rows))
	for i, row := range n.rows {
		if n.searchActive && n.searchQuery != "" {
			q := strings.ToLower(n.searchQuery)
			if !strings.Contains(strings.ToLower(row.Label), q) {
				continue
			}
		}
		line := runewidth.Truncate(n.rowLine(row, i == n.selectedIdx), innerWidth, "…")
		visible = append(visible, zone.Mark(NavRowZoneID(i), line))
	}

	start := n.scrollOffset
	if start > len(visible) {
		start = len(visible)
	}
	end := start + n.availRows()
	if end > len(visible) {
		end = len(visible)
	}
	body := strings.Join(visible[start:end], "\n")
	if body != "" {
		body += "\n"
	}

	content := searchBox + "\n\n" + body
	return lipgloss.Place(n.width, n.height, lipgloss.Left, lipgloss.Top, border.Width(innerWidth).Height(height).Render(content))
}
