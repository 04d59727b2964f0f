package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
	"github.com/sablehq/deckhand/nav"
)

type groupRowKind int

const (
	groupRowSection groupRowKind = iota
	groupRowLink
)

type groupRow struct {
	Kind   groupRowKind
	Label  string
	Link   nav.NavLink
	Active bool
}

// GroupPanel is the secondary drill-down panel for the focused group: the
// group's registered links reconciled against the live set and ordered. A
// shrunk panel renders as a narrow rail of link initials.
type GroupPanel struct {
	group nav.NavGroup
	rows  []groupRow

	selectedIdx  int
	scrollOffset int

	shrunk  bool
	focused bool

	width, height int
}

func NewGroupPanel() *GroupPanel {
	return &GroupPanel{}
}

// SetGroup fills the panel from the focused group and the live links.
// Categories inside the group render as section headers; they do not
// collapse here.
func (p *GroupPanel) SetGroup(group nav.NavGroup, live []nav.NavLink, activeApp string) {
	p.group = group

	rows := make([]groupRow, 0, len(group.NavLinks))
	for _, item := range nav.Order(nav.Reconcile(group.NavLinks, live)) {
		switch item.Kind {
		case nav.ItemLink:
			rows = append(rows, groupRow{
				Kind:   groupRowLink,
				Label:  item.Link.Title,
				Link:   item.Link,
				Active: item.Link.ID == activeApp,
			})
		case nav.ItemCategory:
			rows = append(rows, groupRow{Kind: groupRowSection, Label: item.Category.Label})
			for _, link := range item.Links {
				rows = append(rows, groupRow{
					Kind:   groupRowLink,
					Label:  link.Title,
					Link:   link,
					Active: link.ID == activeApp,
				})
			}
		}
	}
	p.rows = rows

	if p.selectedIdx >= len(rows) {
		p.selectedIdx = 0
		p.scrollOffset = 0
	}
	// Land the cursor on a link, never a section header.
	if p.selectedIdx < len(rows) && rows[p.selectedIdx].Kind != groupRowLink {
		for i, row := range rows {
			if row.Kind == groupRowLink {
				p.selectedIdx = i
				break
			}
		}
	}
}

// Clear empties the panel when focus is lost.
func (p *GroupPanel) Clear() {
	p.group = nav.NavGroup{}
	p.rows = nil
	p.selectedIdx = 0
	p.scrollOffset = 0
}

func (p *GroupPanel) SetSize(width, height int) {
	p.width, p.height = width, height
	p.clampScroll()
}

func (p *GroupPanel) SetShrunk(shrunk bool)  { p.shrunk = shrunk }
func (p *GroupPanel) IsShrunk() bool         { return p.shrunk }
func (p *GroupPanel) SetFocused(f bool)      { p.focused = f }
func (p *GroupPanel) IsFocused() bool        { return p.focused }
func (p *GroupPanel) GroupID() string        { return p.group.ID }
func (p *GroupPanel) NumRows() int           { return len(p.rows) }
func (p *GroupPanel) GetSelectedIdx() int    { return p.selectedIdx }

func (p *GroupPanel) Up() {
	for i := p.selectedIdx - 1; i >= 0; i-- {
		if p.rows[i].Kind == groupRowLink {
			p.selectedIdx = i
			p.clampScroll()
			return
		}
	}
}

func (p *GroupPanel) Down() {
	for i := p.selectedIdx + 1; i < len(p.rows); i++ {
		if p.rows[i].Kind == groupRowLink {
			p.selectedIdx = i
			p.clampScroll()
			return
		}
	}
}

// SelectedLink returns the link under the cursor.
func (p *GroupPanel) SelectedLink() (nav.NavLink, bool) {
	if p.selectedIdx < 0 || p.selectedIdx >= len(p.rows) {
		return nav.NavLink{}, false
	}
	row := p.rows[p.selectedIdx]
	if row.Kind != groupRowLink {
		return nav.NavLink{}, false
	}
	return row.Link, true
}

func (p *GroupPanel) ClickItem(row int) {
	if row >= 0 && row < len(p.rows) && p.rows[row].Kind == groupRowLink {
		p.selectedIdx = row
		p.clampScroll()
	}
}

func (p *GroupPanel) availRows() int {
	avail := p.height - 4
	if avail < 1 {
		return 1
	}
	return avail
}

func (p *GroupPanel) clampScroll() {
	if len(p.rows) == 0 {
		p.scrollOffset = 0
		return
	}
	avail := p.availRows()
	if p.selectedIdx < p.scrollOffset {
		p.scrollOffset = p.selectedIdx
	}
	if p.selectedIdx >= p.scrollOffset+avail {
		p.scrollOffset = p.selectedIdx - avail + 1
	}
	if p.scrollOffset < 0 {
		p.scrollOffset = 0
	}
}

var (
	groupTitleStyle = lipgloss.NewStyle().
			Foreground(ColorBase).
			Background(ColorPeach).
			Padding(0, 1)

	groupSectionStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)

// initial returns the rail glyph for a link: its icon if set, else the
// first rune of its title.
func initial(link nav.NavLink) string {
	if link.Icon != "" {
		return link.Icon
	}
	title := strings.TrimSpace(link.Title)
	if title == "" {
		return "·"
	}
	return string([]rune(title)[0])
}

func (p *GroupPanel) String() string {
	border := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorOverlay).Padding(0, 1)
	if p.focused {
		border = border.Border(lipgloss.DoubleBorder()).BorderForeground(ColorMauve)
	}
	innerWidth := p.width - 4
	if innerWidth < 3 {
		innerWidth = 3
	}
	height := p.height - 2
	if height < 4 {
		height = 4
	}

	if p.shrunk {
		lines := make([]string, 0, len(p.rows)+1)
		lines = append(lines, zone.Mark(ZoneShrink, "«"))
		for i, row := range p.rows {
			if row.Kind != groupRowLink {
				continue
			}
			glyph := initial(row.Link)
			if i == p.selectedIdx {
				glyph = navActiveLinkStyle.Render(glyph)
			}
			lines = append(lines, zone.Mark(GroupRowZoneID(i), glyph))
		}
		content := strings.Join(lines, "\n")
		return lipgloss.Place(p.width, p.height, lipgloss.Left, lipgloss.Top, border.Width(innerWidth).Height(height).Render(content))
	}

	title := zone.Mark(ZoneShrink, groupTitleStyle.Width(innerWidth-2).Render(p.group.Title))

	visible := make([]string, 0, len(p.rows))
	for i, row := range p.rows {
		var line string
		switch row.Kind {
		case groupRowSection:
			line = groupSectionStyle.Render("— " + row.Label)
		case groupRowLink:
			prefix := "  "
			if i == p.selectedIdx {
				prefix = "▸ "
			}
			style := navLinkStyle
			if row.Active {
				style = navActiveLinkStyle
			}
			line = prefix + style.Render(row.Label)
		}
		visible = append(visible, zone.Mark(GroupRowZoneID(i), runewidth.Truncate(line, innerWidth, "…")))
	}

	start := p.scrollOffset
	if start > len(visible) {
		start = len(visible)
	}
	end := start + p.availRows()
	if end > len(visible) {
		end = len(visible)
	}
	body := strings.Join(visible[start:end], "\n")

	content := title + "\n\n" + body
	return lipgloss.Place(p.width, p.height, lipgloss.Left, lipgloss.Top, border.Width(innerWidth).Height(height).Render(content))
}
