package ui

import (
	"testing"

	"github.com/sablehq/deckhand/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opsGroup() nav.NavGroup {
	return nav.NavGroup{
		ID:    "ops",
		Title: "Operations",
		NavLinks: []nav.GroupLink{
			{ID: "metrics", Order: intp(2)},
			{ID: "alerts", Order: intp(1)},
			{ID: "stale"},
		},
	}
}

func opsLive() []nav.NavLink {
	return []nav.NavLink{
		{ID: "metrics", Title: "Metrics", URL: "/app/metrics"},
		{ID: "alerts", Title: "Alerts", URL: "/app/alerts"},
	}
}

func TestGroupPanel_SetGroupReconcilesAndOrders(t *testing.T) {
	p := NewGroupPanel()
	p.SetGroup(opsGroup(), opsLive(), "")

	// Stale registration dropped; alerts (order 1) before metrics (order 2).
	require.Len(t, p.rows, 2)
	assert.Equal(t, "Alerts", p.rows[0].Label)
	assert.Equal(t, "Metrics", p.rows[1].Label)
}

func TestGroupPanel_CategorySections(t *testing.T) {
	p := NewGroupPanel()
	obs := &nav.AppCategory{ID: "obs", Label: "Observability"}
	live := []nav.NavLink{
		{ID: "metrics", Title: "Metrics", Category: obs},
		{ID: "logs", Title: "Logs", Category: obs},
	}
	group := nav.NavGroup{ID: "g", Title: "G", NavLinks: []nav.GroupLink{{ID: "metrics"}, {ID: "logs"}}}
	p.SetGroup(group, live, "")

	require.Len(t, p.rows, 3)
	assert.Equal(t, groupRowSection, p.rows[0].Kind)
	assert.Equal(t, "Observability", p.rows[0].Label)
	assert.Equal(t, groupRowLink, p.rows[1].Kind)
	assert.Equal(t, groupRowLink, p.rows[2].Kind)

	// Cursor lands on the first link, not the section header.
	assert.Equal(t, 1, p.GetSelectedIdx())
}

func TestGroupPanel_UpDownSkipSections(t *testing.T) {
	p := NewGroupPanel()
	obs := &nav.AppCategory{ID: "obs", Label: "Observability"}
	live := []nav.NavLink{
		{ID: "home", Title: "Home", Order: intp(1)},
		{ID: "metrics", Title: "Metrics", Category: obs, Order: intp(2)},
	}
	group := nav.NavGroup{ID: "g", NavLinks: []nav.GroupLink{{ID: "home"}, {ID: "metrics"}}}
	p.SetGroup(group, live, "")
	// rows: [home, section, metrics]
	require.Len(t, p.rows, 3)
	require.Equal(t, 0, p.GetSelectedIdx())

	p.Down()
	assert.Equal(t, 2, p.GetSelectedIdx(), "Down should skip the section header")
	p.Up()
	assert.Equal(t, 0, p.GetSelectedIdx())
}

func TestGroupPanel_SelectedLink(t *testing.T) {
	p := NewGroupPanel()
	p.SetGroup(opsGroup(), opsLive(), "")

	link, ok := p.SelectedLink()
	require.True(t, ok)
	assert.Equal(t, "alerts", link.ID)
}

func TestGroupPanel_Clear(t *testing.T) {
	p := NewGroupPanel()
	p.SetGroup(opsGroup(), opsLive(), "")
	p.Clear()

	assert.Equal(t, 0, p.NumRows())
	_, ok := p.SelectedLink()
	assert.False(t, ok)
}

func TestGroupPanel_ClickOnlySelectsLinks(t *testing.T) {
	p := NewGroupPanel()
	obs := &nav.AppCategory{ID: "obs", Label: "Observability"}
	live := []nav.NavLink{{ID: "metrics", Title: "Metrics", Category: obs}}
	group := nav.NavGroup{ID: "g", NavLinks: []nav.GroupLink{{ID: "metrics"}}}
	p.SetGroup(group, live, "")
	// rows: [section, metrics]

	p.ClickItem(0)
	assert.Equal(t, 1, p.GetSelectedIdx(), "clicking a section header is a no-op")
	p.ClickItem(1)
	assert.Equal(t, 1, p.GetSelectedIdx())
}

func TestGroupPanel_StringFull(t *testing.T) {
	p := NewGroupPanel()
	p.SetSize(40, 20)
	p.SetGroup(opsGroup(), opsLive(), "alerts")

	output := p.String()
	assert.Contains(t, output, "Operations")
	assert.Contains(t, output, "Alerts")
	assert.Contains(t, output, "Metrics")
}

func TestGroupPanel_StringShrunk(t *testing.T) {
	p := NewGroupPanel()
	p.SetSize(6, 20)
	p.SetShrunk(true)
	p.SetGroup(opsGroup(), opsLive(), "")

	output := p.String()
	// Shrunk rail shows initials, not full titles.
	assert.NotContains(t, output, "Alerts")
	assert.Contains(t, output, "A")
	assert.Contains(t, output, "M")
}

func TestGroupPanel_InitialPrefersIcon(t *testing.T) {
	assert.Equal(t, "⚡", initial(nav.NavLink{Icon: "⚡", Title: "Alerts"}))
	assert.Equal(t, "A", initial(nav.NavLink{Title: "Alerts"}))
	assert.Equal(t, "·", initial(nav.NavLink{}))
}
