package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type navRecorder struct {
	ids  []string
	urls []string
}

func (r *navRecorder) navigate(id, url string) {
	r.ids = append(r.ids, id)
	r.urls = append(r.urls, url)
}

func testGroups() map[string]NavGroup {
	return map[string]NavGroup{
		"ops": {
			ID: "ops", Title: "Operations", Order: 2,
			NavLinks: []GroupLink{{ID: "metrics"}, {ID: "alerts"}},
		},
		"dev": {
			ID: "dev", Title: "Developer", Order: 1,
			NavLinks: []GroupLink{{ID: "console"}},
		},
	}
}

// ---------- auto-focus ----------

func TestAutoFocus_OnActiveAppChange(t *testing.T) {
	c := NewFocusController(nil)
	c.SetGroups(testGroups())

	c.SetActiveApp("metrics")
	g, ok := c.Focused()
	require.True(t, ok)
	assert.Equal(t, "ops", g.ID)

	c.SetActiveApp("console")
	g, ok = c.Focused()
	require.True(t, ok)
	assert.Equal(t, "dev", g.ID)
}

func TestAutoFocus_NoMatchUnfocuses(t *testing.T) {
	c := NewFocusController(nil)
	c.SetGroups(testGroups())
	c.SetActiveApp("metrics")

	c.SetActiveApp("unknown-app")
	_, ok := c.Focused()
	assert.False(t, ok)
}

func TestAutoFocus_EmptyActiveApp(t *testing.T) {
	c := NewFocusController(nil)
	c.SetGroups(testGroups())
	c.SetActiveApp("")
	_, ok := c.Focused()
	assert.False(t, ok)
}

func TestAutoFocus_ScansGroupsByOrder(t *testing.T) {
	c := NewFocusController(nil)
	// Both groups contain the link; the lower-order group wins.
	c.SetGroups(map[string]NavGroup{
		"late":  {ID: "late", Order: 9, NavLinks: []GroupLink{{ID: "app"}}},
		"early": {ID: "early", Order: 1, NavLinks: []GroupLink{{ID: "app"}}},
	})
	c.SetActiveApp("app")

	g, ok := c.Focused()
	require.True(t, ok)
	assert.Equal(t, "early", g.ID)
}

func TestAutoFocus_EqualOrderTieBreaksByID(t *testing.T) {
	c := NewFocusController(nil)
	c.SetGroups(map[string]NavGroup{
		"bravo": {ID: "bravo", Order: 1, NavLinks: []GroupLink{{ID: "app"}}},
		"alpha": {ID: "alpha", Order: 1, NavLinks: []GroupLink{{ID: "app"}}},
	})
	c.SetActiveApp("app")

	g, ok := c.Focused()
	require.True(t, ok)
	assert.Equal(t, "alpha", g.ID)
}

func TestAutoFocus_RecomputesOnGroupMapChange(t *testing.T) {
	c := NewFocusController(nil)
	c.SetGroups(testGroups())
	c.SetActiveApp("metrics")
	_, ok := c.Focused()
	require.True(t, ok)

	// Remove the focused group from the map: focus falls back to Unfocused.
	c.SetGroups(map[string]NavGroup{
		"dev": {ID: "dev", Order: 1, NavLinks: []GroupLink{{ID: "console"}}},
	})
	_, ok = c.Focused()
	assert.False(t, ok)
}

func TestAutoFocus_ReplacesManualFocus(t *testing.T) {
	c := NewFocusController(nil)
	c.SetGroups(testGroups())
	c.ToggleFocus("ops")
	g, ok := c.Focused()
	require.True(t, ok)
	require.Equal(t, "ops", g.ID)

	// An app-id change that resolves elsewhere replaces user-driven focus.
	c.SetActiveApp("console")
	g, ok = c.Focused()
	require.True(t, ok)
	assert.Equal(t, "dev", g.ID)
}

// ---------- manual focus ----------

func TestToggleFocus_FocusesGroup(t *testing.T) {
	c := NewFocusController(nil)
	c.SetGroups(testGroups())

	c.ToggleFocus("ops")
	g, ok := c.Focused()
	require.True(t, ok)
	assert.Equal(t, "ops", g.ID)
}

func TestToggleFocus_OnFocusedGroupUnfocuses(t *testing.T) {
	c := NewFocusController(nil)
	c.SetGroups(testGroups())

	c.ToggleFocus("ops")
	c.ToggleFocus("ops")
	_, ok := c.Focused()
	assert.False(t, ok)
}

func TestToggleFocus_UnknownGroupUnfocuses(t *testing.T) {
	c := NewFocusController(nil)
	c.SetGroups(testGroups())
	c.ToggleFocus("ops")

	c.ToggleFocus("no-such-group")
	_, ok := c.Focused()
	assert.False(t, ok)
}

func TestToggleFocus_NavigatesToFirstLink(t *testing.T) {
	rec := &navRecorder{}
	c := NewFocusController(rec.navigate)
	c.SetLinks([]NavLink{
		{ID: "metrics", URL: "/app/metrics", Order: intp(2)},
		{ID: "alerts", URL: "/app/alerts", Order: intp(1)},
	})
	c.SetGroups(testGroups())

	c.ToggleFocus("ops")

	// Reconciled + ordered: alerts (order 1) comes first.
	require.Len(t, rec.ids, 1)
	assert.Equal(t, "alerts", rec.ids[0])
	assert.Equal(t, "/app/alerts", rec.urls[0])
}

func TestToggleFocus_NoLiveLinksNoNavigation(t *testing.T) {
	rec := &navRecorder{}
	c := NewFocusController(rec.navigate)
	c.SetGroups(testGroups())

	// All registrations are stale: focus still lands, nothing navigates.
	c.ToggleFocus("ops")
	g, ok := c.Focused()
	require.True(t, ok)
	assert.Equal(t, "ops", g.ID)
	assert.Empty(t, rec.ids)
}

func TestToggleFocus_UnfocusDoesNotNavigate(t *testing.T) {
	rec := &navRecorder{}
	c := NewFocusController(rec.navigate)
	c.SetLinks([]NavLink{{ID: "console", URL: "/app/console"}})
	c.SetGroups(testGroups())

	c.ToggleFocus("dev")
	c.ToggleFocus("dev")
	assert.Len(t, rec.ids, 1, "only the focus click should navigate")
}

// ---------- exclusivity / recovery ----------

func TestFocus_AtMostOneGroup(t *testing.T) {
	c := NewFocusController(nil)
	c.SetGroups(testGroups())

	c.ToggleFocus("ops")
	c.ToggleFocus("dev")
	g, ok := c.Focused()
	require.True(t, ok)
	assert.Equal(t, "dev", g.ID)
}

func TestFocused_VanishedGroupFallsBack(t *testing.T) {
	c := NewFocusController(nil)
	c.SetGroups(testGroups())
	c.ToggleFocus("ops")

	// Mutate the map underneath the controller without a SetGroups call.
	delete(c.groups, "ops")
	_, ok := c.Focused()
	assert.False(t, ok)
}

func TestFocus_InitialStateUnfocused(t *testing.T) {
	c := NewFocusController(nil)
	_, ok := c.Focused()
	assert.False(t, ok)
}
