package nav

import "sort"

// NavigateFunc is the shell's navigation request hook: called with a link's
// id and target URL, at most once per user click or per simulated
// first-link click during group focus.
type NavigateFunc func(id, url string)

// FocusController tracks which group is drilled into. At most one group is
// focused at any instant; Unfocused is both the initial and a valid steady
// state. Focus is recomputed from the active app id whenever the active app
// or the group map changes, fully replacing any prior (including
// user-driven) focus.
type FocusController struct {
	groups    map[string]NavGroup
	links     []NavLink
	activeApp string
	focusedID string
	navigate  NavigateFunc
}

// NewFocusController returns an unfocused controller. navigate may be nil,
// in which case simulated first-link clicks are dropped.
func NewFocusController(navigate NavigateFunc) *FocusController {
	return &FocusController{navigate: navigate}
}

// SetLinks updates the live link definitions used to reconcile a group's
// registrations on manual focus. Links do not trigger a focus recompute.
func (c *FocusController) SetLinks(links []NavLink) {
	c.links = links
}

// SetGroups replaces the group map and recomputes focus.
func (c *FocusController) SetGroups(groups map[string]NavGroup) {
	c.groups = groups
	c.recompute()
}

// SetActiveApp updates the active application id and recomputes focus. An
// empty id is valid and resolves to Unfocused.
func (c *FocusController) SetActiveApp(id string) {
	c.activeApp = id
	c.recompute()
}

// Focused returns the currently focused group, if any.
func (c *FocusController) Focused() (NavGroup, bool) {
	if c.focusedID == "" {
		return NavGroup{}, false
	}
	g, ok := c.groups[c.focusedID]
	if !ok {
		// The focus target vanished from the group map. Recoverable:
		// fall back to Unfocused.
		return NavGroup{}, false
	}
	return g, true
}

// ToggleFocus handles an explicit user click on a group. Clicking the
// already-focused group unfocuses it. Otherwise the group becomes focused
// and, as a second sequenced action, a simulated click on its first
// navigable link is issued if one exists.
func (c *FocusController) ToggleFocus(id string) {
	if c.focusedID == id {
		c.focusedID = ""
		return
	}
	g, ok := c.groups[id]
	if !ok {
		c.focusedID = ""
		return
	}
	c.focusedID = id

	items := Order(Reconcile(g.NavLinks, c.links))
	if len(items) == 0 {
		return
	}
	if link, ok := items[0].FirstLink(); ok && c.navigate != nil {
		c.navigate(link.ID, link.URL)
	}
}

// recompute scans all groups ordered by ascending order (ties broken by id
// so the scan is deterministic over the unordered map) and focuses the
// first group whose registrations contain the active app id. No match, or
// an empty active app, resolves to Unfocused.
func (c *FocusController) recompute() {
	c.focusedID = ""
	if c.activeApp == "" {
		return
	}

	ordered := make([]NavGroup, 0, len(c.groups))
	for _, g := range c.groups {
		ordered = append(ordered, g)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Order != ordered[j].Order {
			return ordered[i].Order < ordered[j].Order
		}
		return ordered[i].ID < ordered[j].ID
	})

	for _, g := range ordered {
		if g.ContainsLink(c.activeApp) {
			c.focusedID = g.ID
			return
		}
	}
}
