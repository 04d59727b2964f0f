package nav

// AppCategory groups related links in the primary panel. Categories are not
// registered on their own: the first link observed carrying a category id is
// authoritative for that category's metadata.
type AppCategory struct {
	ID    string
	Label string
	Order *int
	Icon  string
}

// NavLink is a single navigable entry in the primary panel. Links are owned
// by the registry; the nav core treats them as read-only.
type NavLink struct {
	ID       string
	Title    string
	URL      string
	Icon     string
	Category *AppCategory
	Order    *int
	Hidden   bool
}

// GroupLink is a link registration inside a NavGroup: a reference to a live
// link by id, optionally overriding its order within the group.
type GroupLink struct {
	ID    string
	Order *int
}

// GroupType distinguishes built-in groups from user-defined ones.
type GroupType string

// GroupTypeSystem marks groups shipped with the shell rather than declared
// by the user.
const GroupTypeSystem GroupType = "system"

// NavGroup is a user-facing top-level grouping, distinct from AppCategory.
// Groups register at any time during the session; the full group map is
// re-supplied on every registry update.
type NavGroup struct {
	ID       string
	Title    string
	Order    int
	Type     GroupType
	NavLinks []GroupLink
}

// ContainsLink reports whether the group registers the given link id.
func (g NavGroup) ContainsLink(id string) bool {
	for _, l := range g.NavLinks {
		if l.ID == id {
			return true
		}
	}
	return false
}
