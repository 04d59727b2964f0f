// Package registry supplies the navigation core with its inputs: the set of
// navigable links, the group map, and the optional custom link. Definitions
// live in a TOML manifest that can change during the session; the shell
// polls it and pushes fresh snapshots into the app.
package registry

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sablehq/deckhand/nav"
)

// Snapshot is one consistent read of the manifest. Hidden links are
// filtered out here, before reaching the nav core.
type Snapshot struct {
	Links  []nav.NavLink
	Groups map[string]nav.NavGroup
	Custom *nav.NavLink
}

type manifestCategory struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
	Order *int   `toml:"order"`
	Icon  string `toml:"icon"`
}

type manifestLink struct {
	ID       string            `toml:"id"`
	Title    string            `toml:"title"`
	URL      string            `toml:"url"`
	Icon     string            `toml:"icon"`
	Order    *int              `toml:"order"`
	Hidden   bool              `toml:"hidden"`
	Category *manifestCategory `toml:"category"`
}

type manifestGroupLink struct {
	ID    string `toml:"id"`
	Order *int   `toml:"order"`
}

type manifestGroup struct {
	ID    string              `toml:"id"`
	Title string              `toml:"title"`
	Order int                 `toml:"order"`
	Type  string              `toml:"type"`
	Links []manifestGroupLink `toml:"links"`
}

type manifest struct {
	Links  []manifestLink `toml:"link"`
	Groups []manifestGroup `toml:"group"`
	Custom *manifestLink  `toml:"custom_link"`
}

// Load reads and converts the manifest at path. Links with duplicate ids
// keep the last definition (last write wins).
func Load(path string) (*Snapshot, error) {
	var m manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}

	snap := &Snapshot{Groups: make(map[string]nav.NavGroup, len(m.Groups))}

	seen := make(map[string]int)
	for _, ml := range m.Links {
		if ml.Hidden {
			continue
		}
		link := convertLink(ml)
		if idx, dup := seen[link.ID]; dup {
			snap.Links[idx] = link
			continue
		}
		seen[link.ID] = len(snap.Links)
		snap.Links = append(snap.Links, link)
	}

	for _, mg := range m.Groups {
		group := nav.NavGroup{
			ID:    mg.ID,
			Title: mg.Title,
			Order: mg.Order,
			Type:  nav.GroupType(mg.Type),
		}
		for _, gl := range mg.Links {
			group.NavLinks = append(group.NavLinks, nav.GroupLink{ID: gl.ID, Order: gl.Order})
		}
		snap.Groups[group.ID] = group
	}

	if m.Custom != nil && !m.Custom.Hidden {
		custom := convertLink(*m.Custom)
		snap.Custom = &custom
	}

	return snap, nil
}

func convertLink(ml manifestLink) nav.NavLink {
	link := nav.NavLink{
		ID:     ml.ID,
		Title:  ml.Title,
		URL:    ml.URL,
		Icon:   ml.Icon,
		Order:  ml.Order,
		Hidden: ml.Hidden,
	}
	if ml.Category != nil && ml.Category.ID != "" {
		link.Category = &nav.AppCategory{
			ID:    ml.Category.ID,
			Label: ml.Category.Label,
			Order: ml.Category.Order,
			Icon:  ml.Category.Icon,
		}
	}
	return link
}

// Watcher polls a manifest for changes by modification time.
type Watcher struct {
	path    string
	lastMod time.Time
}

// NewWatcher watches the manifest at path. The first Poll reports a
// snapshot as soon as the manifest exists.
func NewWatcher(path string) *Watcher {
	return &Watcher{path: path}
}

// Poll re-reads the manifest if it changed since the last call. It returns
// nil when the manifest is unchanged. A missing manifest is not an error:
// the shell renders an empty panel until one appears.
func (w *Watcher) Poll() (*Snapshot, error) {
	stat, err := os.Stat(w.path)
	if err != nil {
		if os.IsNotExist(err) {
			if w.lastMod.IsZero() {
				return nil, nil
			}
			// Manifest removed: push an empty snapshot once.
			w.lastMod = time.Time{}
			return &Snapshot{Groups: map[string]nav.NavGroup{}}, nil
		}
		return nil, fmt.Errorf("stat manifest: %w", err)
	}

	if !stat.ModTime().After(w.lastMod) {
		return nil, nil
	}

	snap, err := Load(w.path)
	if err != nil {
		return nil, err
	}
	w.lastMod = stat.ModTime()
	return snap, nil
}
