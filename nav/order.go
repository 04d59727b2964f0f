package nav

import "sort"

// ItemKind identifies the variant of an OrderedItem.
type ItemKind int

const (
	// ItemLink is a single uncategorized link.
	ItemLink ItemKind = iota
	// ItemCategory is a category header carrying its bucket of links.
	ItemCategory
)

// OrderedItem is one entry in the ordered primary-panel sequence: either a
// bare link or a category with its full bucket. Items are built fresh on
// every pass and never persisted.
type OrderedItem struct {
	Kind     ItemKind
	Order    *int
	Link     NavLink
	Category AppCategory
	Links    []NavLink
}

// FirstLink returns the first navigable link of the item: the link itself,
// or the first link of a category bucket.
func (it OrderedItem) FirstLink() (NavLink, bool) {
	switch it.Kind {
	case ItemLink:
		return it.Link, true
	case ItemCategory:
		if len(it.Links) > 0 {
			return it.Links[0], true
		}
	}
	return NavLink{}, false
}

// Order partitions links into uncategorized entries and category buckets and
// returns a single sequence sorted ascending by order. A nil order sorts
// before any defined order; ties keep input order (stable sort). Category
// metadata is taken from the first link observed in the category, and every
// input link appears exactly once in the result.
func Order(links []NavLink) []OrderedItem {
	items := make([]OrderedItem, 0, len(links))
	byCategory := make(map[string]int) // category id -> index into items

	for _, link := range links {
		if link.Category == nil || link.Category.ID == "" {
			items = append(items, OrderedItem{Kind: ItemLink, Order: link.Order, Link: link})
			continue
		}
		idx, seen := byCategory[link.Category.ID]
		if !seen {
			// First link wins the category metadata and the bucket's
			// position in the pre-sort sequence.
			byCategory[link.Category.ID] = len(items)
			items = append(items, OrderedItem{
				Kind:     ItemCategory,
				Order:    link.Category.Order,
				Category: *link.Category,
				Links:    []NavLink{link},
			})
			continue
		}
		items[idx].Links = append(items[idx].Links, link)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return lessOrder(items[i].Order, items[j].Order)
	})
	return items
}

// lessOrder compares two optional order values: nil sorts before any
// defined order, equal values (including both nil) are not less, so the
// stable sort preserves input order for ties.
func lessOrder(a, b *int) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	return *a < *b
}
