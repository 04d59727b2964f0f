package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func catLink(id, catID string, catOrder *int) NavLink {
	return NavLink{ID: id, Category: &AppCategory{ID: catID, Label: catID, Order: catOrder}}
}

// ---------- partitioning ----------

func TestOrder_Empty(t *testing.T) {
	assert.Empty(t, Order(nil))
	assert.Empty(t, Order([]NavLink{}))
}

func TestOrder_AllUncategorized(t *testing.T) {
	links := []NavLink{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	items := Order(links)

	require.Len(t, items, 3)
	for i, it := range items {
		assert.Equal(t, ItemLink, it.Kind)
		assert.Equal(t, links[i].ID, it.Link.ID)
	}
}

func TestOrder_CategoryBucketsAllLinks(t *testing.T) {
	links := []NavLink{
		catLink("a", "c1", intp(1)),
		catLink("b", "c1", intp(1)),
		{ID: "x", Order: intp(2)},
	}
	items := Order(links)

	// Scenario from the drawing board: [category c1 (a,b), link x].
	require.Len(t, items, 2)
	assert.Equal(t, ItemCategory, items[0].Kind)
	assert.Equal(t, "c1", items[0].Category.ID)
	require.Len(t, items[0].Links, 2)
	assert.Equal(t, "a", items[0].Links[0].ID)
	assert.Equal(t, "b", items[0].Links[1].ID)
	assert.Equal(t, ItemLink, items[1].Kind)
	assert.Equal(t, "x", items[1].Link.ID)
}

func TestOrder_PartitionCompleteness(t *testing.T) {
	links := []NavLink{
		{ID: "solo1"},
		catLink("a", "c1", nil),
		{ID: "solo2", Order: intp(5)},
		catLink("b", "c2", intp(3)),
		catLink("c", "c1", nil),
	}
	items := Order(links)

	seen := map[string]int{}
	for _, it := range items {
		switch it.Kind {
		case ItemLink:
			seen[it.Link.ID]++
		case ItemCategory:
			for _, l := range it.Links {
				seen[l.ID]++
			}
		}
	}
	require.Len(t, seen, len(links))
	for _, l := range links {
		assert.Equal(t, 1, seen[l.ID], "link %q should appear exactly once", l.ID)
	}
}

func TestOrder_FirstLinkWinsCategoryMetadata(t *testing.T) {
	first := NavLink{ID: "a", Category: &AppCategory{ID: "c1", Label: "First", Order: intp(1)}}
	second := NavLink{ID: "b", Category: &AppCategory{ID: "c1", Label: "Second", Order: intp(9)}}
	items := Order([]NavLink{first, second})

	require.Len(t, items, 1)
	assert.Equal(t, "First", items[0].Category.Label)
	assert.Equal(t, 1, *items[0].Order)
}

// ---------- sort order ----------

func TestOrder_SortsAscending(t *testing.T) {
	links := []NavLink{
		{ID: "c", Order: intp(3)},
		{ID: "a", Order: intp(1)},
		catLink("g", "cat", intp(2)),
	}
	items := Order(links)

	require.Len(t, items, 3)
	assert.Equal(t, "a", items[0].Link.ID)
	assert.Equal(t, "cat", items[1].Category.ID)
	assert.Equal(t, "c", items[2].Link.ID)
}

func TestOrder_NilOrderSortsFirst(t *testing.T) {
	links := []NavLink{
		{ID: "ordered", Order: intp(1)},
		{ID: "unordered"},
	}
	items := Order(links)

	require.Len(t, items, 2)
	assert.Equal(t, "unordered", items[0].Link.ID)
	assert.Equal(t, "ordered", items[1].Link.ID)
}

func TestOrder_TiesKeepInputOrder(t *testing.T) {
	links := []NavLink{
		{ID: "first", Order: intp(2)},
		{ID: "second", Order: intp(2)},
		{ID: "nil1"},
		{ID: "nil2"},
	}
	items := Order(links)

	require.Len(t, items, 4)
	assert.Equal(t, "nil1", items[0].Link.ID)
	assert.Equal(t, "nil2", items[1].Link.ID)
	assert.Equal(t, "first", items[2].Link.ID)
	assert.Equal(t, "second", items[3].Link.ID)
}

func TestOrder_AdjacentItemsNonDecreasing(t *testing.T) {
	links := []NavLink{
		{ID: "e", Order: intp(7)},
		catLink("a", "c9", intp(9)),
		{ID: "n1"},
		{ID: "d", Order: intp(2)},
		catLink("b", "c0", nil),
		{ID: "n2", Order: intp(2)},
	}
	items := Order(links)

	for i := 1; i < len(items); i++ {
		assert.False(t, lessOrder(items[i].Order, items[i-1].Order),
			"items %d and %d out of order", i-1, i)
	}
}

func TestOrder_Deterministic(t *testing.T) {
	links := []NavLink{
		catLink("a", "c1", intp(4)),
		{ID: "x"},
		catLink("b", "c2", intp(1)),
		catLink("c", "c1", intp(4)),
		{ID: "y", Order: intp(3)},
	}
	first := Order(links)
	second := Order(links)
	assert.Equal(t, first, second)
}

// ---------- FirstLink ----------

func TestFirstLink(t *testing.T) {
	link := OrderedItem{Kind: ItemLink, Link: NavLink{ID: "a"}}
	got, ok := link.FirstLink()
	assert.True(t, ok)
	assert.Equal(t, "a", got.ID)

	cat := OrderedItem{Kind: ItemCategory, Links: []NavLink{{ID: "b"}, {ID: "c"}}}
	got, ok = cat.FirstLink()
	assert.True(t, ok)
	assert.Equal(t, "b", got.ID)

	empty := OrderedItem{Kind: ItemCategory}
	_, ok = empty.FirstLink()
	assert.False(t, ok)
}
