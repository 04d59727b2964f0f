package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile_MergesMatching(t *testing.T) {
	live := []NavLink{
		{ID: "a", Title: "Alpha", URL: "/app/a"},
		{ID: "b", Title: "Beta", URL: "/app/b", Order: intp(7)},
	}
	regs := []GroupLink{
		{ID: "b", Order: intp(1)},
		{ID: "a"},
	}

	out := Reconcile(regs, live)
	require.Len(t, out, 2)

	// Output follows registration order, not live order.
	assert.Equal(t, "b", out[0].ID)
	assert.Equal(t, "Beta", out[0].Title)
	// Registration order override wins over the live link's own order.
	assert.Equal(t, 1, *out[0].Order)

	assert.Equal(t, "a", out[1].ID)
	assert.Nil(t, out[1].Order)
}

func TestReconcile_DropsStaleRegistrations(t *testing.T) {
	live := []NavLink{{ID: "a"}}
	regs := []GroupLink{
		{ID: "gone"},
		{ID: "a"},
		{ID: "also-gone", Order: intp(1)},
	}

	out := Reconcile(regs, live)
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)
}

func TestReconcile_NeverIntroducesUnknownIDs(t *testing.T) {
	live := []NavLink{{ID: "a"}, {ID: "b"}}
	known := map[string]bool{"a": true, "b": true}
	regs := []GroupLink{{ID: "a"}, {ID: "x"}, {ID: "b"}, {ID: "y"}}

	for _, l := range Reconcile(regs, live) {
		assert.True(t, known[l.ID], "reconcile produced unknown id %q", l.ID)
	}
}

func TestReconcile_Empty(t *testing.T) {
	assert.Empty(t, Reconcile(nil, []NavLink{{ID: "a"}}))
	assert.Empty(t, Reconcile([]GroupLink{{ID: "a"}}, nil))
}

func TestReconcile_KeepsLiveOrderWhenRegHasNone(t *testing.T) {
	live := []NavLink{{ID: "a", Order: intp(5)}}
	out := Reconcile([]GroupLink{{ID: "a"}}, live)
	require.Len(t, out, 1)
	assert.Equal(t, 5, *out[0].Order)
}
