package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/navigation"
)

func TestParse(t *testing.T) {
	const base = "/dashboard/projects"
	cases := map[string]State{
		"/dashboard/projects":              {},
		"/dashboard/projects/":             {},
		"/dashboard/projects/new":          {Kind: Creating},
		"/dashboard/projects/new/":         {Kind: Creating},
		"/dashboard/projects/edit/abc-123": {Kind: Editing, ID: "abc-123"},
		"/dashboard/projects/edit/42?x=1":  {Kind: Editing, ID: "42"},
		"/dashboard/projects/edit":         {},
		"/dashboard/projects/edit/new":     {Kind: Creating},
		"/dashboard/projects/view/7":       {},
		"/dashboard/services/new":          {},
		"/dashboard":                       {},
		"/":                                {},
	}
	for path, want := range cases {
		assert.Equal(t, want, Parse(base, path), path)
	}
}

type rec struct{ id string }

func (r rec) GetID() string { return r.id }

func TestBinder_Transitions(t *testing.T) {
	h := navigation.NewHistory("/dashboard/trainings")
	b := NewBinder("dashboard/trainings/", h)
	assert.Equal(t, "/dashboard/trainings", b.Base())
	assert.Equal(t, Closed, b.State().Kind)

	b.OpenCreate()
	assert.Equal(t, State{Kind: Creating}, b.State())
	assert.Equal(t, 2, h.Len())

	b.Close()
	assert.Equal(t, State{}, b.State())
	assert.Equal(t, 2, h.Len(), "close replaces instead of pushing")

	b.OpenEdit("t-9")
	assert.Equal(t, State{Kind: Editing, ID: "t-9"}, b.State())
	assert.True(t, b.State().Open())

	require.True(t, h.Back())
	assert.Equal(t, Closed, b.State().Kind)
	require.True(t, h.Forward())
	assert.Equal(t, "t-9", b.State().ID)
}

func TestSelect_UnknownIDFallsBack(t *testing.T) {
	items := []rec{{id: "a"}, {id: "b"}}

	got, ok := Select(State{Kind: Editing, ID: "b"}, items)
	require.True(t, ok)
	assert.Equal(t, "b", got.id)

	got, ok = Select(State{Kind: Editing, ID: "zzz"}, items)
	assert.False(t, ok)
	assert.Equal(t, rec{}, got)

	_, ok = Select(State{Kind: Creating}, items)
	assert.False(t, ok)

	_, ok = Select(Parse("/dashboard/x", "/dashboard/x/edit/zzz"), []rec(nil))
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "creating", Creating.String())
	assert.Equal(t, "editing", Editing.String())
}
