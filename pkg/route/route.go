// Package route derives the modal state of a list screen from the current
// location. The location is the only state; the binder keeps no flags.
package route

import (
	"strings"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/navigation"
)

type Kind int

const (
	Closed Kind = iota
	Creating
	Editing
)

func (k Kind) String() string {
	switch k {
	case Creating:
		return "creating"
	case Editing:
		return "editing"
	default:
		return "closed"
	}
}

type State struct {
	Kind Kind
	// ID is set only when Kind is Editing.
	ID string
}

func (s State) Open() bool { return s.Kind != Closed }

func segments(path string) []string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	var out []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Parse computes the modal state of the screen at base for path. A path
// outside base is Closed.
func Parse(base, path string) State {
	baseSegs := segments(base)
	segs := segments(path)
	if len(segs) < len(baseSegs) {
		return State{}
	}
	for i, s := range baseSegs {
		if segs[i] != s {
			return State{}
		}
	}
	rest := segs[len(baseSegs):]
	if len(rest) == 0 {
		return State{}
	}
	if rest[len(rest)-1] == "new" {
		return State{Kind: Creating}
	}
	for i := 0; i < len(rest)-1; i++ {
		if rest[i] == "edit" {
			return State{Kind: Editing, ID: rest[i+1]}
		}
	}
	return State{}
}

func join(base string, parts ...string) string {
	return "/" + strings.Join(append(segments(base), parts...), "/")
}

// Binder drives a screen's modal through navigation.
type Binder struct {
	base string
	nav  navigation.Navigator
}

func NewBinder(base string, nav navigation.Navigator) *Binder {
	return &Binder{base: join(base), nav: nav}
}

func (b *Binder) Base() string { return b.base }

func (b *Binder) State() State {
	return Parse(b.base, b.nav.Location())
}

func (b *Binder) OpenCreate() {
	b.nav.Push(join(b.base, "new"))
}

func (b *Binder) OpenEdit(id string) {
	b.nav.Push(join(b.base, "edit", id))
}

// Close returns to the list without adding a history entry.
func (b *Binder) Close() {
	b.nav.Replace(b.base)
}

// Select finds the record an Editing state points at. It reports false for
// any other state and for an id missing from items, in which case the form
// falls back to its defaults.
func Select[T interface{ GetID() string }](s State, items []T) (T, bool) {
	var zero T
	if s.Kind != Editing {
		return zero, false
	}
	for _, item := range items {
		if item.GetID() == s.ID {
			return item, true
		}
	}
	return zero, false
}
