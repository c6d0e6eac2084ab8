// Package refs resolves reference fields (techs, offerings, mentors) that a
// user may fill with either canonical ids or free-text names.
package refs

import (
	"strings"

	"github.com/google/uuid"
)

const canonicalIDLen = 36

// IsCanonicalID reports whether s has the shape of a server-assigned id.
func IsCanonicalID(s string) bool {
	return len(s) == canonicalIDLen && uuid.Validate(s) == nil
}

// Ref is either a canonical id or a name that still needs a canonical record.
// The zero Ref is an empty unresolved name.
type Ref struct {
	id   string
	name string
}

func Resolved(id string) Ref { return Ref{id: id} }

func Unresolved(name string) Ref { return Ref{name: strings.TrimSpace(name)} }

// ParseLabel classifies a raw form label by its shape.
func ParseLabel(label string) Ref {
	label = strings.TrimSpace(label)
	if IsCanonicalID(label) {
		return Resolved(label)
	}
	return Unresolved(label)
}

func ParseLabels(labels []string) []Ref {
	out := make([]Ref, 0, len(labels))
	for _, l := range labels {
		out = append(out, ParseLabel(l))
	}
	return out
}

func (r Ref) IsResolved() bool { return r.id != "" }

func (r Ref) ID() string { return r.id }

func (r Ref) Name() string { return r.name }

// Label is the text shown for r in a form.
func (r Ref) Label() string {
	if r.IsResolved() {
		return r.id
	}
	return r.name
}

func (r Ref) String() string {
	if r.IsResolved() {
		return "Resolved(" + r.id + ")"
	}
	return "Unresolved(" + r.name + ")"
}
