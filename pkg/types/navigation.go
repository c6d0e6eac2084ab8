package types

// NavigationItem is one sidebar entry of the dashboard.
type NavigationItem struct {
	Name     string
	Href     string
	Children []NavigationItem
}

// Flatten returns n and all of its descendants, depth first.
func (n NavigationItem) Flatten() []NavigationItem {
	out := []NavigationItem{n}
	for _, c := range n.Children {
		out = append(out, c.Flatten()...)
	}
	return out
}
