package listing

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

type Direction int

const (
	Asc Direction = iota
	Desc
)

// Search keeps the items where any of fields(item) contains query, ignoring
// case. An empty query keeps everything.
func Search[T any](items []T, query string, fields func(T) []string) []T {
	query = strings.TrimSpace(query)
	if query == "" || fields == nil {
		return items
	}
	fold := cases.Fold()
	needle := fold.String(query)
	return Filter(items, func(item T) bool {
		for _, f := range fields(item) {
			if strings.Contains(fold.String(f), needle) {
				return true
			}
		}
		return false
	})
}

// Filter returns a new slice with the items pred accepts.
func Filter[T any](items []T, pred func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// By builds a comparator on key. Equal keys fall back to id descending so the
// order is total.
func By[T Record, K cmp.Ordered](key func(T) K, dir Direction) func(a, b T) int {
	return func(a, b T) int {
		c := cmp.Compare(key(a), key(b))
		if dir == Desc {
			c = -c
		}
		if c != 0 {
			return c
		}
		return strings.Compare(b.GetID(), a.GetID())
	}
}

func newestFirst[T Record](a, b T) int {
	if c := b.GetCreatedAt().Compare(a.GetCreatedAt()); c != 0 {
		return c
	}
	return strings.Compare(b.GetID(), a.GetID())
}

// SortBy returns a sorted copy.
func SortBy[T Record, K cmp.Ordered](items []T, key func(T) K, dir Direction) []T {
	return sortWith(items, By(key, dir))
}

// SortDefault returns a copy ordered newest first, then by id descending.
func SortDefault[T Record](items []T) []T {
	return sortWith(items, newestFirst[T])
}

func sortWith[T any](items []T, less func(a, b T) int) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, less)
	return out
}

// Paginate returns page (1-indexed) of size items. Pages outside the range
// are empty. A non-positive size returns everything as page 1.
func Paginate[T any](items []T, size, page int) []T {
	if size <= 0 {
		if page == 1 {
			return items
		}
		return []T{}
	}
	if page < 1 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := min(start+size, len(items))
	return items[start:end]
}

func TotalPages(total, size int) int {
	if total <= 0 {
		return 0
	}
	if size <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// Query describes one rendering of a list screen.
type Query[T Record] struct {
	Search  string
	Fields  func(T) []string
	Filters []func(T) bool
	// Compare overrides the default newest-first order.
	Compare  func(a, b T) int
	PageSize int
	Page     int
}

type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// Apply runs search, filters, sort and pagination in that order.
func Apply[T Record](items []T, q Query[T]) Page[T] {
	view := Search(items, q.Search, q.Fields)
	for _, f := range q.Filters {
		view = Filter(view, f)
	}
	if q.Compare != nil {
		view = sortWith(view, q.Compare)
	} else {
		view = SortDefault(view)
	}
	page := q.Page
	if page == 0 {
		page = 1
	}
	return Page[T]{
		Items:      slices.Clone(Paginate(view, q.PageSize, page)),
		Page:       page,
		PageSize:   q.PageSize,
		TotalItems: len(view),
		TotalPages: TotalPages(len(view), q.PageSize),
	}
}
