package refs

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/pkg/errors"
)

// Record is a canonical lookup row.
type Record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Source is the backend of a catalog.
type Source interface {
	List(ctx context.Context) ([]Record, error)
	Create(ctx context.Context, name string) (Record, error)
}

// Catalog caches the canonical records of one lookup table for the lifetime
// of a single form session. Records minted through Resolve are added to the
// cache so a repeated name in the same session reuses them.
type Catalog struct {
	src Source

	mu      sync.RWMutex
	records []Record
	byID    map[string]int
	byName  map[string]int
}

func NewCatalog(src Source) *Catalog {
	return &Catalog{src: src, byID: map[string]int{}, byName: map[string]int{}}
}

// Load replaces the cache with the source's current records.
func (c *Catalog) Load(ctx context.Context) error {
	records, err := c.src.List(ctx)
	if err != nil {
		return errors.Wrap(err, "load catalog")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = c.records[:0]
	c.byID = make(map[string]int, len(records))
	c.byName = make(map[string]int, len(records))
	for _, r := range records {
		c.addLocked(r)
	}
	return nil
}

func (c *Catalog) addLocked(r Record) {
	if _, ok := c.byID[r.ID]; ok {
		return
	}
	c.records = append(c.records, r)
	i := len(c.records) - 1
	c.byID[r.ID] = i
	key := nameKey(r.Name)
	if _, ok := c.byName[key]; !ok {
		c.byName[key] = i
	}
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (c *Catalog) Records() []Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Record(nil), c.records...)
}

// Lookup finds a record id by name, ignoring case.
func (c *Catalog) Lookup(name string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byName[nameKey(name)]
	if !ok {
		return "", false
	}
	return c.records[i].ID, true
}

func (c *Catalog) NameOf(id string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byID[id]
	if !ok {
		return "", false
	}
	return c.records[i].Name, true
}

// Add turns a label typed or picked in a form into a Ref, preferring a known
// record over a new name.
func (c *Catalog) Add(label string) Ref {
	ref := ParseLabel(label)
	if ref.IsResolved() || ref.Name() == "" {
		return ref
	}
	if id, ok := c.Lookup(ref.Name()); ok {
		return Resolved(id)
	}
	return ref
}

// Names maps ids to display names; unknown ids are returned as is.
func (c *Catalog) Names(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := c.NameOf(id); ok {
			out = append(out, name)
		} else {
			out = append(out, id)
		}
	}
	return out
}

// IDs maps display names back to refs, the way an edit form is seeded from a
// record that only carries names.
func (c *Catalog) IDs(names []string) []Ref {
	out := make([]Ref, 0, len(names))
	for _, n := range names {
		out = append(out, c.Add(n))
	}
	return out
}

// Suggest ranks cached records by fuzzy match against query.
func (c *Catalog) Suggest(query string, limit int) []Record {
	records := c.Records()
	query = strings.TrimSpace(query)
	if query == "" {
		if limit > 0 && len(records) > limit {
			records = records[:limit]
		}
		return records
	}
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	ranks := fuzzy.RankFindFold(query, names)
	sort.Stable(ranks)
	out := make([]Record, 0, len(ranks))
	for _, rank := range ranks {
		out = append(out, records[rank.OriginalIndex])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Resolve resolves refs against the cache and mints the names it does not
// know. Minted records are cached even when another create in the batch
// fails, since they exist server side.
func (c *Catalog) Resolve(ctx context.Context, refs []Ref) ([]string, error) {
	known := make([]Ref, len(refs))
	for i, ref := range refs {
		known[i] = ref
		if !ref.IsResolved() {
			if id, ok := c.Lookup(ref.Name()); ok {
				known[i] = Resolved(id)
			}
		}
	}
	return Resolve(ctx, known, func(ctx context.Context, name string) (string, error) {
		rec, err := c.src.Create(ctx, name)
		if err != nil {
			return "", err
		}
		if rec.Name == "" {
			rec.Name = name
		}
		c.mu.Lock()
		c.addLocked(rec)
		c.mu.Unlock()
		return rec.ID, nil
	})
}
