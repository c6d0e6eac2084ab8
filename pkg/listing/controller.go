// Package listing holds the in-memory collection behind a list screen and
// the pure views (search, filter, sort, pagination) derived from it.
package listing

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/apiclient"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/logging"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/notify"
)

type Record interface {
	GetID() string
	GetCreatedAt() time.Time
}

type Fetcher[T any] func(ctx context.Context) ([]T, error)

type Option func(*options)

type options struct {
	notifier notify.Notifier
	failMsg  string
	log      *logrus.Logger
}

// WithNotifier reports load failures to n, using msg unless the backend sent
// a message of its own.
func WithNotifier(n notify.Notifier, msg string) Option {
	return func(o *options) {
		o.notifier = n
		o.failMsg = msg
	}
}

func WithLogger(log *logrus.Logger) Option {
	return func(o *options) { o.log = log }
}

// Controller owns one screen's collection. Results of a load that has been
// superseded by a newer load, or that completes after Close, are dropped.
type Controller[T Record] struct {
	fetch Fetcher[T]
	opts  options

	mu         sync.RWMutex
	items      []T
	loading    bool
	err        error
	generation uint64
	closed     bool
}

func New[T Record](fetch Fetcher[T], opts ...Option) *Controller[T] {
	o := options{failMsg: "Failed to load data", log: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller[T]{fetch: fetch, opts: o, items: []T{}}
}

// Load replaces the collection with a fresh fetch. Loading is true for the
// duration of the latest call. On failure the previous items are kept.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.generation++
	gen := c.generation
	c.loading = true
	c.mu.Unlock()

	items, err := c.fetch(ctx)

	c.mu.Lock()
	if c.closed || gen != c.generation {
		c.mu.Unlock()
		c.opts.log.WithField("generation", gen).Debug("dropping stale list response")
		return err
	}
	c.loading = false
	c.err = err
	if err == nil {
		if items == nil {
			items = []T{}
		}
		c.items = items
	}
	c.mu.Unlock()

	if err != nil && c.opts.notifier != nil {
		c.opts.notifier.Error(apiclient.Message(err, c.opts.failMsg))
	}
	return err
}

// Close detaches the controller from its screen; later loads are no-ops.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.loading = false
}

func (c *Controller[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

func (c *Controller[T]) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

func (c *Controller[T]) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

func (c *Controller[T]) Find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexLocked(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

func (c *Controller[T]) indexLocked(id string) int {
	return slices.IndexFunc(c.items, func(item T) bool { return item.GetID() == id })
}

// Update applies fn to the record with id in place.
func (c *Controller[T]) Update(id string, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexLocked(id)
	if i < 0 {
		return false
	}
	fn(&c.items[i])
	return true
}

// Remove deletes the record with id and reports where it was.
func (c *Controller[T]) Remove(id string) (T, int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexLocked(id)
	if i < 0 {
		var zero T
		return zero, -1, false
	}
	item := c.items[i]
	c.items = slices.Delete(c.items, i, i+1)
	return item, i, true
}

// Insert puts item at index, clamped to the collection bounds.
func (c *Controller[T]) Insert(index int, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	index = max(0, min(index, len(c.items)))
	c.items = slices.Insert(c.items, index, item)
}

func (c *Controller[T]) View(q Query[T]) Page[T] {
	return Apply(c.Items(), q)
}
