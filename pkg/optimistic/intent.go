package optimistic

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

var ErrNoPendingDelete = errors.New("no delete awaiting confirmation")

// DeleteIntent is the confirmation step in front of a delete: Request marks a
// record, and only Confirm starts the deletion.
type DeleteIntent[T any] struct {
	mu      sync.Mutex
	id      string
	item    T
	pending bool
}

func (d *DeleteIntent[T]) Request(id string, item T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.id, d.item, d.pending = id, item, true
}

// Pending returns the record awaiting confirmation.
func (d *DeleteIntent[T]) Pending() (string, T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.id, d.item, d.pending
}

func (d *DeleteIntent[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clearLocked()
}

func (d *DeleteIntent[T]) clearLocked() {
	var zero T
	d.id, d.item, d.pending = "", zero, false
}

// Confirm clears the intent and runs del for the pending record.
func (d *DeleteIntent[T]) Confirm(ctx context.Context, del func(ctx context.Context, id string) error) error {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return ErrNoPendingDelete
	}
	id := d.id
	d.clearLocked()
	d.mu.Unlock()
	return del(ctx, id)
}
