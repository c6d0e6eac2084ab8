// Package optimistic applies local changes before the backend confirms them
// and undoes exactly those changes when it does not.
package optimistic

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/apiclient"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/logging"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/notify"
)

var ErrNotFound = errors.New("record not in collection")

// Attempt runs apply, then remote. When remote fails inverse runs and the
// remote error is returned.
func Attempt(ctx context.Context, apply, inverse func(), remote func(context.Context) error) error {
	apply()
	if err := remote(ctx); err != nil {
		inverse()
		return err
	}
	return nil
}

// Collection is the state a Controller mutates, typically a listing.Controller.
type Collection[T any] interface {
	Update(id string, fn func(*T)) bool
	Remove(id string) (T, int, bool)
	Insert(index int, item T)
}

type Messages struct {
	Success string
	Failure string
}

type Controller[T any] struct {
	items    Collection[T]
	notifier notify.Notifier
	log      *logrus.Logger
}

func New[T any](items Collection[T], notifier notify.Notifier, log *logrus.Logger) *Controller[T] {
	if log == nil {
		log = logging.Discard()
	}
	return &Controller[T]{items: items, notifier: notifier, log: log}
}

// Mutate applies change to the record with id, then calls remote. On failure
// only the fields change touched are reverted.
func (c *Controller[T]) Mutate(ctx context.Context, id string, change Change[T], remote func(context.Context) error, msg Messages) error {
	var applyErr error
	found := false
	err := Attempt(ctx,
		func() {
			found = c.items.Update(id, func(rec *T) { applyErr = change.Apply(rec) })
		},
		func() {
			ok := c.items.Update(id, func(rec *T) {
				if err := change.Revert(rec); err != nil {
					c.log.WithError(err).WithField("id", id).Error("optimistic revert failed")
				}
			})
			if !ok {
				c.log.WithField("id", id).Debug("record left the collection before revert")
			}
		},
		func(ctx context.Context) error {
			if !found {
				return ErrNotFound
			}
			if applyErr != nil {
				return applyErr
			}
			return remote(ctx)
		},
	)
	return c.report(err, msg)
}

// Delete removes the record with id, then calls remote. On failure the record
// goes back to its original position.
func (c *Controller[T]) Delete(ctx context.Context, id string, remote func(context.Context) error, msg Messages) error {
	var (
		removed T
		index   int
		found   bool
	)
	err := Attempt(ctx,
		func() { removed, index, found = c.items.Remove(id) },
		func() {
			if found {
				c.items.Insert(index, removed)
			}
		},
		func(ctx context.Context) error {
			if !found {
				return ErrNotFound
			}
			return remote(ctx)
		},
	)
	return c.report(err, msg)
}

func (c *Controller[T]) report(err error, msg Messages) error {
	if c.notifier == nil {
		return err
	}
	if err != nil {
		c.notifier.Error(apiclient.Message(err, msg.Failure))
		return err
	}
	if msg.Success != "" {
		c.notifier.Success(msg.Success)
	}
	return nil
}
