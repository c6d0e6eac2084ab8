// Package screen assembles the parts every entity list screen shares: the
// collection, the modal binder, optimistic mutations, delete confirmation and
// the create/edit form.
package screen

import (
	"context"
	"fmt"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/application"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/forms"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/listing"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/optimistic"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/route"
)

type Options[T listing.Record, F any] struct {
	// Base is the list path, e.g. /dashboard/projects.
	Base     string
	PageSize int

	// Noun names one record in messages, e.g. "Project".
	Noun string
	// Plural defaults to the lower-cased noun plus "s".
	Plural string
	// LoadFailed defaults to "Failed to load <plural>".
	LoadFailed string
	// Deleted defaults to "<noun> deleted".
	Deleted string
	// DeletedFor, when set, names the deleted record in place of Deleted.
	DeletedFor func(T) string

	Fetch        listing.Fetcher[T]
	SearchFields func(T) []string
	Remove       func(ctx context.Context, id string) error

	// Form is completed with the screen's binder, notifier and reload.
	Form forms.Config[T, F]
}

type Screen[T listing.Record, F any] struct {
	opts Options[T, F]

	List      *listing.Controller[T]
	Binder    *route.Binder
	Mutations *optimistic.Controller[T]
	Deletes   optimistic.DeleteIntent[T]
}

func New[T listing.Record, F any](app application.Application, opts Options[T, F]) *Screen[T, F] {
	if opts.Plural == "" {
		opts.Plural = lower(opts.Noun) + "s"
	}
	if opts.Deleted == "" {
		opts.Deleted = opts.Noun + " deleted"
	}
	if opts.LoadFailed == "" {
		opts.LoadFailed = "Failed to load " + opts.Plural
	}
	s := &Screen[T, F]{opts: opts}
	s.List = listing.New(opts.Fetch,
		listing.WithNotifier(app.Notifier(), opts.LoadFailed),
		listing.WithLogger(app.Logger()),
	)
	s.Binder = route.NewBinder(opts.Base, app.Navigator())
	s.Mutations = optimistic.New[T](s.List, app.Notifier(), app.Logger())

	s.opts.Form.Binder = s.Binder
	s.opts.Form.Notifier = app.Notifier()
	s.opts.Form.Reload = s.List.Load
	if s.opts.Form.Logger == nil {
		s.opts.Form.Logger = app.Logger()
	}
	if s.opts.Form.Messages == (forms.Messages{}) {
		s.opts.Form.Messages = forms.Messages{
			Saving:  fmt.Sprintf("Saving %s...", lower(opts.Noun)),
			Created: fmt.Sprintf("%s created", opts.Noun),
			Updated: fmt.Sprintf("%s updated", opts.Noun),
			Failed:  fmt.Sprintf("Failed to save %s", lower(opts.Noun)),
		}
	}
	return s
}

func lower(s string) string {
	if s == "" {
		return "record"
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}

func (s *Screen[T, F]) Key() string { return s.Binder.Base() }

func (s *Screen[T, F]) Load(ctx context.Context) error { return s.List.Load(ctx) }

// Close detaches the screen; responses still in flight are dropped.
func (s *Screen[T, F]) Close() { s.List.Close() }

// Page renders the current collection: search, extra filters, newest first,
// then the 1-indexed page.
func (s *Screen[T, F]) Page(query string, page int, filters ...func(T) bool) listing.Page[T] {
	return s.List.View(listing.Query[T]{
		Search:   query,
		Fields:   s.opts.SearchFields,
		Filters:  filters,
		PageSize: s.opts.PageSize,
		Page:     page,
	})
}

func (s *Screen[T, F]) Modal() route.State { return s.Binder.State() }

func (s *Screen[T, F]) OpenCreate() { s.Binder.OpenCreate() }

func (s *Screen[T, F]) OpenEdit(id string) { s.Binder.OpenEdit(id) }

func (s *Screen[T, F]) CloseModal() { s.Binder.Close() }

// Form opens the create/edit form the location points at. It reports false
// when no modal is open.
func (s *Screen[T, F]) Form() (*forms.Form[T, F], bool) {
	state := s.Binder.State()
	if !state.Open() {
		return nil, false
	}
	return forms.Open(s.opts.Form, state, s.List.Items()), true
}

// RequestDelete asks for confirmation before deleting id.
func (s *Screen[T, F]) RequestDelete(id string) error {
	item, ok := s.List.Find(id)
	if !ok {
		return optimistic.ErrNotFound
	}
	s.Deletes.Request(id, item)
	return nil
}

func (s *Screen[T, F]) CancelDelete() { s.Deletes.Cancel() }

// ConfirmDelete removes the pending record optimistically and reloads the
// list once the backend agrees.
func (s *Screen[T, F]) ConfirmDelete(ctx context.Context) error {
	success := s.opts.Deleted
	if _, item, ok := s.Deletes.Pending(); ok && s.opts.DeletedFor != nil {
		success = s.opts.DeletedFor(item)
	}
	return s.Deletes.Confirm(ctx, func(ctx context.Context, id string) error {
		err := s.Mutations.Delete(ctx, id, func(ctx context.Context) error {
			return s.opts.Remove(ctx, id)
		}, optimistic.Messages{
			Success: success,
			Failure: "Delete failed. Check your connection.",
		})
		if err != nil {
			return err
		}
		return s.List.Load(ctx)
	})
}
