// Package forms runs a modal form from its draft to a saved record:
// validate, prepare, save, follow-up, notify, reload, close.
package forms

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/apiclient"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/logging"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/notify"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/refs"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/route"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/upload"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/validation"
)

// ValidationError is returned by Submit when the draft fails client-side
// validation. Nothing was sent.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("invalid fields: %s", strings.Join(keys, ", "))
}

type Messages struct {
	Saving  string
	Created string
	Updated string
	Failed  string
}

// Config wires a form to its entity. Create and Update receive whatever
// Prepare returned.
type Config[T any, F any] struct {
	// Seed builds the draft; existing is nil when creating.
	Seed     func(existing *T) F
	Validate func(F) validation.Result
	// Prepare turns a valid draft into a request payload. Reference
	// resolution and uploads happen here, before anything is saved.
	Prepare func(ctx context.Context, draft F, existing *T) (any, error)
	Create  func(ctx context.Context, payload any) (T, error)
	Update  func(ctx context.Context, id string, payload any) (T, error)
	// After runs once the record is saved, e.g. to sync a sub-resource.
	After  func(ctx context.Context, saved T, draft F, existing *T) error
	Reload func(ctx context.Context) error

	Binder   *route.Binder
	Notifier notify.Notifier
	Messages Messages
	Logger   *logrus.Logger
}

type Form[T interface{ GetID() string }, F any] struct {
	cfg    Config[T, F]
	state  route.State
	target *T
	draft  *Draft[F]

	mu          sync.Mutex
	fieldErrors map[string]string
	submitting  bool
}

// Open starts a form for state. An Editing state whose id is not in items
// opens with the default draft and saves as a new record.
func Open[T interface{ GetID() string }, F any](cfg Config[T, F], state route.State, items []T) *Form[T, F] {
	if cfg.Validate == nil {
		cfg.Validate = func(f F) validation.Result { return validation.Validate(f) }
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	f := &Form[T, F]{cfg: cfg, state: state, fieldErrors: map[string]string{}}
	if rec, ok := route.Select(state, items); ok {
		f.target = &rec
	}
	var seed F
	if cfg.Seed != nil {
		seed = cfg.Seed(f.target)
	}
	f.draft = NewDraft(seed)
	return f
}

func (f *Form[T, F]) State() route.State { return f.state }

func (f *Form[T, F]) Draft() *Draft[F] { return f.draft }

// Target is the record being edited, if any.
func (f *Form[T, F]) Target() (T, bool) {
	if f.target == nil {
		var zero T
		return zero, false
	}
	return *f.target, true
}

func (f *Form[T, F]) FieldErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.fieldErrors))
	for k, v := range f.fieldErrors {
		out[k] = v
	}
	return out
}

func (f *Form[T, F]) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Cancel closes the modal and drops the draft.
func (f *Form[T, F]) Cancel() {
	f.draft.Reset()
	if f.cfg.Binder != nil {
		f.cfg.Binder.Close()
	}
}

// Submit saves the draft. On any failure the draft is kept and the modal
// stays open; only server and preparation failures produce a notification.
func (f *Form[T, F]) Submit(ctx context.Context) (T, error) {
	var zero T
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return zero, errors.New("submit already in progress")
	}
	f.submitting = true
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	res := f.cfg.Validate(f.draft.Current)
	f.mu.Lock()
	f.fieldErrors = res.FieldErrors
	if f.fieldErrors == nil {
		f.fieldErrors = map[string]string{}
	}
	f.mu.Unlock()
	if !res.Success {
		return zero, &ValidationError{Fields: res.FieldErrors}
	}

	var payload any = f.draft.Current
	if f.cfg.Prepare != nil {
		p, err := f.cfg.Prepare(ctx, f.draft.Current, f.target)
		if err != nil {
			f.notifyError(prepareMessage(err, f.cfg.Messages.Failed))
			return zero, err
		}
		payload = p
	}

	var loading string
	if f.cfg.Notifier != nil && f.cfg.Messages.Saving != "" {
		loading = f.cfg.Notifier.Loading(f.cfg.Messages.Saving)
	}

	var (
		saved T
		err   error
	)
	if f.target != nil {
		saved, err = f.cfg.Update(ctx, (*f.target).GetID(), payload)
	} else {
		saved, err = f.cfg.Create(ctx, payload)
	}
	if err != nil {
		f.resolve(loading, notify.Error, apiclient.Message(err, f.cfg.Messages.Failed))
		return zero, err
	}

	if f.cfg.After != nil {
		if err := f.cfg.After(ctx, saved, f.draft.Current, f.target); err != nil {
			f.resolve(loading, notify.Error, apiclient.Message(err, f.cfg.Messages.Failed))
			f.reload(ctx)
			return saved, err
		}
	}

	msg := f.cfg.Messages.Created
	if f.target != nil {
		msg = f.cfg.Messages.Updated
	}
	f.resolve(loading, notify.Success, msg)
	f.reload(ctx)
	if f.cfg.Binder != nil {
		f.cfg.Binder.Close()
	}
	return saved, nil
}

func prepareMessage(err error, fallback string) string {
	var (
		resErr *refs.ResolutionError
		upErr  *upload.Error
	)
	switch {
	case errors.As(err, &upErr):
		return upErr.Message()
	case errors.As(err, &resErr) && resErr.Name != "":
		return apiclient.Message(err, fmt.Sprintf("Failed to create %q", resErr.Name))
	}
	return apiclient.Message(err, fallback)
}

func (f *Form[T, F]) reload(ctx context.Context) {
	if f.cfg.Reload == nil {
		return
	}
	if err := f.cfg.Reload(ctx); err != nil {
		f.cfg.Logger.WithError(err).Warn("reload after save failed")
	}
}

func (f *Form[T, F]) notifyError(msg string) {
	if f.cfg.Notifier != nil {
		f.cfg.Notifier.Error(msg)
	}
}

func (f *Form[T, F]) resolve(loading string, level notify.Level, msg string) {
	if f.cfg.Notifier == nil || msg == "" {
		return
	}
	if loading != "" {
		f.cfg.Notifier.Resolve(loading, level, msg)
		return
	}
	switch level {
	case notify.Error:
		f.cfg.Notifier.Error(msg)
	default:
		f.cfg.Notifier.Success(msg)
	}
}
