package refs

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// CreateFunc mints a canonical record named name and returns its id.
type CreateFunc func(ctx context.Context, name string) (string, error)

// ResolutionError is the first create failure of a batch.
type ResolutionError struct {
	Name string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %q: %v", e.Name, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// Resolve turns every ref into a canonical id, calling create concurrently
// for the unresolved ones. The result keeps input order. If any create fails
// the whole batch fails and no ids are returned.
//
// Resolving the same name twice creates two records; callers that care check
// a name cache first (see Catalog).
func Resolve(ctx context.Context, refs []Ref, create CreateFunc) ([]string, error) {
	for _, ref := range refs {
		if !ref.IsResolved() && ref.Name() == "" {
			return nil, &ResolutionError{Err: fmt.Errorf("empty name")}
		}
	}
	out := make([]string, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	for i, ref := range refs {
		if ref.IsResolved() {
			out[i] = ref.ID()
			continue
		}
		g.Go(func() error {
			id, err := create(gctx, ref.Name())
			if err == nil && strings.TrimSpace(id) == "" {
				err = fmt.Errorf("created record has no id")
			}
			if err != nil {
				return &ResolutionError{Name: ref.Name(), Err: err}
			}
			out[i] = id
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ResolveLabels resolves raw labels. A label that is not a canonical id is
// first looked up by name in lookup and only created when absent.
func ResolveLabels(ctx context.Context, labels []string, lookup map[string]string, create CreateFunc) ([]string, error) {
	refs := make([]Ref, 0, len(labels))
	for _, label := range labels {
		ref := ParseLabel(label)
		if !ref.IsResolved() {
			if id, ok := lookupName(lookup, ref.Name()); ok {
				ref = Resolved(id)
			}
		}
		refs = append(refs, ref)
	}
	return Resolve(ctx, refs, create)
}

func lookupName(lookup map[string]string, name string) (string, bool) {
	if id, ok := lookup[name]; ok {
		return id, true
	}
	for k, id := range lookup {
		if strings.EqualFold(k, name) {
			return id, true
		}
	}
	return "", false
}
