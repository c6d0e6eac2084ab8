// Package crud is the generic REST facade every entity service is built on.
package crud

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/apiclient"
)

// Resource talks to one REST collection. Every record it returns, from any
// operation, has been passed through Normalize.
type Resource[T any] struct {
	Client *apiclient.Client
	// ListPath serves GET (list) and POST (create).
	ListPath string
	// ItemPath is the prefix of /{id}; defaults to ListPath.
	ItemPath string
	// UpdateMethod is PATCH unless set.
	UpdateMethod string
	Normalize    func(*T)
}

func (r *Resource[T]) itemPath(id string) string {
	base := r.ItemPath
	if base == "" {
		base = r.ListPath
	}
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(id)
}

func (r *Resource[T]) normalize(rec *T) {
	if r.Normalize != nil {
		r.Normalize(rec)
	}
}

// GetAll lists the collection. The body may be a bare array or an
// {"items": [...]} envelope.
func (r *Resource[T]) GetAll(ctx context.Context, params url.Values) ([]T, error) {
	return r.List(ctx, r.ListPath, params)
}

// List reads any list endpoint of the resource, e.g. a filtered sub-path.
func (r *Resource[T]) List(ctx context.Context, path string, params url.Values) ([]T, error) {
	resp, err := r.Client.Do(ctx, http.MethodGet, path, nil, params)
	if err != nil {
		return nil, err
	}
	items, err := decodeList[T](resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "decode GET %s", path)
	}
	for i := range items {
		r.normalize(&items[i])
	}
	return items, nil
}

func (r *Resource[T]) GetByID(ctx context.Context, id string) (T, error) {
	return r.one(ctx, http.MethodGet, r.itemPath(id), nil)
}

func (r *Resource[T]) Create(ctx context.Context, payload any) (T, error) {
	return r.one(ctx, http.MethodPost, r.ListPath, payload)
}

// Update sends partial as is. Fields absent from partial are left alone by
// the backend, so a single-field map is a valid payload.
func (r *Resource[T]) Update(ctx context.Context, id string, partial any) (T, error) {
	method := r.UpdateMethod
	if method == "" {
		method = http.MethodPatch
	}
	return r.one(ctx, method, r.itemPath(id), partial)
}

func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	_, err := r.Client.Do(ctx, http.MethodDelete, r.itemPath(id), nil, nil)
	return err
}

func (r *Resource[T]) one(ctx context.Context, method, path string, body any) (T, error) {
	var out T
	resp, err := r.Client.Do(ctx, method, path, body, nil)
	if err != nil {
		return out, err
	}
	if err := resp.Decode(&out); err != nil {
		return out, errors.Wrapf(err, "decode %s %s", method, path)
	}
	r.normalize(&out)
	return out, nil
}

type envelope[T any] struct {
	Items []T `json:"items"`
}

func decodeList[T any](raw []byte) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []T{}, nil
	}
	if raw[0] == '{' {
		var env envelope[T]
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, err
		}
		if env.Items == nil {
			return []T{}, nil
		}
		return env.Items, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
