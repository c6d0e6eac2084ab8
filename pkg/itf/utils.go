package itf

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// Epoch is the created_at of the first record a Backend stores. Each later
// record is one minute newer.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type Call struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

type failure struct {
	status int
	detail any
}

type collection struct {
	envelope bool
	records  []map[string]any
}

// Backend is an in-memory admin API. Collections answer the usual REST verbs;
// anything else is registered with Handle.
type Backend struct {
	mu          sync.Mutex
	router      *mux.Router
	collections map[string]*collection
	failures    map[string]failure
	calls       []Call
	created     int
}

func NewBackend() *Backend {
	b := &Backend{
		router:      mux.NewRouter(),
		collections: map[string]*collection{},
		failures:    map[string]failure{},
	}
	return b
}

func (b *Backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(raw))

	var body any
	if len(raw) > 0 && strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		_ = json.Unmarshal(raw, &body)
	}

	b.mu.Lock()
	b.calls = append(b.calls, Call{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query(), Body: body})
	f, failing := b.failures[r.Method+" "+r.URL.Path]
	b.mu.Unlock()

	if failing {
		writeJSON(w, f.status, map[string]any{"detail": f.detail})
		return
	}
	b.router.ServeHTTP(w, r)
}

// Collection serves path as a REST collection seeded with records. Records
// without an id or created_at get one.
func (b *Backend) Collection(path string, records ...map[string]any) *Backend {
	base := strings.TrimRight(path, "/")
	b.mu.Lock()
	c := &collection{}
	b.collections[base] = c
	for _, rec := range records {
		c.records = append(c.records, b.stampLocked(rec))
	}
	b.mu.Unlock()

	for _, p := range []string{base, base + "/"} {
		b.router.HandleFunc(p, b.list(base)).Methods(http.MethodGet)
		b.router.HandleFunc(p, b.create(base)).Methods(http.MethodPost)
	}
	item := base + "/{id}"
	b.router.HandleFunc(item, b.get(base)).Methods(http.MethodGet)
	b.router.HandleFunc(item, b.update(base)).Methods(http.MethodPatch, http.MethodPut)
	b.router.HandleFunc(item, b.remove(base)).Methods(http.MethodDelete)
	return b
}

// Envelope wraps list responses of path in {"items": [...]}.
func (b *Backend) Envelope(path string) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	if c, ok := b.collections[strings.TrimRight(path, "/")]; ok {
		c.envelope = true
	}
	return b
}

// Handle registers a custom route. Routes registered before Collection take
// precedence over it.
func (b *Backend) Handle(method, path string, h http.HandlerFunc) *Backend {
	b.router.HandleFunc(path, h).Methods(method)
	return b
}

// Fail makes method+path answer status with detail until Recover.
func (b *Backend) Fail(method, path string, status int, detail any) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method+" "+path] = failure{status: status, detail: detail}
	return b
}

func (b *Backend) Recover(method, path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.failures, method+" "+path)
}

// Calls returns the recorded calls with method whose path starts with
// prefix. An empty method matches all.
func (b *Backend) Calls(method, prefix string) []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []Call
	for _, c := range b.calls {
		if (method == "" || c.Method == method) && strings.HasPrefix(c.Path, prefix) {
			out = append(out, c)
		}
	}
	return out
}

// Records returns a copy of the collection at path.
func (b *Backend) Records(path string) []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.collections[strings.TrimRight(path, "/")]
	if !ok {
		return nil
	}
	out := make([]map[string]any, len(c.records))
	for i, rec := range c.records {
		out[i] = clone(rec)
	}
	return out
}

// Insert adds rec to the collection at path and returns it as stored.
func (b *Backend) Insert(path string, rec map[string]any) map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	c := b.collections[strings.TrimRight(path, "/")]
	stored := b.stampLocked(rec)
	c.records = append(c.records, stored)
	return clone(stored)
}

func (b *Backend) stampLocked(rec map[string]any) map[string]any {
	out := clone(rec)
	if _, ok := out["id"]; !ok {
		out["id"] = uuid.NewString()
	}
	if _, ok := out["created_at"]; !ok {
		out["created_at"] = Epoch.Add(time.Duration(b.created) * time.Minute).Format(time.RFC3339)
		b.created++
	}
	return out
}

func (b *Backend) list(base string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		c := b.collections[base]
		items := make([]map[string]any, len(c.records))
		for i, rec := range c.records {
			items[i] = clone(rec)
		}
		envelope := c.envelope
		b.mu.Unlock()
		if envelope {
			writeJSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func (b *Backend) create(base string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rec map[string]any
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": err.Error()})
			return
		}
		delete(rec, "id")
		b.mu.Lock()
		c := b.collections[base]
		stored := b.stampLocked(rec)
		c.records = append(c.records, stored)
		out := clone(stored)
		b.mu.Unlock()
		writeJSON(w, http.StatusCreated, out)
	}
}

func (b *Backend) find(base, id string) (*collection, int) {
	c := b.collections[base]
	for i, rec := range c.records {
		if rec["id"] == id {
			return c, i
		}
	}
	return c, -1
}

func (b *Backend) get(base string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		c, i := b.find(base, mux.Vars(r)["id"])
		if i < 0 {
			b.mu.Unlock()
			writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Not found"})
			return
		}
		out := clone(c.records[i])
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, out)
	}
}

func (b *Backend) update(base string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch map[string]any
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": err.Error()})
			return
		}
		b.mu.Lock()
		c, i := b.find(base, mux.Vars(r)["id"])
		if i < 0 {
			b.mu.Unlock()
			writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Not found"})
			return
		}
		for k, v := range patch {
			if k == "id" {
				continue
			}
			c.records[i][k] = v
		}
		out := clone(c.records[i])
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, out)
	}
}

func (b *Backend) remove(base string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		c, i := b.find(base, mux.Vars(r)["id"])
		if i < 0 {
			b.mu.Unlock()
			writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Not found"})
			return
		}
		c.records = append(c.records[:i], c.records[i+1:]...)
		b.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}
}

func clone(rec map[string]any) map[string]any {
	out := make(map[string]any, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// MemoryStorage is an upload.Storage that keeps uploads in memory.
type MemoryStorage struct {
	mu    sync.Mutex
	files map[string][]byte
	// Err, when set, fails every upload.
	Err error
}

func (s *MemoryStorage) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", errors.Wrap(err, "read upload")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.files == nil {
		s.files = map[string][]byte{}
	}
	s.files[filename] = data
	return "https://cdn.test/" + url.PathEscape(filename), nil
}

// Uploaded lists the stored file names.
func (s *MemoryStorage) Uploaded() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.files))
	for name := range s.files {
		out = append(out, name)
	}
	return out
}
