package refs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/apiclient/apiclienttest"
)

const (
	reactID = "9f1c2e3a-4b5d-4e6f-8a7b-1c2d3e4f5a6b"
	goID    = "0a1b2c3d-4e5f-4a6b-9c8d-7e6f5a4b3c2d"
)

func TestIsCanonicalID(t *testing.T) {
	assert.True(t, IsCanonicalID(reactID))
	assert.True(t, IsCanonicalID("9F1C2E3A-4B5D-4E6F-8A7B-1C2D3E4F5A6B"))
	assert.False(t, IsCanonicalID("React"))
	assert.False(t, IsCanonicalID(""))
	assert.False(t, IsCanonicalID("{"+reactID+"}"))
	assert.False(t, IsCanonicalID("urn:uuid:"+reactID))
	assert.False(t, IsCanonicalID("9f1c2e3a4b5d4e6f8a7b1c2d3e4f5a6b"))
}

func TestParseLabel(t *testing.T) {
	r := ParseLabel(" " + reactID + " ")
	assert.True(t, r.IsResolved())
	assert.Equal(t, reactID, r.ID())

	r = ParseLabel("  Next.js ")
	assert.False(t, r.IsResolved())
	assert.Equal(t, "Next.js", r.Name())
	assert.Equal(t, "Next.js", r.Label())
	assert.Equal(t, "Unresolved(Next.js)", r.String())
}

func TestResolve_CanonicalPassthrough(t *testing.T) {
	var calls atomic.Int32
	create := func(context.Context, string) (string, error) {
		calls.Add(1)
		return "", errors.New("must not be called")
	}

	got, err := Resolve(context.Background(), ParseLabels([]string{reactID, goID}), create)
	require.NoError(t, err)
	assert.Equal(t, []string{reactID, goID}, got)
	assert.EqualValues(t, 0, calls.Load())
}

func TestResolve_PreservesOrderRegardlessOfCompletion(t *testing.T) {
	labels := []string{"slow", reactID, "fast", "medium", goID}
	delays := map[string]time.Duration{"slow": 60 * time.Millisecond, "medium": 30 * time.Millisecond, "fast": 0}

	var mu sync.Mutex
	var completed []string
	create := func(ctx context.Context, name string) (string, error) {
		time.Sleep(delays[name])
		mu.Lock()
		completed = append(completed, name)
		mu.Unlock()
		return "id-" + name, nil
	}

	got, err := Resolve(context.Background(), ParseLabels(labels), create)
	require.NoError(t, err)
	assert.Equal(t, []string{"id-slow", reactID, "id-fast", "id-medium", goID}, got)
	assert.Equal(t, []string{"fast", "medium", "slow"}, completed)
}

func TestResolve_AllOrNothing(t *testing.T) {
	create := func(ctx context.Context, name string) (string, error) {
		if name == "Broken" {
			return "", errors.New("409 conflict")
		}
		return "id-" + name, nil
	}

	got, err := Resolve(context.Background(), ParseLabels([]string{"React", "Broken", reactID}), create)
	require.Error(t, err)
	assert.Nil(t, got)

	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "Broken", resErr.Name)
	assert.Contains(t, err.Error(), "409 conflict")
}

func TestResolve_RejectsEmptyNamesAndIDs(t *testing.T) {
	_, err := Resolve(context.Background(), []Ref{Unresolved("  ")}, func(context.Context, string) (string, error) {
		t.Fatal("create called for empty name")
		return "", nil
	})
	require.Error(t, err)

	_, err = Resolve(context.Background(), []Ref{Unresolved("Go")}, func(context.Context, string) (string, error) {
		return "", nil
	})
	require.Error(t, err)
}

func TestResolve_DuplicateNamesCreateTwice(t *testing.T) {
	var calls atomic.Int32
	create := func(ctx context.Context, name string) (string, error) {
		return fmt.Sprintf("id-%d", calls.Add(1)), nil
	}
	got, err := Resolve(context.Background(), ParseLabels([]string{"Go", "Go"}), create)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.NotEqual(t, got[0], got[1])
	assert.EqualValues(t, 2, calls.Load())
}

func TestResolveLabels_ConsultsLookup(t *testing.T) {
	var created []string
	create := func(ctx context.Context, name string) (string, error) {
		created = append(created, name)
		return "id-new", nil
	}
	lookup := map[string]string{"Python": "id-python"}

	got, err := ResolveLabels(context.Background(), []string{"python", reactID, "Rust"}, lookup, create)
	require.NoError(t, err)
	assert.Equal(t, []string{"id-python", reactID, "id-new"}, got)
	assert.Equal(t, []string{"Rust"}, created)
}

type fakeSource struct {
	mu      sync.Mutex
	records []Record
	creates []string
	fail    map[string]bool
}

func (f *fakeSource) List(context.Context) ([]Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Record(nil), f.records...), nil
}

func (f *fakeSource) Create(_ context.Context, name string) (Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates = append(f.creates, name)
	if f.fail[name] {
		return Record{}, errors.New("rejected")
	}
	rec := Record{ID: fmt.Sprintf("00000000-0000-4000-8000-%012d", len(f.creates)), Name: name}
	f.records = append(f.records, rec)
	return rec, nil
}

func TestCatalog_LookupAndNames(t *testing.T) {
	src := &fakeSource{records: []Record{{ID: reactID, Name: "React"}, {ID: goID, Name: "Go"}}}
	c := NewCatalog(src)
	require.NoError(t, c.Load(context.Background()))

	id, ok := c.Lookup(" react ")
	require.True(t, ok)
	assert.Equal(t, reactID, id)

	name, ok := c.NameOf(goID)
	require.True(t, ok)
	assert.Equal(t, "Go", name)

	assert.Equal(t, []string{"React", "unknown"}, c.Names([]string{reactID, "unknown"}))
	refs := c.IDs([]string{"Go", "Svelte"})
	assert.Equal(t, Resolved(goID), refs[0])
	assert.Equal(t, Unresolved("Svelte"), refs[1])
	assert.Equal(t, Resolved(reactID), c.Add("REACT"))
}

func TestCatalog_ResolveCachesMintedRecords(t *testing.T) {
	src := &fakeSource{records: []Record{{ID: reactID, Name: "React"}}}
	c := NewCatalog(src)
	require.NoError(t, c.Load(context.Background()))

	first, err := c.Resolve(context.Background(), []Ref{Unresolved("React"), Unresolved("Vue")})
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, reactID, first[0])

	second, err := c.Resolve(context.Background(), []Ref{Unresolved("vue")})
	require.NoError(t, err)
	assert.Equal(t, first[1], second[0])
	assert.Equal(t, []string{"Vue"}, src.creates)
}

func TestCatalog_ResolveFailureKeepsSuccessfulMints(t *testing.T) {
	src := &fakeSource{fail: map[string]bool{"Bad": true}}
	c := NewCatalog(src)

	_, err := c.Resolve(context.Background(), []Ref{Unresolved("Good"), Unresolved("Bad")})
	require.Error(t, err)

	_, ok := c.Lookup("Good")
	assert.True(t, ok)
}

func TestCatalog_Suggest(t *testing.T) {
	src := &fakeSource{records: []Record{
		{ID: "1", Name: "React"},
		{ID: "2", Name: "React Native"},
		{ID: "3", Name: "Go"},
	}}
	c := NewCatalog(src)
	require.NoError(t, c.Load(context.Background()))

	got := c.Suggest("react", 0)
	require.Len(t, got, 2)
	assert.Equal(t, "React", got[0].Name)

	assert.Len(t, c.Suggest("", 2), 2)
	assert.Empty(t, c.Suggest("python", 5))
}

func TestRemoteSource(t *testing.T) {
	env := apiclienttest.New(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/service-techs", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`[{"id":"` + reactID + `","name":"React"}]`))
		case http.MethodPost:
			_, _ = w.Write([]byte(`{"id":"` + goID + `","name":"Go"}`))
		}
	}))

	src := &RemoteSource{Client: env.Client, Path: "/admin/service-techs"}
	records, err := src.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Record{{ID: reactID, Name: "React"}}, records)

	rec, err := src.Create(context.Background(), "Go")
	require.NoError(t, err)
	assert.Equal(t, goID, rec.ID)
}
