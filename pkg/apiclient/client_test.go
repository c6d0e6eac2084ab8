package apiclient_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/apiclient"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/apiclient/apiclienttest"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/navigation"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/session"
)

func TestNew_RequiresCollaborators(t *testing.T) {
	sess, err := session.New(nil)
	require.NoError(t, err)
	nav := navigation.NewHistory("/")

	_, err = apiclient.New(apiclient.Options{Session: sess, Navigator: nav})
	require.Error(t, err)
	_, err = apiclient.New(apiclient.Options{BaseURL: "http://x", Navigator: nav})
	require.Error(t, err)
	_, err = apiclient.New(apiclient.Options{BaseURL: "http://x", Session: sess})
	require.Error(t, err)

	c, err := apiclient.New(apiclient.Options{BaseURL: " http://x/ ", Session: sess, Navigator: nav})
	require.NoError(t, err)
	assert.Equal(t, "http://x", c.BaseURL())
	assert.Equal(t, apiclient.DefaultLoginPath, c.LoginPath())
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var got string
	env := apiclienttest.New(t, "tok-1", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))

	_, err := env.Client.Do(context.Background(), http.MethodGet, "/admin/mentors/", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", got)
}

func TestClient_UnauthenticatedWithoutToken(t *testing.T) {
	var sawHeader atomic.Bool
	env := apiclienttest.New(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["Authorization"]
		sawHeader.Store(present)
		w.WriteHeader(http.StatusNoContent)
	}))

	resp, err := env.Client.Do(context.Background(), http.MethodDelete, "/admin/members/1", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.False(t, sawHeader.Load())
}

func TestClient_SendsJSONBodyAndParams(t *testing.T) {
	env := apiclienttest.New(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/admin/members/7", r.URL.Path)
		assert.Equal(t, "INTERN", r.URL.Query().Get("role"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		raw, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"is_visible":false}`, string(raw))
		_, _ = w.Write([]byte(`{"id":"7","is_visible":false}`))
	}))

	resp, err := env.Client.Do(context.Background(), http.MethodPatch, "admin/members/7", map[string]any{"is_visible": false}, url.Values{"role": {"INTERN"}})
	require.NoError(t, err)
	var rec map[string]any
	require.NoError(t, resp.Decode(&rec))
	assert.Equal(t, false, rec["is_visible"])
}

func TestClient_401OnLoginIsPassedThrough(t *testing.T) {
	env := apiclienttest.New(t, "existing", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid credentials"}`))
	}))

	err := env.Client.Login(context.Background(), "a@x.com", "wrong")
	require.Error(t, err)
	assert.True(t, apiclient.IsLoginFailure(err))
	assert.False(t, errors.Is(err, apiclient.ErrSessionExpired))
	assert.Equal(t, "Invalid credentials", apiclient.Message(err, "Login failed"))

	token, ok := env.Session.Token()
	assert.True(t, ok)
	assert.Equal(t, "existing", token)
	assert.Equal(t, 0, env.History.Reloads())
	assert.Equal(t, "/dashboard", env.History.Location())
}

func TestClient_401ElsewhereLogsOut(t *testing.T) {
	env := apiclienttest.New(t, "stale", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	env.History.Push("/dashboard/projects/edit/1")

	_, err := apiclient.GetJSON[[]map[string]any](context.Background(), env.Client, "/admin/projects", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apiclient.ErrSessionExpired))
	assert.False(t, apiclient.IsLoginFailure(err))
	assert.Equal(t, http.StatusUnauthorized, apiclient.StatusCode(err))

	_, ok := env.Session.Token()
	assert.False(t, ok)
	assert.Equal(t, 1, env.History.Reloads())
	assert.Equal(t, "/", env.History.Location())
	assert.Equal(t, 1, env.History.Len())
}

func TestClient_QueryOnPathIsMerged(t *testing.T) {
	env := apiclienttest.New(t, "stale", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("next"))
		assert.Equal(t, "2", r.URL.Query().Get("other"))
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := env.Client.Do(context.Background(), http.MethodPost, "/auth/login?next=1", nil, url.Values{"other": {"2"}})
	require.Error(t, err)
	assert.True(t, apiclient.IsLoginFailure(err))
	assert.Equal(t, 0, env.History.Reloads())
}

func TestClient_LoginPathMatchIsExact(t *testing.T) {
	env := apiclienttest.New(t, "stale", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := env.Client.Do(context.Background(), http.MethodPost, "/auth/login/extra", nil, nil)
	require.ErrorIs(t, err, apiclient.ErrSessionExpired)
	assert.Equal(t, 1, env.History.Reloads())
}

func TestClient_OtherErrorsPassThrough(t *testing.T) {
	var calls atomic.Int32
	env := apiclienttest.New(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":[{"loc":["body","title"],"msg":"Title too short","type":"value_error"}]}`))
	}))

	_, err := env.Client.Do(context.Background(), http.MethodPost, "/admin/projects", map[string]any{"title": "x"}, nil)
	require.Error(t, err)

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	require.Len(t, apiErr.Detail.Items, 1)
	assert.Equal(t, "Title too short", apiErr.Detail.Items[0].Msg)
	assert.Equal(t, []any{"body", "title"}, apiErr.Detail.Items[0].Loc)
	assert.Equal(t, "Title too short", apiErr.Message("fallback"))
	assert.EqualValues(t, 1, calls.Load(), "no retries")

	_, ok := env.Session.Token()
	assert.True(t, ok)
	assert.Equal(t, 0, env.History.Reloads())
}

func TestClient_ServerErrorWithoutDetailFallsBack(t *testing.T) {
	env := apiclienttest.New(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := env.Client.Do(context.Background(), http.MethodGet, "/admin/services/", nil, nil)
	require.Error(t, err)
	assert.Equal(t, "Failed to load services", apiclient.Message(err, "Failed to load services"))
	assert.Contains(t, err.Error(), "status=500")
}

func TestClient_TransportError(t *testing.T) {
	env := apiclienttest.New(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	env.Server.Close()

	_, err := env.Client.Do(context.Background(), http.MethodGet, "/admin/members", nil, nil)
	require.Error(t, err)
	var transport *apiclient.TransportError
	require.ErrorAs(t, err, &transport)
	assert.Equal(t, "/admin/members", transport.Path)
	assert.Equal(t, 0, apiclient.StatusCode(err))
}

func TestClient_Timeout(t *testing.T) {
	block := make(chan struct{})
	env := apiclienttest.New(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() { close(block) })

	client, err := apiclient.New(apiclient.Options{
		BaseURL:   env.Server.URL,
		Timeout:   50 * time.Millisecond,
		Session:   env.Session,
		Navigator: env.History,
	})
	require.NoError(t, err)

	_, err = client.Do(context.Background(), http.MethodGet, "/admin/trainings/", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_LoginStoresToken(t *testing.T) {
	env := apiclienttest.New(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin@x.com", body["email"])
		assert.Equal(t, "secret", body["password"])
		_, _ = w.Write([]byte(`{"access_token":"fresh","token_type":"bearer"}`))
	}))

	require.NoError(t, env.Client.Login(context.Background(), " admin@x.com ", "secret"))
	token, ok := env.Session.Token()
	assert.True(t, ok)
	assert.Equal(t, "fresh", token)
}

func TestClient_LoginWithoutTokenFails(t *testing.T) {
	env := apiclienttest.New(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))

	require.Error(t, env.Client.Login(context.Background(), "a@x.com", "p"))
	_, ok := env.Session.Token()
	assert.False(t, ok)
}

func TestClient_Logout(t *testing.T) {
	env := apiclienttest.New(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	require.NoError(t, env.Client.Logout())
	_, ok := env.Session.Token()
	assert.False(t, ok)
	assert.Equal(t, "/", env.History.Location())
	assert.Equal(t, 1, env.History.Reloads())
}

func TestClient_Metrics(t *testing.T) {
	env := apiclienttest.New(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))

	reg := prometheus.NewRegistry()
	opts := apiclient.Options{BaseURL: env.Server.URL, Session: env.Session, Navigator: env.History, Registerer: reg}
	first, err := apiclient.New(opts)
	require.NoError(t, err)
	second, err := apiclient.New(opts)
	require.NoError(t, err, "registering twice reuses collectors")

	_, err = first.Do(context.Background(), http.MethodGet, "/ok", nil, nil)
	require.NoError(t, err)
	_, err = second.Do(context.Background(), http.MethodGet, "/fail", nil, nil)
	require.Error(t, err)

	assert.Equal(t, 2, testutil.CollectAndCount(reg, "admin_api_requests_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "admin_api_forced_logouts_total"))
}

func TestDetail_Shapes(t *testing.T) {
	cases := map[string]string{
		`{"detail":"Not found"}`:                           "Not found",
		`{"detail":[{"msg":"first"},{"msg":"second"}]}`:    "first",
		`{"detail":{"msg":"single","type":"value_error"}}`: "single",
		`{"message":"from message"}`:                       "from message",
		`not json`:                                         "",
	}
	for body, want := range cases {
		env := apiclienttest.New(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(body))
		}))
		_, err := env.Client.Do(context.Background(), http.MethodGet, "/x", nil, nil)
		assert.Equal(t, want, apiclient.Message(err, ""), body)
	}
}

func TestErrorHelpers_SeeThroughWrapping(t *testing.T) {
	apiErr := &apiclient.APIError{StatusCode: http.StatusConflict, Detail: apiclient.Detail{Message: "Slug taken"}}
	err := errors.Wrap(errors.Wrapf(apiErr, "create %s", "service"), "submit")

	assert.Equal(t, http.StatusConflict, apiclient.StatusCode(err))
	assert.Equal(t, "Slug taken", apiclient.Message(err, "Failed"))
	assert.False(t, apiclient.IsLoginFailure(err))
	assert.Equal(t, "Failed", apiclient.Message(errors.New("boom"), "Failed"))
	assert.Zero(t, apiclient.StatusCode(errors.Wrap(apiclient.ErrSessionExpired, "list")))
}
