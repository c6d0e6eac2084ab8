// Package apiclienttest wires an apiclient.Client to an httptest server for
// package tests.
package apiclienttest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/apiclient"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/navigation"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/session"
)

type Env struct {
	Client  *apiclient.Client
	Server  *httptest.Server
	Session *session.Session
	History *navigation.History
}

// New starts a server running handler and returns a client signed in with
// token. An empty token leaves the session signed out.
func New(t testing.TB, token string, handler http.Handler) *Env {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess, err := session.New(&session.MemoryPersister{})
	require.NoError(t, err)
	if token != "" {
		require.NoError(t, sess.SignIn(token))
	}
	history := navigation.NewHistory("/dashboard")

	client, err := apiclient.New(apiclient.Options{
		BaseURL:   srv.URL,
		Session:   sess,
		Navigator: history,
	})
	require.NoError(t, err)

	return &Env{Client: client, Server: srv, Session: sess, History: history}
}
