package itf

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/apiclient"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/apiclient/apiclienttest"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/application"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/navigation"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/notify"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/session"
)

// TestContext provides a fluent API for building test environments
type TestContext struct {
	ctx      context.Context
	token    string
	location string
	handler  http.Handler
	modules  []application.Module
}

func NewTestContext() *TestContext {
	return &TestContext{
		ctx:     context.Background(),
		token:   "test-token",
		modules: []application.Module{},
	}
}

// WithModules adds modules registered at Build
func (tc *TestContext) WithModules(modules ...application.Module) *TestContext {
	tc.modules = append(tc.modules, modules...)
	return tc
}

// WithBackend sets the handler standing in for the admin API
func (tc *TestContext) WithBackend(h http.Handler) *TestContext {
	tc.handler = h
	return tc
}

// WithToken sets the session token; empty means signed out
func (tc *TestContext) WithToken(token string) *TestContext {
	tc.token = token
	return tc
}

// WithLocation sets the location the history starts at
func (tc *TestContext) WithLocation(path string) *TestContext {
	tc.location = path
	return tc
}

// Build creates the environment with all dependencies
func (tc *TestContext) Build(tb testing.TB) *TestEnvironment {
	tb.Helper()

	handler := tc.handler
	if handler == nil {
		handler = NewBackend()
	}
	env := apiclienttest.New(tb, tc.token, handler)
	if tc.location != "" {
		env.History.Replace(tc.location)
	}

	notes := notify.NewRecorder()
	storage := &MemoryStorage{}
	app := application.New(&application.ApplicationOptions{
		Client:    env.Client,
		Navigator: env.History,
		Notifier:  notes,
		Storage:   storage,
	})
	if err := application.Load(app, tc.modules...); err != nil {
		tb.Fatal(err)
	}

	return &TestEnvironment{
		Ctx:     tc.ctx,
		App:     app,
		Client:  env.Client,
		Server:  env.Server,
		Session: env.Session,
		History: env.History,
		Notes:   notes,
		Storage: storage,
	}
}

// TestEnvironment contains all test dependencies
type TestEnvironment struct {
	Ctx     context.Context
	App     application.Application
	Client  *apiclient.Client
	Server  *httptest.Server
	Session *session.Session
	History *navigation.History
	Notes   *notify.Recorder
	Storage *MemoryStorage
}

// Service retrieves a service from the application
func (te *TestEnvironment) Service(service interface{}) interface{} {
	return te.App.Service(service)
}

// GetService is a generic helper that retrieves and casts a service
func GetService[T any](te *TestEnvironment) *T {
	var zero T
	service := te.App.Service(zero)
	if service == nil {
		return nil
	}
	return service.(*T)
}

// Controller retrieves a registered controller by key and casts it
func Controller[T application.Controller](tb testing.TB, te *TestEnvironment, key string) T {
	tb.Helper()
	c, ok := te.App.Controller(key)
	if !ok {
		tb.Fatalf("controller %s not registered", key)
	}
	typed, ok := c.(T)
	if !ok {
		tb.Fatalf("controller %s has type %T", key, c)
	}
	return typed
}

// AssertNoError fails the test if err is not nil
func (te *TestEnvironment) AssertNoError(tb testing.TB, err error) {
	tb.Helper()
	if err != nil {
		tb.Fatal(err)
	}
}
