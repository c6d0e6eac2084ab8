package services_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authModule "github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/auth"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/auth/services"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/apiclient"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/forms"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/itf"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/notify"
)

func authBackend() *itf.Backend {
	return itf.NewBackend().Handle(http.MethodPost, "/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		if body["email"] != "admin@leafclutch.com" || body["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"detail": "Invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "fresh-token"})
	})
}

func setup(t *testing.T) (*itf.TestEnvironment, *services.AuthService) {
	t.Helper()
	env := itf.NewTestContext().
		WithModules(authModule.NewModule()).
		WithBackend(authBackend()).
		WithToken("").
		WithLocation("/").
		Build(t)
	return env, itf.GetService[services.AuthService](env)
}

func TestAuthService_Login(t *testing.T) {
	env, svc := setup(t)

	require.NoError(t, svc.Login(env.Ctx, services.LoginDTO{Email: " admin@leafclutch.com ", Password: "secret"}))

	token, ok := env.Session.Token()
	require.True(t, ok)
	assert.Equal(t, "fresh-token", token)
	assert.Equal(t, services.HomePath, env.History.Location())
	assert.Equal(t, []string{"Login successful!"}, env.Notes.Messages(notify.Success))
}

func TestAuthService_LoginRejected(t *testing.T) {
	env, svc := setup(t)

	err := svc.Login(env.Ctx, services.LoginDTO{Email: "admin@leafclutch.com", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, apiclient.IsLoginFailure(err))

	_, ok := env.Session.Token()
	assert.False(t, ok)
	assert.Equal(t, "/", env.History.Location())
	assert.Equal(t, []string{"Invalid credentials"}, env.Notes.Messages(notify.Error))
}

func TestAuthService_LoginValidation(t *testing.T) {
	env, svc := setup(t)

	err := svc.Login(env.Ctx, services.LoginDTO{Email: "not-an-email"})
	var verr *forms.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{
		"email":    "Please enter a valid email",
		"password": "Password is required",
	}, verr.Fields)
	assert.Empty(t, env.Notes.All())
}

func TestAuthService_Logout(t *testing.T) {
	env := itf.NewTestContext().
		WithModules(authModule.NewModule()).
		WithBackend(authBackend()).
		Build(t)
	svc := itf.GetService[services.AuthService](env)

	require.NoError(t, svc.Logout())
	_, ok := env.Session.Token()
	assert.False(t, ok)
	assert.Equal(t, 1, env.History.Reloads())
	assert.Equal(t, "/", env.History.Location())
}
