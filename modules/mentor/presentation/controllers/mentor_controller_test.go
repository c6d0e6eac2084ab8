package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mentorModule "github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/mentor"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/mentor/presentation/controllers"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/forms"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/itf"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/notify"
)

func setup(t *testing.T, backend *itf.Backend) (*itf.TestEnvironment, *controllers.MentorController) {
	t.Helper()
	env := itf.NewTestContext().
		WithModules(mentorModule.NewModule()).
		WithBackend(backend).
		Build(t)
	c := itf.Controller[*controllers.MentorController](t, env, "/dashboard/mentors")
	require.NoError(t, c.Load(env.Ctx))
	return env, c
}

func TestMentorController_EditUsesPut(t *testing.T) {
	backend := itf.NewBackend().Collection("/admin/mentors/",
		map[string]any{"id": "a", "name": "Hari", "photo_url": "https://cdn.test/hari.png"},
	)
	env, c := setup(t, backend)

	c.OpenEdit("a")
	form, ok := c.Form()
	require.True(t, ok)
	form.Draft().Current.Name = "Hari Prasad"

	_, err := form.Submit(env.Ctx)
	require.NoError(t, err)

	puts := backend.Calls(http.MethodPut, "/admin/mentors/a")
	require.Len(t, puts, 1)
	assert.Equal(t, map[string]any{"name": "Hari Prasad", "photo_url": "https://cdn.test/hari.png"}, puts[0].Body)
	assert.Empty(t, backend.Calls(http.MethodPatch, ""))
	assert.Equal(t, []string{"Mentor updated!"}, env.Notes.Messages(notify.Success))
	assert.Equal(t, "/dashboard/mentors", env.History.Location())
}

func TestMentorController_Validation(t *testing.T) {
	backend := itf.NewBackend().Collection("/admin/mentors/")
	env, c := setup(t, backend)

	c.OpenCreate()
	form, ok := c.Form()
	require.True(t, ok)
	form.Draft().Current.Name = "   "
	form.Draft().Current.PhotoURL = "not a url"

	_, err := form.Submit(env.Ctx)
	var verr *forms.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{"name": "Name is required", "photo_url": "Invalid URL"}, form.FieldErrors())
	assert.Empty(t, backend.Calls(http.MethodPost, ""))
}

func TestMentorController_LoadFailure(t *testing.T) {
	backend := itf.NewBackend().Collection("/admin/mentors/")
	backend.Fail(http.MethodGet, "/admin/mentors/", http.StatusBadGateway, nil)
	env := itf.NewTestContext().WithModules(mentorModule.NewModule()).WithBackend(backend).Build(t)
	c := itf.Controller[*controllers.MentorController](t, env, "/dashboard/mentors")

	require.Error(t, c.Load(env.Ctx))
	assert.Equal(t, []string{"Failed to load mentors from API"}, env.Notes.Messages(notify.Error))
}

func TestMentorController_Delete(t *testing.T) {
	backend := itf.NewBackend().Collection("/admin/mentors/",
		map[string]any{"id": "a", "name": "Hari"},
		map[string]any{"id": "b", "name": "Sita"},
	)
	env, c := setup(t, backend)

	require.NoError(t, c.RequestDelete("a"))
	require.NoError(t, c.ConfirmDelete(env.Ctx))
	assert.Len(t, backend.Records("/admin/mentors/"), 1)
	assert.Len(t, c.List.Items(), 1)
	assert.Equal(t, []string{"Mentor deleted"}, env.Notes.Messages(notify.Success))
}
