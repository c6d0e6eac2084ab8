package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	opportunityModule "github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/opportunity"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/opportunity/presentation/controllers"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/itf"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/notify"
)

const listPath = "/api/admin/opportunities"

// seededBackend filters the listing by type like the real API does.
func seededBackend() *itf.Backend {
	b := itf.NewBackend()
	b.Handle(http.MethodGet, listPath, func(w http.ResponseWriter, r *http.Request) {
		kind := r.URL.Query().Get("type")
		out := []map[string]any{}
		for _, rec := range b.Records(listPath) {
			if kind == "" || rec["type"] == kind {
				out = append(out, rec)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	})
	return b.Collection(listPath,
		map[string]any{
			"id": "j1", "title": "Go Developer", "type": "JOB", "location": "Kathmandu",
			"requirements": []any{"Go"}, "job_details": map[string]any{"employment_type": "Full-time", "salary_range": "100k"},
		},
		map[string]any{
			"id": "i1", "title": "Design Intern", "type": "INTERNSHIP", "location": "Remote",
			"internship_details": map[string]any{"duration_months": 3, "stipend": "10k"},
		},
	)
}

func setup(t *testing.T, backend *itf.Backend, key string) (*itf.TestEnvironment, *controllers.OpportunityController) {
	t.Helper()
	env := itf.NewTestContext().
		WithModules(opportunityModule.NewModule()).
		WithBackend(backend).
		Build(t)
	c := itf.Controller[*controllers.OpportunityController](t, env, key)
	require.NoError(t, c.Load(env.Ctx))
	return env, c
}

func TestOpportunityController_ListsByType(t *testing.T) {
	backend := seededBackend()
	_, jobs := setup(t, backend, "/dashboard/jobs")

	require.Len(t, jobs.List.Items(), 1)
	assert.Equal(t, "j1", jobs.List.Items()[0].ID)

	gets := backend.Calls(http.MethodGet, listPath)
	require.NotEmpty(t, gets)
	assert.Equal(t, "JOB", gets[0].Query.Get("type"))
}

func TestOpportunityController_FilterSendsParams(t *testing.T) {
	backend := seededBackend()
	env, internships := setup(t, backend, "/dashboard/internships")

	require.NoError(t, internships.Filter(env.Ctx, "Remote", "design"))

	gets := backend.Calls(http.MethodGet, listPath)
	last := gets[len(gets)-1]
	assert.Equal(t, "INTERNSHIP", last.Query.Get("type"))
	assert.Equal(t, "Remote", last.Query.Get("location"))
	assert.Equal(t, "design", last.Query.Get("search"))
}

func TestOpportunityController_CreateJobOmitsInternshipDetails(t *testing.T) {
	backend := seededBackend()
	env, jobs := setup(t, backend, "/dashboard/jobs")

	jobs.OpenCreate()
	form, ok := jobs.Form()
	require.True(t, ok)
	draft := &form.Draft().Current
	draft.Title = "Platform Engineer"
	draft.Description = "Build things"
	draft.Location = "Lalitpur"
	draft.Compensation = "120k"
	draft.AddRequirement("Kubernetes")
	draft.AddRequirement("Kubernetes")

	_, err := form.Submit(env.Ctx)
	require.NoError(t, err)

	posts := backend.Calls(http.MethodPost, listPath)
	require.Len(t, posts, 1)
	body := posts[0].Body.(map[string]any)
	assert.NotContains(t, body, "internship_details")
	assert.Equal(t, map[string]any{"employment_type": "Full-time", "salary_range": "120k"}, body["job_details"])
	assert.Equal(t, []any{"Kubernetes"}, body["requirements"])
	assert.Equal(t, "JOB", body["type"])

	last, _ := env.Notes.Last()
	assert.Equal(t, "Created successfully!", last.Message)
	assert.Len(t, jobs.List.Items(), 2)
}

func TestOpportunityController_ValidationBlocksSave(t *testing.T) {
	backend := seededBackend()
	env, jobs := setup(t, backend, "/dashboard/jobs")

	jobs.OpenCreate()
	form, _ := jobs.Form()
	form.Draft().Current.Title = "Go"

	_, err := form.Submit(env.Ctx)
	require.Error(t, err)
	assert.Equal(t, "Title must be at least 3 characters", form.FieldErrors()["title"])
	assert.Empty(t, backend.Calls(http.MethodPost, listPath))
}

func TestOpportunityController_DeleteNotifies(t *testing.T) {
	backend := seededBackend()
	env, jobs := setup(t, backend, "/dashboard/jobs")

	require.NoError(t, jobs.RequestDelete("j1"))
	require.NoError(t, jobs.ConfirmDelete(env.Ctx))
	assert.Empty(t, jobs.List.Items())
	assert.Equal(t, []string{"Deleted successfully"}, env.Notes.Messages(notify.Success))
}
