package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serviceModule "github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/service"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/service/domain/aggregates/service"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/service/presentation/controllers"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/itf"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/notify"
)

const (
	goTechID   = "0a9e2f0c-7a1d-4c55-9d5e-3f1b2a4c6d8e"
	seoOfferID = "5b7c9d1e-2f3a-4b5c-8d9e-0a1b2c3d4e5f"
)

func seededBackend() *itf.Backend {
	return itf.NewBackend().
		Collection("/admin/services/", map[string]any{
			"id": "s1", "title": "Web Development", "description": "Sites",
			"techs": []any{"Go"}, "offerings": []any{"SEO"},
			"base_price": "1500.00", "effective_price": "1350.00",
			"discount_type": "PERCENTAGE", "discount_value": "10",
		}).
		Collection("/admin/service-techs", map[string]any{"id": goTechID, "name": "Go"}).
		Collection("/admin/service-offerings", map[string]any{"id": seoOfferID, "name": "SEO"})
}

func setup(t *testing.T, backend *itf.Backend) (*itf.TestEnvironment, *controllers.ServiceController) {
	t.Helper()
	env := itf.NewTestContext().
		WithModules(serviceModule.NewModule()).
		WithBackend(backend).
		Build(t)
	c := itf.Controller[*controllers.ServiceController](t, env, "/dashboard/services")
	require.NoError(t, c.Load(env.Ctx))
	return env, c
}

func TestServiceController_NormalizesPrices(t *testing.T) {
	_, c := setup(t, seededBackend())

	rec, ok := c.List.Find("s1")
	require.True(t, ok)
	assert.InDelta(t, 1500.0, rec.BasePrice.Float64(), 1e-9)
	assert.InDelta(t, 1350.0, rec.EffectivePrice.Float64(), 1e-9)
}

func TestServiceController_CreateMintsTechsAndOfferings(t *testing.T) {
	backend := seededBackend()
	env, c := setup(t, backend)

	c.OpenCreate()
	form, ok := c.Form()
	require.True(t, ok)
	draft := &form.Draft().Current
	draft.Title = "Mobile Apps"
	draft.Description = "iOS and Android"
	draft.TechIDs = []string{"Flutter", goTechID}
	draft.OfferingIDs = []string{"seo", "Maintenance"}
	draft.BasePrice = 5000
	draft.DiscountType = service.DiscountAmount
	draft.DiscountValue = 500

	_, err := form.Submit(env.Ctx)
	require.NoError(t, err)

	require.Len(t, backend.Calls(http.MethodPost, "/admin/service-techs"), 1)
	offerPosts := backend.Calls(http.MethodPost, "/admin/service-offerings")
	require.Len(t, offerPosts, 1)
	assert.Equal(t, map[string]any{"name": "Maintenance"}, offerPosts[0].Body)

	posts := backend.Calls(http.MethodPost, "/admin/services/")
	require.Len(t, posts, 1)
	body := posts[0].Body.(map[string]any)
	techIDs := body["tech_ids"].([]any)
	require.Len(t, techIDs, 2)
	assert.Equal(t, goTechID, techIDs[1])
	offerIDs := body["offering_ids"].([]any)
	require.Len(t, offerIDs, 2)
	assert.Equal(t, seoOfferID, offerIDs[0])
	assert.Equal(t, 5000.0, body["base_price"])
	assert.Equal(t, "AMOUNT", body["discount_type"])

	last, _ := env.Notes.Last()
	assert.Equal(t, "Service launched", last.Message)
}

func TestServiceController_EditSeedsIDs(t *testing.T) {
	backend := seededBackend()
	env, c := setup(t, backend)

	c.OpenEdit("s1")
	form, ok := c.Form()
	require.True(t, ok)
	draft := &form.Draft().Current
	assert.Equal(t, []string{goTechID}, draft.TechIDs)
	assert.Equal(t, []string{seoOfferID}, draft.OfferingIDs)
	assert.Equal(t, 1500.0, draft.BasePrice)
	draft.DiscountValue = 20

	_, err := form.Submit(env.Ctx)
	require.NoError(t, err)
	patches := backend.Calls(http.MethodPatch, "/admin/services/s1")
	require.Len(t, patches, 1)
	assert.Equal(t, 20.0, patches[0].Body.(map[string]any)["discount_value"])
	assert.Empty(t, backend.Calls(http.MethodPost, "/admin/service-"))
}

func TestServiceController_OfferingFailureSavesNothing(t *testing.T) {
	backend := seededBackend()
	backend.Fail(http.MethodPost, "/admin/service-offerings", http.StatusUnprocessableEntity,
		[]map[string]any{{"msg": "Offering name too long"}})
	env, c := setup(t, backend)

	c.OpenCreate()
	form, _ := c.Form()
	draft := &form.Draft().Current
	draft.Title = "Consulting"
	draft.Description = "Advice"
	draft.TechIDs = []string{goTechID}
	draft.OfferingIDs = []string{"A very long offering"}

	_, err := form.Submit(env.Ctx)
	require.Error(t, err)
	assert.Empty(t, backend.Calls(http.MethodPost, "/admin/services/"))
	assert.Equal(t, []string{"Offering name too long"}, env.Notes.Messages(notify.Error))
}

func TestServiceController_Delete(t *testing.T) {
	env, c := setup(t, seededBackend())

	require.NoError(t, c.RequestDelete("s1"))
	require.NoError(t, c.ConfirmDelete(env.Ctx))
	assert.Equal(t, []string{"Service deleted successfully"}, env.Notes.Messages(notify.Success))
}
