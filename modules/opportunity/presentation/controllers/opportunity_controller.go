package controllers

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/opportunity/domain/aggregates/opportunity"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/opportunity/services"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/application"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/forms"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/screen"
)

const PageSize = 8

// OpportunityController is the jobs or internships screen.
type OpportunityController struct {
	*screen.Screen[opportunity.Opportunity, opportunity.FormDTO]
	opportunityService *services.OpportunityService
	kind               opportunity.Type

	mu     sync.Mutex
	params opportunity.FindParams
}

func NewOpportunityController(app application.Application, kind opportunity.Type) *OpportunityController {
	c := &OpportunityController{
		opportunityService: app.Service(services.OpportunityService{}).(*services.OpportunityService),
		kind:               kind,
		params:             opportunity.FindParams{Type: kind},
	}
	noun := "Internship"
	if kind == opportunity.TypeJob {
		noun = "Job"
	}
	c.Screen = screen.New(app, screen.Options[opportunity.Opportunity, opportunity.FormDTO]{
		Base:     "/dashboard/" + kind.Path(),
		PageSize: PageSize,
		Noun:     noun,
		Plural:   kind.Path(),
		Deleted:  "Deleted successfully",
		Fetch: func(ctx context.Context) ([]opportunity.Opportunity, error) {
			return c.opportunityService.GetAll(ctx, c.findParams())
		},
		SearchFields: func(o opportunity.Opportunity) []string { return []string{o.Title} },
		Remove:       c.opportunityService.Delete,
		Form: forms.Config[opportunity.Opportunity, opportunity.FormDTO]{
			Seed: func(existing *opportunity.Opportunity) opportunity.FormDTO {
				if existing == nil {
					return opportunity.NewFormDTO(kind)
				}
				return opportunity.FromOpportunity(*existing)
			},
			Prepare: func(_ context.Context, dto opportunity.FormDTO, _ *opportunity.Opportunity) (any, error) {
				return dto.ToPayload(), nil
			},
			Create: func(ctx context.Context, payload any) (opportunity.Opportunity, error) {
				p, ok := payload.(opportunity.Payload)
				if !ok {
					return opportunity.Opportunity{}, errors.Errorf("unexpected payload %T", payload)
				}
				return c.opportunityService.Create(ctx, p)
			},
			Update: c.opportunityService.Update,
			Messages: forms.Messages{
				Saving:  "Saving " + strings.ToLower(noun) + "...",
				Created: "Created successfully!",
				Updated: "Updated successfully!",
				Failed:  "Operation failed",
			},
		},
	})
	return c
}

func (c *OpportunityController) Type() opportunity.Type { return c.kind }

func (c *OpportunityController) findParams() opportunity.FindParams {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.params
}

// Filter narrows the server-side listing by location and search text, then
// reloads. Empty values clear a filter.
func (c *OpportunityController) Filter(ctx context.Context, location, search string) error {
	c.mu.Lock()
	c.params = opportunity.FindParams{Type: c.kind, Location: location, Search: search}
	c.mu.Unlock()
	return c.Load(ctx)
}
