package persistence

import (
	"context"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/opportunity/domain/aggregates/opportunity"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/apiclient"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/crud"
)

const opportunitiesPath = "/api/admin/opportunities"

type OpportunityRepository struct {
	resource *crud.Resource[opportunity.Opportunity]
}

func NewOpportunityRepository(client *apiclient.Client) opportunity.Repository {
	return &OpportunityRepository{
		resource: &crud.Resource[opportunity.Opportunity]{
			Client:    client,
			ListPath:  opportunitiesPath,
			Normalize: normalizeOpportunity,
		},
	}
}

func normalizeOpportunity(o *opportunity.Opportunity) {
	if o.Requirements == nil {
		o.Requirements = []string{}
	}
}

func (r *OpportunityRepository) GetAll(ctx context.Context, params opportunity.FindParams) ([]opportunity.Opportunity, error) {
	return r.resource.GetAll(ctx, params.Query())
}

func (r *OpportunityRepository) GetByID(ctx context.Context, id string) (opportunity.Opportunity, error) {
	return r.resource.GetByID(ctx, id)
}

// Create sends only the details belonging to the payload's type.
func (r *OpportunityRepository) Create(ctx context.Context, payload opportunity.Payload) (opportunity.Opportunity, error) {
	return r.resource.Create(ctx, payload.ForType())
}

func (r *OpportunityRepository) Update(ctx context.Context, id string, partial any) (opportunity.Opportunity, error) {
	return r.resource.Update(ctx, id, partial)
}

func (r *OpportunityRepository) Delete(ctx context.Context, id string) error {
	return r.resource.Delete(ctx, id)
}
