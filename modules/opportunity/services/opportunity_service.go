package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/opportunity/domain/aggregates/opportunity"
)

type OpportunityService struct {
	repo opportunity.Repository
}

func NewOpportunityService(repo opportunity.Repository) *OpportunityService {
	return &OpportunityService{
		repo: repo,
	}
}

func (s *OpportunityService) GetAll(ctx context.Context, params opportunity.FindParams) ([]opportunity.Opportunity, error) {
	return s.repo.GetAll(ctx, params)
}

func (s *OpportunityService) GetByID(ctx context.Context, id string) (opportunity.Opportunity, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *OpportunityService) Create(ctx context.Context, payload opportunity.Payload) (opportunity.Opportunity, error) {
	if !payload.Type.Valid() {
		return opportunity.Opportunity{}, errors.Errorf("unknown opportunity type %q", payload.Type)
	}
	return s.repo.Create(ctx, payload)
}

func (s *OpportunityService) Update(ctx context.Context, id string, partial any) (opportunity.Opportunity, error) {
	return s.repo.Update(ctx, id, partial)
}

func (s *OpportunityService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Count is the number of opportunities of type t.
func (s *OpportunityService) Count(ctx context.Context, t opportunity.Type) (int, error) {
	items, err := s.repo.GetAll(ctx, opportunity.FindParams{Type: t})
	if err != nil {
		return 0, err
	}
	return len(items), nil
}
