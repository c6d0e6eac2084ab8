package persistence

import (
	"context"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/service/domain/aggregates/service"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/apiclient"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/crud"
)

const servicesPath = "/admin/services/"

type ServiceRepository struct {
	resource *crud.Resource[service.Service]
}

func NewServiceRepository(client *apiclient.Client) service.Repository {
	return &ServiceRepository{
		resource: &crud.Resource[service.Service]{
			Client:    client,
			ListPath:  servicesPath,
			Normalize: normalizeService,
		},
	}
}

func normalizeService(s *service.Service) {
	if s.Techs == nil {
		s.Techs = []string{}
	}
	if s.Offerings == nil {
		s.Offerings = []string{}
	}
}

func (r *ServiceRepository) GetAll(ctx context.Context) ([]service.Service, error) {
	return r.resource.GetAll(ctx, nil)
}

func (r *ServiceRepository) GetByID(ctx context.Context, id string) (service.Service, error) {
	return r.resource.GetByID(ctx, id)
}

func (r *ServiceRepository) Create(ctx context.Context, payload any) (service.Service, error) {
	return r.resource.Create(ctx, payload)
}

func (r *ServiceRepository) Update(ctx context.Context, id string, partial any) (service.Service, error) {
	return r.resource.Update(ctx, id, partial)
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	return r.resource.Delete(ctx, id)
}
