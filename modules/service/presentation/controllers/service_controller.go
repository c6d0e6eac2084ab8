package controllers

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/service/domain/aggregates/service"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/service/services"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/application"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/forms"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/refs"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/screen"
)

type ServiceController struct {
	*screen.Screen[service.Service, service.FormDTO]
	serviceService *services.ServiceService
	catalogs       services.Catalogs
	log            *logrus.Logger
}

func NewServiceController(app application.Application) *ServiceController {
	svc := app.Service(services.ServiceService{}).(*services.ServiceService)
	c := &ServiceController{
		serviceService: svc,
		catalogs:       svc.Catalogs(),
		log:            app.Logger(),
	}
	c.Screen = screen.New(app, screen.Options[service.Service, service.FormDTO]{
		Base:         "/dashboard/services",
		Noun:         "Service",
		Deleted:      "Service deleted successfully",
		Fetch:        c.fetch,
		SearchFields: func(s service.Service) []string { return []string{s.Title} },
		Remove:       svc.Delete,
		Form: forms.Config[service.Service, service.FormDTO]{
			Seed: c.seed,
			Prepare: func(ctx context.Context, dto service.FormDTO, _ *service.Service) (any, error) {
				if err := c.catalogs.Load(ctx); err != nil {
					return nil, err
				}
				return svc.Payload(ctx, c.catalogs, dto)
			},
			Create: svc.Create,
			Update: svc.Update,
			Messages: forms.Messages{
				Saving:  "Saving service...",
				Created: "Service launched",
				Updated: "Service updated",
				Failed:  "Server validation failed",
			},
		},
	})
	return c
}

func (c *ServiceController) Catalogs() services.Catalogs { return c.catalogs }

func (c *ServiceController) fetch(ctx context.Context) ([]service.Service, error) {
	var items []service.Service
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = c.serviceService.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		if err := c.catalogs.Load(gctx); err != nil {
			c.log.WithError(err).Warn("failed to load service options")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *ServiceController) seed(existing *service.Service) service.FormDTO {
	if existing == nil {
		return service.NewFormDTO()
	}
	return service.FromService(*existing, labels(c.catalogs.Techs, existing.Techs), labels(c.catalogs.Offerings, existing.Offerings))
}

func labels(cat *refs.Catalog, names []string) []string {
	out := make([]string, 0, len(names))
	for _, ref := range cat.IDs(names) {
		out = append(out, ref.Label())
	}
	return out
}
