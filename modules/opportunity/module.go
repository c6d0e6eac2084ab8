package opportunity

import (
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/opportunity/domain/aggregates/opportunity"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/opportunity/infrastructure/persistence"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/opportunity/presentation/controllers"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/opportunity/services"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Register(app application.Application) error {
	app.RegisterServices(
		services.NewOpportunityService(persistence.NewOpportunityRepository(app.Client())),
	)
	app.RegisterControllers(
		controllers.NewOpportunityController(app, opportunity.TypeJob),
		controllers.NewOpportunityController(app, opportunity.TypeInternship),
	)
	app.RegisterNavItems(NavItems...)
	return nil
}

func (m *Module) Name() string {
	return "opportunity"
}
