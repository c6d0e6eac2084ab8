package service

import (
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/service/infrastructure/persistence"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/service/presentation/controllers"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/service/services"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/application"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/refs"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Register(app application.Application) error {
	app.RegisterServices(
		services.NewServiceService(
			persistence.NewServiceRepository(app.Client()),
			&refs.RemoteSource{Client: app.Client(), Path: services.TechsPath},
			&refs.RemoteSource{Client: app.Client(), Path: services.OfferingsPath},
			app.Storage(),
		),
	)
	app.RegisterControllers(
		controllers.NewServiceController(app),
	)
	app.RegisterNavItems(NavItems...)
	return nil
}

func (m *Module) Name() string {
	return "service"
}
