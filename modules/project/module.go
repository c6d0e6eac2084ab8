package project

import (
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/project/infrastructure/persistence"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/project/presentation/controllers"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/project/services"
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
		services.NewProjectService(
			persistence.NewProjectRepository(app.Client()),
			&refs.RemoteSource{Client: app.Client(), Path: services.TechsPath},
			app.Storage(),
		),
	)
	app.RegisterControllers(
		controllers.NewProjectController(app),
	)
	app.RegisterNavItems(NavItems...)
	return nil
}

func (m *Module) Name() string {
	return "project"
}
