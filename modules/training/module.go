package training

import (
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/training/infrastructure/persistence"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/training/presentation/controllers"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/training/services"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/application"
)

type ModuleOptions struct {
	// ListPageSize is the page_size sent when listing programs.
	ListPageSize int
}

func NewModule(opts *ModuleOptions) application.Module {
	if opts == nil {
		opts = &ModuleOptions{}
	}
	return &Module{options: opts}
}

type Module struct {
	options *ModuleOptions
}

func (m *Module) Register(app application.Application) error {
	app.RegisterServices(
		services.NewTrainingService(
			persistence.NewTrainingRepository(app.Client()),
			app.Storage(),
			m.options.ListPageSize,
		),
	)
	app.RegisterControllers(
		controllers.NewTrainingController(app),
	)
	app.RegisterNavItems(NavItems...)
	return nil
}

func (m *Module) Name() string {
	return "training"
}
