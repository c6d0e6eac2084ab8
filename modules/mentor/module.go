package mentor

import (
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/mentor/infrastructure/persistence"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/mentor/presentation/controllers"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/mentor/services"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Register(app application.Application) error {
	app.RegisterServices(
		services.NewMentorService(persistence.NewMentorRepository(app.Client()), app.Storage()),
	)
	app.RegisterControllers(
		controllers.NewMentorController(app),
	)
	app.RegisterNavItems(NavItems...)
	return nil
}

func (m *Module) Name() string {
	return "mentor"
}
