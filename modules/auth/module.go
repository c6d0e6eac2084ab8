package auth

import (
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/auth/services"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Register(app application.Application) error {
	app.RegisterServices(
		services.NewAuthService(app.Client(), app.Navigator(), app.Notifier(), app.Logger()),
	)
	return nil
}

func (m *Module) Name() string {
	return "auth"
}
