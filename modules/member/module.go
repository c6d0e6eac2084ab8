package member

import (
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/member/domain/aggregates/member"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/member/infrastructure/persistence"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/member/presentation/controllers"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/member/services"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Register(app application.Application) error {
	app.RegisterServices(
		services.NewMemberService(persistence.NewMemberRepository(app.Client()), app.Storage()),
	)
	app.RegisterControllers(
		controllers.NewMemberController(app, member.RoleTeam),
		controllers.NewMemberController(app, member.RoleIntern),
	)
	app.RegisterNavItems(NavItems...)
	return nil
}

func (m *Module) Name() string {
	return "member"
}
