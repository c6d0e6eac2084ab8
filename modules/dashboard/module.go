package dashboard

import (
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/dashboard/presentation/controllers"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/dashboard/services"
	memberservices "github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/member/services"
	opportunityservices "github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/opportunity/services"
	trainingservices "github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/training/services"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

// Module reads the member, training and opportunity services, so it is
// registered after them.
type Module struct {
}

func (m *Module) Register(app application.Application) error {
	app.RegisterServices(
		services.NewDashboardService(
			app.Service(memberservices.MemberService{}).(*memberservices.MemberService),
			app.Service(trainingservices.TrainingService{}).(*trainingservices.TrainingService),
			app.Service(opportunityservices.OpportunityService{}).(*opportunityservices.OpportunityService),
		),
	)
	app.RegisterControllers(
		controllers.NewDashboardController(app),
	)
	app.RegisterNavItems(NavItems...)
	return nil
}

func (m *Module) Name() string {
	return "dashboard"
}
