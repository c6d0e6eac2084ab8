package modules

import (
	"slices"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/auth"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/dashboard"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/member"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/mentor"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/opportunity"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/project"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/service"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/training"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/application"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/configuration"
)

// BuiltIn returns the dashboard's modules in registration order. Training
// reads the mentor catalog and dashboard reads members, trainings and
// opportunities, so those come first.
func BuiltIn(conf *configuration.Configuration) []application.Module {
	return []application.Module{
		auth.NewModule(),
		member.NewModule(),
		mentor.NewModule(),
		opportunity.NewModule(),
		project.NewModule(),
		service.NewModule(),
		training.NewModule(&training.ModuleOptions{
			ListPageSize: conf.TrainingsPageSize,
		}),
		dashboard.NewModule(),
	}
}

var NavLinks = slices.Concat(
	dashboard.NavItems,
	member.NavItems,
	mentor.NavItems,
	opportunity.NavItems,
	project.NavItems,
	service.NavItems,
	training.NavItems,
)

func Load(app application.Application, externalModules ...application.Module) error {
	return application.Load(app, externalModules...)
}
