package training

import (
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/types"
)

var TrainingsLink = types.NavigationItem{
	Name: "Trainings",
	Href: "/dashboard/trainings",
}

var NavItems = []types.NavigationItem{
	TrainingsLink,
}
