package project

import (
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/types"
)

var ProjectsLink = types.NavigationItem{
	Name: "Projects",
	Href: "/dashboard/projects",
}

var NavItems = []types.NavigationItem{
	ProjectsLink,
}
