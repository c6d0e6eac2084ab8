package dashboard

import (
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/types"
)

var DashboardLink = types.NavigationItem{
	Name: "Dashboard",
	Href: "/dashboard",
}

var NavItems = []types.NavigationItem{
	DashboardLink,
}
