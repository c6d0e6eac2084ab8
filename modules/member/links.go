package member

import (
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/types"
)

var TeamsLink = types.NavigationItem{
	Name: "Teams",
	Href: "/dashboard/teams",
}

var InternsLink = types.NavigationItem{
	Name: "Interns",
	Href: "/dashboard/interns",
}

var NavItems = []types.NavigationItem{
	TeamsLink,
	InternsLink,
}
