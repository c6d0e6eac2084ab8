package opportunity

import (
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/types"
)

var JobsLink = types.NavigationItem{
	Name: "Jobs",
	Href: "/dashboard/jobs",
}

var InternshipsLink = types.NavigationItem{
	Name: "Internships",
	Href: "/dashboard/internships",
}

var OpportunitiesLink = types.NavigationItem{
	Name: "Opportunities",
	Href: "/dashboard/jobs",
	Children: []types.NavigationItem{
		JobsLink,
		InternshipsLink,
	},
}

var NavItems = []types.NavigationItem{
	OpportunitiesLink,
}
