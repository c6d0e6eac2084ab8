package mentor

import (
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/types"
)

var MentorsLink = types.NavigationItem{
	Name: "Mentors",
	Href: "/dashboard/mentors",
}

var NavItems = []types.NavigationItem{
	MentorsLink,
}
