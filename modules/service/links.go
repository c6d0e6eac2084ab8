package service

import (
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/types"
)

var ServicesLink = types.NavigationItem{
	Name: "Services",
	Href: "/dashboard/services",
}

var NavItems = []types.NavigationItem{
	ServicesLink,
}
