package member

import (
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/crud"
)

type Role string

const (
	RoleTeam   Role = "TEAM"
	RoleIntern Role = "INTERN"
)

// Path is the screen segment listing members of the role.
func (r Role) Path() string {
	if r == RoleTeam {
		return "teams"
	}
	return "interns"
}

func (r Role) Valid() bool {
	return r == RoleTeam || r == RoleIntern
}

type SocialMedia struct {
	LinkedIn string `json:"linkedin" form:"linkedin" validate:"omitempty,url" msg:"Invalid URL"`
	GitHub   string `json:"github" form:"github" validate:"omitempty,url" msg:"Invalid URL"`
	Twitter  string `json:"twitter" form:"twitter" validate:"omitempty,url" msg:"Invalid URL"`
}

// Member is a team member or intern shown on the public website.
type Member struct {
	crud.Entity
	PhotoURL      string      `json:"photo_url"`
	Name          string      `json:"name"`
	Position      string      `json:"position"`
	StartDate     string      `json:"start_date"`
	EndDate       *string     `json:"end_date"`
	SocialMedia   SocialMedia `json:"social_media"`
	ContactEmail  string      `json:"contact_email"`
	PersonalEmail *string     `json:"personal_email"`
	ContactNumber *string     `json:"contact_number"`
	IsVisible     bool        `json:"is_visible"`
	Role          Role        `json:"role"`
}

func (m Member) String() string {
	if m.Position == "" {
		return m.Name
	}
	return m.Name + " (" + m.Position + ")"
}
