package controllers

import (
	"context"
	"time"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/member/domain/aggregates/member"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/member/services"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/application"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/forms"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/optimistic"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/screen"
)

const PageSize = 8

// MemberController is the teams or interns screen.
type MemberController struct {
	*screen.Screen[member.Member, member.FormDTO]
	app           application.Application
	memberService *services.MemberService
	role          member.Role
}

func NewMemberController(app application.Application, role member.Role) *MemberController {
	c := &MemberController{
		app:           app,
		memberService: app.Service(services.MemberService{}).(*services.MemberService),
		role:          role,
	}
	noun := "Intern"
	if role == member.RoleTeam {
		noun = "Member"
	}
	c.Screen = screen.New(app, screen.Options[member.Member, member.FormDTO]{
		Base:     "/dashboard/" + role.Path(),
		PageSize: PageSize,
		Noun:     noun,
		Plural:   role.Path(),
		Fetch: func(ctx context.Context) ([]member.Member, error) {
			return c.memberService.GetAllByRole(ctx, role)
		},
		SearchFields: func(m member.Member) []string { return []string{m.Name, m.Position} },
		Remove:       c.memberService.Delete,
		Form: forms.Config[member.Member, member.FormDTO]{
			Seed: func(existing *member.Member) member.FormDTO {
				if existing == nil {
					return member.NewFormDTO(time.Now())
				}
				return member.FromMember(*existing)
			},
			Prepare: func(ctx context.Context, dto member.FormDTO, _ *member.Member) (any, error) {
				return c.memberService.Payload(ctx, role, dto)
			},
			Create: c.memberService.Create,
			Update: c.memberService.Update,
			Messages: forms.Messages{
				Saving:  "Saving " + noun + "...",
				Created: "Created successfully",
				Updated: "Updated successfully",
				Failed:  "Operation failed",
			},
		},
	})
	return c
}

func (c *MemberController) Role() member.Role { return c.role }

// ToggleVisibility flips is_visible locally and sends the new value. When
// the backend refuses, only is_visible is put back.
func (c *MemberController) ToggleVisibility(ctx context.Context, id string) error {
	rec, ok := c.List.Find(id)
	if !ok {
		return optimistic.ErrNotFound
	}
	next := !rec.IsVisible
	success := "Hidden from website"
	if next {
		success = "Visible on website"
	}
	return c.Mutations.Mutate(ctx, id,
		optimistic.SetField(func(m *member.Member) *bool { return &m.IsVisible }, next),
		func(ctx context.Context) error {
			_, err := c.memberService.SetVisibility(ctx, id, next)
			return err
		},
		optimistic.Messages{
			Success: success,
			Failure: "Failed to update visibility. Reverting change...",
		},
	)
}
