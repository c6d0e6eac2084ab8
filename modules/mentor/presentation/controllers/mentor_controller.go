package controllers

import (
	"context"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/mentor/domain/aggregates/mentor"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/mentor/services"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/application"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/forms"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/screen"
)

type MentorController struct {
	*screen.Screen[mentor.Mentor, mentor.FormDTO]
	mentorService *services.MentorService
}

func NewMentorController(app application.Application) *MentorController {
	c := &MentorController{
		mentorService: app.Service(services.MentorService{}).(*services.MentorService),
	}
	c.Screen = screen.New(app, screen.Options[mentor.Mentor, mentor.FormDTO]{
		Base:       "/dashboard/mentors",
		Noun:       "Mentor",
		LoadFailed: "Failed to load mentors from API",
		Fetch:      c.mentorService.GetAll,
		SearchFields: func(m mentor.Mentor) []string {
			return []string{m.Name}
		},
		Remove: c.mentorService.Delete,
		Form: forms.Config[mentor.Mentor, mentor.FormDTO]{
			Seed: func(existing *mentor.Mentor) mentor.FormDTO {
				if existing == nil {
					return mentor.FormDTO{}
				}
				return mentor.FromMentor(*existing)
			},
			Prepare: func(ctx context.Context, dto mentor.FormDTO, _ *mentor.Mentor) (any, error) {
				return c.mentorService.Payload(ctx, dto)
			},
			Create: c.mentorService.Create,
			Update: c.mentorService.Update,
			Messages: forms.Messages{
				Saving:  "Saving mentor...",
				Created: "Mentor created!",
				Updated: "Mentor updated!",
				Failed:  "Something went wrong",
			},
		},
	})
	return c
}
