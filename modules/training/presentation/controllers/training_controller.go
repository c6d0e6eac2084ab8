package controllers

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	mentorservices "github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/mentor/services"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/training/domain/aggregates/training"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/training/services"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/application"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/forms"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/refs"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/screen"
)

const PageSize = 8

type TrainingController struct {
	*screen.Screen[training.Training, training.FormDTO]
	trainingService *services.TrainingService
	mentors         *refs.Catalog
	log             *logrus.Logger
}

// NewTrainingController needs the mentor module registered first.
func NewTrainingController(app application.Application) *TrainingController {
	svc := app.Service(services.TrainingService{}).(*services.TrainingService)
	mentorService := app.Service(mentorservices.MentorService{}).(*mentorservices.MentorService)
	c := &TrainingController{
		trainingService: svc,
		mentors:         mentorService.Catalog(),
		log:             app.Logger(),
	}
	c.Screen = screen.New(app, screen.Options[training.Training, training.FormDTO]{
		Base:         "/dashboard/trainings",
		PageSize:     PageSize,
		Noun:         "Program",
		Plural:       "trainings",
		Deleted:      "Program deleted successfully",
		Fetch:        c.fetch,
		SearchFields: func(t training.Training) []string { return []string{t.Title} },
		Remove:       svc.Delete,
		Form: forms.Config[training.Training, training.FormDTO]{
			Seed: func(existing *training.Training) training.FormDTO {
				if existing == nil {
					return training.NewFormDTO()
				}
				return training.FromTraining(*existing, services.MentorIDs(*existing, c.mentors))
			},
			Prepare: func(ctx context.Context, dto training.FormDTO, _ *training.Training) (any, error) {
				if err := c.mentors.Load(ctx); err != nil {
					return nil, err
				}
				return svc.Payload(ctx, c.mentors, dto)
			},
			Create: svc.Create,
			Update: svc.Update,
			Messages: forms.Messages{
				Saving:  "Saving program...",
				Created: "Program created successfully",
				Updated: "Program updated successfully",
				Failed:  "Submission failed",
			},
		},
	})
	return c
}

// Mentors is the mentor catalog the form picks from.
func (c *TrainingController) Mentors() *refs.Catalog { return c.mentors }

func (c *TrainingController) fetch(ctx context.Context) ([]training.Training, error) {
	var items []training.Training
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = c.trainingService.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		if err := c.mentors.Load(gctx); err != nil {
			c.log.WithError(err).Warn("failed to sync mentors")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}
