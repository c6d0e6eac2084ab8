package controllers

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/project/domain/aggregates/project"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/project/services"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/application"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/forms"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/refs"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/screen"
)

const PageSize = 6

type ProjectController struct {
	*screen.Screen[project.Project, project.FormDTO]
	projectService *services.ProjectService
	techs          *refs.Catalog
	log            *logrus.Logger
}

func NewProjectController(app application.Application) *ProjectController {
	svc := app.Service(services.ProjectService{}).(*services.ProjectService)
	c := &ProjectController{
		projectService: svc,
		techs:          svc.TechCatalog(),
		log:            app.Logger(),
	}
	c.Screen = screen.New(app, screen.Options[project.Project, project.FormDTO]{
		Base:     "/dashboard/projects",
		PageSize: PageSize,
		Noun:     "Project",
		DeletedFor: func(p project.Project) string {
			return "Removed " + p.Title
		},
		Fetch:        c.fetch,
		SearchFields: func(p project.Project) []string { return []string{p.Title} },
		Remove:       svc.Delete,
		Form: forms.Config[project.Project, project.FormDTO]{
			Seed: c.seed,
			Prepare: func(ctx context.Context, dto project.FormDTO, _ *project.Project) (any, error) {
				if err := c.techs.Load(ctx); err != nil {
					return nil, err
				}
				return svc.Payload(ctx, c.techs, dto)
			},
			Create: svc.Create,
			Update: svc.Update,
			After: func(ctx context.Context, saved project.Project, dto project.FormDTO, target *project.Project) error {
				var existing []project.Feedback
				if target != nil {
					existing = target.Feedbacks
				}
				return svc.SyncFeedbacks(ctx, saved.ID, existing, dto.Feedbacks)
			},
			Messages: forms.Messages{
				Saving:  "Processing project...",
				Created: "Project created",
				Updated: "Project updated",
				Failed:  "An unexpected error occurred",
			},
		},
	})
	return c
}

// Techs is the tech catalog the form suggests from.
func (c *ProjectController) Techs() *refs.Catalog { return c.techs }

// fetch lists projects and refreshes the tech catalog alongside. A catalog
// failure only leaves edit seeding with names instead of ids.
func (c *ProjectController) fetch(ctx context.Context) ([]project.Project, error) {
	var projects []project.Project
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = c.projectService.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		if err := c.techs.Load(gctx); err != nil {
			c.log.WithError(err).Warn("failed to sync tech catalog")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *ProjectController) seed(existing *project.Project) project.FormDTO {
	if existing == nil {
		return project.NewFormDTO()
	}
	labels := make([]string, 0, len(existing.Techs))
	for _, ref := range c.techs.IDs(existing.Techs) {
		labels = append(labels, ref.Label())
	}
	return project.FromProject(*existing, labels)
}
