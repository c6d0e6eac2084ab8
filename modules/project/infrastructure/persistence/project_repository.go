package persistence

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/project/domain/aggregates/project"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/apiclient"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/crud"
)

const projectsPath = "/admin/projects"

type ProjectRepository struct {
	client   *apiclient.Client
	resource *crud.Resource[project.Project]
}

func NewProjectRepository(client *apiclient.Client) project.Repository {
	return &ProjectRepository{
		client: client,
		resource: &crud.Resource[project.Project]{
			Client:    client,
			ListPath:  projectsPath,
			Normalize: normalizeProject,
		},
	}
}

func normalizeProject(p *project.Project) {
	if p.Techs == nil {
		p.Techs = []string{}
	}
	if p.Feedbacks == nil {
		p.Feedbacks = []project.Feedback{}
	}
}

func (r *ProjectRepository) GetAll(ctx context.Context) ([]project.Project, error) {
	return r.resource.GetAll(ctx, nil)
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (project.Project, error) {
	return r.resource.GetByID(ctx, id)
}

func (r *ProjectRepository) Create(ctx context.Context, payload project.Payload) (project.Project, error) {
	return r.resource.Create(ctx, payload)
}

func (r *ProjectRepository) Update(ctx context.Context, id string, partial any) (project.Project, error) {
	return r.resource.Update(ctx, id, partial)
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return r.resource.Delete(ctx, id)
}

func (r *ProjectRepository) AddFeedback(ctx context.Context, projectID string, feedback project.Feedback) error {
	path := projectsPath + "/" + url.PathEscape(projectID) + "/feedbacks"
	if _, err := r.client.Do(ctx, http.MethodPost, path, feedback, nil); err != nil {
		return errors.Wrapf(err, "add feedback to project %s", projectID)
	}
	return nil
}

func (r *ProjectRepository) DeleteFeedback(ctx context.Context, feedbackID string) error {
	path := projectsPath + "/feedbacks/" + url.PathEscape(feedbackID)
	if _, err := r.client.Do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return errors.Wrapf(err, "delete feedback %s", feedbackID)
	}
	return nil
}
