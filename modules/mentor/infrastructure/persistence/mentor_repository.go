package persistence

import (
	"context"
	"net/http"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/mentor/domain/aggregates/mentor"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/apiclient"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/crud"
)

const mentorsPath = "/admin/mentors/"

type MentorRepository struct {
	resource *crud.Resource[mentor.Mentor]
}

func NewMentorRepository(client *apiclient.Client) mentor.Repository {
	return &MentorRepository{
		resource: &crud.Resource[mentor.Mentor]{
			Client:       client,
			ListPath:     mentorsPath,
			UpdateMethod: http.MethodPut,
		},
	}
}

func (r *MentorRepository) GetAll(ctx context.Context) ([]mentor.Mentor, error) {
	return r.resource.GetAll(ctx, nil)
}

func (r *MentorRepository) GetByID(ctx context.Context, id string) (mentor.Mentor, error) {
	return r.resource.GetByID(ctx, id)
}

func (r *MentorRepository) Create(ctx context.Context, payload any) (mentor.Mentor, error) {
	return r.resource.Create(ctx, payload)
}

func (r *MentorRepository) Update(ctx context.Context, id string, payload any) (mentor.Mentor, error) {
	return r.resource.Update(ctx, id, payload)
}

func (r *MentorRepository) Delete(ctx context.Context, id string) error {
	return r.resource.Delete(ctx, id)
}
