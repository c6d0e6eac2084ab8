package persistence

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/training/domain/aggregates/training"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/apiclient"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/crud"
)

const trainingsPath = "/admin/trainings/"

type TrainingRepository struct {
	resource *crud.Resource[training.Training]
}

func NewTrainingRepository(client *apiclient.Client) training.Repository {
	return &TrainingRepository{
		resource: &crud.Resource[training.Training]{
			Client:       client,
			ListPath:     trainingsPath,
			UpdateMethod: http.MethodPut,
			Normalize:    normalizeTraining,
		},
	}
}

func normalizeTraining(t *training.Training) {
	if t.Benefits == nil {
		t.Benefits = []string{}
	}
	if t.Mentors == nil {
		t.Mentors = []training.Mentor{}
	}
}

// GetAll asks for pageSize items; the API pages at 20 by default.
func (r *TrainingRepository) GetAll(ctx context.Context, pageSize int) ([]training.Training, error) {
	var params url.Values
	if pageSize > 0 {
		params = url.Values{"page_size": {strconv.Itoa(pageSize)}}
	}
	return r.resource.GetAll(ctx, params)
}

func (r *TrainingRepository) GetByID(ctx context.Context, id string) (training.Training, error) {
	return r.resource.GetByID(ctx, id)
}

func (r *TrainingRepository) Create(ctx context.Context, payload any) (training.Training, error) {
	return r.resource.Create(ctx, payload)
}

func (r *TrainingRepository) Update(ctx context.Context, id string, payload any) (training.Training, error) {
	return r.resource.Update(ctx, id, payload)
}

func (r *TrainingRepository) Delete(ctx context.Context, id string) error {
	return r.resource.Delete(ctx, id)
}
