package services

import (
	"context"
	"strings"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/training/domain/aggregates/training"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/refs"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/upload"
)

const DefaultListPageSize = 100

type TrainingService struct {
	repo         training.Repository
	storage      upload.Storage
	listPageSize int
}

func NewTrainingService(repo training.Repository, storage upload.Storage, listPageSize int) *TrainingService {
	if listPageSize <= 0 {
		listPageSize = DefaultListPageSize
	}
	return &TrainingService{
		repo:         repo,
		storage:      storage,
		listPageSize: listPageSize,
	}
}

func (s *TrainingService) GetAll(ctx context.Context) ([]training.Training, error) {
	return s.repo.GetAll(ctx, s.listPageSize)
}

func (s *TrainingService) GetByID(ctx context.Context, id string) (training.Training, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TrainingService) Create(ctx context.Context, payload any) (training.Training, error) {
	return s.repo.Create(ctx, payload)
}

func (s *TrainingService) Update(ctx context.Context, id string, payload any) (training.Training, error) {
	return s.repo.Update(ctx, id, payload)
}

func (s *TrainingService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Count is the number of programs the list endpoint returns.
func (s *TrainingService) Count(ctx context.Context) (int, error) {
	items, err := s.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// MentorIDs maps the mentors embedded in t to form labels: the embedded id
// when present, else the id of a mentor with the same name, else the name.
func MentorIDs(t training.Training, mentors *refs.Catalog) []string {
	out := make([]string, 0, len(t.Mentors))
	for _, m := range t.Mentors {
		if m.ID != "" {
			out = append(out, m.ID)
			continue
		}
		out = append(out, mentors.Add(m.Name).Label())
	}
	return out
}

// Payload resolves the draft's mentors, minting unknown names as mentors,
// then uploads the photo if a new one was picked.
func (s *TrainingService) Payload(ctx context.Context, mentors *refs.Catalog, dto training.FormDTO) (training.Payload, error) {
	ids, err := mentors.Resolve(ctx, refs.ParseLabels(dto.MentorIDs))
	if err != nil {
		return training.Payload{}, err
	}
	photoURL := strings.TrimSpace(dto.PhotoURL)
	if path := strings.TrimSpace(dto.PhotoFile); path != "" {
		url, err := upload.File(ctx, s.storage, path)
		if err != nil {
			return training.Payload{}, err
		}
		photoURL = url
	}
	return dto.ToPayload(photoURL, ids), nil
}
