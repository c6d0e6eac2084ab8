package services

import (
	"context"
	"strings"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/mentor/domain/aggregates/mentor"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/refs"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/upload"
)

type MentorService struct {
	repo    mentor.Repository
	storage upload.Storage
}

func NewMentorService(repo mentor.Repository, storage upload.Storage) *MentorService {
	return &MentorService{
		repo:    repo,
		storage: storage,
	}
}

func (s *MentorService) GetAll(ctx context.Context) ([]mentor.Mentor, error) {
	return s.repo.GetAll(ctx)
}

func (s *MentorService) GetByID(ctx context.Context, id string) (mentor.Mentor, error) {
	return s.repo.GetByID(ctx, id)
}

// Payload uploads the draft's photo, if any, and builds the request body.
func (s *MentorService) Payload(ctx context.Context, dto mentor.FormDTO) (mentor.Payload, error) {
	photoURL := dto.PhotoURL
	if path := strings.TrimSpace(dto.PhotoFile); path != "" {
		url, err := upload.File(ctx, s.storage, path)
		if err != nil {
			return mentor.Payload{}, err
		}
		photoURL = url
	}
	return dto.ToPayload(photoURL), nil
}

func (s *MentorService) Create(ctx context.Context, payload any) (mentor.Mentor, error) {
	return s.repo.Create(ctx, payload)
}

func (s *MentorService) Update(ctx context.Context, id string, payload any) (mentor.Mentor, error) {
	return s.repo.Update(ctx, id, payload)
}

func (s *MentorService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Catalog returns an empty mentor catalog for one form session. Names it
// cannot find are created as mentors without a photo.
func (s *MentorService) Catalog() *refs.Catalog {
	return refs.NewCatalog(&mentorSource{s: s})
}

type mentorSource struct {
	s *MentorService
}

func (src *mentorSource) List(ctx context.Context) ([]refs.Record, error) {
	mentors, err := src.s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]refs.Record, len(mentors))
	for i, m := range mentors {
		out[i] = refs.Record{ID: m.ID, Name: m.Name}
	}
	return out, nil
}

func (src *mentorSource) Create(ctx context.Context, name string) (refs.Record, error) {
	m, err := src.s.repo.Create(ctx, mentor.Payload{Name: name})
	if err != nil {
		return refs.Record{}, err
	}
	return refs.Record{ID: m.ID, Name: m.Name}, nil
}
