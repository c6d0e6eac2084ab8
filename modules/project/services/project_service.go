package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/project/domain/aggregates/project"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/refs"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/upload"
)

// TechsPath is the lookup table projects and services share.
const TechsPath = "/admin/service-techs"

type ProjectService struct {
	repo    project.Repository
	techs   refs.Source
	storage upload.Storage
}

func NewProjectService(repo project.Repository, techs refs.Source, storage upload.Storage) *ProjectService {
	return &ProjectService{
		repo:    repo,
		techs:   techs,
		storage: storage,
	}
}

func (s *ProjectService) GetAll(ctx context.Context) ([]project.Project, error) {
	return s.repo.GetAll(ctx)
}

func (s *ProjectService) GetByID(ctx context.Context, id string) (project.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProjectService) Create(ctx context.Context, payload any) (project.Project, error) {
	p, ok := payload.(project.Payload)
	if !ok {
		return project.Project{}, errors.Errorf("unexpected payload %T", payload)
	}
	return s.repo.Create(ctx, p)
}

func (s *ProjectService) Update(ctx context.Context, id string, partial any) (project.Project, error) {
	return s.repo.Update(ctx, id, partial)
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// TechCatalog returns an empty tech catalog for one form session.
func (s *ProjectService) TechCatalog() *refs.Catalog {
	return refs.NewCatalog(s.techs)
}

// Payload resolves the draft's techs against techs, minting the unknown
// ones, then uploads the photo if a new one was picked. Nothing is uploaded
// when resolution fails.
func (s *ProjectService) Payload(ctx context.Context, techs *refs.Catalog, dto project.FormDTO) (project.Payload, error) {
	ids, err := techs.Resolve(ctx, refs.ParseLabels(dto.TechIDs))
	if err != nil {
		return project.Payload{}, err
	}
	photoURL := strings.TrimSpace(dto.PhotoURL)
	if path := strings.TrimSpace(dto.PhotoFile); path != "" {
		url, err := upload.File(ctx, s.storage, path)
		if err != nil {
			return project.Payload{}, err
		}
		photoURL = url
	}
	return dto.ToPayload(photoURL, ids), nil
}

// SyncFeedbacks brings the feedbacks of projectID in line with the draft,
// issuing every delete and add concurrently. saved is nil for a new project.
func (s *ProjectService) SyncFeedbacks(ctx context.Context, projectID string, saved []project.Feedback, draft []project.FeedbackDTO) error {
	removed, added := project.FeedbackChanges(saved, draft)
	g, gctx := errgroup.WithContext(ctx)
	for _, id := range removed {
		g.Go(func() error { return s.repo.DeleteFeedback(gctx, id) })
	}
	for _, f := range added {
		g.Go(func() error { return s.repo.AddFeedback(gctx, projectID, f) })
	}
	return g.Wait()
}
