package services

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/service/domain/aggregates/service"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/refs"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/upload"
)

const (
	TechsPath     = "/admin/service-techs"
	OfferingsPath = "/admin/service-offerings"
)

// Catalogs are the lookup tables of one service form session.
type Catalogs struct {
	Techs     *refs.Catalog
	Offerings *refs.Catalog
}

// Load refreshes both catalogs concurrently.
func (c Catalogs) Load(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.Techs.Load(gctx) })
	g.Go(func() error { return c.Offerings.Load(gctx) })
	return g.Wait()
}

type ServiceService struct {
	repo      service.Repository
	techs     refs.Source
	offerings refs.Source
	storage   upload.Storage
}

func NewServiceService(repo service.Repository, techs, offerings refs.Source, storage upload.Storage) *ServiceService {
	return &ServiceService{
		repo:      repo,
		techs:     techs,
		offerings: offerings,
		storage:   storage,
	}
}

func (s *ServiceService) GetAll(ctx context.Context) ([]service.Service, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceService) GetByID(ctx context.Context, id string) (service.Service, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ServiceService) Create(ctx context.Context, payload any) (service.Service, error) {
	return s.repo.Create(ctx, payload)
}

func (s *ServiceService) Update(ctx context.Context, id string, partial any) (service.Service, error) {
	return s.repo.Update(ctx, id, partial)
}

func (s *ServiceService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *ServiceService) Catalogs() Catalogs {
	return Catalogs{
		Techs:     refs.NewCatalog(s.techs),
		Offerings: refs.NewCatalog(s.offerings),
	}
}

// Payload resolves techs and offerings concurrently, then uploads the photo
// if a new one was picked. Either resolution failing fails the whole
// payload.
func (s *ServiceService) Payload(ctx context.Context, cats Catalogs, dto service.FormDTO) (service.Payload, error) {
	var techIDs, offeringIDs []string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ids, err := cats.Techs.Resolve(gctx, refs.ParseLabels(dto.TechIDs))
		techIDs = ids
		return err
	})
	g.Go(func() error {
		ids, err := cats.Offerings.Resolve(gctx, refs.ParseLabels(dto.OfferingIDs))
		offeringIDs = ids
		return err
	})
	if err := g.Wait(); err != nil {
		return service.Payload{}, err
	}

	photoURL := strings.TrimSpace(dto.PhotoURL)
	if path := strings.TrimSpace(dto.PhotoFile); path != "" {
		url, err := upload.File(ctx, s.storage, path)
		if err != nil {
			return service.Payload{}, err
		}
		photoURL = url
	}
	return dto.ToPayload(photoURL, techIDs, offeringIDs), nil
}
