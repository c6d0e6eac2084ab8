package services

import (
	"context"
	"strings"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/member/domain/aggregates/member"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/upload"
)

type MemberService struct {
	repo    member.Repository
	storage upload.Storage
}

func NewMemberService(repo member.Repository, storage upload.Storage) *MemberService {
	return &MemberService{
		repo:    repo,
		storage: storage,
	}
}

func (s *MemberService) GetAll(ctx context.Context) ([]member.Member, error) {
	return s.repo.GetAll(ctx)
}

func (s *MemberService) GetTeams(ctx context.Context) ([]member.Member, error) {
	return s.repo.GetByRole(ctx, member.RoleTeam)
}

func (s *MemberService) GetInterns(ctx context.Context) ([]member.Member, error) {
	return s.repo.GetByRole(ctx, member.RoleIntern)
}

// GetAllByRole reads every member and keeps those with role. List screens use
// it so that a record whose role changed moves between them on reload.
func (s *MemberService) GetAllByRole(ctx context.Context, role member.Role) ([]member.Member, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]member.Member, 0, len(all))
	for _, m := range all {
		if m.Role == role {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *MemberService) GetByID(ctx context.Context, id string) (member.Member, error) {
	return s.repo.GetByID(ctx, id)
}

// Payload uploads the draft's photo, if any, and builds the request body.
// Without a new photo the draft's URL is kept.
func (s *MemberService) Payload(ctx context.Context, role member.Role, dto member.FormDTO) (member.Payload, error) {
	photoURL := strings.TrimSpace(dto.PhotoURL)
	if path := strings.TrimSpace(dto.PhotoFile); path != "" {
		url, err := upload.File(ctx, s.storage, path)
		if err != nil {
			return member.Payload{}, err
		}
		photoURL = url
	}
	return dto.ToPayload(role, photoURL), nil
}

func (s *MemberService) Create(ctx context.Context, payload any) (member.Member, error) {
	return s.repo.Create(ctx, payload)
}

func (s *MemberService) Update(ctx context.Context, id string, partial any) (member.Member, error) {
	return s.repo.Update(ctx, id, partial)
}

// SetVisibility sends only is_visible.
func (s *MemberService) SetVisibility(ctx context.Context, id string, visible bool) (member.Member, error) {
	return s.repo.Update(ctx, id, map[string]any{"is_visible": visible})
}

func (s *MemberService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Count is the number of members with role.
func (s *MemberService) Count(ctx context.Context, role member.Role) (int, error) {
	items, err := s.GetAllByRole(ctx, role)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}
