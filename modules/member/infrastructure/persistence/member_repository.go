package persistence

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/member/domain/aggregates/member"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/apiclient"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/crud"
)

const membersPath = "/admin/members"

var ErrMemberNotFound = errors.New("member not found")

type MemberRepository struct {
	resource *crud.Resource[member.Member]
}

func NewMemberRepository(client *apiclient.Client) member.Repository {
	return &MemberRepository{
		resource: &crud.Resource[member.Member]{
			Client:    client,
			ListPath:  membersPath,
			Normalize: normalizeMember,
		},
	}
}

func normalizeMember(m *member.Member) {
	if m.Role == "" {
		m.Role = member.RoleIntern
	}
}

func (r *MemberRepository) GetAll(ctx context.Context) ([]member.Member, error) {
	return r.resource.GetAll(ctx, nil)
}

// GetByRole reads the backend's per-role listing.
func (r *MemberRepository) GetByRole(ctx context.Context, role member.Role) ([]member.Member, error) {
	if !role.Valid() {
		return nil, errors.Errorf("unknown member role %q", role)
	}
	return r.resource.List(ctx, membersPath+"/"+role.Path(), nil)
}

func (r *MemberRepository) GetByID(ctx context.Context, id string) (member.Member, error) {
	m, err := r.resource.GetByID(ctx, id)
	if apiclient.StatusCode(err) == http.StatusNotFound {
		return m, errors.Wrap(ErrMemberNotFound, id)
	}
	return m, err
}

func (r *MemberRepository) Create(ctx context.Context, payload any) (member.Member, error) {
	return r.resource.Create(ctx, payload)
}

func (r *MemberRepository) Update(ctx context.Context, id string, partial any) (member.Member, error) {
	return r.resource.Update(ctx, id, partial)
}

func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	return r.resource.Delete(ctx, id)
}
