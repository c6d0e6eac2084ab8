package mentor

import (
	"context"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/crud"
)

type Mentor struct {
	crud.Entity
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
}

func (m Mentor) String() string { return m.Name }

type Repository interface {
	GetAll(ctx context.Context) ([]Mentor, error)
	GetByID(ctx context.Context, id string) (Mentor, error)
	Create(ctx context.Context, payload any) (Mentor, error)
	Update(ctx context.Context, id string, payload any) (Mentor, error)
	Delete(ctx context.Context, id string) error
}
