package member

import "context"

type Repository interface {
	GetAll(ctx context.Context) ([]Member, error)
	GetByRole(ctx context.Context, role Role) ([]Member, error)
	GetByID(ctx context.Context, id string) (Member, error)
	Create(ctx context.Context, payload any) (Member, error)
	Update(ctx context.Context, id string, partial any) (Member, error)
	Delete(ctx context.Context, id string) error
}
