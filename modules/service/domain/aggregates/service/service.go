package service

import (
	"context"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/crud"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/money"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountAmount     DiscountType = "AMOUNT"
)

func (d DiscountType) Valid() bool {
	return d == DiscountPercentage || d == DiscountAmount
}

// Service is an offer on the company site. Techs and Offerings hold names;
// prices arrive as numbers or numeric strings.
type Service struct {
	crud.Entity
	Title          string       `json:"title"`
	Description    *string      `json:"description"`
	PhotoURL       *string      `json:"photo_url"`
	Techs          []string     `json:"techs"`
	Offerings      []string     `json:"offerings"`
	BasePrice      money.Amount `json:"base_price"`
	EffectivePrice money.Amount `json:"effective_price"`
	DiscountType   DiscountType `json:"discount_type"`
	DiscountValue  money.Amount `json:"discount_value"`
}

// String names the service with its effective price in rupees.
func (s Service) String() string {
	return s.Title + ", " + money.Format(s.EffectivePrice, "")
}

type Repository interface {
	GetAll(ctx context.Context) ([]Service, error)
	GetByID(ctx context.Context, id string) (Service, error)
	Create(ctx context.Context, payload any) (Service, error)
	Update(ctx context.Context, id string, partial any) (Service, error)
	Delete(ctx context.Context, id string) error
}
