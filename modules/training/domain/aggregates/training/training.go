package training

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

// Mentor is a mentor as embedded in a training program.
type Mentor struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name"`
	PhotoURL *string `json:"photo_url,omitempty"`
}

// Training is a training program. DiscountType is empty when the API sent
// null.
type Training struct {
	crud.Entity
	Title          string       `json:"title"`
	Description    *string      `json:"description"`
	PhotoURL       *string      `json:"photo_url"`
	BasePrice      money.Amount `json:"base_price"`
	DiscountType   DiscountType `json:"discount_type"`
	DiscountValue  money.Amount `json:"discount_value"`
	EffectivePrice money.Amount `json:"effective_price"`
	Benefits       []string     `json:"benefits"`
	Mentors        []Mentor     `json:"mentors"`
}

// String names the program with its effective price in rupees.
func (t Training) String() string {
	return t.Title + ", " + money.Format(t.EffectivePrice, "")
}

// MentorNames lists the names of the embedded mentors.
func (t Training) MentorNames() []string {
	out := make([]string, 0, len(t.Mentors))
	for _, m := range t.Mentors {
		out = append(out, m.Name)
	}
	return out
}

type Repository interface {
	GetAll(ctx context.Context, pageSize int) ([]Training, error)
	GetByID(ctx context.Context, id string) (Training, error)
	Create(ctx context.Context, payload any) (Training, error)
	Update(ctx context.Context, id string, payload any) (Training, error)
	Delete(ctx context.Context, id string) error
}
