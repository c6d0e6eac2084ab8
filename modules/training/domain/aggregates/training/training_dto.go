package training

import (
	"strings"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/crud"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/money"
)

// FormDTO is the draft behind the training form. MentorIDs holds mentor
// ids or the names of mentors to create.
type FormDTO struct {
	Title         string       `json:"title" form:"title" validate:"min=3" msg:"Title must be at least 3 characters"`
	Description   string       `json:"description" form:"description"`
	PhotoURL      string       `json:"photo_url" form:"photo_url"`
	PhotoFile     string       `json:"photo_file,omitempty" form:"photo_file"`
	BasePrice     float64      `json:"base_price" form:"base_price" validate:"gte=0" msg:"Price cannot be negative"`
	DiscountValue float64      `json:"discount_value" form:"discount_value"`
	DiscountType  DiscountType `json:"discount_type" form:"discount_type" validate:"oneof=PERCENTAGE AMOUNT" msg:"Choose a discount type"`
	Benefits      []string     `json:"benefits" form:"benefits"`
	MentorIDs     []string     `json:"mentor_ids" form:"mentor_ids"`
}

// Payload is the body of both create and update (PUT).
type Payload struct {
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	PhotoURL      string       `json:"photo_url"`
	BasePrice     money.Amount `json:"base_price"`
	DiscountType  DiscountType `json:"discount_type"`
	DiscountValue money.Amount `json:"discount_value"`
	Benefits      []string     `json:"benefits"`
	MentorIDs     []string     `json:"mentor_ids"`
}

func NewFormDTO() FormDTO {
	return FormDTO{
		DiscountType: DiscountPercentage,
		Benefits:     []string{},
		MentorIDs:    []string{},
	}
}

// FromTraining seeds an edit draft with the given mentor ids.
func FromTraining(t Training, mentorIDs []string) FormDTO {
	dt := t.DiscountType
	if !dt.Valid() {
		dt = DiscountPercentage
	}
	return FormDTO{
		Title:         t.Title,
		Description:   crud.Value(t.Description),
		PhotoURL:      crud.Value(t.PhotoURL),
		BasePrice:     t.BasePrice.Float64(),
		DiscountValue: t.DiscountValue.Float64(),
		DiscountType:  dt,
		Benefits:      append([]string{}, t.Benefits...),
		MentorIDs:     append([]string{}, mentorIDs...),
	}
}

// ToggleMentor selects or deselects a mentor id or name.
func (d *FormDTO) ToggleMentor(label string) {
	label = strings.TrimSpace(label)
	if label == "" {
		return
	}
	for i, existing := range d.MentorIDs {
		if existing == label {
			d.MentorIDs = append(d.MentorIDs[:i:i], d.MentorIDs[i+1:]...)
			return
		}
	}
	d.MentorIDs = append(d.MentorIDs, label)
}

// CleanBenefits drops blank benefits and trims the rest.
func CleanBenefits(benefits []string) []string {
	out := make([]string, 0, len(benefits))
	for _, b := range benefits {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

func (d FormDTO) ToPayload(photoURL string, mentorIDs []string) Payload {
	if mentorIDs == nil {
		mentorIDs = []string{}
	}
	return Payload{
		Title:         strings.TrimSpace(d.Title),
		Description:   strings.TrimSpace(d.Description),
		PhotoURL:      photoURL,
		BasePrice:     money.Amount(d.BasePrice),
		DiscountType:  d.DiscountType,
		DiscountValue: money.Amount(d.DiscountValue),
		Benefits:      CleanBenefits(d.Benefits),
		MentorIDs:     mentorIDs,
	}
}
