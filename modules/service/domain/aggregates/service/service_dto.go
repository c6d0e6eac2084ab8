package service

import (
	"strings"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/crud"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/money"
)

// FormDTO is the draft behind the service modal. TechIDs and OfferingIDs
// hold canonical ids or names still to be created.
type FormDTO struct {
	Title         string       `json:"title" form:"title" validate:"notblank" msg:"Title is required"`
	Description   string       `json:"description" form:"description" validate:"notblank" msg:"Description is required"`
	PhotoURL      string       `json:"photo_url" form:"photo_url"`
	PhotoFile     string       `json:"photo_file,omitempty" form:"photo_file"`
	TechIDs       []string     `json:"tech_ids" form:"tech_ids" validate:"min=1" msg:"Select at least one tech"`
	OfferingIDs   []string     `json:"offering_ids" form:"offering_ids" validate:"min=1" msg:"Select at least one offering"`
	BasePrice     float64      `json:"base_price" form:"base_price" validate:"gte=0" msg:"Price must be positive"`
	DiscountType  DiscountType `json:"discount_type" form:"discount_type" validate:"oneof=PERCENTAGE AMOUNT" msg:"Choose a discount type"`
	DiscountValue float64      `json:"discount_value" form:"discount_value" validate:"gte=0" msg:"Discount must be positive"`
}

type Payload struct {
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	PhotoURL      string       `json:"photo_url,omitempty"`
	TechIDs       []string     `json:"tech_ids"`
	OfferingIDs   []string     `json:"offering_ids"`
	BasePrice     money.Amount `json:"base_price"`
	DiscountType  DiscountType `json:"discount_type"`
	DiscountValue money.Amount `json:"discount_value"`
}

func NewFormDTO() FormDTO {
	return FormDTO{
		TechIDs:      []string{},
		OfferingIDs:  []string{},
		DiscountType: DiscountPercentage,
	}
}

// FromService seeds an edit draft from s and the ids its tech and offering
// names map to.
func FromService(s Service, techIDs, offeringIDs []string) FormDTO {
	dt := s.DiscountType
	if !dt.Valid() {
		dt = DiscountPercentage
	}
	return FormDTO{
		Title:         s.Title,
		Description:   crud.Value(s.Description),
		PhotoURL:      crud.Value(s.PhotoURL),
		TechIDs:       append([]string{}, techIDs...),
		OfferingIDs:   append([]string{}, offeringIDs...),
		BasePrice:     s.BasePrice.Float64(),
		DiscountType:  dt,
		DiscountValue: s.DiscountValue.Float64(),
	}
}

// Toggle selects label in ids, or deselects it when already selected.
func Toggle(ids []string, label string) []string {
	label = strings.TrimSpace(label)
	if label == "" {
		return ids
	}
	out := make([]string, 0, len(ids)+1)
	found := false
	for _, id := range ids {
		if id == label {
			found = true
			continue
		}
		out = append(out, id)
	}
	if !found {
		out = append(out, label)
	}
	return out
}

// EffectivePrice previews the price the API will compute.
func (d FormDTO) EffectivePrice() money.Amount {
	return money.Discounted(money.Amount(d.BasePrice), d.DiscountType == DiscountPercentage, money.Amount(d.DiscountValue))
}

func (d FormDTO) ToPayload(photoURL string, techIDs, offeringIDs []string) Payload {
	return Payload{
		Title:         strings.TrimSpace(d.Title),
		Description:   strings.TrimSpace(d.Description),
		PhotoURL:      photoURL,
		TechIDs:       techIDs,
		OfferingIDs:   offeringIDs,
		BasePrice:     money.Amount(d.BasePrice),
		DiscountType:  d.DiscountType,
		DiscountValue: money.Amount(d.DiscountValue),
	}
}
