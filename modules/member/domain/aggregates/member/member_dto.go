package member

import (
	"strings"
	"time"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/crud"
)

// FormDTO is the draft edited in the member modal.
type FormDTO struct {
	Name     string `json:"name" form:"name" validate:"min=2" msg:"Name is required"`
	Position string `json:"position" form:"position" validate:"min=2" msg:"Position is required"`
	PhotoURL string `json:"photo_url" form:"photo_url"`
	// PhotoFile is a local image uploaded on submit. It replaces PhotoURL.
	PhotoFile     string      `json:"photo_file,omitempty" form:"photo_file"`
	StartDate     string      `json:"start_date" form:"start_date" validate:"notblank" msg:"Start date is required"`
	EndDate       string      `json:"end_date" form:"end_date"`
	ContactEmail  string      `json:"contact_email" form:"contact_email" validate:"email" msg:"Invalid contact email"`
	PersonalEmail string      `json:"personal_email" form:"personal_email" validate:"omitempty,email" msg:"Invalid email"`
	ContactNumber string      `json:"contact_number" form:"contact_number"`
	IsVisible     bool        `json:"is_visible" form:"is_visible"`
	SocialMedia   SocialMedia `json:"social_media" form:"social_media"`
}

// Payload is the body of create and update requests.
type Payload struct {
	Name          string      `json:"name"`
	Position      string      `json:"position"`
	PhotoURL      string      `json:"photo_url"`
	Role          Role        `json:"role"`
	StartDate     string      `json:"start_date"`
	EndDate       *string     `json:"end_date"`
	SocialMedia   SocialMedia `json:"social_media"`
	ContactEmail  string      `json:"contact_email"`
	PersonalEmail *string     `json:"personal_email"`
	ContactNumber *string     `json:"contact_number"`
	IsVisible     bool        `json:"is_visible"`
}

// NewFormDTO is the blank draft: starting today and visible.
func NewFormDTO(today time.Time) FormDTO {
	return FormDTO{
		StartDate: today.Format(time.DateOnly),
		IsVisible: true,
	}
}

func FromMember(m Member) FormDTO {
	return FormDTO{
		Name:          m.Name,
		Position:      m.Position,
		PhotoURL:      m.PhotoURL,
		StartDate:     m.StartDate,
		EndDate:       crud.Value(m.EndDate),
		ContactEmail:  m.ContactEmail,
		PersonalEmail: crud.Value(m.PersonalEmail),
		ContactNumber: crud.Value(m.ContactNumber),
		IsVisible:     m.IsVisible,
		SocialMedia:   m.SocialMedia,
	}
}

func (d *FormDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Position = strings.TrimSpace(d.Position)
	d.ContactEmail = strings.TrimSpace(d.ContactEmail)
	d.PersonalEmail = strings.TrimSpace(d.PersonalEmail)
}

// ToPayload fixes the role to the screen's and sends blank optional fields
// as null.
func (d FormDTO) ToPayload(role Role, photoURL string) Payload {
	d.Normalize()
	return Payload{
		Name:          d.Name,
		Position:      d.Position,
		PhotoURL:      photoURL,
		Role:          role,
		StartDate:     d.StartDate,
		EndDate:       crud.NullIfBlank(d.EndDate),
		SocialMedia:   d.SocialMedia,
		ContactEmail:  d.ContactEmail,
		PersonalEmail: crud.NullIfBlank(d.PersonalEmail),
		ContactNumber: crud.NullIfBlank(d.ContactNumber),
		IsVisible:     d.IsVisible,
	}
}
