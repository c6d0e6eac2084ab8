package mentor

import "strings"

type FormDTO struct {
	Name     string `json:"name" form:"name" validate:"notblank" msg:"Name is required"`
	PhotoURL string `json:"photo_url" form:"photo_url" validate:"omitempty,url" msg:"Invalid URL"`
	// PhotoFile is a local image uploaded on submit. It replaces PhotoURL.
	PhotoFile string `json:"photo_file,omitempty" form:"photo_file"`
}

// Payload is the body of create and update requests. Updates are PUT, so it
// always carries every field.
type Payload struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
}

func FromMentor(m Mentor) FormDTO {
	return FormDTO{Name: m.Name, PhotoURL: m.PhotoURL}
}

func (d FormDTO) ToPayload(photoURL string) Payload {
	return Payload{
		Name:     strings.TrimSpace(d.Name),
		PhotoURL: strings.TrimSpace(photoURL),
	}
}
