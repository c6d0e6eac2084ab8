package project

import (
	"strings"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/crud"
)

type FeedbackDTO struct {
	ID                  string `json:"id,omitempty" form:"id"`
	ClientName          string `json:"client_name" form:"client_name" validate:"notblank" msg:"Client name is required"`
	FeedbackDescription string `json:"feedback_description" form:"feedback_description" validate:"notblank" msg:"Description is required"`
	Rating              int    `json:"rating" form:"rating" validate:"min=1,max=5" msg:"Rating must be between 1 and 5"`
}

// FormDTO is the draft behind the project modal. TechIDs holds canonical
// ids or names of techs that do not exist yet.
type FormDTO struct {
	Title       string        `json:"title" form:"title" validate:"notblank" msg:"Title is required"`
	Description string        `json:"description" form:"description" validate:"notblank" msg:"Description is required"`
	PhotoURL    string        `json:"photo_url" form:"photo_url"`
	PhotoFile   string        `json:"photo_file,omitempty" form:"photo_file"`
	ProjectLink string        `json:"project_link" form:"project_link"`
	TechIDs     []string      `json:"tech_ids" form:"tech_ids" validate:"min=1" msg:"Select at least one tech"`
	Feedbacks   []FeedbackDTO `json:"feedbacks" form:"feedbacks" validate:"dive"`
}

type Payload struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	PhotoURL    string   `json:"photo_url"`
	TechIDs     []string `json:"tech_ids"`
	ProjectLink string   `json:"project_link"`
}

func NewFormDTO() FormDTO {
	return FormDTO{TechIDs: []string{}, Feedbacks: []FeedbackDTO{}}
}

// FromProject seeds an edit draft. techIDs are the project's techs mapped
// back to ids where known.
func FromProject(p Project, techIDs []string) FormDTO {
	dto := FormDTO{
		Title:       p.Title,
		Description: p.Description,
		PhotoURL:    crud.Value(p.PhotoURL),
		ProjectLink: crud.Value(p.ProjectLink),
		TechIDs:     append([]string{}, techIDs...),
		Feedbacks:   make([]FeedbackDTO, 0, len(p.Feedbacks)),
	}
	for _, f := range p.Feedbacks {
		dto.Feedbacks = append(dto.Feedbacks, FeedbackDTO{
			ID:                  f.ID,
			ClientName:          f.ClientName,
			FeedbackDescription: f.FeedbackDescription,
			Rating:              f.Rating,
		})
	}
	return dto
}

// AddTech appends label unless it is blank or already selected.
func (d *FormDTO) AddTech(label string) bool {
	label = strings.TrimSpace(label)
	if label == "" {
		return false
	}
	for _, existing := range d.TechIDs {
		if existing == label {
			return false
		}
	}
	d.TechIDs = append(d.TechIDs, label)
	return true
}

func (d *FormDTO) RemoveTech(label string) {
	out := d.TechIDs[:0:0]
	for _, existing := range d.TechIDs {
		if existing != label {
			out = append(out, existing)
		}
	}
	d.TechIDs = out
}

func (d FormDTO) ToPayload(photoURL string, techIDs []string) Payload {
	return Payload{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		PhotoURL:    photoURL,
		TechIDs:     techIDs,
		ProjectLink: strings.TrimSpace(d.ProjectLink),
	}
}

// FeedbackChanges compares the saved feedbacks with the draft's. Saved
// feedbacks whose id is gone from the draft are removed; draft entries
// without an id are added. Edited entries that kept their id are left alone.
func FeedbackChanges(saved []Feedback, draft []FeedbackDTO) (removed []string, added []Feedback) {
	kept := make(map[string]bool, len(draft))
	for _, f := range draft {
		if f.ID != "" {
			kept[f.ID] = true
		}
	}
	for _, f := range saved {
		if f.ID != "" && !kept[f.ID] {
			removed = append(removed, f.ID)
		}
	}
	for _, f := range draft {
		if f.ID == "" {
			added = append(added, Feedback{
				ClientName:          strings.TrimSpace(f.ClientName),
				FeedbackDescription: strings.TrimSpace(f.FeedbackDescription),
				Rating:              f.Rating,
			})
		}
	}
	return removed, added
}
