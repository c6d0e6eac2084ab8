package project

import (
	"context"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/crud"
)

// Feedback is a client testimonial attached to a project.
type Feedback struct {
	ID                  string  `json:"id,omitempty"`
	ClientName          string  `json:"client_name"`
	ClientPhoto         *string `json:"client_photo,omitempty"`
	FeedbackDescription string  `json:"feedback_description"`
	Rating              int     `json:"rating"`
}

// Project is a portfolio entry. Techs holds tech names, not ids.
type Project struct {
	crud.Entity
	Title       string     `json:"title"`
	Description string     `json:"description"`
	PhotoURL    *string    `json:"photo_url"`
	Techs       []string   `json:"techs"`
	ProjectLink *string    `json:"project_link"`
	Feedbacks   []Feedback `json:"feedbacks"`
}

func (p Project) String() string { return p.Title }

type Repository interface {
	GetAll(ctx context.Context) ([]Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	Create(ctx context.Context, payload Payload) (Project, error)
	Update(ctx context.Context, id string, partial any) (Project, error)
	Delete(ctx context.Context, id string) error
	AddFeedback(ctx context.Context, projectID string, feedback Feedback) error
	DeleteFeedback(ctx context.Context, feedbackID string) error
}
