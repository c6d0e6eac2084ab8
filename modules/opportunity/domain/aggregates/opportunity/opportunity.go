package opportunity

import (
	"context"
	"net/url"
	"strings"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/crud"
)

type Type string

const (
	TypeJob        Type = "JOB"
	TypeInternship Type = "INTERNSHIP"
)

// Path is the screen segment listing opportunities of the type.
func (t Type) Path() string {
	if t == TypeJob {
		return "jobs"
	}
	return "internships"
}

func (t Type) Valid() bool {
	return t == TypeJob || t == TypeInternship
}

type JobDetails struct {
	EmploymentType string `json:"employment_type"`
	SalaryRange    string `json:"salary_range"`
}

type InternshipDetails struct {
	DurationMonths int    `json:"duration_months"`
	Stipend        string `json:"stipend"`
}

// Opportunity is a job or internship opening. Only the details matching
// Type are meaningful.
type Opportunity struct {
	crud.Entity
	Title             string             `json:"title"`
	Description       *string            `json:"description"`
	Location          *string            `json:"location"`
	Requirements      []string           `json:"requirements"`
	Type              Type               `json:"type"`
	JobDetails        *JobDetails        `json:"job_details,omitempty"`
	InternshipDetails *InternshipDetails `json:"internship_details,omitempty"`
}

func (o Opportunity) String() string {
	if o.Location == nil || *o.Location == "" {
		return o.Title
	}
	return o.Title + ", " + *o.Location
}

type FindParams struct {
	Type     Type
	Location string
	Search   string
}

// Query encodes the non-empty params.
func (p FindParams) Query() url.Values {
	q := url.Values{}
	if p.Type != "" {
		q.Set("type", string(p.Type))
	}
	if s := strings.TrimSpace(p.Location); s != "" {
		q.Set("location", s)
	}
	if s := strings.TrimSpace(p.Search); s != "" {
		q.Set("search", s)
	}
	return q
}

type Repository interface {
	GetAll(ctx context.Context, params FindParams) ([]Opportunity, error)
	GetByID(ctx context.Context, id string) (Opportunity, error)
	Create(ctx context.Context, payload Payload) (Opportunity, error)
	Update(ctx context.Context, id string, partial any) (Opportunity, error)
	Delete(ctx context.Context, id string) error
}
