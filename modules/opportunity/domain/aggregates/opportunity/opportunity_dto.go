package opportunity

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/crud"
)

// FormDTO is the draft behind the opportunity modal. Duration and
// Compensation map onto the details of the chosen type.
type FormDTO struct {
	Title        string   `json:"title" form:"title" validate:"min=3" msg:"Title must be at least 3 characters"`
	Description  string   `json:"description" form:"description" validate:"required" msg:"Description is required"`
	Duration     string   `json:"duration" form:"duration"`
	Compensation string   `json:"compensation" form:"compensation" validate:"required" msg:"Compensation is required"`
	Location     string   `json:"location" form:"location" validate:"required" msg:"Location is required"`
	Requirements []string `json:"requirements" form:"requirements"`
	Type         Type     `json:"type" form:"type" validate:"oneof=JOB INTERNSHIP" msg:"Choose a job or an internship"`
}

type Payload struct {
	Title             string             `json:"title"`
	Description       *string            `json:"description"`
	Location          *string            `json:"location"`
	Requirements      []string           `json:"requirements"`
	Type              Type               `json:"type"`
	JobDetails        *JobDetails        `json:"job_details,omitempty"`
	InternshipDetails *InternshipDetails `json:"internship_details,omitempty"`
}

func NewFormDTO(t Type) FormDTO {
	return FormDTO{Type: t, Requirements: []string{}}
}

func FromOpportunity(o Opportunity) FormDTO {
	dto := FormDTO{
		Title:        o.Title,
		Description:  crud.Value(o.Description),
		Location:     crud.Value(o.Location),
		Requirements: append([]string{}, o.Requirements...),
		Type:         o.Type,
	}
	switch {
	case o.Type == TypeJob && o.JobDetails != nil:
		dto.Duration = o.JobDetails.EmploymentType
		dto.Compensation = o.JobDetails.SalaryRange
	case o.Type == TypeInternship && o.InternshipDetails != nil:
		dto.Duration = strconv.Itoa(o.InternshipDetails.DurationMonths)
		dto.Compensation = o.InternshipDetails.Stipend
	}
	return dto
}

// AddRequirement appends r unless it is blank or already listed.
func (d *FormDTO) AddRequirement(r string) bool {
	r = strings.TrimSpace(r)
	if r == "" {
		return false
	}
	for _, existing := range d.Requirements {
		if existing == r {
			return false
		}
	}
	d.Requirements = append(d.Requirements, r)
	return true
}

func (d *FormDTO) RemoveRequirement(i int) {
	if i < 0 || i >= len(d.Requirements) {
		return
	}
	d.Requirements = append(d.Requirements[:i:i], d.Requirements[i+1:]...)
}

// ToPayload fills the details of the draft's type, defaulting what was left
// empty.
func (d FormDTO) ToPayload() Payload {
	p := Payload{
		Title:        strings.TrimSpace(d.Title),
		Description:  &d.Description,
		Location:     &d.Location,
		Requirements: d.Requirements,
		Type:         d.Type,
	}
	if p.Requirements == nil {
		p.Requirements = []string{}
	}
	switch d.Type {
	case TypeJob:
		p.JobDetails = &JobDetails{
			EmploymentType: orDefault(d.Duration, "Full-time"),
			SalaryRange:    orDefault(d.Compensation, "Negotiable"),
		}
	case TypeInternship:
		p.InternshipDetails = &InternshipDetails{
			DurationMonths: leadingInt(d.Duration),
			Stipend:        orDefault(d.Compensation, "N/A"),
		}
	}
	return p
}

// ForType drops the details that do not belong to the payload's type.
func (p Payload) ForType() Payload {
	switch p.Type {
	case TypeJob:
		p.InternshipDetails = nil
	case TypeInternship:
		p.JobDetails = nil
	}
	return p
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// leadingInt reads the integer prefix of s, so "6 months" is 6. Anything
// without one is 0.
func leadingInt(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || end == 0 && (s[end] == '-' || s[end] == '+')) {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
