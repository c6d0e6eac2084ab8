package crud

import (
	"strings"
	"time"
)

// Entity is the identity and bookkeeping every record carries. Embed it.
type Entity struct {
	ID        string    `json:"id"`
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}

func (e Entity) GetID() string { return e.ID }

func (e Entity) GetCreatedAt() time.Time { return e.CreatedAt.Time }

// NullIfBlank maps a blank form value to JSON null.
func NullIfBlank(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Value dereferences an optional field, nil reading as "".
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
