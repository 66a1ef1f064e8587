package models

import (
	"time"

	"github.com/google/uuid"
)

const LeadStatusNew = "new"

type Lead struct {
	ID                 string     `json:"id"`
	HomeownerName      string     `json:"homeowner_name"`
	Email              string     `json:"email"`
	Phone              *string    `json:"phone,omitempty"`
	ProjectType        string     `json:"project_type"`
	ProjectDescription string     `json:"project_description"`
	Budget             string     `json:"budget"`
	Timeline           string     `json:"timeline"`
	Status             string     `json:"status"`
	CityID             uuid.UUID  `json:"city_id"`
	ProjectID          *uuid.UUID `json:"project_id,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// Lead IDs are strings rather than uuid.UUID so the degraded intake path
// can hand out a time-based placeholder id when the store is unreachable.
func (l *Lead) Prepare() {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.Status == "" {
		l.Status = LeadStatusNew
	}
}
