package models

import (
	"time"

	"github.com/google/uuid"
)

// TypicalPermits summarizes what a project type usually requires,
// independent of any particular city.
type TypicalPermits struct {
	Permits       []string `json:"permits"`
	Description   string   `json:"description"`
	EstimatedCost string   `json:"estimated_cost"`
	Timeline      string   `json:"timeline"`
}

type Project struct {
	ID             uuid.UUID      `json:"id"`
	Slug           string         `json:"slug"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	TypicalPermits TypicalPermits `json:"typical_permits_required"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (p *Project) Prepare() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Description == "" {
		p.Description = p.TypicalPermits.Description
	}
}
