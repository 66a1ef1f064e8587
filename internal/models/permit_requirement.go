package models

import (
	"time"

	"github.com/google/uuid"
)

// FeeBreakdown itemizes the permit fees a city charges for a project.
type FeeBreakdown struct {
	PermitFee    string `json:"permit_fee"`
	PlanCheckFee string `json:"plan_check_fee"`
	Total        string `json:"total"`
}

// Requirements is the full city+project permit picture, validated at the
// store boundary instead of flowing through as an opaque blob.
type Requirements struct {
	Permits     []string     `json:"permits"`
	Documents   []string     `json:"documents"`
	Fees        FeeBreakdown `json:"fees"`
	Timeline    string       `json:"timeline"`
	Inspections []string     `json:"inspections"`
	Codes       []string     `json:"codes"`
}

// PermitRequirement caches requirements for one (city, project) pair.
// Populated by the offline seeder, never by request-time logic.
type PermitRequirement struct {
	ID                uuid.UUID    `json:"id"`
	CityID            uuid.UUID    `json:"city_id"`
	ProjectID         uuid.UUID    `json:"project_id"`
	Requirements      Requirements `json:"requirements"`
	EstimatedCost     string       `json:"estimated_cost"`
	EstimatedTimeline string       `json:"estimated_timeline"`
	CreatedAt         time.Time    `json:"created_at"`
}

func (p *PermitRequirement) Prepare() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
}
