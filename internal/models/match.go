package models

import (
	"time"

	"github.com/google/uuid"
)

const MatchStatusPending = "pending"

// LeadContractorMatch joins a lead to one contractor it was offered to.
type LeadContractorMatch struct {
	ID           uuid.UUID `json:"id"`
	LeadID       string    `json:"lead_id"`
	ContractorID uuid.UUID `json:"contractor_id"`
	Price        int       `json:"price"`
	Status       string    `json:"status"`
	MatchedAt    time.Time `json:"matched_at"`
}

func (m *LeadContractorMatch) Prepare() {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = MatchStatusPending
	}
}

// MatchSummary is the read-side view returned with a lead.
type MatchSummary struct {
	ContractorName string    `json:"contractorName"`
	Status         string    `json:"status"`
	MatchedAt      time.Time `json:"matchedAt"`
}
