package models

import (
	"time"

	"github.com/google/uuid"
)

// PermitInfo describes a city's permit office. Stored as JSONB on the
// cities table and decoded at the repository boundary.
type PermitInfo struct {
	Description  string `json:"description"`
	PermitOffice string `json:"permit_office"`
	Website      string `json:"website"`
	Phone        string `json:"phone"`
}

type City struct {
	ID         uuid.UUID  `json:"id"`
	Slug       string     `json:"slug"`
	Name       string     `json:"name"`
	State      string     `json:"state"`
	Country    string     `json:"country"`
	PermitInfo PermitInfo `json:"permit_info"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (c *City) Prepare() {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Country == "" {
		c.Country = "US"
	}
}
