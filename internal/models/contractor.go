package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TierFree    = "free"
	TierPremium = "premium"
)

type Contractor struct {
	ID               uuid.UUID `json:"id"`
	CityID           uuid.UUID `json:"city_id"`
	BusinessName     string    `json:"business_name"`
	ContactEmail     string    `json:"contact_email"`
	ContactPhone     string    `json:"contact_phone"`
	LicenseNumber    string    `json:"license_number"`
	Specialties      []string  `json:"specialties"` // project slugs
	IsVerified       bool      `json:"is_verified"`
	SubscriptionTier string    `json:"subscription_tier"` // 'free' or 'premium'
	CreatedAt        time.Time `json:"created_at"`
}

func (c *Contractor) Prepare() {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.SubscriptionTier == "" {
		c.SubscriptionTier = TierFree
	}
}

// MatchPrice is what a contractor pays for a lead, by tier.
func (c *Contractor) MatchPrice() int {
	if c.SubscriptionTier == TierPremium {
		return 150
	}
	return 100
}
