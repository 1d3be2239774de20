package domain

import "time"

type SubscriptionType string

const (
	SubscriptionMonthly SubscriptionType = "MONTHLY"
	SubscriptionAnnual  SubscriptionType = "ANNUAL"
)

// Subscription is a contractor's recurring entitlement to fee-free unlocks.
// One row per user; renewing replaces the dates.
type Subscription struct {
	ID        string           `json:"id"`
	UserID    int64            `json:"user_id"`
	Type      SubscriptionType `json:"type"`
	StartDate time.Time        `json:"start_date"`
	EndDate   time.Time        `json:"end_date"`
	Active    bool             `json:"active"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// IsActive reports whether the subscription currently waives unlock fees.
func (s *Subscription) IsActive() bool {
	return s.Active && s.EndDate.After(time.Now())
}
