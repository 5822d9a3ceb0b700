package domain

import "time"

// Subscription lifecycle states. A user may accumulate several rows over
// time; only the latest one is surfaced on the profile.
const (
	SubscriptionActive    = "Active"
	SubscriptionCancelled = "Cancelled"
	SubscriptionInactive  = "Inactive"
)

// Subscription belongs to exactly one user and tracks the billed plan.
type Subscription struct {
	ID          string     `json:"id"`
	UserID      string     `json:"-"`
	Plan        string     `json:"plan"`
	Status      string     `json:"status"`
	RenewalDate *time.Time `json:"renewal_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
