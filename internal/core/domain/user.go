package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Subscription plans, in ascending order of entitlement.
const (
	PlanStarter = "Starter"
	PlanPro     = "Pro"
	PlanExpert  = "Expert"
)

// Account lifecycle states.
const (
	StatusActive    = "Active"
	StatusCancelled = "Cancelled"
)

// User models an authenticated actor in the system.
type User struct {
	ID           string        `json:"id"`
	Email        string        `json:"email"`
	Name         string        `json:"name"`
	PasswordHash string        `json:"-"`
	Role         string        `json:"role"`
	Plan         string        `json:"plan"`
	Status       string        `json:"status"`
	LastLoginAt  *time.Time    `json:"last_login_at,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	Subscription *Subscription `json:"subscription,omitempty"`
}

// ValidRole reports whether r is a recognised role.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser
}

// ValidPlan reports whether p is a recognised plan name.
func ValidPlan(p string) bool {
	return p == PlanStarter || p == PlanPro || p == PlanExpert
}

// ValidStatus reports whether s is a recognised account status.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusCancelled
}

// UserPatch is an explicit partial update for a user. A nil field means
// "leave unchanged"; only non-nil fields are applied and audited. An empty
// patch is legal and produces no column changes.
type UserPatch struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Plan   *string `json:"plan,omitempty"`
	Status *string `json:"status,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Plan == nil && p.Status == nil
}

// Changes returns the applied delta as a map suitable for audit payloads.
func (p UserPatch) Changes() map[string]any {
	changes := make(map[string]any)
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	if p.Email != nil {
		changes["email"] = *p.Email
	}
	if p.Plan != nil {
		changes["plan"] = *p.Plan
	}
	if p.Status != nil {
		changes["status"] = *p.Status
	}
	return changes
}
