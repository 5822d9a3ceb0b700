package domain

import "time"

// Audit action tags recorded by the auth and admin surfaces.
const (
	AuditUserSignup  = "user_signup"
	AuditLogin       = "login"
	AuditLoginFailed = "login_failed"
	AuditLogout      = "logout"
	AuditUserUpdated = "user_updated"
	AuditUserDeleted = "user_deleted"
)

// AuditEntry is an append-only record of a security-relevant action.
// ActorID is nil for pre-authentication failures (e.g. a failed login).
// Entries are never mutated or deleted.
type AuditEntry struct {
	ID         int64          `json:"id"`
	ActorID    *string        `json:"user_id,omitempty"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Changes    map[string]any `json:"changes,omitempty"`
	IPAddress  string         `json:"ip_address"`
	CreatedAt  time.Time      `json:"created_at"`
}
