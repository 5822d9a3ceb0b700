package ports

import (
	"context"
	"time"

	"github.com/hunter122526/quantum2017/internal/core/domain"
)

// AuditRepository appends immutable audit rows.
type AuditRepository interface {
	Append(ctx context.Context, entry *domain.AuditEntry) error
}

// AuditRecorder accepts audit entries for best-effort recording. Record never
// blocks the caller on persistence and never reports failure upstream; a
// dropped or failed write is logged and counted, not surfaced.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}

// TokenRevoker tracks tokens invalidated before their natural expiry.
type TokenRevoker interface {
	// Revoke denylists the token until the given expiry instant.
	Revoke(ctx context.Context, tokenStr string, expiresAt time.Time) error
	// IsRevoked reports whether the token has been denylisted.
	IsRevoked(ctx context.Context, tokenStr string) (bool, error)
}
