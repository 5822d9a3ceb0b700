package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hunter122526/quantum2017/internal/core/domain"
)

// AuditRepository appends rows to the immutable audit_log table. There is no
// update or delete path on purpose.
type AuditRepository struct {
	pool *pgxpool.Pool
}

func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

func (r *AuditRepository) Append(ctx context.Context, entry *domain.AuditEntry) error {
	var changes []byte
	if len(entry.Changes) > 0 {
		var err error
		if changes, err = json.Marshal(entry.Changes); err != nil {
			return fmt.Errorf("marshal audit changes: %w", err)
		}
	}

	query := `INSERT INTO audit_log (user_id, action, entity_type, entity_id, changes, ip_address)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.pool.Exec(ctx, query,
		entry.ActorID, entry.Action, entry.EntityType, entry.EntityID, changes, entry.IPAddress); err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}
