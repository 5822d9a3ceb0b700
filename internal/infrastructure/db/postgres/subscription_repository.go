package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hunter122526/quantum2017/internal/core/domain"
)

// SubscriptionRepository reads billing state for user profiles.
type SubscriptionRepository struct {
	pool *pgxpool.Pool
}

func NewSubscriptionRepository(pool *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{pool: pool}
}

// Latest returns the newest subscription row for the user, or (nil, nil)
// when the user has never subscribed.
func (r *SubscriptionRepository) Latest(ctx context.Context, userID string) (*domain.Subscription, error) {
	query := `SELECT id, user_id, plan, status, renewal_date, created_at, updated_at
	          FROM subscriptions
	          WHERE user_id = $1
	          ORDER BY created_at DESC
	          LIMIT 1`

	var s domain.Subscription
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&s.ID, &s.UserID, &s.Plan, &s.Status, &s.RenewalDate, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find latest subscription: %w", err)
	}
	return &s, nil
}
