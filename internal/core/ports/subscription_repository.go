package ports

import (
	"context"

	"github.com/hunter122526/quantum2017/internal/core/domain"
)

// SubscriptionRepository surfaces billing state for user profiles.
type SubscriptionRepository interface {
	// Latest returns the most recently created subscription for the user,
	// or (nil, nil) when the user has none.
	Latest(ctx context.Context, userID string) (*domain.Subscription, error)
}
