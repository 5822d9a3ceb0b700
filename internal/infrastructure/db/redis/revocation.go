package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore denylists session tokens invalidated before their natural
// expiry (logout). Keys carry a TTL equal to the token's remaining lifetime,
// so the denylist never outgrows the set of live tokens.
// Key format: revoked:<sha256(token)>
type RevocationStore struct {
	client *redis.Client
}

// NewRevocationStore creates a RevocationStore wrapping the given client.
func NewRevocationStore(client *redis.Client) *RevocationStore {
	return &RevocationStore{client: client}
}

// Revoke denylists the token until expiresAt. Tokens already past expiry are
// a no-op; verification rejects them on its own.
func (s *RevocationStore) Revoke(ctx context.Context, tokenStr string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, s.key(tokenStr), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token has been denylisted.
func (s *RevocationStore) IsRevoked(ctx context.Context, tokenStr string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(tokenStr)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (s *RevocationStore) key(tokenStr string) string {
	sum := sha256.Sum256([]byte(tokenStr))
	return "revoked:" + hex.EncodeToString(sum[:])
}
