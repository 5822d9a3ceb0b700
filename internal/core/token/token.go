// Package token issues and verifies the signed session tokens used across
// the API. Tokens are stateless HS256 JWTs; nothing is persisted server-side
// at issuance time (revocation is a separate concern layered on top by the
// auth middleware).
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hunter122526/quantum2017/internal/core/domain"
)

// DefaultTTL is the lifetime of the primary session token.
const DefaultTTL = 7 * 24 * time.Hour

// AccessTTL is the lifetime of the short-lived half of a token pair.
const AccessTTL = time.Hour

// ErrInvalidToken covers every verification failure: malformed input, wrong
// signature, wrong algorithm, or expiry. Callers treat it uniformly as
// "unauthenticated".
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the identity assertion embedded in every session token.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Pair bundles a short-lived access token with a long-lived refresh token.
type Pair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Service signs and verifies session tokens with a process-wide secret.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a Service. A non-positive ttl falls back to DefaultTTL.
func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue produces a compact signed token for the user, expiring after the
// service TTL.
func (s *Service) Issue(user *domain.User) (string, error) {
	return s.issue(user, s.ttl)
}

// IssuePair produces a short-lived access token and a long-lived refresh
// token carrying identical claims.
func (s *Service) IssuePair(user *domain.User) (*Pair, error) {
	access, err := s.issue(user, AccessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.issue(user, s.ttl)
	if err != nil {
		return nil, err
	}
	return &Pair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *Service) issue(user *domain.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token string. Any failure is reported as
// ErrInvalidToken; the concrete cause is irrelevant to callers.
func (s *Service) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
