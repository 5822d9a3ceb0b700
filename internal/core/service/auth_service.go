package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hunter122526/quantum2017/internal/core/domain"
	"github.com/hunter122526/quantum2017/internal/core/password"
	"github.com/hunter122526/quantum2017/internal/core/ports"
	"github.com/hunter122526/quantum2017/internal/core/token"
)

// AuthService implements signup, login, logout and token verification.
type AuthService struct {
	users   ports.UserRepository
	subs    ports.SubscriptionRepository
	tokens  *token.Service
	revoker ports.TokenRevoker
	audit   ports.AuditRecorder
	logger  zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	subs ports.SubscriptionRepository,
	tokens *token.Service,
	revoker ports.TokenRevoker,
	audit ports.AuditRecorder,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:   users,
		subs:    subs,
		tokens:  tokens,
		revoker: revoker,
		audit:   audit,
		logger:  logger,
	}
}

// Signup creates a new account with role "user" and the Starter plan, then
// issues a session token for it.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	email := strings.TrimSpace(input.Email)
	name := strings.TrimSpace(input.Name)
	if email == "" || input.Password == "" || name == "" {
		return nil, domain.ErrMissingFields
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Plan:         domain.PlanStarter,
		Status:       domain.StatusActive,
	})
	if err != nil {
		return nil, err
	}

	tok, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.audit.Record(domain.AuditEntry{
		ActorID:    &user.ID,
		Action:     domain.AuditUserSignup,
		EntityType: "user",
		EntityID:   user.ID,
		IPAddress:  input.IP,
	})

	return &ports.AuthResult{User: user, Token: tok}, nil
}

// Login checks credentials, rejects cancelled accounts, stamps the last
// login and issues a fresh session token.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (*ports.AuthResult, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, domain.ErrMissingFields
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, user.PasswordHash) {
		// Failed attempts are audited without an actor: the caller never
		// proved they are the account owner.
		s.audit.Record(domain.AuditEntry{
			Action:     domain.AuditLoginFailed,
			EntityType: "user",
			EntityID:   user.ID,
			IPAddress:  input.IP,
		})
		return nil, domain.ErrInvalidCredentials
	}

	if user.Status == domain.StatusCancelled {
		return nil, domain.ErrAccountCancelled
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("update last login: %w", err)
	}

	tok, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.audit.Record(domain.AuditEntry{
		ActorID:    &user.ID,
		Action:     domain.AuditLogin,
		EntityType: "user",
		EntityID:   user.ID,
		IPAddress:  input.IP,
	})

	return &ports.AuthResult{User: user, Token: tok}, nil
}

// Logout denylists the presented token until its natural expiry and audits
// the action. The client discards its copy regardless of the outcome.
func (s *AuthService) Logout(ctx context.Context, rawToken string, claims *token.Claims, ip string) error {
	if claims.ExpiresAt != nil {
		if err := s.revoker.Revoke(ctx, rawToken, claims.ExpiresAt.Time); err != nil {
			return fmt.Errorf("revoke token: %w", err)
		}
	}

	s.audit.Record(domain.AuditEntry{
		ActorID:    &claims.UserID,
		Action:     domain.AuditLogout,
		EntityType: "user",
		EntityID:   claims.UserID,
		IPAddress:  ip,
	})
	return nil
}

// CurrentUser resolves verified claims into a fresh profile. The user may
// have been deleted since the token was issued; that surfaces as
// domain.ErrUserNotFound, not as an authentication failure.
func (s *AuthService) CurrentUser(ctx context.Context, claims *token.Claims) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	sub, err := s.subs.Latest(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load subscription: %w", err)
	}
	user.Subscription = sub
	return user, nil
}
