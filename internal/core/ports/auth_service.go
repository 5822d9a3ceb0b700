package ports

import (
	"context"

	"github.com/hunter122526/quantum2017/internal/core/domain"
	"github.com/hunter122526/quantum2017/internal/core/token"
)

// SignupInput carries everything needed to create an account.
type SignupInput struct {
	Email    string
	Password string
	Name     string
	IP       string
}

// LoginInput carries login credentials plus the caller's source address.
type LoginInput struct {
	Email    string
	Password string
	IP       string
}

// AuthResult is the successful outcome of signup or login.
type AuthResult struct {
	User  *domain.User
	Token string
}

// AuthService implements the credential-check-and-issue-token flow.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	// Logout audits the action and revokes the presented token server-side.
	Logout(ctx context.Context, rawToken string, claims *token.Claims, ip string) error
	// CurrentUser resolves verified claims into a fresh profile with the
	// latest subscription attached when one exists.
	CurrentUser(ctx context.Context, claims *token.Claims) (*domain.User, error)
}
