package ports

import (
	"context"

	"github.com/hunter122526/quantum2017/internal/core/domain"
)

// UserRepository defines persistence for user identity records.
type UserRepository interface {
	// Create inserts a new user and returns the stored row. Returns
	// domain.ErrUserExists when the email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail looks a user up case-insensitively, password hash included.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateLastLogin stamps the user's last successful login.
	UpdateLastLogin(ctx context.Context, id string) error
	// Update applies the non-nil fields of the patch. Returns
	// domain.ErrUserNotFound when the target does not exist.
	Update(ctx context.Context, id string, patch domain.UserPatch) error
	Delete(ctx context.Context, id string) error
}
