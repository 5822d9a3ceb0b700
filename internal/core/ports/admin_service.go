package ports

import (
	"context"

	"github.com/hunter122526/quantum2017/internal/core/domain"
)

// AdminService implements the role-gated user management surface.
type AdminService interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	// UpdateUser applies a partial update to the target and audits the
	// applied delta under the acting admin's identity.
	UpdateUser(ctx context.Context, actorID, id string, patch domain.UserPatch, ip string) error
	// DeleteUser removes the target. Returns domain.ErrSelfDeletion when the
	// target is the acting admin.
	DeleteUser(ctx context.Context, actorID, id string, ip string) error
}
