package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hunter122526/quantum2017/internal/core/domain"
	"github.com/hunter122526/quantum2017/internal/core/ports"
)

// AdminService implements the role-gated user management surface. Role
// checks happen at the HTTP layer; these methods assume an admin actor.
type AdminService struct {
	users  ports.UserRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewAdminService(users ports.UserRepository, audit ports.AuditRecorder, logger zerolog.Logger) *AdminService {
	return &AdminService{users: users, audit: audit, logger: logger}
}

// GetUser returns the target user or domain.ErrUserNotFound.
func (s *AdminService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// UpdateUser applies the non-nil fields of the patch to the target. An empty
// patch succeeds and still produces an audit entry with an empty payload.
func (s *AdminService) UpdateUser(ctx context.Context, actorID, id string, patch domain.UserPatch, ip string) error {
	if patch.Plan != nil && !domain.ValidPlan(*patch.Plan) {
		return domain.ErrInvalidPatch
	}
	if patch.Status != nil && !domain.ValidStatus(*patch.Status) {
		return domain.ErrInvalidPatch
	}

	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}

	if !patch.IsEmpty() {
		if err := s.users.Update(ctx, id, patch); err != nil {
			return err
		}
	}

	s.audit.Record(domain.AuditEntry{
		ActorID:    &actorID,
		Action:     domain.AuditUserUpdated,
		EntityType: "user",
		EntityID:   id,
		Changes:    patch.Changes(),
		IPAddress:  ip,
	})
	return nil
}

// DeleteUser removes the target user. Admins cannot delete themselves.
func (s *AdminService) DeleteUser(ctx context.Context, actorID, id string, ip string) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	if id == actorID {
		return domain.ErrSelfDeletion
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(domain.AuditEntry{
		ActorID:    &actorID,
		Action:     domain.AuditUserDeleted,
		EntityType: "user",
		EntityID:   id,
		Changes:    map[string]any{"deleted": true},
		IPAddress:  ip,
	})
	return nil
}
